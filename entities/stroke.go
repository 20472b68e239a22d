package entities

import (
	"fmt"

	"github.com/sveg/paintercore/id"
)

// Point2 is a plain 2D point, used for stroke sample positions.
type Point2 struct {
	X, Y float32
}

// StrokeData is the payload of a Stroke operation: one sample per
// stamp along the stroke. All four per-sample arrays must be the same
// length (spec §3 invariant).
type StrokeData struct {
	PositionArray []Point2
	AngleArray    []float32
	Size          float32
	SizeArray     []float32
	Color         Color
	ColorArray    []Color
	Glyph         id.Id[id.Glyph]
	BlendMode     BlendMode
}

// Validate checks the per-sample array length invariant.
func (s StrokeData) Validate() error {
	n := len(s.PositionArray)
	if len(s.AngleArray) != n || len(s.SizeArray) != n || len(s.ColorArray) != n {
		return fmt.Errorf(
			"entities: stroke arrays must have equal length, got position=%d angle=%d size=%d color=%d",
			n, len(s.AngleArray), len(s.SizeArray), len(s.ColorArray))
	}
	return nil
}

// SampleCount returns the number of stamps in the stroke.
func (s StrokeData) SampleCount() int { return len(s.PositionArray) }
