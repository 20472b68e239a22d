package entities

import "github.com/sveg/paintercore/id"

// Brush describes a stamp-able brush tip: which glyph it stamps, and
// how pressure drives its size, flow, scatter, and spacing (spec §3).
type Brush struct {
	Name  string
	Glyph id.Id[id.Glyph]

	Size    PressureSettings
	Flow    PressureSettings
	Scatter PressureSettings
	Gap     PressureSettings
}
