// Package brushtool wraps EditContext.InsertOperation with the
// stroke-building ergonomics an interactive brush needs: accumulating
// position/angle/size/color samples one pointer event at a time,
// rather than requiring the host to build a whole StrokeData up front.
package brushtool

import (
	"math"

	"github.com/sveg/paintercore/editcontext"
	"github.com/sveg/paintercore/entities"
	"github.com/sveg/paintercore/id"
	"github.com/sveg/paintercore/internal/logging"
)

// Tool accumulates one Stroke operation at a time on behalf of an
// interactive brush. It is not safe for concurrent use.
type Tool struct {
	blendMode entities.BlendMode
	brush     *id.Id[id.Brush]

	current  *id.Id[id.Operation]
	lastX    float32
	lastY    float32
	haveLast bool
}

// New returns a Tool with no brush selected, painting fully opaque.
func New() *Tool {
	return &Tool{blendMode: entities.Mix(1)}
}

// SetBrush selects which Brush entity future strokes stamp with.
func (t *Tool) SetBrush(brushID id.Id[id.Brush]) {
	b := brushID
	t.brush = &b
}

// SetBlendMode changes how future strokes composite over what's
// beneath them.
func (t *Tool) SetBlendMode(mode entities.BlendMode) {
	t.blendMode = mode
}

// StartStroke begins a new Stroke operation spliced in at ctx's
// current tip, and appends the stroke's first sample at (x, y).
func (t *Tool) StartStroke(ctx *editcontext.EditContext, x, y, pressure float32) {
	if t.current != nil {
		logging.Get().Warn("brushtool: starting a stroke while one is already in progress")
	}
	if t.brush == nil {
		logging.Get().Warn("brushtool: no brush selected")
		return
	}
	brush, ok := ctx.Image.Brushes.Get(*t.brush)
	if !ok {
		logging.Get().Warn("brushtool: selected brush not found in document", "brush", *t.brush)
		return
	}

	opID := ctx.InsertOperation(entities.NewStrokeOperation(entities.StrokeData{
		Glyph:     brush.Glyph,
		BlendMode: t.blendMode,
	}))
	t.current = &opID
	t.haveLast = false
	t.appendSample(ctx, brush, x, y, pressure)
}

// ContinueStroke appends another sample to the in-progress stroke,
// skipping it if the pointer hasn't moved past the brush's minimum
// spacing since the last sample (spec.md's §3 Brush.Gap setting).
func (t *Tool) ContinueStroke(ctx *editcontext.EditContext, x, y, pressure float32) {
	if t.current == nil {
		logging.Get().Warn("brushtool: no stroke in progress to continue")
		return
	}
	brush, ok := ctx.Image.Brushes.Get(*t.brush)
	if !ok {
		logging.Get().Warn("brushtool: selected brush not found in document", "brush", *t.brush)
		return
	}

	if t.haveLast {
		size := brush.Size.Value(pressure)
		minSpacing := brush.Gap.Value(pressure) * size
		dx, dy := float64(x-t.lastX), float64(y-t.lastY)
		if math.Hypot(dx, dy) < float64(minSpacing) {
			return
		}
	}
	t.appendSample(ctx, brush, x, y, pressure)
}

// EndStroke closes off the in-progress stroke. Further ContinueStroke
// calls are ignored until the next StartStroke.
func (t *Tool) EndStroke() {
	t.current = nil
	t.haveLast = false
}

func (t *Tool) appendSample(ctx *editcontext.EditContext, brush entities.Brush, x, y, pressure float32) {
	stroke, ok := ctx.Image.Operations.GetMut(*t.current)
	if !ok || stroke.Kind != entities.OperationStroke {
		logging.Get().Warn("brushtool: current operation is not a stroke")
		t.current = nil
		return
	}

	color := ctx.Primary
	color.A *= brush.Flow.Value(pressure)

	stroke.Stroke.PositionArray = append(stroke.Stroke.PositionArray, entities.Point2{X: x, Y: y})
	stroke.Stroke.AngleArray = append(stroke.Stroke.AngleArray, 0)
	stroke.Stroke.SizeArray = append(stroke.Stroke.SizeArray, brush.Size.Value(pressure))
	stroke.Stroke.ColorArray = append(stroke.Stroke.ColorArray, color)

	t.lastX, t.lastY = x, y
	t.haveLast = true
}
