package software

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/sveg/paintercore/backend"
	"github.com/sveg/paintercore/document"
	"github.com/sveg/paintercore/entities"
	"github.com/sveg/paintercore/id"
)

func init() {
	backend.Register(backend.NameSoftware, func(doc *document.Document, width, height int) backend.Backend {
		return New(doc, width, height)
	})
}

// Backend is the CPU reference implementation of backend.Backend. It
// resolves each operation id against doc to find out what to compute,
// and keeps its own id-to-register map since the executor's Compute
// callback only ever hands it ids, not addresses (spec.md §4.6/§6).
type Backend struct {
	doc           *document.Document
	width, height int

	registers map[id.Id[id.Operation]]*Pixmap
	glyphs    map[id.Id[id.Glyph]]*glyphMask

	// outputs holds the presented framebuffer per Output index.
	outputs map[uint32]*Pixmap
}

// New returns a Backend bound to doc, sizing every register to
// width x height.
func New(doc *document.Document, width, height int) *Backend {
	return &Backend{
		doc:       doc,
		width:     width,
		height:    height,
		registers: make(map[id.Id[id.Operation]]*Pixmap),
		glyphs:    make(map[id.Id[id.Glyph]]*glyphMask),
		outputs:   make(map[uint32]*Pixmap),
	}
}

// Output returns the last presented framebuffer for the given Output
// index, or nil if render.Render hasn't computed it yet. It satisfies
// backend.Presenter.
func (b *Backend) Output(index uint32) backend.RegisterContents {
	out, ok := b.outputs[index]
	if !ok {
		return nil
	}
	return out
}

// Load allocates a fresh transparent register for op.
func (b *Backend) Load(op id.Id[id.Operation], addr int) error {
	b.registers[op] = NewPixmap(b.width, b.height)
	return nil
}

// Unload releases op's register.
func (b *Backend) Unload(op id.Id[id.Operation], addr int) error {
	delete(b.registers, op)
	return nil
}

// Compute implements the per-kind semantics spec.md §6 specifies.
func (b *Backend) Compute(op id.Id[id.Operation], deps []id.Id[id.Operation], mayConsume []id.Id[id.Operation]) error {
	operation, ok := b.doc.Operations.Get(op)
	if !ok {
		return fmt.Errorf("software backend: operation %s not found in document", op)
	}
	dst, ok := b.registers[op]
	if !ok {
		return fmt.Errorf("software backend: operation %s has no register loaded", op)
	}

	consumable := func(dep id.Id[id.Operation]) bool {
		for _, c := range mayConsume {
			if c == dep {
				return true
			}
		}
		return false
	}

	switch operation.Kind {
	case entities.OperationStroke:
		return b.computeStroke(*operation.Stroke, deps, dst)
	case entities.OperationComposite:
		return b.computeComposite(*operation.Composite, deps, dst)
	case entities.OperationOutput:
		return b.computeOutput(operation.Output.Index, deps, dst)
	case entities.OperationTag:
		return b.computeTag(deps, dst, consumable)
	default:
		return fmt.Errorf("software backend: unknown operation kind %q", operation.Kind)
	}
}

// computeStroke paints every sample of stroke over its single
// dependency (the surface underneath the stroke), writing the result
// into dst.
func (b *Backend) computeStroke(stroke entities.StrokeData, deps []id.Id[id.Operation], dst *Pixmap) error {
	if len(deps) != 1 {
		return fmt.Errorf("software backend: stroke operation has %d dependencies, want 1", len(deps))
	}
	under, ok := b.registers[deps[0]]
	if !ok {
		return fmt.Errorf("software backend: stroke dependency %s has no register loaded", deps[0])
	}
	dst.CopyFrom(under)

	mask := b.glyphMaskFor(stroke.Glyph)

	for i := 0; i < stroke.SampleCount(); i++ {
		pos := stroke.PositionArray[i]
		angle := stroke.AngleArray[i]
		size := stroke.SizeArray[i]
		color := stroke.ColorArray[i]
		b.stampSample(dst, mask, pos, angle, size, color, stroke.BlendMode)
	}
	return nil
}

// stampSample paints one brush stamp: a size x size square, rotated by
// angle, centered at pos, with the glyph mask's alpha modulating
// color before it's composited over dst with stroke.BlendMode.
func (b *Backend) stampSample(dst *Pixmap, mask *glyphMask, pos entities.Point2, angle, size float32, color entities.Color, mode entities.BlendMode) {
	if size <= 0 {
		return
	}
	half := size / 2
	cos, sin := float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle)))

	// Fixed-point (26.6) bounds give an exact, consistently-rounded
	// pixel box around the rotated stamp, the same way glyph outlines
	// are floored/ceiled to integer pixel bounds during rasterization.
	minX, minY := toFixed(pos.X-size).Floor(), toFixed(pos.Y-size).Floor()
	maxX, maxY := toFixed(pos.X+size).Ceil(), toFixed(pos.Y+size).Ceil()

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			// translate into stamp-local space, then undo the rotation
			lx, ly := float32(x)-pos.X, float32(y)-pos.Y
			sx := cos*lx + sin*ly
			sy := -sin*lx + cos*ly
			if sx < -half || sx > half || sy < -half || sy > half {
				continue
			}
			u := (sx + half) / size
			v := (sy + half) / size
			alpha := mask.sample(u, v)
			if alpha <= 0 {
				continue
			}
			sample := color
			sample.A *= alpha
			dst.Set(x, y, blendOver(dst.At(x, y), sample, mode))
		}
	}
}

func (b *Backend) glyphMaskFor(glyphID id.Id[id.Glyph]) *glyphMask {
	if m, ok := b.glyphs[glyphID]; ok {
		return m
	}
	glyph, ok := b.doc.Glyphs.Get(glyphID)
	var m *glyphMask
	if !ok {
		m = &glyphMask{w: 1, h: 1, alpha: []float32{1}}
	} else {
		m = decodeGlyphMask(glyph.PngData)
	}
	b.glyphs[glyphID] = m
	return m
}

// computeComposite blends deps[0] (underneath) and deps[1] (above)
// according to composite's blend mode, writing the result into dst.
func (b *Backend) computeComposite(composite entities.CompositeData, deps []id.Id[id.Operation], dst *Pixmap) error {
	if len(deps) != 2 {
		return fmt.Errorf("software backend: composite operation has %d dependencies, want 2", len(deps))
	}
	under, ok := b.registers[deps[0]]
	if !ok {
		return fmt.Errorf("software backend: composite dependency %s has no register loaded", deps[0])
	}
	above, ok := b.registers[deps[1]]
	if !ok {
		return fmt.Errorf("software backend: composite dependency %s has no register loaded", deps[1])
	}

	for y := 0; y < dst.h; y++ {
		for x := 0; x < dst.w; x++ {
			dst.Set(x, y, blendOver(under.At(x, y), above.At(x, y), composite.BlendMode))
		}
	}
	return nil
}

// computeOutput presents deps[0] to the host framebuffer at the given
// output index.
func (b *Backend) computeOutput(index uint32, deps []id.Id[id.Operation], dst *Pixmap) error {
	if len(deps) != 1 {
		return fmt.Errorf("software backend: output operation has %d dependencies, want 1", len(deps))
	}
	src, ok := b.registers[deps[0]]
	if !ok {
		return fmt.Errorf("software backend: output dependency %s has no register loaded", deps[0])
	}
	dst.CopyFrom(src)
	b.outputs[index] = dst
	return nil
}

// computeTag copies its one dependency (if any) into dst, consuming
// it in place (a cheap pixel-slice swap) when the scheduler has
// flagged it as consumable; a leaf Tag with no dependency leaves dst
// blank.
func (b *Backend) computeTag(deps []id.Id[id.Operation], dst *Pixmap, consumable func(id.Id[id.Operation]) bool) error {
	if len(deps) == 0 {
		return nil
	}
	if len(deps) != 1 {
		return fmt.Errorf("software backend: tag operation has %d dependencies, want 0 or 1", len(deps))
	}
	src, ok := b.registers[deps[0]]
	if !ok {
		return fmt.Errorf("software backend: tag dependency %s has no register loaded", deps[0])
	}
	if consumable(deps[0]) {
		dst.pix, src.pix = src.pix, dst.pix
		return nil
	}
	dst.CopyFrom(src)
	return nil
}

// toFixed converts a pixel coordinate to 26.6 fixed point, for exact
// Floor/Ceil pixel-bounds math.
func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// blendOver composites above over under per mode, operating on
// premultiplied colors (Porter-Duff "over") so alpha=0 samples never
// contribute visible color.
func blendOver(under, above entities.Color, mode entities.BlendMode) entities.Color {
	switch mode.Kind {
	case entities.BlendModeMix:
		a := above.A * mode.Opacity
		u := under.Premultiply()
		o := above.Premultiply()
		out := entities.Color{
			R: o.R*a + u.R*(1-a),
			G: o.G*a + u.G*(1-a),
			B: o.B*a + u.B*(1-a),
			A: a + u.A*(1-a),
		}
		return out.Unpremultiply()
	default:
		return above
	}
}
