// Package editcontext implements the mutation facade a host binds its
// editing tools to: EditContext tracks where the next operation grafts
// onto the document's operation graph, plus the ambient editing state
// (primary color, canvas view transform) tools consult without having
// it threaded through every call (spec.md §4.3).
package editcontext

import (
	"fmt"

	"github.com/sveg/paintercore/document"
	"github.com/sveg/paintercore/entities"
	"github.com/sveg/paintercore/id"
	"github.com/sveg/paintercore/internal/logging"
)

// EditContext is the host's single handle onto an in-progress edit.
type EditContext struct {
	// Image is the document being edited.
	Image *document.Document

	// Tip is the insertion point new operations graft onto: "insert
	// operation onto" from spec.md §4.3. Nil means no insertion point
	// is set.
	Tip *id.Id[id.Operation]

	// Primary is the current primary color, consulted by tools that
	// don't carry their own color (e.g. a brush stroke in progress).
	Primary entities.Color

	// Transform is the current canvas view: zoom, rotation, pan.
	Transform CanvasTransform
}

// New returns an EditContext over doc with no insertion point, opaque
// black as the primary color, and an identity view transform.
func New(doc *document.Document) *EditContext {
	return &EditContext{
		Image:     doc,
		Primary:   entities.Opaque(0, 0, 0),
		Transform: IdentityTransform(),
	}
}

// InsertOperation issues an id for op and adds it to the document. If
// an insertion point is set, it splices the new operation above the
// tip (operate_on) and advances the tip to the new operation, so
// consecutive inserts stack. With no insertion point set, the
// operation is inserted with no dependencies and left disconnected
// from the graph; a warning is logged since the caller most likely
// needed to call SelectLayer first.
func (ctx *EditContext) InsertOperation(op entities.Operation) id.Id[id.Operation] {
	newID := ctx.Image.Operations.Insert(op)

	if ctx.Tip == nil {
		ctx.Image.Graph.Insert(newID, nil)
		logging.Get().Warn("editcontext: no insertion point set, operation left disconnected",
			"operation", newID, "kind", op.Kind)
		return newID
	}

	ctx.Image.Graph.OperateOn(newID, *ctx.Tip)
	tip := newID
	ctx.Tip = &tip
	return newID
}

// SelectLayer resolves layerID's composite node and sets the insertion
// point to its first dependency, the layer's own local tip (spec.md
// §4.3). Fails softly — logging a warning and leaving the insertion
// point unchanged — if the layer id is unknown or its composite node
// has no dependencies.
func (ctx *EditContext) SelectLayer(layerID id.Id[id.Layer]) {
	layer, ok := ctx.Image.Layers.Get(layerID)
	if !ok {
		logging.Get().Warn("editcontext: SelectLayer on unknown layer", "layer", layerID)
		return
	}

	deps, ok := ctx.Image.Graph.DependsOn(layer.BlendOperationId)
	if !ok || len(deps) == 0 {
		logging.Get().Warn("editcontext: SelectLayer found a malformed composite node",
			"layer", layerID, "composite", layer.BlendOperationId)
		return
	}

	tip := deps[0]
	ctx.Tip = &tip
}

// ManipulateCanvas replaces the current view transform.
func (ctx *EditContext) ManipulateCanvas(zoom, angle float32, translation [2]float32) {
	ctx.Transform = CanvasTransform{Zoom: zoom, Angle: angle, Translation: translation}
}

// ScreenToCanvas maps a screen-space point to canvas space through the
// inverse of the current view transform.
func (ctx *EditContext) ScreenToCanvas(x, y float32) (float32, float32) {
	return ctx.Transform.ScreenToCanvas(x, y)
}

// SetPrimaryColor sets the primary color tools consult by default.
func (ctx *EditContext) SetPrimaryColor(r, g, b, a float32) {
	ctx.Primary = entities.Color{R: r, G: g, B: b, A: a}
}

// GenerateDotgraph renders the operation graph as DOT source, labeling
// each node with its operation kind and id (spec.md §4.3's convenience
// wrapper over DepGraph.GenerateDOT).
func (ctx *EditContext) GenerateDotgraph() string {
	return ctx.Image.Graph.GenerateDOT(func(n id.Id[id.Operation]) string {
		op, ok := ctx.Image.Operations.Get(n)
		if !ok {
			return fmt.Sprintf("%s (unknown)", n)
		}
		return fmt.Sprintf("%s: %s", n, op.Kind)
	})
}
