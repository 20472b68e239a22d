// Package document implements the layered raster image aggregate: the
// id-keyed entity stores, the operation dependency graph, and the
// canvas metadata that together make up one paintercore document
// (spec.md §3).
package document

import (
	"fmt"

	"github.com/sveg/paintercore/depgraph"
	"github.com/sveg/paintercore/entities"
	"github.com/sveg/paintercore/id"
	"github.com/sveg/paintercore/idmap"
)

// Metadata holds the document-wide, non-entity settings (spec.md §3).
type Metadata struct {
	PreviewCanvasSize      [2]uint32       `json:"preview_canvas_size"`
	CanvasBackgroundColor  entities.Color  `json:"canvas_background_color"`
}

// Document is the full painting state: every brush, glyph and layer
// ever created, the operation graph that derives pixels from them, and
// canvas-level metadata.
type Document struct {
	Brushes    *idmap.IdMap[id.Brush, entities.Brush]
	Glyphs     *idmap.IdMap[id.Glyph, entities.Glyph]
	Layers     *idmap.IdMap[id.Layer, entities.Layer]
	Operations *idmap.IdMap[id.Operation, entities.Operation]
	Graph      *depgraph.DepGraph[id.Id[id.Operation]]
	Metadata   Metadata
}

// New returns an empty Document with no brushes, glyphs, layers or
// operations.
func New() *Document {
	return &Document{
		Brushes:    idmap.New[id.Brush, entities.Brush](),
		Glyphs:     idmap.New[id.Glyph, entities.Glyph](),
		Layers:     idmap.New[id.Layer, entities.Layer](),
		Operations: idmap.New[id.Operation, entities.Operation](),
		Graph:      depgraph.New[id.Id[id.Operation]](),
	}
}

// ValidationError reports a specific way a Document fails to satisfy
// the invariants spec.md §3 requires of a renderable document.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "document: " + e.Reason
}

// Validate checks the invariants a Document must satisfy before it can
// be scheduled or rendered:
//   - every id referenced by an operation (a stroke's glyph, or another
//     operation as a dependency) or by a layer (its blend operation)
//     resolves to a real entry;
//   - each operation's declared arity matches the number of dependency
//     edges the graph records for it;
//   - at least one Output(0) operation exists (the render root);
//   - the sub-graph reachable from every Output(0) node is acyclic.
//     Outputs with another index are not checked for cycles.
func (d *Document) Validate() error {
	for _, pair := range d.Operations.Iter() {
		op := pair.Value
		deps, ok := d.Graph.DependsOn(pair.Id)
		if !ok {
			return &ValidationError{Reason: fmt.Sprintf("operation %s has no graph entry", pair.Id)}
		}
		// Tag is the one variable-arity kind: used as an identity
		// wrapper over an existing node it has one dependency, but a
		// finite DAG needs somewhere to bottom out, and Tag doubles as
		// that zero-dependency genesis marker (see DESIGN.md).
		if op.Kind == entities.OperationTag {
			if len(deps) > 1 {
				return &ValidationError{Reason: fmt.Sprintf(
					"operation %s (tag) has %d dependency edges, want 0 or 1", pair.Id, len(deps))}
			}
		} else if len(deps) != op.Arity() {
			return &ValidationError{Reason: fmt.Sprintf(
				"operation %s (%s) has arity %d but %d dependency edge(s)",
				pair.Id, op.Kind, op.Arity(), len(deps))}
		}
		for _, dep := range deps {
			if !d.Operations.Contains(dep) {
				return &ValidationError{Reason: fmt.Sprintf("operation %s depends on unknown operation %s", pair.Id, dep)}
			}
		}
		if op.Kind == entities.OperationStroke && op.Stroke != nil {
			if !d.Glyphs.Contains(op.Stroke.Glyph) {
				return &ValidationError{Reason: fmt.Sprintf("operation %s references unknown glyph %s", pair.Id, op.Stroke.Glyph)}
			}
			if err := op.Stroke.Validate(); err != nil {
				return &ValidationError{Reason: fmt.Sprintf("operation %s: %v", pair.Id, err)}
			}
		}
	}

	for _, pair := range d.Layers.Iter() {
		if !d.Operations.Contains(pair.Value.BlendOperationId) {
			return &ValidationError{Reason: fmt.Sprintf("layer %s references unknown operation %s", pair.Id, pair.Value.BlendOperationId)}
		}
	}

	var outputs []id.Id[id.Operation]
	for _, pair := range d.Operations.Iter() {
		if pair.Value.IsOutputZero() {
			outputs = append(outputs, pair.Id)
		}
	}
	if len(outputs) == 0 {
		return &ValidationError{Reason: "document has no Output(0) operation"}
	}

	for _, out := range outputs {
		if err := d.checkAcyclic(out); err != nil {
			return err
		}
	}
	return nil
}

// checkAcyclic walks the sub-graph reachable from root using
// iterative DFS with an explicit recursion stack, failing on the first
// back-edge it finds.
func (d *Document) checkAcyclic(root id.Id[id.Operation]) error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[id.Id[id.Operation]]int)

	type frame struct {
		node   id.Id[id.Operation]
		deps   []id.Id[id.Operation]
		nextDep int
	}
	var stack []frame

	push := func(n id.Id[id.Operation]) {
		deps, _ := d.Graph.DependsOn(n)
		state[n] = visiting
		stack = append(stack, frame{node: n, deps: deps})
	}
	push(root)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.nextDep >= len(top.deps) {
			state[top.node] = done
			stack = stack[:len(stack)-1]
			continue
		}
		dep := top.deps[top.nextDep]
		top.nextDep++
		switch state[dep] {
		case unvisited:
			push(dep)
		case visiting:
			return &ValidationError{Reason: fmt.Sprintf("operation graph has a cycle reachable from %s (via %s)", root, dep)}
		case done:
			// already fully explored, safe to skip
		}
	}
	return nil
}
