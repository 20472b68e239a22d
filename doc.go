// Package paintercore implements the operation graph at the heart of
// a layered, non-destructive raster painter: documents are built from
// small Stroke/Composite/Output/Tag operations wired into a dependency
// graph, never by mutating pixels directly, so every edit stays
// replayable and undoable.
//
// # Quick start
//
//	doc := paintercore.NewDocument()
//	ctx := editcontext.New(doc)
//
//	tool := brushtool.New()
//	tool.SetBrush(brushID)
//	tool.StartStroke(ctx, 10, 10, 1.0)
//	tool.ContinueStroke(ctx, 12, 11, 1.0)
//	tool.EndStroke()
//
//	be := software.New(doc, 800, 600)
//	reg, err := render.Render(ctx, be, 64, nil)
//
//	f, _ := os.Create("painting.sveg")
//	err = paintercore.Save(f, doc)
//
// # Architecture
//
//   - id/idmap: monotonic entity ids and the maps keyed by them.
//   - entities: the operation/brush/layer/color value types.
//   - depgraph: the dependency graph operations are wired into.
//   - document: the aggregate (brushes, glyphs, layers, operations, graph).
//   - scheduler/executor: turn the graph into register-bounded compute stages.
//   - backend/backend/software/backend/gpu: the compute-side collaborators.
//   - editcontext/tools/brushtool: the mutation facade interactive tools use.
//   - render: schedules, executes, and presents a document's Output(0).
//   - codec: versioned binary serialization.
//   - document/cache: change tracking across renders.
package paintercore
