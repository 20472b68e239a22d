// Package backend defines the pluggable compute-side contract
// render.Render drives through the executor (spec.md §6), and a
// name-to-Factory registry backends register themselves under.
//
// # Backend registration
//
// Backends register a Factory via their own init():
//
//	import _ "github.com/sveg/paintercore/backend/software"
//
// # Backend selection
//
// Use Default() for the best available backend, or Get() for one by
// name:
//
//	f, err := backend.Default()
//	b := f(doc, width, height)
//
// # Available backends
//
//   - "software": CPU reference implementation (backend/software),
//     always available.
//   - "gpu": device/texture-lifecycle management only (backend/gpu);
//     its Compute returns ErrComputeNotImplemented, since shading is
//     out of core scope (spec.md §1).
package backend
