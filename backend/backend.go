package backend

import (
	"errors"

	"github.com/sveg/paintercore/document"
	"github.com/sveg/paintercore/executor"
	"github.com/sveg/paintercore/id"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized reports use of a backend that is not ready. No
	// backend in this module has an initialization step, and none
	// returns it.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend is the compute-side collaborator render.Render drives
// through the executor: prepare, compute and release one operation's
// result at a time (spec.md §6's callback contract). It is
// executor.Backend[id.Id[id.Operation]] under a domain-specific name,
// kept distinct so backend implementations don't need to import the
// executor package just to satisfy it.
//
//   - Load(op, addr): prepare addr to hold op's result.
//   - Unload(op, addr): release addr, previously held by op.
//   - Compute(op, deps, mayConsume): for Stroke, paint strokes over the
//     one dependency; for Composite, blend deps[0] (underneath) and
//     deps[1] (above) per the operation's blend mode; for Output,
//     present deps[0] to the host framebuffer; for Tag, copy deps[0]
//     into the output slot (or leave it blank with no dependency). A
//     dependency present in mayConsume may be overwritten in place
//     instead of copied; any other dependency must be treated as
//     read-only.
type Backend = executor.Backend[id.Id[id.Operation]]

// RegisterContents is the opaque per-register payload a Backend keeps
// resident while an operation's result occupies a register: a CPU
// pixmap for backend/software, a GPU texture for backend/gpu.
// render.Register wraps one the same way a render target wraps its
// own backing store.
type RegisterContents interface {
	Width() int
	Height() int
}

// Factory builds a fresh Backend bound to doc and sized to width x
// height pixels.
type Factory func(doc *document.Document, width, height int) Backend

// Presenter is implemented by backends that can hand back a finished
// output register after a render.Render call, keyed by Output index.
// render.Register wraps whatever it returns.
type Presenter interface {
	Output(index uint32) RegisterContents
}
