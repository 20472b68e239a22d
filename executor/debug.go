package executor

import (
	"fmt"
	"io"
)

// DebugBackend traces every callback invocation to Out, performing no
// other side effects. It satisfies Backend so Run can drive it
// directly — useful for golden-output tests of a stage list's shape
// without a real rendering backend (spec.md §4.6's "debug executor"
// variant).
type DebugBackend[I comparable] struct {
	Out io.Writer
}

// NewDebugBackend returns a DebugBackend writing to out.
func NewDebugBackend[I comparable](out io.Writer) *DebugBackend[I] {
	return &DebugBackend[I]{Out: out}
}

func (b *DebugBackend[I]) Load(op I, addr int) error {
	fmt.Fprintf(b.Out, "load %v @%d\n", op, addr)
	return nil
}

func (b *DebugBackend[I]) Unload(op I, addr int) error {
	fmt.Fprintf(b.Out, "unload %v @%d\n", op, addr)
	return nil
}

func (b *DebugBackend[I]) Compute(op I, deps []I, mayConsume []I) error {
	fmt.Fprintf(b.Out, "compute %v <- %v (may_consume=%v)\n", op, deps, mayConsume)
	return nil
}
