package executor

import "fmt"

// MemoryHitResourceLimit reports an allocate_before address at or
// beyond the register count.
type MemoryHitResourceLimit[I comparable] struct {
	Op        I
	Addr      int
	Registers int
}

func (e *MemoryHitResourceLimit[I]) Error() string {
	return fmt.Sprintf("executor: allocate %v at addr %d, but only %d register(s) exist", e.Op, e.Addr, e.Registers)
}

// MemoryOverwrite reports an allocate_before targeting a register that
// is already occupied.
type MemoryOverwrite[I comparable] struct {
	Op       I
	Addr     int
	Occupant I
}

func (e *MemoryOverwrite[I]) Error() string {
	return fmt.Sprintf("executor: cannot allocate %v at addr %d, already holds %v", e.Op, e.Addr, e.Occupant)
}

// OperationReallocated reports an allocate_before for an op already
// present in memory_map.
type OperationReallocated[I comparable] struct {
	Op I
}

func (e *OperationReallocated[I]) Error() string {
	return fmt.Sprintf("executor: %v allocated twice", e.Op)
}

// DependencyNotAllocated reports a compute-phase dependency absent
// from memory_map.
type DependencyNotAllocated[I comparable] struct {
	Op  I
	Dep I
}

func (e *DependencyNotAllocated[I]) Error() string {
	return fmt.Sprintf("executor: %v depends on %v, which is not allocated", e.Op, e.Dep)
}

// DependencyNotExecuted reports a compute-phase dependency that is
// allocated but whose executed flag is not yet set.
type DependencyNotExecuted[I comparable] struct {
	Op  I
	Dep I
}

func (e *DependencyNotExecuted[I]) Error() string {
	return fmt.Sprintf("executor: %v depends on %v, which is allocated but not yet executed", e.Op, e.Dep)
}

// OperationNotAllocated reports that a stage's own operation is not
// allocated at the stage's claimed address.
type OperationNotAllocated[I comparable] struct {
	Op   I
	Addr int
}

func (e *OperationNotAllocated[I]) Error() string {
	return fmt.Sprintf("executor: %v is not allocated at its stage addr %d", e.Op, e.Addr)
}

// OperationRunTwice reports a stage whose operation was already
// executed.
type OperationRunTwice[I comparable] struct {
	Op I
}

func (e *OperationRunTwice[I]) Error() string {
	return fmt.Sprintf("executor: %v executed twice", e.Op)
}

// MemoryFreeingUnallocated reports a delete_after entry absent from
// memory_map.
type MemoryFreeingUnallocated[I comparable] struct {
	Op   I
	Addr int
}

func (e *MemoryFreeingUnallocated[I]) Error() string {
	return fmt.Sprintf("executor: cannot free %v at addr %d, not allocated", e.Op, e.Addr)
}

// MemoryFreeingEmpty reports a delete_after entry whose register slot
// is already empty.
type MemoryFreeingEmpty[I comparable] struct {
	Op   I
	Addr int
}

func (e *MemoryFreeingEmpty[I]) Error() string {
	return fmt.Sprintf("executor: cannot free %v at addr %d, slot already empty", e.Op, e.Addr)
}

// MemoryFreeingUnexecuted reports a delete_after entry whose operation
// has not yet executed.
type MemoryFreeingUnexecuted[I comparable] struct {
	Op   I
	Addr int
}

func (e *MemoryFreeingUnexecuted[I]) Error() string {
	return fmt.Sprintf("executor: cannot free %v at addr %d, not yet executed", e.Op, e.Addr)
}

// MemoryMapError reports a claimed address whose memory_map entry
// disagrees with the stage's own bookkeeping (not the belt-and-
// suspenders internal check below — this is the ordinary "wrong id"
// case).
type MemoryMapError[I comparable] struct {
	Op       I
	Addr     int
	Expected I
}

func (e *MemoryMapError[I]) Error() string {
	return fmt.Sprintf("executor: addr %d holds %v per memory_map, expected %v", e.Addr, e.Expected, e.Op)
}

// MemoryMapErrorInternal reports memory and memory_map disagreeing
// with each other — an executor bug, not a bad stage list.
type MemoryMapErrorInternal struct {
	Reason string
}

func (e *MemoryMapErrorInternal) Error() string {
	return "executor: internal memory/memory_map disagreement: " + e.Reason
}

// BackendError wraps an error returned by a Load, Unload or Compute
// callback.
type BackendError struct {
	Phase string
	Err   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("executor: backend %s failed: %v", e.Phase, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
