// Package executor walks a scheduler.Stage list and drives a pluggable
// backend's Load/Unload/Compute callbacks against it, enforcing the
// allocate-then-execute-then-free invariants spec.md §4.6 requires
// (and nothing about what an operation actually computes).
package executor

import (
	"github.com/sveg/paintercore/scheduler"
)

// Backend is the compute-side collaborator the executor drives. It
// knows nothing about stages or registers — only how to prepare,
// compute, and release one operation at a time (spec.md §6).
type Backend[I comparable] interface {
	// Load prepares addr to hold op's result.
	Load(op I, addr int) error
	// Unload releases addr, previously held by op.
	Unload(op I, addr int) error
	// Compute produces op's value from deps, now resident at their own
	// addresses. mayConsume lists the dependencies this stage's
	// delete_after will free immediately after, which the backend may
	// destructively overwrite instead of copying.
	Compute(op I, deps []I, mayConsume []I) error
}

type slot[I comparable] struct {
	id       I
	present  bool
	executed bool
}

// Run drives stages against backend under a fixed register budget.
// registers must be at least as large as any addr the stages
// reference — Run does not itself know the budget the scheduler used
// to build stages, so it takes it explicitly.
func Run[I comparable](stages []scheduler.Stage[I], registers int, backend Backend[I]) error {
	memory := make([]slot[I], registers)
	memoryMap := make(map[I]int, registers)

	for _, stage := range stages {
		if err := allocatePhase(stage, registers, memory, memoryMap, backend); err != nil {
			return err
		}
		if err := executePhase(stage, memory, memoryMap, backend); err != nil {
			return err
		}
		if err := freePhase(stage, memory, memoryMap, backend); err != nil {
			return err
		}
	}
	return nil
}

func allocatePhase[I comparable](stage scheduler.Stage[I], registers int, memory []slot[I], memoryMap map[I]int, backend Backend[I]) error {
	for _, loc := range stage.AllocateBefore {
		if loc.Addr >= registers || loc.Addr < 0 {
			return &MemoryHitResourceLimit[I]{Op: loc.ID, Addr: loc.Addr, Registers: registers}
		}
		if memory[loc.Addr].present {
			return &MemoryOverwrite[I]{Op: loc.ID, Addr: loc.Addr, Occupant: memory[loc.Addr].id}
		}
		if _, ok := memoryMap[loc.ID]; ok {
			return &OperationReallocated[I]{Op: loc.ID}
		}

		memory[loc.Addr] = slot[I]{id: loc.ID, present: true, executed: false}
		memoryMap[loc.ID] = loc.Addr

		if err := backend.Load(loc.ID, loc.Addr); err != nil {
			return &BackendError{Phase: "load", Err: err}
		}
	}
	return nil
}

func executePhase[I comparable](stage scheduler.Stage[I], memory []slot[I], memoryMap map[I]int, backend Backend[I]) error {
	op := stage.Operation.ID

	for _, dep := range stage.Operation.DependsOn {
		addr, ok := memoryMap[dep]
		if !ok {
			return &DependencyNotAllocated[I]{Op: op, Dep: dep}
		}
		if memory[addr].id != dep || !memory[addr].present {
			return &MemoryMapErrorInternal{Reason: "memory_map points at a slot that does not hold the expected dependency"}
		}
		if !memory[addr].executed {
			return &DependencyNotExecuted[I]{Op: op, Dep: dep}
		}
	}

	addr, ok := memoryMap[op]
	if !ok {
		return &OperationNotAllocated[I]{Op: op, Addr: stage.Addr}
	}
	if addr != stage.Addr {
		return &MemoryMapError[I]{Op: op, Addr: stage.Addr, Expected: memory[stage.Addr].id}
	}
	if memory[addr].id != op {
		return &MemoryMapErrorInternal{Reason: "memory_map address does not hold the operation it claims to"}
	}
	if memory[addr].executed {
		return &OperationRunTwice[I]{Op: op}
	}

	memory[addr].executed = true

	mayConsume := make([]I, len(stage.DeleteAfter))
	for i, loc := range stage.DeleteAfter {
		mayConsume[i] = loc.ID
	}

	if err := backend.Compute(op, stage.Operation.DependsOn, mayConsume); err != nil {
		return &BackendError{Phase: "compute", Err: err}
	}
	return nil
}

func freePhase[I comparable](stage scheduler.Stage[I], memory []slot[I], memoryMap map[I]int, backend Backend[I]) error {
	for _, loc := range stage.DeleteAfter {
		addr, ok := memoryMap[loc.ID]
		if !ok {
			return &MemoryFreeingUnallocated[I]{Op: loc.ID, Addr: loc.Addr}
		}
		if !memory[addr].present {
			return &MemoryFreeingEmpty[I]{Op: loc.ID, Addr: loc.Addr}
		}
		if memory[addr].id != loc.ID {
			return &MemoryMapErrorInternal{Reason: "memory_map disagrees with memory about a freed slot's occupant"}
		}
		if !memory[addr].executed {
			return &MemoryFreeingUnexecuted[I]{Op: loc.ID, Addr: loc.Addr}
		}

		memory[addr] = slot[I]{}
		delete(memoryMap, loc.ID)

		if err := backend.Unload(loc.ID, loc.Addr); err != nil {
			return &BackendError{Phase: "unload", Err: err}
		}
	}
	return nil
}
