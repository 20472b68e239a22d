package scheduler

// Operation is the scheduler's own minimal view of a node: its id and
// the ids of the nodes it depends on, captured at scheduling time
// (spec §4.5).
type Operation[I comparable] struct {
	ID        I
	DependsOn []I
}

// LocatedOp names a node together with the register address it
// occupies.
type LocatedOp[I comparable] struct {
	ID   I
	Addr int
}

// Stage is one unit of a schedule: before Operation executes at Addr,
// AllocateBefore registers must be reserved; after it executes,
// DeleteAfter registers are released (spec §4.5).
type Stage[I comparable] struct {
	Operation Operation[I]
	Addr      int

	AllocateBefore []LocatedOp[I]
	DeleteAfter    []LocatedOp[I]
}
