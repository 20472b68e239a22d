package scheduler

import "fmt"

// UnknownDependencyError reports a node referenced as an output or as
// a dependency that has no entry in the graph.
type UnknownDependencyError[I comparable] struct {
	Node I
}

func (e *UnknownDependencyError[I]) Error() string {
	return fmt.Sprintf("scheduler: unknown dependency %v", e.Node)
}

// ResourceLimitExceededError reports that no free register remained
// to hold a node that needed one.
type ResourceLimitExceededError[I comparable] struct {
	Node      I
	Registers int
}

func (e *ResourceLimitExceededError[I]) Error() string {
	return fmt.Sprintf("scheduler: no free register among %d to hold %v", e.Registers, e.Node)
}

// IterationLimitReachedError reports that the scheduling loop made no
// progress within its iteration bound, almost always because the
// dependency graph contains a cycle.
type IterationLimitReachedError struct {
	Limit int
}

func (e *IterationLimitReachedError) Error() string {
	return fmt.Sprintf("scheduler: iteration limit (%d) reached without completing the schedule; the graph likely has a cycle", e.Limit)
}

// UnexecutedOperationsError is an internal consistency check: the
// scheduling loop reported completion but the resulting stage list
// does not cover every node reachable from the requested outputs.
type UnexecutedOperationsError[I comparable] struct {
	Missing []I
}

func (e *UnexecutedOperationsError[I]) Error() string {
	return fmt.Sprintf("scheduler: %d reachable operation(s) were never scheduled: %v", len(e.Missing), e.Missing)
}

// InternalError reports a scheduler invariant violation that
// indicates a bug in the scheduler itself rather than bad input.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "scheduler: internal error: " + e.Reason
}
