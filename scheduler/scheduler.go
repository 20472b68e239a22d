// Package scheduler turns a dependency graph and a set of requested
// outputs into an ordered, register-budget-aware execution plan (spec
// §4.5). It knows nothing about what an operation computes — only
// which ids depend on which, and how many registers are available to
// hold live values at once.
package scheduler

import (
	"fmt"
	"sort"

	"github.com/sveg/paintercore/depgraph"
)

// reachable performs a BFS over g starting from outs, validating that
// every visited node (including each output itself) has an entry in
// g. It returns the visited set; a reference to an absent node is
// reported as UnknownDependencyError rather than silently stopping.
func reachable[I comparable](g *depgraph.DepGraph[I], outs []I) (map[I]bool, error) {
	visited := make(map[I]bool, len(outs))
	queue := make([]I, 0, len(outs))
	for _, o := range outs {
		if !visited[o] {
			visited[o] = true
			queue = append(queue, o)
		}
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !g.Contains(n) {
			return nil, &UnknownDependencyError[I]{Node: n}
		}
		deps, _ := g.DependsOn(n)
		for _, d := range deps {
			if !visited[d] {
				visited[d] = true
				queue = append(queue, d)
			}
		}
	}
	return visited, nil
}

// stableKey gives candidates sharing the minimum dependency count a
// deterministic tie-break. Spec leaves tie order unspecified; a stable
// ordering just keeps test output and schedules reproducible.
func stableKey[I comparable](n I) string {
	return fmt.Sprintf("%v", n)
}

// ComputeExecution derives an ordered Stage list that, executed in
// order, produces every node in outs while never holding more than
// registers live values at once (spec §4.5). Dependency order within
// a node's own Operation.DependsOn is preserved from g, but is
// otherwise not significant to scheduling itself.
func ComputeExecution[I comparable](g *depgraph.DepGraph[I], outs []I, registers int) ([]Stage[I], error) {
	if len(outs) > registers {
		return nil, &ResourceLimitExceededError[I]{Node: outs[len(outs)-1], Registers: registers}
	}

	remaining, err := reachable(g, outs)
	if err != nil {
		return nil, err
	}
	totalReachable := len(remaining)

	type memSlot struct {
		id   I
		used bool
	}
	memState := make([]memSlot, registers)
	addrOf := make(map[I]int, registers)
	for i, o := range outs {
		memState[i] = memSlot{id: o, used: true}
		addrOf[o] = i
	}

	var nextAllocateBefore []LocatedOp[I]
	var stagesReversed []Stage[I]

	bound := totalReachable + 1
	iterations := 0

	for {
		// Step: derive this iteration's view of memory by freeing
		// whatever the most-recently-built (chronologically later)
		// stage claimed for itself.
		newMemState := make([]memSlot, registers)
		copy(newMemState, memState)
		newAddrOf := make(map[I]int, len(addrOf))
		for k, v := range addrOf {
			newAddrOf[k] = v
		}
		for _, loc := range nextAllocateBefore {
			newMemState[loc.Addr] = memSlot{}
			delete(newAddrOf, loc.ID)
		}

		liveCount := 0
		for _, s := range newMemState {
			if s.used {
				liveCount++
			}
		}

		if len(remaining) == 0 && liveCount == 0 {
			break
		}

		if iterations >= bound {
			return nil, &IterationLimitReachedError{Limit: bound}
		}
		iterations++

		// Candidates: live nodes not required as a dependency by any
		// operation still waiting to be scheduled.
		blocked := make(map[I]bool)
		for opID := range remaining {
			deps, _ := g.DependsOn(opID)
			for _, d := range deps {
				blocked[d] = true
			}
		}

		var candidates []I
		for id := range newAddrOf {
			if remaining[id] && !blocked[id] {
				candidates = append(candidates, id)
			}
		}

		if len(candidates) == 0 {
			// No progress possible this round; let the iteration bound
			// catch genuinely cyclic input.
			memState = newMemState
			addrOf = newAddrOf
			nextAllocateBefore = nil
			continue
		}

		sort.Slice(candidates, func(i, j int) bool {
			di, _ := g.DependsOn(candidates[i])
			dj, _ := g.DependsOn(candidates[j])
			if len(di) != len(dj) {
				return len(di) < len(dj)
			}
			return stableKey(candidates[i]) < stableKey(candidates[j])
		})
		chosen := candidates[0]
		addr := newAddrOf[chosen]
		deps, _ := g.DependsOn(chosen)

		stage := Stage[I]{
			Operation:      Operation[I]{ID: chosen, DependsOn: deps},
			Addr:           addr,
			AllocateBefore: []LocatedOp[I]{{ID: chosen, Addr: addr}},
		}

		for _, dep := range deps {
			if _, ok := newAddrOf[dep]; ok {
				continue
			}
			freeAddr := -1
			for a, slot := range newMemState {
				if !slot.used {
					freeAddr = a
					break
				}
			}
			if freeAddr == -1 {
				return nil, &ResourceLimitExceededError[I]{Node: dep, Registers: registers}
			}
			newMemState[freeAddr] = memSlot{id: dep, used: true}
			newAddrOf[dep] = freeAddr
			stage.DeleteAfter = append(stage.DeleteAfter, LocatedOp[I]{ID: dep, Addr: freeAddr})
		}

		memState = newMemState
		addrOf = newAddrOf
		nextAllocateBefore = stage.AllocateBefore
		delete(remaining, chosen)
		stagesReversed = append(stagesReversed, stage)
	}

	stages := make([]Stage[I], len(stagesReversed))
	for i, s := range stagesReversed {
		stages[len(stagesReversed)-1-i] = s
	}

	if len(stages) != totalReachable {
		var missing []I
		for id := range remaining {
			missing = append(missing, id)
		}
		return nil, &UnexecutedOperationsError[I]{Missing: missing}
	}

	return stages, nil
}
