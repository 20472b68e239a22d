// Package depgraph implements the directed graph over node ids that
// the rest of paintercore builds on: each node lists its dependencies
// (the inputs it needs), and edges point from consumer to producer
// (spec §4.2).
package depgraph

// DepGraph maps a node to an ordered list of its dependencies. Order
// is semantically significant for operations whose meaning depends on
// operand position (e.g. Composite, where slot 0 is "underneath").
//
// DepGraph is generic over the node id type N so it can be reused for
// any comparable id kind; paintercore instantiates it with
// id.Id[id.Operation].
type DepGraph[N comparable] struct {
	deps map[N][]N
}

// New creates an empty DepGraph.
func New[N comparable]() *DepGraph[N] {
	return &DepGraph[N]{deps: make(map[N][]N)}
}

// Insert sets node's dependency list to deps, replacing any previous
// list. Postcondition: DependsOn(node) equals deps.
func (g *DepGraph[N]) Insert(node N, deps []N) {
	cp := make([]N, len(deps))
	copy(cp, deps)
	g.deps[node] = cp
}

// DependsOn returns node's dependency list, if node is present.
func (g *DepGraph[N]) DependsOn(node N) ([]N, bool) {
	deps, ok := g.deps[node]
	if !ok {
		return nil, false
	}
	cp := make([]N, len(deps))
	copy(cp, deps)
	return cp, true
}

// Dependees returns every node that lists node among its dependencies.
// This is a linear scan over the graph — acceptable per spec §4.2,
// since painting workloads keep graphs small.
func (g *DepGraph[N]) Dependees(node N) []N {
	var out []N
	for candidate, deps := range g.deps {
		for _, d := range deps {
			if d == node {
				out = append(out, candidate)
				break
			}
		}
	}
	return out
}

// Contains reports whether node has an entry in the graph (even an
// empty dependency list counts).
func (g *DepGraph[N]) Contains(node N) bool {
	_, ok := g.deps[node]
	return ok
}

// Len returns the number of nodes with an entry in the graph.
func (g *DepGraph[N]) Len() int { return len(g.deps) }

// Nodes returns every node with an entry in the graph, in unspecified
// order.
func (g *DepGraph[N]) Nodes() []N {
	out := make([]N, 0, len(g.deps))
	for n := range g.deps {
		out = append(out, n)
	}
	return out
}

// Export returns a copy of the graph's adjacency map: every node with
// an entry, keyed to its own dependency list. The codec uses this to
// serialize a graph without reaching into its internal storage.
func (g *DepGraph[N]) Export() map[N][]N {
	out := make(map[N][]N, len(g.deps))
	for n, deps := range g.deps {
		cp := make([]N, len(deps))
		copy(cp, deps)
		out[n] = cp
	}
	return out
}

// Import rebuilds a DepGraph from a previously exported adjacency map.
func Import[N comparable](adjacency map[N][]N) *DepGraph[N] {
	g := New[N]()
	for n, deps := range adjacency {
		g.Insert(n, deps)
	}
	return g
}

// Flip returns a new graph where every edge direction is reversed:
// if g has "a depends on b", the flipped graph has "b depends on a".
// Used by cache invalidation to walk from a changed node to its
// dependents (spec §9).
func (g *DepGraph[N]) Flip() *DepGraph[N] {
	flipped := New[N]()
	for n := range g.deps {
		flipped.deps[n] = nil
	}
	for n, deps := range g.deps {
		for _, d := range deps {
			flipped.deps[d] = append(flipped.deps[d], n)
		}
	}
	return flipped
}

// OperateOn is the structural-edit primitive used by EditContext to
// graft a new node "above" an existing one. Preconditions: newNode is
// absent, base is present (a violation panics — this is a programmer
// error per spec §4.2/§9).
//
// Effect:
//   - newNode depends on base.
//   - every node that previously depended on base now depends on
//     newNode instead, at the same positional slot (preserving operand
//     order for Composite nodes).
//   - base's own dependencies are untouched.
//
// This is the endpoint convention spec §4.2 and §9 fix as the one
// EditContext's insertion-point model requires, resolving the source
// repository's two disagreeing variants of operate_on.
func (g *DepGraph[N]) OperateOn(newNode, base N) {
	if g.Contains(newNode) {
		panic("depgraph: OperateOn called with a newNode id already present in the graph")
	}
	if !g.Contains(base) {
		panic("depgraph: OperateOn called with a base id absent from the graph")
	}

	for _, dependee := range g.Dependees(base) {
		deps := g.deps[dependee]
		for i, d := range deps {
			if d == base {
				deps[i] = newNode
			}
		}
	}
	g.deps[newNode] = []N{base}
}

// TransitiveDependencies performs a breadth-first, cycle-safe
// enumeration of every node transitively reachable (as a dependency)
// from start, including nodes in start itself. A visited set keyed by
// node id guards against cycles and re-enqueuing (spec §4.2).
func (g *DepGraph[N]) TransitiveDependencies(start []N) []N {
	visited := make(map[N]bool, len(start))
	queue := make([]N, 0, len(start))
	order := make([]N, 0, len(start))

	for _, n := range start {
		if !visited[n] {
			visited[n] = true
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)

		deps, ok := g.deps[n]
		if !ok {
			continue
		}
		for _, d := range deps {
			if !visited[d] {
				visited[d] = true
				queue = append(queue, d)
			}
		}
	}
	return order
}
