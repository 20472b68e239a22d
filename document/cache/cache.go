// Package cache tracks which operations in a document have already
// been computed, so a host can decide which ones changed since the
// last render without recomputing the whole graph from scratch.
package cache

import (
	"fmt"
	"hash/fnv"

	"github.com/sveg/paintercore/document"
	"github.com/sveg/paintercore/entities"
	"github.com/sveg/paintercore/id"
)

// Cache remembers the fingerprint each operation had the last time it
// was computed.
type Cache struct {
	fingerprints map[id.Id[id.Operation]]uint64
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{fingerprints: make(map[id.Id[id.Operation]]uint64)}
}

// Fingerprint hashes op's own content together with its dependencies'
// fingerprints, in order: operand position is significant (a
// Composite's underneath and above slots are not interchangeable), so
// swapping two dependencies must change the fingerprint even if the
// set of dependencies is the same.
func Fingerprint(op entities.Operation, depFingerprints []uint64) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%+v", op)
	for _, fp := range depFingerprints {
		fmt.Fprintf(h, "|%d", fp)
	}
	return h.Sum64()
}

// Get returns the fingerprint op was last computed with, if any.
func (c *Cache) Get(op id.Id[id.Operation]) (uint64, bool) {
	fp, ok := c.fingerprints[op]
	return fp, ok
}

// Remember records that op was last computed with fingerprint fp.
func (c *Cache) Remember(op id.Id[id.Operation], fp uint64) {
	c.fingerprints[op] = fp
}

// PrunedOutputs fingerprints every operation transitively reachable
// from outs, and returns the ids that need recomputing: every
// operation whose fingerprint changed, plus everything downstream of
// one (reached by walking doc.Graph.Flip(), since a changed ancestor
// invalidates its descendants even when their own content is
// unchanged). The cache is updated with the fresh fingerprints before
// returning, so the next call only reports what changes after this
// one.
func (c *Cache) PrunedOutputs(doc *document.Document, outs []id.Id[id.Operation]) []id.Id[id.Operation] {
	nodes := doc.Graph.TransitiveDependencies(outs)

	fresh := make(map[id.Id[id.Operation]]uint64, len(nodes))
	var dirty []id.Id[id.Operation]
	for _, n := range nodes {
		fp := c.fingerprintOf(doc, n, fresh)
		if prev, ok := c.Get(n); !ok || prev != fp {
			dirty = append(dirty, n)
		}
	}

	flipped := doc.Graph.Flip()
	affected := flipped.TransitiveDependencies(dirty)

	for n, fp := range fresh {
		c.Remember(n, fp)
	}
	return affected
}

// fingerprintOf computes n's fingerprint, recursing into its
// dependencies first and memoizing in fresh. Recursion (rather than a
// single topological pass) handles the DAG's branching shape directly
// without needing a separate sort step; doc.Validate guarantees there
// are no cycles to recurse into forever.
func (c *Cache) fingerprintOf(doc *document.Document, n id.Id[id.Operation], fresh map[id.Id[id.Operation]]uint64) uint64 {
	if fp, ok := fresh[n]; ok {
		return fp
	}
	deps, _ := doc.Graph.DependsOn(n)
	depFPs := make([]uint64, len(deps))
	for i, d := range deps {
		depFPs[i] = c.fingerprintOf(doc, d, fresh)
	}
	op, _ := doc.Operations.Get(n)
	fp := Fingerprint(op, depFPs)
	fresh[n] = fp
	return fp
}
