// Package idmap implements the monotonic-id-keyed mapping that backs
// every entity store in paintercore (brushes, glyphs, layers,
// operations). See spec §4.1.
package idmap

import (
	"fmt"

	"github.com/sveg/paintercore/id"
)

// IdMap maps Id[K] to V, issuing ids from a monotonic counter that is
// never reused within the lifetime of one map. The counter is part of
// the map's persisted state so reopened documents keep issuing fresh
// ids (spec §4.1).
//
// IdMap is not safe for concurrent use; callers coordinate access the
// same way EditContext coordinates access to the rest of an Image (see
// the concurrency notes in spec §5).
type IdMap[K id.Kind, V any] struct {
	counter uint64
	entries map[id.Id[K]]*V
}

// New creates an empty IdMap with its counter at 0.
func New[K id.Kind, V any]() *IdMap[K, V] {
	return &IdMap[K, V]{entries: make(map[id.Id[K]]*V)}
}

// Insert issues a fresh id, stores v under it, and returns the id.
// The issued id equals the counter's value before it was incremented.
//
// Insert never collides: the id it issues was never returned by a
// previous Insert or Force on this map, since force only advances the
// counter when it is handed an id the counter hasn't reached yet.
func (m *IdMap[K, V]) Insert(v V) id.Id[K] {
	newID := id.Id[K](m.counter)
	m.counter++
	if _, exists := m.entries[newID]; exists {
		panic(fmt.Sprintf("idmap: insert collided on %s, this is a programmer error", newID))
	}
	m.entries[newID] = &v
	return newID
}

// Alter overwrites the value stored at id. It panics if id is absent:
// altering a non-existent entry is a programmer error (spec §4.1).
func (m *IdMap[K, V]) Alter(key id.Id[K], v V) {
	if _, ok := m.entries[key]; !ok {
		panic(fmt.Sprintf("idmap: alter of absent id %s", key))
	}
	m.entries[key] = &v
}

// Force upserts a value at id, creating the entry if absent. If id is
// at or beyond the current counter, the counter is advanced so that
// future Insert calls cannot collide with it. Force is how the codec
// rebuilds a map from persisted entries without losing the monotonic
// guarantee.
func (m *IdMap[K, V]) Force(key id.Id[K], v V) {
	m.entries[key] = &v
	if key.Uint64() >= m.counter {
		m.counter = key.Uint64() + 1
	}
}

// Get returns the value stored at id, if any.
func (m *IdMap[K, V]) Get(key id.Id[K]) (V, bool) {
	v, ok := m.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return *v, true
}

// GetMut returns a pointer to the value stored at id for in-place
// mutation, if any. Mutations through the pointer are visible to
// subsequent Get/GetMut calls for the same id.
func (m *IdMap[K, V]) GetMut(key id.Id[K]) (*V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of entries currently stored.
func (m *IdMap[K, V]) Len() int { return len(m.entries) }

// Contains reports whether id is present.
func (m *IdMap[K, V]) Contains(key id.Id[K]) bool {
	_, ok := m.entries[key]
	return ok
}

// Counter returns the current monotonic counter value (the next id
// Insert would issue). The codec persists this alongside the entries.
func (m *IdMap[K, V]) Counter() uint64 { return m.counter }

// Pair is one (id, value) entry, returned by Iter.
type Pair[K id.Kind, V any] struct {
	Id    id.Id[K]
	Value V
}

// Iter returns all (id, value) pairs in unspecified order (spec §4.1).
func (m *IdMap[K, V]) Iter() []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Pair[K, V]{Id: k, Value: *v})
	}
	return out
}

// Snapshot is the codec-facing, order-stable view of an IdMap's state:
// the counter plus every entry keyed by its raw id value. Map keys in
// Go's encoding/json are emitted in sorted order, which is what makes
// the codec's encoding canonical (spec §4.4).
type Snapshot[V any] struct {
	Counter uint64         `json:"counter"`
	Entries map[uint64]V   `json:"entries"`
}

// ToSnapshot exports the map's persisted state.
func (m *IdMap[K, V]) ToSnapshot() Snapshot[V] {
	entries := make(map[uint64]V, len(m.entries))
	for k, v := range m.entries {
		entries[k.Uint64()] = *v
	}
	return Snapshot[V]{Counter: m.counter, Entries: entries}
}

// FromSnapshot rebuilds an IdMap from a previously exported Snapshot.
func FromSnapshot[K id.Kind, V any](s Snapshot[V]) *IdMap[K, V] {
	m := &IdMap[K, V]{
		counter: s.Counter,
		entries: make(map[id.Id[K]]*V, len(s.Entries)),
	}
	for k, v := range s.Entries {
		v := v
		m.entries[id.Id[K](k)] = &v
	}
	return m
}
