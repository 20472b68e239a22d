package idmap_test

import (
	"testing"

	"github.com/sveg/paintercore/id"
	"github.com/sveg/paintercore/idmap"
)

func TestInsertIssuesFreshIncreasingIds(t *testing.T) {
	m := idmap.New[id.Layer, string]()

	a := m.Insert("first")
	b := m.Insert("second")

	if a == b {
		t.Fatalf("expected distinct ids, got %s and %s", a, b)
	}
	if got, ok := m.Get(a); !ok || got != "first" {
		t.Fatalf("Get(a) = %q, %v; want %q, true", got, ok, "first")
	}
	if got, ok := m.Get(b); !ok || got != "second" {
		t.Fatalf("Get(b) = %q, %v; want %q, true", got, ok, "second")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
}

func TestAlterPanicsOnAbsentId(t *testing.T) {
	m := idmap.New[id.Brush, int]()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Alter on an absent id to panic")
		}
	}()
	m.Alter(id.FromUint64[id.Brush](7), 42)
}

func TestForceUpsertsAndAdvancesCounter(t *testing.T) {
	m := idmap.New[id.Glyph, int]()
	target := id.FromUint64[id.Glyph](10)

	m.Force(target, 99)
	if got, ok := m.Get(target); !ok || got != 99 {
		t.Fatalf("Get(target) = %d, %v; want 99, true", got, ok)
	}

	next := m.Insert(1)
	if next.Uint64() != 11 {
		t.Fatalf("Insert after Force(10, ...) issued %s, want counter 11", next)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	m := idmap.New[id.Operation, string]()
	m.Insert("a")
	m.Insert("b")

	snap := m.ToSnapshot()
	restored := idmap.FromSnapshot[id.Operation, string](snap)

	for _, pair := range m.Iter() {
		got, ok := restored.Get(pair.Id)
		if !ok || got != pair.Value {
			t.Fatalf("restored.Get(%s) = %q, %v; want %q, true", pair.Id, got, ok, pair.Value)
		}
	}
	if restored.Counter() != m.Counter() {
		t.Fatalf("restored counter = %d, want %d", restored.Counter(), m.Counter())
	}
}

func TestGetMutMutatesInPlace(t *testing.T) {
	m := idmap.New[id.Layer, int]()
	key := m.Insert(1)

	ptr, ok := m.GetMut(key)
	if !ok {
		t.Fatal("GetMut returned false for present id")
	}
	*ptr = 2

	if got, _ := m.Get(key); got != 2 {
		t.Fatalf("Get(key) = %d, want 2", got)
	}
}
