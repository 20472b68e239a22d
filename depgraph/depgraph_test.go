package depgraph_test

import (
	"reflect"
	"testing"

	"github.com/sveg/paintercore/depgraph"
)

func TestInsertAndDependsOn(t *testing.T) {
	g := depgraph.New[int]()
	g.Insert(1, []int{2, 3})

	deps, ok := g.DependsOn(1)
	if !ok {
		t.Fatal("DependsOn(1) returned ok=false")
	}
	if !reflect.DeepEqual(deps, []int{2, 3}) {
		t.Fatalf("DependsOn(1) = %v, want [2 3]", deps)
	}
}

func TestDependees(t *testing.T) {
	g := depgraph.New[int]()
	g.Insert(1, []int{3})
	g.Insert(2, []int{3})
	g.Insert(3, nil)

	got := g.Dependees(3)
	want := map[int]bool{1: true, 2: true}
	if len(got) != len(want) {
		t.Fatalf("Dependees(3) = %v, want nodes %v", got, want)
	}
	for _, n := range got {
		if !want[n] {
			t.Fatalf("unexpected dependee %d", n)
		}
	}
}

func TestFlip(t *testing.T) {
	g := depgraph.New[int]()
	g.Insert(1, []int{2})
	g.Insert(2, []int{3})
	g.Insert(3, nil)

	flipped := g.Flip()
	deps, ok := flipped.DependsOn(3)
	if !ok || !reflect.DeepEqual(deps, []int{2}) {
		t.Fatalf("flipped.DependsOn(3) = %v, %v; want [2], true", deps, ok)
	}
	deps, ok = flipped.DependsOn(2)
	if !ok || !reflect.DeepEqual(deps, []int{1}) {
		t.Fatalf("flipped.DependsOn(2) = %v, %v; want [1], true", deps, ok)
	}
}

func TestOperateOnSplicesAboveBasePreservingSlots(t *testing.T) {
	g := depgraph.New[int]()
	// composite(10) depends on [underneath=1, above=2]; 1 and 2 are leaves.
	g.Insert(1, nil)
	g.Insert(2, nil)
	g.Insert(10, []int{1, 2})

	g.OperateOn(20, 1)

	deps, _ := g.DependsOn(20)
	if !reflect.DeepEqual(deps, []int{1}) {
		t.Fatalf("DependsOn(20) = %v, want [1]", deps)
	}
	deps, _ = g.DependsOn(10)
	if !reflect.DeepEqual(deps, []int{20, 2}) {
		t.Fatalf("DependsOn(10) = %v, want [20 2] (slot 0 replaced, slot 1 untouched)", deps)
	}
}

func TestOperateOnChainsOnSecondInsertion(t *testing.T) {
	g := depgraph.New[int]()
	g.Insert(1, nil)
	g.OperateOn(2, 1)
	g.OperateOn(3, 2)

	deps, _ := g.DependsOn(3)
	if !reflect.DeepEqual(deps, []int{2}) {
		t.Fatalf("DependsOn(3) = %v, want [2]", deps)
	}
	deps, _ = g.DependsOn(2)
	if !reflect.DeepEqual(deps, []int{1}) {
		t.Fatalf("DependsOn(2) = %v, want [1]", deps)
	}
}

func TestOperateOnPanicsOnMissingBase(t *testing.T) {
	g := depgraph.New[int]()
	defer func() {
		if recover() == nil {
			t.Fatal("expected OperateOn with a missing base to panic")
		}
	}()
	g.OperateOn(1, 2)
}

func TestTransitiveDependenciesCycleSafe(t *testing.T) {
	g := depgraph.New[int]()
	// Build a cycle: 1 -> 2 -> 3 -> 1. The scheduler treats cycles as a
	// hard error, but traversal itself must not loop forever.
	g.Insert(1, []int{2})
	g.Insert(2, []int{3})
	g.Insert(3, []int{1})

	order := g.TransitiveDependencies([]int{1})
	if len(order) != 3 {
		t.Fatalf("TransitiveDependencies visited %d nodes, want 3 (got %v)", len(order), order)
	}
}

func TestGenerateDOTIsDeterministic(t *testing.T) {
	g := depgraph.New[int]()
	g.Insert(1, []int{2, 3})
	g.Insert(2, nil)
	g.Insert(3, nil)

	label := func(n int) string { return "node" }
	first := g.GenerateDOT(label)
	second := g.GenerateDOT(label)
	if first != second {
		t.Fatalf("GenerateDOT is not deterministic:\n%s\n---\n%s", first, second)
	}
}
