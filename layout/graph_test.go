package layout

import (
	"testing"

	"github.com/milk9111/anchorlayout/ecs"
)

func TestParentingGraphRefCounts(t *testing.T) {
	g := NewParentingGraph()
	p, c := ecs.Entity(1), ecs.Entity(2)

	g.AddEdge(p, c)
	g.AddEdge(p, c)
	g.RemoveEdge(p, c)
	if deps := g.Dependents(p); len(deps) != 1 {
		t.Fatalf("one reference left, got %v", deps)
	}
	g.RemoveEdge(p, c)
	if deps := g.Dependents(p); len(deps) != 0 {
		t.Fatalf("expected no dependents, got %v", deps)
	}
	g.RemoveEdge(p, c)

	g.AddEdge(0, c)
	if deps := g.Dependents(0); len(deps) != 0 {
		t.Fatalf("invalid parent must be ignored")
	}
}

func TestParentingGraphDependentsSorted(t *testing.T) {
	g := NewParentingGraph()
	for _, c := range []ecs.Entity{9, 3, 7} {
		g.AddEdge(1, c)
	}
	deps := g.Dependents(1)
	if len(deps) != 3 || deps[0] != 3 || deps[1] != 7 || deps[2] != 9 {
		t.Fatalf("expected sorted dependents, got %v", deps)
	}
}

func TestParentingGraphForget(t *testing.T) {
	g := NewParentingGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(4, 2)

	g.Forget(2)
	for _, p := range []ecs.Entity{1, 2, 4} {
		if deps := g.Dependents(p); len(deps) != 0 {
			t.Fatalf("%v should have no dependents after forgetting 2, got %v", p, deps)
		}
	}
}

func TestTicksToSettle(t *testing.T) {
	g := NewParentingGraph()
	// 1 -> 2 -> 4, 1 -> 3 -> 4 -> 5
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)

	cases := []struct {
		from ecs.Entity
		want int
	}{
		{1, 4},
		{2, 3},
		{4, 2},
		{5, 1},
		{42, 1},
	}
	for _, c := range cases {
		if got := TicksToSettle(g, c.from); got != c.want {
			t.Fatalf("TicksToSettle(%v) = %d, want %d", c.from, got, c.want)
		}
	}
}

func TestParentingGraphListens(t *testing.T) {
	var bus ecs.EventBus
	g := NewParentingGraph()
	g.Listen(&bus)

	ecs.Publish(&bus, ParentingAdded{Parent: 1, Child: 2})
	if deps := g.Dependents(1); len(deps) != 1 {
		t.Fatalf("expected edge after ParentingAdded, got %v", deps)
	}
	ecs.Publish(&bus, ParentingCleared{Parent: 1, Child: 2})
	if deps := g.Dependents(1); len(deps) != 0 {
		t.Fatalf("expected no edge after ParentingCleared, got %v", deps)
	}
	ecs.Publish(&bus, ParentingAdded{Parent: 1, Child: 2})
	ecs.Publish(&bus, EntityDestroyed{Entity: 2})
	if deps := g.Dependents(1); len(deps) != 0 {
		t.Fatalf("expected no edge after EntityDestroyed, got %v", deps)
	}
}
