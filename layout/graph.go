package layout

import (
	"slices"

	"github.com/milk9111/anchorlayout/ecs"
)

// DependencyGraph maps a parent entity to the entities whose layout reads it.
// The propagation system only calls Dependents.
type DependencyGraph interface {
	Dependents(parent ecs.Entity) []ecs.Entity
	AddEdge(parent, child ecs.Entity)
	RemoveEdge(parent, child ecs.Entity)
}

// ParentingGraph is a DependencyGraph fed by parenting events. Edges are
// reference counted: a child anchoring twice to one parent needs two clears.
type ParentingGraph struct {
	edges map[ecs.Entity]map[ecs.Entity]int
}

func NewParentingGraph() *ParentingGraph {
	return &ParentingGraph{edges: make(map[ecs.Entity]map[ecs.Entity]int)}
}

// Listen subscribes the graph to parenting and destruction events on bus.
func (g *ParentingGraph) Listen(bus *ecs.EventBus) {
	ecs.Subscribe(bus, func(e ParentingAdded) { g.AddEdge(e.Parent, e.Child) })
	ecs.Subscribe(bus, func(e ParentingCleared) { g.RemoveEdge(e.Parent, e.Child) })
	ecs.Subscribe(bus, func(e EntityDestroyed) { g.Forget(e.Entity) })
}

// Dependents returns parent's children in ascending handle order.
func (g *ParentingGraph) Dependents(parent ecs.Entity) []ecs.Entity {
	children := g.edges[parent]
	if len(children) == 0 {
		return nil
	}
	out := make([]ecs.Entity, 0, len(children))
	for c := range children {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

func (g *ParentingGraph) AddEdge(parent, child ecs.Entity) {
	if !parent.Valid() || !child.Valid() {
		return
	}
	if g.edges == nil {
		g.edges = make(map[ecs.Entity]map[ecs.Entity]int)
	}
	children, ok := g.edges[parent]
	if !ok {
		children = make(map[ecs.Entity]int)
		g.edges[parent] = children
	}
	children[child]++
}

func (g *ParentingGraph) RemoveEdge(parent, child ecs.Entity) {
	children, ok := g.edges[parent]
	if !ok {
		return
	}
	if children[child] > 1 {
		children[child]--
		return
	}
	delete(children, child)
	if len(children) == 0 {
		delete(g.edges, parent)
	}
}

// Forget drops every edge that starts or ends at e.
func (g *ParentingGraph) Forget(e ecs.Entity) {
	delete(g.edges, e)
	for parent, children := range g.edges {
		delete(children, e)
		if len(children) == 0 {
			delete(g.edges, parent)
		}
	}
}

// TicksToSettle returns how many ticks a change at from needs before every
// entity downstream of it has resolved: one for from itself plus one per hop
// of the longest dependency chain. Cycles are cut where they close.
func TicksToSettle(g DependencyGraph, from ecs.Entity) int {
	onPath := make(map[ecs.Entity]bool)
	memo := make(map[ecs.Entity]int)
	var depth func(e ecs.Entity) int
	depth = func(e ecs.Entity) int {
		if d, ok := memo[e]; ok {
			return d
		}
		onPath[e] = true
		best := 0
		for _, c := range g.Dependents(e) {
			if onPath[c] {
				continue
			}
			if d := 1 + depth(c); d > best {
				best = d
			}
		}
		onPath[e] = false
		memo[e] = best
		return best
	}
	return 1 + depth(from)
}
