package layout

import "github.com/milk9111/anchorlayout/ecs"

// PropagationSystem re-resolves anchored geometry once per Update:
//
//  1. drain the RectChanged events queued since the previous tick
//  2. expand each into its transitive dependents
//  3. refresh and resolve every entity in that working set
//  4. commit self edges and clear the set
//
// Entities that moved are re-queued for the next tick, so a change travels one
// anchor hop per tick. The working set is visited in insertion order, which is
// not a topological order.
type PropagationSystem struct {
	graph   DependencyGraph
	inbound *ecs.EventQueue[RectChanged]

	working []ecs.Entity
	inSet   map[ecs.Entity]struct{}
	ticks   int
}

// NewPropagationSystem subscribes a new system to w's RectChanged events.
// Events published before this call are not seen.
func NewPropagationSystem(w *ecs.World, graph DependencyGraph) *PropagationSystem {
	return &PropagationSystem{
		graph:   graph,
		inbound: ecs.SubscribeQueue[RectChanged](w.Bus()),
		inSet:   make(map[ecs.Entity]struct{}),
	}
}

// Graph returns the dependency graph the system expands through.
func (s *PropagationSystem) Graph() DependencyGraph { return s.graph }

// Pending returns the number of RectChanged events waiting for the next tick.
func (s *PropagationSystem) Pending() int { return s.inbound.Len() }

// Ticks returns how many times Update ran.
func (s *PropagationSystem) Ticks() int { return s.ticks }

// Update runs one tick.
func (s *PropagationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	s.ticks++

	for _, evt := range s.inbound.Drain() {
		s.expand(evt.Entity)
	}

	bus := w.Bus()
	for _, e := range s.working {
		r, ok := ecs.Get(w, e, RectComponent.Kind())
		if !ok {
			continue
		}
		changed := false
		if a, ok := ecs.Get(w, e, AnchorsComponent.Kind()); ok {
			selfMoved := RefreshSelfEdges(w, r, a)
			resolved := Resolve(w, r, a)
			changed = selfMoved || resolved
		}
		ecs.Publish(bus, EntityChanged{Entity: e})
		if changed {
			ecs.Publish(bus, RectChanged{Entity: e})
		}
	}

	for _, e := range s.working {
		r, okR := ecs.Get(w, e, RectComponent.Kind())
		a, okA := ecs.Get(w, e, AnchorsComponent.Kind())
		if okR && okA {
			CommitSelfEdges(r, a)
		}
		delete(s.inSet, e)
	}
	s.working = s.working[:0]
}

func (s *PropagationSystem) expand(e ecs.Entity) {
	if _, ok := s.inSet[e]; ok {
		return
	}
	s.inSet[e] = struct{}{}
	s.working = append(s.working, e)
	if s.graph == nil {
		return
	}
	for _, child := range s.graph.Dependents(e) {
		s.expand(child)
	}
}

// RunUntilIdle runs whole ticks until no RectChanged event is pending or
// maxTicks ran, and returns the number of ticks executed.
func RunUntilIdle(w *ecs.World, s *PropagationSystem, maxTicks int) int {
	n := 0
	for n < maxTicks && s.Pending() > 0 {
		s.Update(w)
		n++
	}
	return n
}
