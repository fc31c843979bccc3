package layout

import "github.com/milk9111/anchorlayout/ecs"

// RectChanged reports that an entity's geometry moved and its dependents need
// resolving on the next tick.
type RectChanged struct {
	Entity ecs.Entity
}

// EntityChanged is emitted for every entity the propagation system visited, and
// when a clip relation is re-pointed.
type EntityChanged struct {
	Entity ecs.Entity
}

// ParentingAdded records that Child's layout now reads from Parent.
type ParentingAdded struct {
	Parent ecs.Entity
	Child  ecs.Entity
}

// ParentingCleared drops one reference from Child to Parent.
type ParentingCleared struct {
	Parent ecs.Entity
	Child  ecs.Entity
}

// EntityDestroyed is published after a layout entity released its references
// and before its components disappear.
type EntityDestroyed struct {
	Entity ecs.Entity
}
