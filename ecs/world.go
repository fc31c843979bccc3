package ecs

import "github.com/milk9111/anchorlayout/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// DestroyHook runs while a dying entity is still alive and its components are
// still attached.
type DestroyHook func(w *World, e Entity)

// World owns entities, component stores and the event bus.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	bus      EventBus
	onDelete []DestroyHook
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity runs destroy hooks, detaches every component and frees the
// slot. It returns false if e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, hook := range w.onDelete {
		hook(w, e)
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// OnDestroy registers a hook that runs for every destroyed entity.
func (w *World) OnDestroy(hook DestroyHook) {
	if w == nil || hook == nil {
		return
	}
	w.onDelete = append(w.onDelete, hook)
}

// Bus returns the world event bus.
func (w *World) Bus() *EventBus {
	if w == nil {
		return nil
	}
	return &w.bus
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
