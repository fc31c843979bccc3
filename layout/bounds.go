package layout

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/anchorlayout/ecs"
)

// Renderable reports whether an entity currently draws anything. Bound
// queries never hit an entity the predicate rejects. A nil Renderable accepts
// every entity.
type Renderable func(w *ecs.World, e ecs.Entity) bool

// DrawsSomething is a Renderable for hosts without their own notion of
// renderability: the rect must be visible, observable and non-empty.
func DrawsSomething(w *ecs.World, e ecs.Entity) bool {
	r, ok := ecs.Get(w, e, RectComponent.Kind())
	return ok && r.visible && r.observable && r.width > 0 && r.height > 0
}

// Box returns r as an axis-aligned bounding box; B is the top edge in screen
// coordinates.
func Box(r *Rect) cp.BB {
	return cp.BB{L: r.x, B: r.y, R: r.x + r.width, T: r.y + r.height}
}

// InBound reports whether (x, y) lies inside e's rectangle, edges included.
func InBound(w *ecs.World, e ecs.Entity, x, y float64, renderable Renderable) bool {
	r, ok := ecs.Get(w, e, RectComponent.Kind())
	if !ok {
		return false
	}
	if renderable != nil && !renderable(w, e) {
		return false
	}
	return Box(r).ContainsVect(cp.Vector{X: x, Y: y})
}

// InClipBound is InBound further restricted to e's clipper. Only one level of
// clipping is checked.
func InClipBound(w *ecs.World, e ecs.Entity, x, y float64, renderable Renderable) bool {
	if !InBound(w, e, x, y, renderable) {
		return false
	}
	clipper, ok := activeClipper(w, e)
	if !ok {
		return true
	}
	return InBound(w, clipper, x, y, renderable)
}

// activeClipper returns e's clipper when it is set and still alive. A
// destroyed clipper no longer clips.
func activeClipper(w *ecs.World, e ecs.Entity) (ecs.Entity, bool) {
	c, ok := ecs.Get(w, e, ClipComponent.Kind())
	if !ok || !c.clipper.Valid() || !ecs.IsAlive(w, c.clipper) {
		return 0, false
	}
	return c.clipper, true
}

// ClipVisible reports whether e's rectangle overlaps its clipper at all. An
// unclipped entity, or one whose clipper was destroyed, is always visible.
func ClipVisible(w *ecs.World, e ecs.Entity) bool {
	r, ok := ecs.Get(w, e, RectComponent.Kind())
	if !ok {
		return false
	}
	clipper, ok := activeClipper(w, e)
	if !ok {
		return true
	}
	cr, ok := ecs.Get(w, clipper, RectComponent.Kind())
	if !ok {
		return false
	}
	return Box(r).Intersects(Box(cr))
}

// DrawOrder returns every entity with a rect, back to front: ascending z, ties
// broken by entity handle.
func DrawOrder(w *ecs.World) []ecs.Entity {
	entities := ecs.Query(w, RectComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		ri, _ := ecs.Get(w, entities[i], RectComponent.Kind())
		rj, _ := ecs.Get(w, entities[j], RectComponent.Kind())
		if ri.z != rj.z {
			return ri.z < rj.z
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}

// Pick returns the front-most entity whose clipped bound contains (x, y).
func Pick(w *ecs.World, x, y float64, renderable Renderable) (ecs.Entity, bool) {
	order := DrawOrder(w)
	for i := len(order) - 1; i >= 0; i-- {
		if InClipBound(w, order[i], x, y, renderable) {
			return order[i], true
		}
	}
	return 0, false
}
