package layout

import (
	"errors"

	"github.com/milk9111/anchorlayout/ecs"
)

var ErrNoRect = errors.New("layout: entity has no rect")

// Install wires layout into w: a ParentingGraph listening on w's bus, a
// propagation system over it, and a destroy hook that releases every anchor,
// constraint and clip reference of a dying entity. Install before attaching
// components so the first RectChanged events are queued.
func Install(w *ecs.World) *PropagationSystem {
	graph := NewParentingGraph()
	graph.Listen(w.Bus())
	sys := NewPropagationSystem(w, graph)
	w.OnDestroy(releaseReferences)
	return sys
}

func releaseReferences(w *ecs.World, e ecs.Entity) {
	if a, ok := ecs.Get(w, e, AnchorsComponent.Kind()); ok {
		a.Clear()
	}
	if c, ok := ecs.Get(w, e, ClipComponent.Kind()); ok {
		c.release()
	}
	ecs.Publish(w.Bus(), EntityDestroyed{Entity: e})
}

// AttachRect gives e a zeroed, visible rectangle bound to w's bus and queues
// it for resolution.
func AttachRect(w *ecs.World, e ecs.Entity) (*Rect, error) {
	r := NewRect()
	r.owner = e
	r.bus = w.Bus()
	if err := ecs.Add(w, e, RectComponent.Kind(), r); err != nil {
		return nil, err
	}
	r.notify()
	return r, nil
}

// AttachAnchors gives e an empty anchor set whose self edges start from e's
// rectangle. e must already have a Rect.
func AttachAnchors(w *ecs.World, e ecs.Entity) (*Anchors, error) {
	r, ok := ecs.Get(w, e, RectComponent.Kind())
	if !ok {
		return nil, ErrNoRect
	}
	a := NewAnchors(e, r)
	a.bus = w.Bus()
	if err := ecs.Add(w, e, AnchorsComponent.Kind(), a); err != nil {
		return nil, err
	}
	return a, nil
}

// DetachAnchors clears and removes e's anchor set.
func DetachAnchors(w *ecs.World, e ecs.Entity) bool {
	a, ok := ecs.Get(w, e, AnchorsComponent.Kind())
	if !ok {
		return false
	}
	a.Clear()
	return ecs.Remove(w, e, AnchorsComponent.Kind())
}

// AttachClip clips e to clipper. Pass the zero Entity for an empty relation.
func AttachClip(w *ecs.World, e, clipper ecs.Entity) (*Clip, error) {
	c := &Clip{owner: e, bus: w.Bus()}
	if err := ecs.Add(w, e, ClipComponent.Kind(), c); err != nil {
		return nil, err
	}
	c.SetClipper(clipper)
	return c, nil
}
