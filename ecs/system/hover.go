package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/anchorlayout/ecs"
	"github.com/milk9111/anchorlayout/ecs/component"
	"github.com/milk9111/anchorlayout/layout"
)

// HoverSystem tags the front-most rect under the mouse cursor with Hovered.
type HoverSystem struct {
	current ecs.Entity
}

func NewHoverSystem() *HoverSystem {
	return &HoverSystem{}
}

// Current returns the hovered entity, if any.
func (h *HoverSystem) Current() (ecs.Entity, bool) {
	return h.current, h.current.Valid()
}

func (h *HoverSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	hit, ok := layout.Pick(w, x, y, layout.DrawsSomething)
	if h.current.Valid() && (!ok || hit != h.current) {
		ecs.Remove(w, h.current, component.HoveredComponent.Kind())
		h.current = 0
	}
	if !ok {
		return
	}

	if hovered, exists := ecs.Get(w, hit, component.HoveredComponent.Kind()); exists {
		hovered.X, hovered.Y = x, y
		return
	}
	if err := ecs.Add(w, hit, component.HoveredComponent.Kind(), &component.Hovered{X: x, Y: y}); err != nil {
		return
	}
	h.current = hit
}
