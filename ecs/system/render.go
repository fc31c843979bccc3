package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/anchorlayout/ecs"
	"github.com/milk9111/anchorlayout/ecs/component"
	"github.com/milk9111/anchorlayout/layout"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem draws every observable layout rect as a filled box with its
// label, back to front.
type RenderSystem struct {
	face text.Face

	// ShowHidden outlines invisible rects instead of skipping them.
	ShowHidden bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	for _, e := range layout.DrawOrder(w) {
		rect, ok := ecs.Get(w, e, layout.RectComponent.Kind())
		if !ok || !rect.Observable() {
			continue
		}
		if !rect.Visible() && !r.ShowHidden {
			continue
		}
		if !layout.ClipVisible(w, e) {
			continue
		}

		style, ok := ecs.Get(w, e, component.DebugStyleComponent.Kind())
		if !ok {
			continue
		}

		x, y := float32(rect.X()), float32(rect.Y())
		wdt, hgt := float32(rect.Width()), float32(rect.Height())

		if !rect.Visible() {
			vector.StrokeRect(screen, x, y, wdt, hgt, 1, colornames.Gray, false)
			continue
		}

		fill := style.Color
		fill.A = 160
		vector.FillRect(screen, x, y, wdt, hgt, fill, false)

		border := color.RGBA{R: 0, G: 0, B: 0, A: 200}
		if ecs.Has(w, e, component.HoveredComponent.Kind()) {
			border = colornames.Yellow
		}
		vector.StrokeRect(screen, x, y, wdt, hgt, 2, border, false)

		if style.Label != "" {
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(x)+4, float64(y)+2)
			op.ColorScale.ScaleWithColor(color.White)
			text.Draw(screen, style.Label, r.face, op)
		}
	}
}
