package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/anchorlayout/config"
	"github.com/milk9111/anchorlayout/ecs"
	"github.com/milk9111/anchorlayout/ecs/component"
	"github.com/milk9111/anchorlayout/ecs/system"
	"github.com/milk9111/anchorlayout/layout"
	"github.com/milk9111/anchorlayout/prefabs"
)

var background = color.RGBA{R: 0x18, G: 0x1c, B: 0x22, A: 0xff}

type Game struct {
	cfg    *config.Config
	frames int

	world       *ecs.World
	propagation *layout.PropagationSystem
	scheduler   *ecs.Scheduler
	render      *system.RenderSystem
	hover       *system.HoverSystem

	doc     *prefabs.Layout
	watcher *prefabs.Watcher

	width, height float64

	paused  bool
	pauseUI *ebitenui.UI
	status  *pauseStatus
}

func NewGame(cfg *config.Config) (*Game, error) {
	world := ecs.NewWorld()
	propagation := layout.Install(world)
	hover := system.NewHoverSystem()

	scheduler := ecs.NewScheduler()
	for i := 0; i < cfg.TicksPerFrame; i++ {
		scheduler.Add(propagation)
	}
	scheduler.Add(hover)

	g := &Game{
		cfg:         cfg,
		world:       world,
		propagation: propagation,
		scheduler:   scheduler,
		render:      system.NewRenderSystem(),
		hover:       hover,
		width:       cfg.Width,
		height:      cfg.Height,
	}

	if err := g.load(); err != nil {
		return nil, err
	}

	if cfg.WatchDir != "" {
		w, err := prefabs.NewWatcher(cfg.WatchDir)
		if err != nil {
			log.Printf("Watcher: could not watch %s: %v", cfg.WatchDir, err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI, g.status = NewPauseUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Watcher: close: %v", err)
		}
	}
}

// load builds the configured layout document, replacing the current one.
func (g *Game) load() error {
	spec, err := loadSpec(g.cfg.LayoutFile)
	if err != nil {
		return err
	}
	doc, err := prefabs.Build(g.world, spec, prefabs.Env{ViewportW: g.width, ViewportH: g.height})
	if err != nil {
		return err
	}
	if g.doc != nil {
		g.doc.Destroy(g.world)
	}
	g.doc = doc
	log.Printf("Layout: loaded %q with %d entities", doc.Name, len(doc.Order))
	return nil
}

func loadSpec(name string) (*prefabs.LayoutSpec, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return prefabs.LoadLayoutFile(name)
	}
	return prefabs.LoadLayout(name)
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for {
		path, ok := g.watcher.Poll()
		if !ok {
			break
		}
		if !sameLayout(path, g.cfg.LayoutFile) {
			continue
		}
		if err := g.load(); err != nil {
			log.Printf("Layout: reload %s: %v", path, err)
		}
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("Watcher: %v", err)
		}
	default:
	}
}

func sameLayout(changed, configured string) bool {
	base := func(p string) string {
		return strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}
	return base(changed) == base(configured)
}

// step advances propagation by exactly one tick.
func (g *Game) step() {
	g.propagation.Update(g.world)
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.render.ShowHidden = !g.render.ShowHidden
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggle("dialog")
	}

	g.reloadChanged()

	if g.paused {
		g.status.Update(g)
		g.pauseUI.Update()
		return nil
	}

	g.scheduler.Update(g.world)
	return nil
}

// toggle flips the visibility of a named entity in the current layout.
func (g *Game) toggle(name string) {
	e, ok := g.doc.Entity(name)
	if !ok {
		return
	}
	if r, ok := ecs.Get(g.world, e, layout.RectComponent.Kind()); ok {
		r.SetVisibility(!r.Visible())
	}
}

func (g *Game) hoveredName() string {
	e, ok := g.hover.Current()
	if !ok {
		return "-"
	}
	if style, ok := ecs.Get(g.world, e, component.DebugStyleComponent.Kind()); ok {
		return style.Name
	}
	return e.String()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.render.Draw(g.world, screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Ticks: %d    Pending: %d    Hover: %s    FPS: %.2f",
		g.propagation.Ticks(), g.propagation.Pending(), g.hoveredName(), ebiten.ActualFPS()))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.doc.Resize(g.world, g.width, g.height)
	}
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
