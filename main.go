package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/anchorlayout/config"
	"github.com/milk9111/anchorlayout/layout"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	layoutFile := flag.String("layout", cfg.LayoutFile, "layout name in prefabs/layouts or path to a layout file")
	watchDir := flag.String("watch", cfg.WatchDir, "directory to watch for layout edits")
	debug := flag.Bool("debug", cfg.Debug, "enable debug logging")
	ticks := flag.Int("ticks", cfg.TicksPerFrame, "propagation ticks per frame")
	flag.Parse()

	cfg.LayoutFile = *layoutFile
	cfg.WatchDir = *watchDir
	cfg.Debug = *debug
	cfg.TicksPerFrame = *ticks
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Debug {
		layout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("anchorlayout")

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
