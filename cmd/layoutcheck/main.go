package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/anchorlayout/config"
	"github.com/milk9111/anchorlayout/prefabs"
	"golang.design/x/clipboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	layoutFile := flag.String("layout", cfg.LayoutFile, "layout name in prefabs/layouts or path to a layout file")
	width := flag.Float64("w", cfg.Width, "viewport width")
	height := flag.Float64("h", cfg.Height, "viewport height")
	maxTicks := flag.Int("max-ticks", 256, "give up if the layout has not settled after this many ticks")
	copyOut := flag.Bool("copy", false, "also copy the report to the clipboard")
	flag.Parse()

	spec, err := loadSpec(*layoutFile)
	if err != nil {
		log.Fatal(err)
	}

	report, err := Settle(spec, prefabs.Env{ViewportW: *width, ViewportH: *height}, *maxTicks)
	if err != nil {
		log.Fatal(err)
	}
	out := report.String()
	fmt.Print(out)

	if *copyOut {
		if err := clipboard.Init(); err != nil {
			log.Printf("Clipboard: unavailable: %v", err)
		} else {
			<-clipboard.Write(clipboard.FmtText, []byte(out))
		}
	}

	if !report.Settled {
		os.Exit(1)
	}
}

func loadSpec(name string) (*prefabs.LayoutSpec, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return prefabs.LoadLayoutFile(name)
	}
	return prefabs.LoadLayout(name)
}
