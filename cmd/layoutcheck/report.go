package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/milk9111/anchorlayout/ecs"
	"github.com/milk9111/anchorlayout/layout"
	"github.com/milk9111/anchorlayout/prefabs"
)

// Row is the settled geometry of one layout entity.
type Row struct {
	Name                string
	X, Y, Width, Height float64
	Z                   float64
	Visible             bool
}

type Report struct {
	Layout  string
	Ticks   int
	Settled bool
	Rows    []Row
}

// Settle builds spec in a fresh world and runs propagation until no change
// events remain or maxTicks is reached.
func Settle(spec *prefabs.LayoutSpec, env prefabs.Env, maxTicks int) (*Report, error) {
	w := ecs.NewWorld()
	sys := layout.Install(w)
	doc, err := prefabs.Build(w, spec, env)
	if err != nil {
		return nil, err
	}

	ticks := layout.RunUntilIdle(w, sys, maxTicks)
	report := &Report{Layout: doc.Name, Ticks: ticks, Settled: sys.Pending() == 0}
	for _, name := range doc.Order {
		e, _ := doc.Entity(name)
		r, ok := ecs.Get(w, e, layout.RectComponent.Kind())
		if !ok {
			continue
		}
		report.Rows = append(report.Rows, Row{
			Name:    name,
			X:       r.X(),
			Y:       r.Y(),
			Width:   r.Width(),
			Height:  r.Height(),
			Z:       r.Z(),
			Visible: r.Visible(),
		})
	}
	return report, nil
}

func (r *Report) String() string {
	var b strings.Builder
	state := "settled"
	if !r.Settled {
		state = "NOT settled"
	}
	fmt.Fprintf(&b, "layout %q %s after %d ticks\n", r.Layout, state, r.Ticks)

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "name\tx\ty\twidth\theight\tz\tvisible\t")
	for _, row := range r.Rows {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\t%g\t%t\t\n", row.Name, row.X, row.Y, row.Width, row.Height, row.Z, row.Visible)
	}
	tw.Flush()
	return b.String()
}
