package layout

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/milk9111/anchorlayout/ecs"
)

func TestOneHopLag(t *testing.T) {
	w, sys := newLayout(t)
	a, ar, _ := spawn(t, w, 0, 0, 100, 50)
	_, br, banchors := spawn(t, w, 0, 0, 20, 20)
	banchors.SetAnchor(SideLeft, a, EdgeRight)
	banchors.SetAnchor(SideRight, a, EdgeRight)
	banchors.SetMargin(SideRight, -30)
	settle(t, w, sys)
	approx(t, "settled x", br.X(), 100)
	approx(t, "settled width", br.Width(), 30)

	ar.SetWidth(150)

	sys.Update(w)
	approx(t, "x after tick 1", br.X(), 100)
	approx(t, "width after tick 1", br.Width(), 30)

	sys.Update(w)
	approx(t, "x after tick 2", br.X(), 150)
	approx(t, "width after tick 2", br.Width(), 30)
}

func TestChainSettlesOneHopPerTick(t *testing.T) {
	w, sys := newLayout(t)
	a, ar, _ := spawn(t, w, 0, 0, 100, 50)
	b, _, banchors := spawn(t, w, 0, 0, 20, 20)
	_, cr, canchors := spawn(t, w, 0, 0, 20, 20)
	banchors.SetAnchor(SideLeft, a, EdgeRight)
	canchors.SetAnchor(SideLeft, b, EdgeRight)
	settle(t, w, sys)
	approx(t, "settled c.x", cr.X(), 120)

	if got := TicksToSettle(sys.Graph(), a); got != 3 {
		t.Fatalf("TicksToSettle = %d, want 3", got)
	}

	ar.SetWidth(150)
	wantAfter := []float64{120, 120, 170}
	for _, want := range wantAfter {
		sys.Update(w)
		approx(t, "c.x", cr.X(), want)
	}

	ran := RunUntilIdle(w, sys, 10)
	if ran > 2 {
		t.Fatalf("chain should be idle shortly after converging, ran %d more ticks", ran)
	}
	approx(t, "final c.x", cr.X(), 170)
}

func TestEntityChangedForWorkingSet(t *testing.T) {
	w, sys := newLayout(t)
	a, ar, _ := spawn(t, w, 0, 0, 100, 50)
	b, _, banchors := spawn(t, w, 0, 0, 20, 20)
	c, _, _ := spawn(t, w, 0, 0, 20, 20)
	banchors.SetAnchor(SideTop, a, EdgeBottom)
	settle(t, w, sys)

	var seen []ecs.Entity
	ecs.Subscribe(w.Bus(), func(e EntityChanged) { seen = append(seen, e.Entity) })

	ar.SetX(5)
	sys.Update(w)

	if len(seen) != 2 || !slices.Contains(seen, a) || !slices.Contains(seen, b) {
		t.Fatalf("expected EntityChanged for %v and %v only, got %v", a, b, seen)
	}
	if slices.Contains(seen, c) {
		t.Fatalf("unrelated entity %v must not be visited", c)
	}
}

func TestEntityWithoutRectIsSkipped(t *testing.T) {
	w, sys := newLayout(t)
	bare := ecs.CreateEntity(w)
	visited := count[EntityChanged](w)

	ecs.Publish(w.Bus(), RectChanged{Entity: bare})
	sys.Update(w)

	if *visited != 0 {
		t.Fatalf("entity without rect must be skipped silently, got %d events", *visited)
	}
	if sys.Pending() != 0 {
		t.Fatalf("skipped entity must not be re-queued")
	}
}

func TestRectOnlyEntityIsVisitedButNotRequeued(t *testing.T) {
	w, sys := newLayout(t)
	e := ecs.CreateEntity(w)
	r, err := AttachRect(w, e)
	if err != nil {
		t.Fatal(err)
	}
	visited := count[EntityChanged](w)

	r.SetX(3)
	sys.Update(w)
	if *visited != 1 {
		t.Fatalf("expected one EntityChanged, got %d", *visited)
	}
	if sys.Pending() != 0 {
		t.Fatalf("rect without anchors never re-queues, pending=%d", sys.Pending())
	}
}

func TestEventsDuringTickWaitForNextTick(t *testing.T) {
	w, sys := newLayout(t)
	e := ecs.CreateEntity(w)
	r, err := AttachRect(w, e)
	if err != nil {
		t.Fatal(err)
	}
	settle(t, w, sys)

	once := false
	ecs.Subscribe(w.Bus(), func(EntityChanged) {
		if !once {
			once = true
			r.SetY(40)
		}
	})
	r.SetX(1)
	sys.Update(w)
	if sys.Pending() != 1 {
		t.Fatalf("setter called mid-tick must queue for the next tick, pending=%d", sys.Pending())
	}
	sys.Update(w)
	if sys.Pending() != 0 {
		t.Fatalf("expected idle after the follow-up tick, pending=%d", sys.Pending())
	}
}

func TestCycleDoesNotHang(t *testing.T) {
	w, sys := newLayout(t)
	a, _, aanchors := spawn(t, w, 0, 0, 10, 10)
	b, _, banchors := spawn(t, w, 0, 0, 10, 10)
	aanchors.SetAnchor(SideLeft, b, EdgeRight)
	banchors.SetAnchor(SideLeft, a, EdgeRight)

	for i := 0; i < 5; i++ {
		sys.Update(w)
	}
	if sys.Ticks() != 5 {
		t.Fatalf("expected 5 ticks, got %d", sys.Ticks())
	}
	if got := TicksToSettle(sys.Graph(), a); got != 2 {
		t.Fatalf("TicksToSettle on a two-cycle = %d, want 2", got)
	}
}

func TestDestroyReleasesReferences(t *testing.T) {
	w, sys := newLayout(t)
	parent, _, _ := spawn(t, w, 0, 0, 100, 100)
	child, cr, ca := spawn(t, w, 0, 0, 10, 10)
	ca.SetAnchor(SideLeft, parent, EdgeLeft)
	ca.SetAnchor(SideRight, parent, EdgeRight)
	settle(t, w, sys)

	graph := sys.Graph()
	if deps := graph.Dependents(parent); len(deps) != 1 || deps[0] != child {
		t.Fatalf("expected %v to depend on %v, got %v", child, parent, deps)
	}

	ecs.DestroyEntity(w, parent)
	sys.Update(w)
	approx(t, "orphan keeps width", cr.Width(), 100)

	other, _, oa := spawn(t, w, 0, 0, 1, 1)
	oa.SetAnchor(SideTop, child, EdgeBottom)
	ecs.DestroyEntity(w, other)
	if deps := graph.Dependents(child); len(deps) != 0 {
		t.Fatalf("destroyed child must leave no edges, got %v", deps)
	}
}

func TestAnchorToScalarEdgeIsLogged(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	w, sys := newLayout(t)
	p, _, _ := spawn(t, w, 40, 0, 25, 10)
	_, r, a := spawn(t, w, 30, 0, 10, 10)
	a.SetAnchor(SideLeft, p, EdgeWidth)
	settle(t, w, sys)

	approx(t, "x", r.X(), 0)
	if got := a.refs[SideLeft].Value; got != 0 {
		t.Fatalf("reference value = %v, want 0", got)
	}
	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "invalid edge kind for anchor") {
		t.Fatalf("expected error log, got %q", out)
	}
}
