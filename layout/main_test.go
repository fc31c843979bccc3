package layout

import (
	"os"
	"testing"

	"github.com/milk9111/anchorlayout/ecs"
)

func TestMain(m *testing.M) {
	SetLogger(nil)
	os.Exit(m.Run())
}

func newLayout(t *testing.T) (*ecs.World, *PropagationSystem) {
	t.Helper()
	w := ecs.NewWorld()
	return w, Install(w)
}

// spawn creates an entity with a rect at the given geometry and an empty
// anchor set.
func spawn(t *testing.T, w *ecs.World, x, y, width, height float64) (ecs.Entity, *Rect, *Anchors) {
	t.Helper()
	e := ecs.CreateEntity(w)
	r, err := AttachRect(w, e)
	if err != nil {
		t.Fatalf("attach rect: %v", err)
	}
	r.SetPosition(x, y)
	r.SetSize(width, height)
	a, err := AttachAnchors(w, e)
	if err != nil {
		t.Fatalf("attach anchors: %v", err)
	}
	return e, r, a
}

func settle(t *testing.T, w *ecs.World, sys *PropagationSystem) {
	t.Helper()
	RunUntilIdle(w, sys, 32)
	if sys.Pending() != 0 {
		t.Fatalf("layout did not settle, %d events pending", sys.Pending())
	}
}

func count[T any](w *ecs.World) *int {
	n := new(int)
	ecs.Subscribe(w.Bus(), func(T) { *n++ })
	return n
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}
