package layout

import (
	"github.com/milk9111/anchorlayout/common"
	"github.com/milk9111/anchorlayout/ecs"
	"github.com/milk9111/anchorlayout/ecs/component"
)

// Rect is the geometry of one entity. Fields change only through setters,
// which ignore updates within common.Epsilon and publish RectChanged otherwise.
type Rect struct {
	x, y, z       float64
	width, height float64
	rotation      float64
	visible       bool
	observable    bool

	owner ecs.Entity
	bus   *ecs.EventBus
}

var RectComponent = component.NewComponent[Rect]()

// NewRect returns a zeroed, visible and observable rectangle that is not bound
// to any event bus.
func NewRect() *Rect {
	return &Rect{visible: true, observable: true}
}

func (r *Rect) X() float64        { return r.x }
func (r *Rect) Y() float64        { return r.y }
func (r *Rect) Z() float64        { return r.z }
func (r *Rect) Width() float64    { return r.width }
func (r *Rect) Height() float64   { return r.height }
func (r *Rect) Rotation() float64 { return r.rotation }
func (r *Rect) Visible() bool     { return r.visible }
func (r *Rect) Observable() bool  { return r.observable }

// Owner returns the entity this rectangle was attached to.
func (r *Rect) Owner() ecs.Entity { return r.owner }

func (r *Rect) SetX(v float64)        { r.setFloat(&r.x, v) }
func (r *Rect) SetY(v float64)        { r.setFloat(&r.y, v) }
func (r *Rect) SetZ(v float64)        { r.setFloat(&r.z, v) }
func (r *Rect) SetWidth(v float64)    { r.setFloat(&r.width, v) }
func (r *Rect) SetHeight(v float64)   { r.setFloat(&r.height, v) }
func (r *Rect) SetRotation(v float64) { r.setFloat(&r.rotation, v) }

func (r *Rect) SetVisibility(v bool) { r.setBool(&r.visible, v) }
func (r *Rect) SetObservable(v bool) { r.setBool(&r.observable, v) }

// SetPosition and SetSize are shorthands for two setters.
func (r *Rect) SetPosition(x, y float64) {
	r.SetX(x)
	r.SetY(y)
}

func (r *Rect) SetSize(w, h float64) {
	r.SetWidth(w)
	r.SetHeight(h)
}

func (r *Rect) setFloat(field *float64, v float64) {
	if common.NearlyEqual(*field, v) {
		return
	}
	*field = v
	r.notify()
}

func (r *Rect) setBool(field *bool, v bool) {
	if *field == v {
		return
	}
	*field = v
	r.notify()
}

func (r *Rect) notify() {
	if r.bus == nil {
		return
	}
	ecs.Publish(r.bus, RectChanged{Entity: r.owner})
}

type rectSnapshot struct {
	x, y, z, width, height float64
}

func (r *Rect) snapshot() rectSnapshot {
	return rectSnapshot{x: r.x, y: r.y, z: r.z, width: r.width, height: r.height}
}

func (s rectSnapshot) differs(r *Rect) bool {
	return !common.NearlyEqual(s.x, r.x) ||
		!common.NearlyEqual(s.y, r.y) ||
		!common.NearlyEqual(s.z, r.z) ||
		!common.NearlyEqual(s.width, r.width) ||
		!common.NearlyEqual(s.height, r.height)
}
