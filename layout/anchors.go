package layout

import (
	"fmt"
	"strings"

	"github.com/milk9111/anchorlayout/common"
	"github.com/milk9111/anchorlayout/ecs"
	"github.com/milk9111/anchorlayout/ecs/component"
)

// Side selects one of the six anchor slots of an entity.
type Side int

const (
	SideTop Side = iota
	SideLeft
	SideRight
	SideBottom
	SideVerticalCenter
	SideHorizontalCenter
	sideCount
)

// Sides lists every anchor slot in declaration order.
var Sides = [...]Side{SideTop, SideLeft, SideRight, SideBottom, SideVerticalCenter, SideHorizontalCenter}

// Edge returns the edge kind a side reads from its own rectangle.
func (s Side) Edge() EdgeKind {
	switch s {
	case SideTop:
		return EdgeTop
	case SideLeft:
		return EdgeLeft
	case SideRight:
		return EdgeRight
	case SideBottom:
		return EdgeBottom
	case SideVerticalCenter:
		return EdgeVerticalCenter
	default:
		return EdgeHorizontalCenter
	}
}

func (s Side) String() string { return s.Edge().String() }

// hasMargin reports whether s is one of the four cardinal sides.
func (s Side) hasMargin() bool { return s >= SideTop && s <= SideBottom }

// ParseSide accepts the same names as ParseEdgeKind for the six positional edges.
func ParseSide(name string) (Side, error) {
	k, err := ParseEdgeKind(name)
	if err != nil {
		return 0, err
	}
	if s, ok := sideForEdge(k); ok {
		return s, nil
	}
	return 0, fmt.Errorf("layout: %q is not an anchor side", strings.TrimSpace(name))
}

func sideForEdge(k EdgeKind) (Side, bool) {
	switch k {
	case EdgeTop:
		return SideTop, true
	case EdgeLeft:
		return SideLeft, true
	case EdgeRight:
		return SideRight, true
	case EdgeBottom:
		return SideBottom, true
	case EdgeVerticalCenter:
		return SideVerticalCenter, true
	case EdgeHorizontalCenter:
		return SideHorizontalCenter, true
	}
	return 0, false
}

// Dimension selects one of the three constraint slots.
type Dimension int

const (
	DimWidth Dimension = iota
	DimHeight
	DimZ
	dimCount
)

func (d Dimension) String() string {
	switch d {
	case DimWidth:
		return "width"
	case DimHeight:
		return "height"
	case DimZ:
		return "z"
	}
	return fmt.Sprintf("Dimension(%d)", int(d))
}

// Anchors is the layout declaration of one entity: up to six edge references,
// four margins and three constraints. It also caches the entity's own six
// edges as they stood at the end of the previous tick, which is what other
// entities read when they anchor to it.
type Anchors struct {
	refs     [sideCount]EdgeRef
	anchored [sideCount]bool
	self     [sideCount]EdgeRef
	margins  [4]float64

	constraints [dimCount]Constraint
	constrained [dimCount]bool

	owner ecs.Entity
	bus   *ecs.EventBus
}

var AnchorsComponent = component.NewComponent[Anchors]()

// NewAnchors returns an anchor set for owner with no external references and
// self edges taken from r.
func NewAnchors(owner ecs.Entity, r *Rect) *Anchors {
	a := &Anchors{owner: owner}
	for _, s := range Sides {
		a.self[s] = EdgeRef{Target: owner, Kind: s.Edge()}
	}
	if r != nil {
		CommitSelfEdges(r, a)
	}
	return a
}

// Owner returns the entity the anchor set belongs to.
func (a *Anchors) Owner() ecs.Entity { return a.owner }

// Anchor returns the reference on side s and whether one is set.
func (a *Anchors) Anchor(s Side) (EdgeRef, bool) {
	if s < 0 || s >= sideCount {
		return EdgeRef{}, false
	}
	return a.refs[s], a.anchored[s]
}

// Self returns the cached value of this entity's own edge on side s.
func (a *Anchors) Self(s Side) EdgeRef {
	if s < 0 || s >= sideCount {
		return EdgeRef{}
	}
	return a.self[s]
}

// SetAnchor points side s at the kind edge of target.
func (a *Anchors) SetAnchor(s Side, target ecs.Entity, kind EdgeKind) {
	if s < 0 || s >= sideCount {
		return
	}
	prev, had := a.refs[s], a.anchored[s]
	if had && prev.Target == target && prev.Kind == kind {
		return
	}
	a.refs[s] = EdgeRef{Target: target, Kind: kind}
	a.anchored[s] = true
	a.reparent(had, prev.Target, target)
	a.touch()
}

// ClearAnchor removes the reference on side s.
func (a *Anchors) ClearAnchor(s Side) {
	if s < 0 || s >= sideCount || !a.anchored[s] {
		return
	}
	parent := a.refs[s].Target
	a.refs[s] = EdgeRef{}
	a.anchored[s] = false
	ecs.Publish(a.bus, ParentingCleared{Parent: parent, Child: a.owner})
	a.touch()
}

// Margin returns the declared margin on a cardinal side. Center sides have none.
func (a *Anchors) Margin(s Side) float64 {
	if !s.hasMargin() {
		return 0
	}
	return a.margins[s]
}

// SetMargin sets the margin of a cardinal side. Center sides are ignored.
func (a *Anchors) SetMargin(s Side, v float64) {
	if !s.hasMargin() || common.NearlyEqual(a.margins[s], v) {
		return
	}
	a.margins[s] = v
	a.touch()
}

// Constraint returns the constraint on dimension d and whether one is set.
func (a *Anchors) Constraint(d Dimension) (Constraint, bool) {
	if d < 0 || d >= dimCount {
		return Constraint{}, false
	}
	return a.constraints[d], a.constrained[d]
}

// SetConstraint installs c on dimension d.
func (a *Anchors) SetConstraint(d Dimension, c Constraint) {
	if d < 0 || d >= dimCount {
		return
	}
	prev, had := a.constraints[d], a.constrained[d]
	if had && prev == c {
		return
	}
	a.constraints[d] = c
	a.constrained[d] = true
	a.reparent(had, prev.Target, c.Target)
	a.touch()
}

// ClearConstraint removes the constraint on dimension d.
func (a *Anchors) ClearConstraint(d Dimension) {
	if d < 0 || d >= dimCount || !a.constrained[d] {
		return
	}
	parent := a.constraints[d].Target
	a.constraints[d] = Constraint{}
	a.constrained[d] = false
	ecs.Publish(a.bus, ParentingCleared{Parent: parent, Child: a.owner})
	a.touch()
}

// Clear drops every anchor and constraint, emitting ParentingCleared for each.
func (a *Anchors) Clear() {
	for _, s := range Sides {
		a.ClearAnchor(s)
	}
	for d := Dimension(0); d < dimCount; d++ {
		a.ClearConstraint(d)
	}
}

// Parents returns the target of every set anchor and constraint, one entry
// per reference.
func (a *Anchors) Parents() []ecs.Entity {
	var out []ecs.Entity
	for _, s := range Sides {
		if a.anchored[s] {
			out = append(out, a.refs[s].Target)
		}
	}
	for d := Dimension(0); d < dimCount; d++ {
		if a.constrained[d] {
			out = append(out, a.constraints[d].Target)
		}
	}
	return out
}

func (a *Anchors) reparent(had bool, prev, next ecs.Entity) {
	if had && prev == next {
		return
	}
	if had {
		ecs.Publish(a.bus, ParentingCleared{Parent: prev, Child: a.owner})
	}
	ecs.Publish(a.bus, ParentingAdded{Parent: next, Child: a.owner})
}

// touch schedules the owner for resolution on the next tick.
func (a *Anchors) touch() {
	ecs.Publish(a.bus, RectChanged{Entity: a.owner})
}
