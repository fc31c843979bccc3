package layout

import (
	"github.com/milk9111/anchorlayout/common"
	"github.com/milk9111/anchorlayout/ecs"
)

// Resolve applies a's anchors and constraints to r and reports whether x, y,
// z, width or height moved.
//
// Each axis honours a cardinal pair (stretch), a single cardinal edge (move)
// or nothing. A center anchor then overrides the axis position even when a
// pair is also set. Constraints run last and override their field outright.
// Margins count only while r is visible.
func Resolve(w *ecs.World, r *Rect, a *Anchors) bool {
	before := r.snapshot()

	var mTop, mLeft, mRight, mBottom float64
	if r.visible {
		mTop, mLeft = a.margins[SideTop], a.margins[SideLeft]
		mRight, mBottom = a.margins[SideRight], a.margins[SideBottom]
	}

	top, hasTop := a.anchorValue(SideTop)
	bottom, hasBottom := a.anchorValue(SideBottom)
	switch {
	case hasTop && hasBottom:
		r.height = (bottom - mBottom) - (top + mTop)
		r.y = top + mTop
	case hasTop:
		r.y = top + mTop
	case hasBottom:
		r.y = (bottom - mBottom) - r.height
	}

	left, hasLeft := a.anchorValue(SideLeft)
	right, hasRight := a.anchorValue(SideRight)
	switch {
	case hasLeft && hasRight:
		r.width = (right - mRight) - (left + mLeft)
		r.x = left + mLeft
	case hasLeft:
		r.x = left + mLeft
	case hasRight:
		r.x = (right - mRight) - r.width
	}

	if v, ok := a.anchorValue(SideVerticalCenter); ok {
		r.y = v - r.height/2
	}
	if v, ok := a.anchorValue(SideHorizontalCenter); ok {
		r.x = v - r.width/2
	}

	if c, ok := a.Constraint(DimZ); ok {
		r.z = ConstraintValue(w, c)
	}
	if c, ok := a.Constraint(DimWidth); ok {
		r.width = ConstraintValue(w, c)
	}
	if c, ok := a.Constraint(DimHeight); ok {
		r.height = ConstraintValue(w, c)
	}

	return before.differs(r)
}

func (a *Anchors) anchorValue(s Side) (float64, bool) {
	if !a.anchored[s] {
		return 0, false
	}
	return a.refs[s].Value, true
}

// RefreshSelfEdges compares r's current edges with the values cached at the
// end of the previous tick, then pulls the cached edge of every anchor target
// into a's references. It reports whether r's own edges moved. The pull is one
// hop deep: a target's edges are whatever it committed last tick.
//
// The self cache itself is written by CommitSelfEdges.
func RefreshSelfEdges(w *ecs.World, r *Rect, a *Anchors) bool {
	changed := false
	for _, s := range Sides {
		if !common.NearlyEqual(EdgeValue(r, s.Edge()), a.self[s].Value) {
			changed = true
		}
	}

	for _, s := range Sides {
		if !a.anchored[s] {
			continue
		}
		if v, ok := pullEdge(w, a.refs[s]); ok {
			a.refs[s].Value = v
		}
	}
	return changed
}

// CommitSelfEdges stores r's current edges as a's self edge cache.
func CommitSelfEdges(r *Rect, a *Anchors) {
	for _, s := range Sides {
		a.self[s].Value = EdgeValue(r, s.Edge())
	}
}

func pullEdge(w *ecs.World, ref EdgeRef) (float64, bool) {
	target, ok := ecs.Get(w, ref.Target, AnchorsComponent.Kind())
	if !ok {
		logger.Debug("layout: anchor target has no anchor set", "target", ref.Target, "kind", ref.Kind)
		return 0, false
	}
	s, ok := sideForEdge(ref.Kind)
	if !ok {
		logger.Error("layout: invalid edge kind for anchor", "target", ref.Target, "kind", ref.Kind)
		return 0, true
	}
	return target.self[s].Value, true
}
