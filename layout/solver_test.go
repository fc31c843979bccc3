package layout

import "testing"

func TestMarginsResolve(t *testing.T) {
	w, sys := newLayout(t)
	parent, _, _ := spawn(t, w, 10, 20, 100, 200)
	_, child, a := spawn(t, w, 0, 0, 0, 0)

	for _, s := range []Side{SideTop, SideLeft, SideRight, SideBottom} {
		a.SetAnchor(s, parent, s.Edge())
	}
	a.SetMargin(SideTop, 5)
	a.SetMargin(SideLeft, 10)
	a.SetMargin(SideRight, 15)
	a.SetMargin(SideBottom, 20)
	settle(t, w, sys)

	approx(t, "x", child.X(), 20)
	approx(t, "y", child.Y(), 25)
	approx(t, "width", child.Width(), 75)
	approx(t, "height", child.Height(), 175)
}

func TestSingleEdgeAnchors(t *testing.T) {
	cases := []struct {
		name         string
		side         Side
		kind         EdgeKind
		margin       float64
		wantX, wantY float64
	}{
		{"top_to_bottom", SideTop, EdgeBottom, 4, 0, 54},
		{"bottom_to_top", SideBottom, EdgeTop, 4, 0, -34},
		{"left_to_right", SideLeft, EdgeRight, 6, 106, 0},
		{"right_to_left", SideRight, EdgeLeft, 6, -36, 0},
		{"hcenter", SideHorizontalCenter, EdgeHorizontalCenter, 0, 35, 0},
		{"vcenter", SideVerticalCenter, EdgeVerticalCenter, 0, 0, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, sys := newLayout(t)
			parent, _, _ := spawn(t, w, 0, 0, 100, 50)
			_, child, a := spawn(t, w, 0, 0, 30, 30)
			a.SetAnchor(c.side, parent, c.kind)
			a.SetMargin(c.side, c.margin)
			settle(t, w, sys)

			approx(t, "x", child.X(), c.wantX)
			approx(t, "y", child.Y(), c.wantY)
			approx(t, "width", child.Width(), 30)
			approx(t, "height", child.Height(), 30)
		})
	}
}

func TestCenterAnchorWinsOverPair(t *testing.T) {
	w, sys := newLayout(t)
	parent, _, _ := spawn(t, w, 0, 0, 100, 100)
	_, child, a := spawn(t, w, 0, 0, 10, 10)

	a.SetAnchor(SideTop, parent, EdgeTop)
	a.SetAnchor(SideBottom, parent, EdgeBottom)
	a.SetMargin(SideTop, 10)
	a.SetMargin(SideBottom, 30)
	a.SetAnchor(SideVerticalCenter, parent, EdgeVerticalCenter)
	settle(t, w, sys)

	approx(t, "height", child.Height(), 60)
	approx(t, "y", child.Y(), 20)
}

func TestHiddenChildIgnoresMargins(t *testing.T) {
	w, sys := newLayout(t)
	parent, _, _ := spawn(t, w, 40, 0, 100, 100)
	_, child, a := spawn(t, w, 0, 0, 10, 10)
	child.SetVisibility(false)
	a.SetAnchor(SideLeft, parent, EdgeLeft)
	a.SetMargin(SideLeft, 12)
	settle(t, w, sys)
	approx(t, "hidden x", child.X(), 40)

	child.SetVisibility(true)
	settle(t, w, sys)
	approx(t, "visible x", child.X(), 52)
}

func TestHiddenTargetCollapses(t *testing.T) {
	w, sys := newLayout(t)
	parent, pr, _ := spawn(t, w, 10, 0, 100, 50)
	_, child, a := spawn(t, w, 0, 0, 10, 10)
	a.SetAnchor(SideLeft, parent, EdgeRight)
	settle(t, w, sys)
	approx(t, "x next to visible parent", child.X(), 110)

	pr.SetVisibility(false)
	settle(t, w, sys)
	approx(t, "x next to hidden parent", child.X(), 10)
}

func TestConstraintArithmetic(t *testing.T) {
	w, sys := newLayout(t)
	src, _, _ := spawn(t, w, 0, 0, 5, 10)
	_, child, a := spawn(t, w, 0, 0, 1, 1)

	a.SetConstraint(DimWidth, Constraint{Target: src, Kind: EdgeWidth, Op: OpAdd, Operand: 2})
	a.SetConstraint(DimHeight, Constraint{Target: src, Kind: EdgeHeight, Op: OpSub, Operand: 3})
	a.SetConstraint(DimZ, Constraint{Target: src, Kind: EdgeZ, Op: OpAdd, Operand: 1})
	settle(t, w, sys)

	approx(t, "width", child.Width(), 7)
	approx(t, "height", child.Height(), 7)
	approx(t, "z", child.Z(), 1)
}

func TestConstraintOverridesAnchorStretch(t *testing.T) {
	w, sys := newLayout(t)
	parent, _, _ := spawn(t, w, 0, 0, 200, 100)
	_, child, a := spawn(t, w, 0, 0, 1, 1)

	a.SetAnchor(SideLeft, parent, EdgeLeft)
	a.SetAnchor(SideRight, parent, EdgeRight)
	a.SetConstraint(DimWidth, Constraint{Target: parent, Kind: EdgeWidth, Op: OpMul, Operand: 0.5})
	settle(t, w, sys)

	approx(t, "x", child.X(), 0)
	approx(t, "width", child.Width(), 100)
}

func TestResolveReportsChange(t *testing.T) {
	w, _ := newLayout(t)
	_, r, a := spawn(t, w, 0, 0, 10, 10)

	if Resolve(w, r, a) {
		t.Fatalf("unanchored rect must not change")
	}
	a.anchored[SideLeft] = true
	a.refs[SideLeft] = EdgeRef{Kind: EdgeLeft, Value: 5}
	if !Resolve(w, r, a) {
		t.Fatalf("moving x must report a change")
	}
	if Resolve(w, r, a) {
		t.Fatalf("second resolve with the same inputs must be stable")
	}
}
