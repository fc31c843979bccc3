package layout

import (
	"fmt"
	"strings"

	"github.com/milk9111/anchorlayout/ecs"
)

// EdgeKind names a scalar derived from a rectangle.
type EdgeKind int

const (
	EdgeTop EdgeKind = iota
	EdgeLeft
	EdgeRight
	EdgeBottom
	EdgeVerticalCenter
	EdgeHorizontalCenter
	EdgeWidth
	EdgeHeight
	EdgeX
	EdgeY
	EdgeZ
)

var edgeNames = [...]string{
	EdgeTop:              "top",
	EdgeLeft:             "left",
	EdgeRight:            "right",
	EdgeBottom:           "bottom",
	EdgeVerticalCenter:   "vcenter",
	EdgeHorizontalCenter: "hcenter",
	EdgeWidth:            "width",
	EdgeHeight:           "height",
	EdgeX:                "x",
	EdgeY:                "y",
	EdgeZ:                "z",
}

func (k EdgeKind) String() string {
	if k < 0 || int(k) >= len(edgeNames) {
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
	return edgeNames[k]
}

// ParseEdgeKind accepts the names produced by String, case-insensitively.
func ParseEdgeKind(s string) (EdgeKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range edgeNames {
		if name == s {
			return EdgeKind(k), nil
		}
	}
	return 0, fmt.Errorf("layout: unknown edge kind %q", s)
}

// Op is the arithmetic a constraint applies to its source scalar.
type Op int

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var opNames = [...]string{
	OpNone: "none",
	OpAdd:  "add",
	OpSub:  "sub",
	OpMul:  "mul",
	OpDiv:  "div",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// ParseOp accepts op names or the symbols + - * /. Empty means OpNone.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return OpNone, nil
	case "add", "+":
		return OpAdd, nil
	case "sub", "-":
		return OpSub, nil
	case "mul", "*":
		return OpMul, nil
	case "div", "/":
		return OpDiv, nil
	}
	return OpNone, fmt.Errorf("layout: unknown constraint op %q", s)
}

// EdgeRef points at one edge of another entity. Value caches the last value
// pulled from the target, refreshed once per tick.
type EdgeRef struct {
	Target ecs.Entity
	Kind   EdgeKind
	Value  float64
}

// Constraint derives a scalar from a target's Width, Height, X, Y or Z.
type Constraint struct {
	Target  ecs.Entity
	Kind    EdgeKind
	Op      Op
	Operand float64
}

// EdgeValue returns the edge of r named by kind. Far edges and centers of a
// hidden rectangle collapse onto its origin. Only the six positional kinds are
// valid; anything else logs an error and yields 0.
func EdgeValue(r *Rect, kind EdgeKind) float64 {
	switch kind {
	case EdgeTop:
		return r.y
	case EdgeLeft:
		return r.x
	case EdgeRight:
		if !r.visible {
			return r.x
		}
		return r.x + r.width
	case EdgeBottom:
		if !r.visible {
			return r.y
		}
		return r.y + r.height
	case EdgeVerticalCenter:
		if !r.visible {
			return r.y
		}
		return r.y + r.height/2
	case EdgeHorizontalCenter:
		if !r.visible {
			return r.x
		}
		return r.x + r.width/2
	}
	logger.Error("layout: invalid edge kind for edge value", "entity", r.owner, "kind", kind)
	return 0
}

func scalarValue(r *Rect, kind EdgeKind) float64 {
	switch kind {
	case EdgeWidth:
		return r.width
	case EdgeHeight:
		return r.height
	case EdgeX:
		return r.x
	case EdgeY:
		return r.y
	case EdgeZ:
		return r.z
	}
	logger.Error("layout: invalid edge kind for constraint", "entity", r.owner, "kind", kind)
	return 0
}

// ConstraintValue evaluates c against the live rectangle of its target. A
// missing target contributes 0. Division by zero keeps the source value.
func ConstraintValue(w *ecs.World, c Constraint) float64 {
	r, ok := ecs.Get(w, c.Target, RectComponent.Kind())
	if !ok {
		logger.Debug("layout: constraint target has no rect", "target", c.Target, "kind", c.Kind)
		return 0
	}
	v := scalarValue(r, c.Kind)
	switch c.Op {
	case OpAdd:
		v += c.Operand
	case OpSub:
		v -= c.Operand
	case OpMul:
		v *= c.Operand
	case OpDiv:
		if c.Operand == 0 {
			logger.Error("layout: constraint divides by zero", "target", c.Target, "kind", c.Kind)
			return v
		}
		v /= c.Operand
	}
	return v
}
