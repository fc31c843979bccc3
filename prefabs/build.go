package prefabs

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/milk9111/anchorlayout/ecs"
	"github.com/milk9111/anchorlayout/ecs/component"
	"github.com/milk9111/anchorlayout/layout"
	"golang.org/x/image/colornames"
)

// ViewportName is the entity every layout document can anchor to.
const ViewportName = "viewport"

var defaultColor = colornames.Lightsteelblue

// Layout is a built layout document: named entities living in a world.
type Layout struct {
	Name     string
	Entities map[string]ecs.Entity
	Order    []string
}

// Entity returns the entity built for name.
func (l *Layout) Entity(name string) (ecs.Entity, bool) {
	if l == nil {
		return 0, false
	}
	e, ok := l.Entities[name]
	return e, ok
}

// Resize moves the viewport entity to the new window size. Everything anchored
// to it follows over the next ticks.
func (l *Layout) Resize(w *ecs.World, width, height float64) {
	e, ok := l.Entity(ViewportName)
	if !ok {
		return
	}
	if r, ok := ecs.Get(w, e, layout.RectComponent.Kind()); ok {
		r.SetSize(width, height)
	}
}

// Destroy removes every entity of the layout from w.
func (l *Layout) Destroy(w *ecs.World) {
	if l == nil {
		return
	}
	for i := len(l.Order) - 1; i >= 0; i-- {
		ecs.DestroyEntity(w, l.Entities[l.Order[i]])
	}
	l.Entities = nil
	l.Order = nil
}

// Build instantiates spec into w. Every entity gets a Rect, an Anchors set and
// a DebugStyle; references are resolved by name after all entities exist, so
// declaration order does not matter. layout.Install must already have run on w.
func Build(w *ecs.World, spec *LayoutSpec, env Env) (*Layout, error) {
	if spec == nil {
		return nil, fmt.Errorf("prefabs: nil layout spec")
	}
	l := &Layout{Name: spec.Name, Entities: make(map[string]ecs.Entity, len(spec.Entities)+1)}

	entities := spec.Entities
	if !hasEntity(spec, ViewportName) {
		viewport := EntitySpec{
			Name: ViewportName,
			Rect: RectSpec{Width: N(env.ViewportW), Height: N(env.ViewportH), Unobservable: true},
		}
		entities = append([]EntitySpec{viewport}, entities...)
	}

	for _, es := range entities {
		if err := l.create(w, es, env); err != nil {
			l.Destroy(w)
			return nil, err
		}
	}
	for _, es := range entities {
		if err := l.link(w, es, env); err != nil {
			l.Destroy(w)
			return nil, err
		}
	}
	return l, nil
}

func hasEntity(spec *LayoutSpec, name string) bool {
	for _, e := range spec.Entities {
		if e.Name == name {
			return true
		}
	}
	return false
}

func (l *Layout) create(w *ecs.World, es EntitySpec, env Env) error {
	e := ecs.CreateEntity(w)
	l.Entities[es.Name] = e
	l.Order = append(l.Order, es.Name)

	r, err := layout.AttachRect(w, e)
	if err != nil {
		return fmt.Errorf("prefabs: %s: %w", es.Name, err)
	}
	fields := []struct {
		name string
		n    Number
		set  func(float64)
	}{
		{"x", es.Rect.X, r.SetX},
		{"y", es.Rect.Y, r.SetY},
		{"z", es.Rect.Z, r.SetZ},
		{"width", es.Rect.Width, r.SetWidth},
		{"height", es.Rect.Height, r.SetHeight},
		{"rotation", es.Rect.Rotation, r.SetRotation},
	}
	for _, f := range fields {
		v, err := f.n.Eval(env)
		if err != nil {
			return fmt.Errorf("prefabs: %s.rect.%s: %w", es.Name, f.name, err)
		}
		f.set(v)
	}
	r.SetVisibility(!es.Rect.Hidden)
	r.SetObservable(!es.Rect.Unobservable)

	if _, err := layout.AttachAnchors(w, e); err != nil {
		return fmt.Errorf("prefabs: %s: %w", es.Name, err)
	}

	c, err := parseColor(es.Color)
	if err != nil {
		return fmt.Errorf("prefabs: %s: %w", es.Name, err)
	}
	label := es.Label
	if label == "" {
		label = es.Name
	}
	style := &component.DebugStyle{Name: es.Name, Label: label, Color: c}
	if err := ecs.Add(w, e, component.DebugStyleComponent.Kind(), style); err != nil {
		return fmt.Errorf("prefabs: %s: %w", es.Name, err)
	}
	return nil
}

func (l *Layout) link(w *ecs.World, es EntitySpec, env Env) error {
	e := l.Entities[es.Name]
	a, ok := ecs.Get(w, e, layout.AnchorsComponent.Kind())
	if !ok {
		return fmt.Errorf("prefabs: %s: anchors missing", es.Name)
	}

	for _, side := range sortedKeys(es.Anchors) {
		s, err := layout.ParseSide(side)
		if err != nil {
			return fmt.Errorf("prefabs: %s.anchors: %w", es.Name, err)
		}
		target, kind, err := l.parseRef(es.Anchors[side])
		if err != nil {
			return fmt.Errorf("prefabs: %s.anchors.%s: %w", es.Name, side, err)
		}
		a.SetAnchor(s, target, kind)
	}

	for _, side := range sortedKeys(es.Margins) {
		s, err := layout.ParseSide(side)
		if err != nil {
			return fmt.Errorf("prefabs: %s.margins: %w", es.Name, err)
		}
		v, err := es.Margins[side].Eval(env)
		if err != nil {
			return fmt.Errorf("prefabs: %s.margins.%s: %w", es.Name, side, err)
		}
		a.SetMargin(s, v)
	}

	for _, dim := range sortedKeys(es.Constraints) {
		d, err := parseDimension(dim)
		if err != nil {
			return fmt.Errorf("prefabs: %s.constraints: %w", es.Name, err)
		}
		c, err := l.parseConstraint(es.Constraints[dim], env)
		if err != nil {
			return fmt.Errorf("prefabs: %s.constraints.%s: %w", es.Name, dim, err)
		}
		a.SetConstraint(d, c)
	}

	if es.Clip != "" {
		clipper, ok := l.Entities[es.Clip]
		if !ok {
			return fmt.Errorf("prefabs: %s.clip: unknown entity %q", es.Name, es.Clip)
		}
		if _, err := layout.AttachClip(w, e, clipper); err != nil {
			return fmt.Errorf("prefabs: %s.clip: %w", es.Name, err)
		}
	}
	return nil
}

// parseRef splits "name.edge". Only the six positional edges can be anchored to.
func (l *Layout) parseRef(ref string) (ecs.Entity, layout.EdgeKind, error) {
	i := strings.LastIndexByte(ref, '.')
	if i <= 0 || i == len(ref)-1 {
		return 0, 0, fmt.Errorf("reference %q is not name.edge", ref)
	}
	name, edge := strings.TrimSpace(ref[:i]), ref[i+1:]
	target, ok := l.Entities[name]
	if !ok {
		return 0, 0, fmt.Errorf("unknown entity %q", name)
	}
	side, err := layout.ParseSide(edge)
	if err != nil {
		return 0, 0, err
	}
	return target, side.Edge(), nil
}

func (l *Layout) parseConstraint(cs ConstraintSpec, env Env) (layout.Constraint, error) {
	target, ok := l.Entities[cs.Target]
	if !ok {
		return layout.Constraint{}, fmt.Errorf("unknown entity %q", cs.Target)
	}
	kind, err := layout.ParseEdgeKind(cs.Edge)
	if err != nil {
		return layout.Constraint{}, err
	}
	switch kind {
	case layout.EdgeWidth, layout.EdgeHeight, layout.EdgeX, layout.EdgeY, layout.EdgeZ:
	default:
		return layout.Constraint{}, fmt.Errorf("constraint edge must be width, height, x, y or z, got %q", cs.Edge)
	}
	op, err := layout.ParseOp(cs.Op)
	if err != nil {
		return layout.Constraint{}, err
	}
	operand, err := cs.Operand.Eval(env)
	if err != nil {
		return layout.Constraint{}, err
	}
	return layout.Constraint{Target: target, Kind: kind, Op: op, Operand: operand}, nil
}

func parseDimension(s string) (layout.Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "width":
		return layout.DimWidth, nil
	case "height":
		return layout.DimHeight, nil
	case "z":
		return layout.DimZ, nil
	}
	return 0, fmt.Errorf("unknown constraint dimension %q", s)
}

func parseColor(name string) (color.RGBA, error) {
	if name == "" {
		return defaultColor, nil
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
