package prefabs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LayoutSpec is a layout document: a list of named entities whose geometry
// may refer to each other by name. The name "viewport" always exists and
// covers the host window.
type LayoutSpec struct {
	Name     string       `yaml:"name"`
	Entities []EntitySpec `yaml:"entities"`
}

type EntitySpec struct {
	Name        string                    `yaml:"name"`
	Label       string                    `yaml:"label"`
	Color       string                    `yaml:"color"`
	Rect        RectSpec                  `yaml:"rect"`
	Anchors     map[string]string         `yaml:"anchors"`
	Margins     map[string]Number         `yaml:"margins"`
	Constraints map[string]ConstraintSpec `yaml:"constraints"`
	Clip        string                    `yaml:"clip"`
}

type RectSpec struct {
	X            Number `yaml:"x"`
	Y            Number `yaml:"y"`
	Z            Number `yaml:"z"`
	Width        Number `yaml:"width"`
	Height       Number `yaml:"height"`
	Rotation     Number `yaml:"rotation"`
	Hidden       bool   `yaml:"hidden"`
	Unobservable bool   `yaml:"unobservable"`
}

type ConstraintSpec struct {
	Target  string `yaml:"target"`
	Edge    string `yaml:"edge"`
	Op      string `yaml:"op"`
	Operand Number `yaml:"operand"`
}

// Number is a numeric field written either as a literal or as an expression
// over the viewport variables, evaluated at build time.
type Number struct {
	Expr string
}

func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("prefabs: line %d: expected a number or expression", value.Line)
	}
	n.Expr = value.Value
	return nil
}

// N is shorthand for a literal Number.
func N(v float64) Number {
	return Number{Expr: fmt.Sprint(v)}
}

// DecodeLayout parses a layout document.
func DecodeLayout(data []byte) (*LayoutSpec, error) {
	var spec LayoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal layout: %w", err)
	}
	seen := make(map[string]bool, len(spec.Entities))
	for i, e := range spec.Entities {
		if e.Name == "" {
			return nil, fmt.Errorf("prefabs: entity %d has no name", i)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("prefabs: duplicate entity name %q", e.Name)
		}
		seen[e.Name] = true
	}
	return &spec, nil
}

// LoadLayout reads a named layout from prefabs/layouts (disk, then embedded).
func LoadLayout(name string) (*LayoutSpec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	spec, err := DecodeLayout(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

// LoadLayoutFile reads a layout document from an arbitrary path.
func LoadLayoutFile(path string) (*LayoutSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	spec, err := DecodeLayout(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return spec, nil
}
