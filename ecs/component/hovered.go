package component

// Hovered marks the entity under the pointer, set by the hover system.
type Hovered struct {
	X, Y float64
}

var HoveredComponent = NewComponent[Hovered]()
