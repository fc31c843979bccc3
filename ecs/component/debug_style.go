package component

import "image/color"

// DebugStyle tells the debug renderer how to draw a layout entity.
type DebugStyle struct {
	Name  string
	Label string
	Color color.RGBA
}

var DebugStyleComponent = NewComponent[DebugStyle]()
