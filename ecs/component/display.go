package component

import "github.com/milk9111/spritecollider/shape"

// Display holds the view state shared by the input and zoom systems.
type Display struct {
	Scale       float64
	CursorWorld shape.Point
}

var DisplayComponent = NewComponent[Display]()
