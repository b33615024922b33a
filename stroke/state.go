package stroke

import "github.com/gogpu/gg"

// Style describes how a stroke is painted.
type Style struct {
	// Erase selects the eraser. Color is ignored when set.
	Erase bool

	// Color is the brush color.
	Color gg.RGBA

	// Width is the stroke width in logical pixels.
	Width float64
}

// State is the in-flight gesture of one stroke.
type State struct {
	Active  bool
	Last    gg.Point
	Anchor  gg.Point
	Samples int
	Style   Style
}

// Reset returns the state to idle.
func (s *State) Reset() {
	*s = State{}
}
