package input

import "github.com/gogpu/gg"

// Rect is an axis-aligned rectangle in client (display) pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the client point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() gg.Point {
	return gg.Pt(r.X, r.Y)
}
