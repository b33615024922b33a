package stroke

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// segment is one piece of a smoothed stroke: a quadratic curve, a straight
// line, or a dot when all points coincide.
type segment struct {
	from, ctrl, to gg.Point
	curved         bool
}

func quad(from, ctrl, to gg.Point) segment {
	return segment{from: from, ctrl: ctrl, to: to, curved: true}
}

func line(from, to gg.Point) segment {
	return segment{from: from, ctrl: from, to: to}
}

func dot(p gg.Point) segment {
	return segment{from: p, ctrl: p, to: p}
}

func (s segment) degenerate() bool {
	return s.from == s.ctrl && s.ctrl == s.to
}

// trace emits the segment into dc and paints it with the current color.
// Zero-length segments are filled as a disc so they stay visible.
func (s segment) trace(dc *gg.Context, width float64) error {
	if s.degenerate() {
		dc.DrawCircle(s.to.X, s.to.Y, width/2)
		return dc.Fill()
	}
	dc.SetLineWidth(width)
	dc.MoveTo(s.from.X, s.from.Y)
	if s.curved {
		dc.QuadraticTo(s.ctrl.X, s.ctrl.Y, s.to.X, s.to.Y)
	} else {
		dc.LineTo(s.to.X, s.to.Y)
	}
	return dc.Stroke()
}

// pixelBounds returns the physical pixel rectangle that can receive
// coverage from the segment. A quadratic curve stays inside the hull of its
// control points, so the padded point bounds are sufficient.
func (s segment) pixelBounds(width, scale float64) image.Rectangle {
	pad := width/2 + 2
	minX := math.Min(s.from.X, math.Min(s.ctrl.X, s.to.X)) - pad
	minY := math.Min(s.from.Y, math.Min(s.ctrl.Y, s.to.Y)) - pad
	maxX := math.Max(s.from.X, math.Max(s.ctrl.X, s.to.X)) + pad
	maxY := math.Max(s.from.Y, math.Max(s.ctrl.Y, s.to.Y)) + pad
	return image.Rect(
		int(math.Floor(minX*scale)), int(math.Floor(minY*scale)),
		int(math.Ceil(maxX*scale)), int(math.Ceil(maxY*scale)),
	)
}
