// Package hover draws the brush-size indicator that follows the pointer
// while no stroke is in progress.
//
// The indicator lives on the overlay layer only. Committed pixels are never
// read or written, so showing, moving and hiding it leaves the drawing
// untouched.
package hover

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/paintly/surface"
)

// Neutral is the indicator color used for the eraser.
var Neutral = gg.Black

// outlineWidth is the indicator outline width in logical pixels.
const outlineWidth = 1

// Indicator describes the circle to draw.
type Indicator struct {
	Color gg.RGBA
	Size  float64
}

// Preview owns the overlay layer's content.
type Preview struct {
	overlay *surface.Layer
	visible bool
	at      gg.Point
	last    Indicator
}

// New returns a hidden Preview drawing onto overlay.
func New(overlay *surface.Layer) *Preview {
	return &Preview{overlay: overlay}
}

// Update clears the overlay and outlines a circle of diameter ind.Size
// centered at p.
func (p *Preview) Update(at gg.Point, ind Indicator) error {
	p.overlay.Clear()
	p.visible = false
	err := p.overlay.Draw(func(dc *gg.Context) error {
		dc.SetColor(ind.Color)
		dc.SetLineWidth(outlineWidth)
		dc.DrawCircle(at.X, at.Y, ind.Size/2)
		return dc.Stroke()
	})
	if err != nil {
		return err
	}
	p.visible = true
	p.at = at
	p.last = ind
	return nil
}

// Hide clears the overlay.
func (p *Preview) Hide() {
	p.overlay.Clear()
	p.visible = false
}

// Visible reports whether an indicator is shown.
func (p *Preview) Visible() bool {
	return p.visible
}

// Position returns the center of the most recently drawn indicator.
func (p *Preview) Position() gg.Point {
	return p.at
}

// Redraw repeats the last Update, for instance after the overlay was
// reallocated by a resize. It does nothing while hidden.
func (p *Preview) Redraw() error {
	if !p.visible {
		return nil
	}
	return p.Update(p.at, p.last)
}
