package input

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

// BoundsFunc reports the surface's current on-screen rectangle in client
// pixels. ok is false while the surface is not attached to a display.
type BoundsFunc func() (r Rect, ok bool)

// BufferFunc reports the size of the surface's backing buffer in physical
// pixels.
type BufferFunc func() (width, height int)

// Sample is a pointer event mapped to logical surface coordinates.
type Sample struct {
	// Point is the logical position. (0, 0) when Degenerate is set.
	Point gg.Point

	// Type is the originating event type.
	Type gpucontext.PointerEventType

	// PointerType identifies the input device.
	PointerType gpucontext.PointerType

	// PreventDefault asks the host to suppress its default handling
	// (scroll, zoom) for this event.
	PreventDefault bool

	// Degenerate is set when the surface bounds or buffer had no area.
	Degenerate bool

	// Ignored is set for secondary touch pointers.
	Ignored bool

	// Eraser is set when a pen reports its eraser end or eraser button.
	Eraser bool
}

// Normalizer maps client coordinates to logical surface coordinates.
// The zero value is not usable; create one with NewNormalizer.
type Normalizer struct {
	scale  float64
	bounds BoundsFunc
	buffer BufferFunc
}

// NewNormalizer returns a Normalizer for a surface rendered at the given
// device scale. Non-positive scales are treated as 1.
func NewNormalizer(scale float64, bounds BoundsFunc, buffer BufferFunc) *Normalizer {
	if scale <= 0 {
		scale = 1
	}
	return &Normalizer{scale: scale, bounds: bounds, buffer: buffer}
}

// Scale returns the device scale the normalizer compensates for.
func (n *Normalizer) Scale() float64 {
	return n.scale
}

// SetScale updates the device scale. Non-positive scales are ignored.
func (n *Normalizer) SetScale(scale float64) {
	if scale > 0 {
		n.scale = scale
	}
}

// Normalize maps a host pointer event onto the surface.
func (n *Normalizer) Normalize(ev gpucontext.PointerEvent) Sample {
	s := Sample{
		Type:        ev.Type,
		PointerType: ev.PointerType,
		Eraser:      ev.PointerType == gpucontext.PointerTypePen && (ev.Buttons.HasEraser() || ev.Button == gpucontext.ButtonEraser),
	}

	if ev.PointerType == gpucontext.PointerTypeTouch {
		if !ev.IsPrimary {
			s.Ignored = true
			return s
		}
		switch ev.Type {
		case gpucontext.PointerDown, gpucontext.PointerMove:
			s.PreventDefault = true
		}
	}

	p, ok := n.Point(ev.X, ev.Y)
	s.Point = p
	s.Degenerate = !ok
	return s
}

// Point maps a client position to logical coordinates. ok is false, and the
// point is (0, 0), when the surface has no usable geometry.
func (n *Normalizer) Point(clientX, clientY float64) (p gg.Point, ok bool) {
	if n.bounds == nil || n.buffer == nil {
		return gg.Point{}, false
	}
	r, attached := n.bounds()
	if !attached || r.Empty() {
		return gg.Point{}, false
	}
	bw, bh := n.buffer()
	if bw <= 0 || bh <= 0 {
		return gg.Point{}, false
	}

	sx := float64(bw) / (n.scale * r.Width)
	sy := float64(bh) / (n.scale * r.Height)
	return gg.Pt((clientX-r.X)*sx, (clientY-r.Y)*sy), true
}
