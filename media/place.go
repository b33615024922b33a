package media

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// Limits bounds placement and resizing. All lengths are logical pixels.
type Limits struct {
	// MaxFraction is the largest share of the surface extent a newly
	// placed element may occupy in either dimension.
	MaxFraction float64

	// MinSize is the smallest width or height a resize may produce.
	MinSize float64

	// HandleSize is the side of the square resize hotzone.
	HandleSize float64

	// MaxPixels caps the pixels a decode may produce, summed over all
	// frames. Inputs whose header declares more are rejected before any
	// pixel buffer is allocated.
	MaxPixels int
}

// DefaultLimits returns the placement and resize limits used when none
// are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxFraction: 0.8,
		MinSize:     50,
		HandleSize:  8,
		MaxPixels:   DefaultMaxPixels,
	}
}

// ErrInvalidLimits is returned by Limits.Validate.
var ErrInvalidLimits = errors.New("media: invalid limits")

// Validate checks that every limit is in range.
func (l Limits) Validate() error {
	switch {
	case l.MaxFraction <= 0 || l.MaxFraction > 1:
		return fmt.Errorf("%w: max fraction %v not in (0, 1]", ErrInvalidLimits, l.MaxFraction)
	case l.MinSize <= 0:
		return fmt.Errorf("%w: min size %v must be positive", ErrInvalidLimits, l.MinSize)
	case l.HandleSize <= 0:
		return fmt.Errorf("%w: handle size %v must be positive", ErrInvalidLimits, l.HandleSize)
	case l.MaxPixels <= 0:
		return fmt.Errorf("%w: max pixels %d must be positive", ErrInvalidLimits, l.MaxPixels)
	}
	return nil
}

// Place sizes and centers src on a surface of the given logical extent.
// The element keeps the source's aspect ratio and is scaled down, never
// up, so that it fits within maxFraction of the surface in both
// dimensions.
func Place(src *Source, surfaceW, surfaceH, maxFraction float64) *Element {
	nw, nh := src.Size()
	w, h := float64(nw), float64(nh)
	aspect := w / h

	maxW := surfaceW * maxFraction
	maxH := surfaceH * maxFraction
	if w > maxW {
		w = maxW
		h = w / aspect
	}
	if h > maxH {
		h = maxH
		w = h * aspect
	}

	e := &Element{
		Kind:        src.Kind(),
		Source:      src,
		X:           (surfaceW - w) / 2,
		Y:           (surfaceH - h) / 2,
		Width:       w,
		Height:      h,
		AspectRatio: aspect,
	}
	gg.Logger().Debug("media: placed",
		"kind", e.Kind.String(), "natural_w", nw, "natural_h", nh,
		"x", e.X, "y", e.Y, "w", e.Width, "h", e.Height)
	return e
}
