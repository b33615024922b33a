package surface

import (
	"image"
	"math"

	"github.com/oklog/ulid/v2"
	xdraw "golang.org/x/image/draw"
)

// Snapshot is an opaque copy of a layer's committed pixels.
type Snapshot struct {
	id    ulid.ULID
	size  LogicalSize
	scale float64
	pix   *image.RGBA
}

// ID returns a unique, time-ordered identifier used in log records.
func (s *Snapshot) ID() string {
	return s.id.String()
}

// Size returns the logical extent the snapshot was taken at.
func (s *Snapshot) Size() LogicalSize {
	return s.size
}

// Scale returns the device scale the snapshot was taken at.
func (s *Snapshot) Scale() float64 {
	return s.scale
}

// Bounds returns the physical pixel bounds of the captured buffer.
func (s *Snapshot) Bounds() image.Rectangle {
	return s.pix.Rect
}

// Image returns a copy of the captured pixels. Channels are premultiplied.
func (s *Snapshot) Image() *image.RGBA {
	img := image.NewRGBA(s.pix.Rect)
	copy(img.Pix, s.pix.Pix)
	return img
}

func capture(l *Layer) *Snapshot {
	return &Snapshot{
		id:    ulid.Make(),
		size:  l.size,
		scale: l.scale,
		pix:   l.ctx.ResizeTarget().ToImage(),
	}
}

// restoreInto overwrites l with the snapshot anchored at the origin.
// Pixels outside the snapshot's extent are left untouched.
func (s *Snapshot) restoreInto(l *Layer) {
	src := s.pix
	if s.scale != l.scale {
		src = s.resampled(l.scale)
	}

	pm := l.ctx.ResizeTarget()
	dst := pm.Data()
	dstStride := pm.Width() * 4

	w := min(src.Rect.Dx(), pm.Width())
	h := min(src.Rect.Dy(), pm.Height())
	if w <= 0 || h <= 0 {
		return
	}
	for y := 0; y < h; y++ {
		so := y * src.Stride
		do := y * dstStride
		copy(dst[do:do+w*4], src.Pix[so:so+w*4])
	}
	pm.NotifyPixelsChanged()
	l.dirty = true
}

// resampled returns the captured pixels scaled to the physical extent they
// would have had at the given device scale.
func (s *Snapshot) resampled(scale float64) *image.RGBA {
	w := int(math.Round(float64(s.size.Width) * scale))
	h := int(math.Round(float64(s.size.Height) * scale))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Rect, s.pix, s.pix.Rect, xdraw.Src, nil)
	return dst
}
