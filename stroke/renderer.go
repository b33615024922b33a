package stroke

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/paintly/internal/blend"
	"github.com/gogpu/paintly/surface"
)

// Renderer paints strokes onto a committed layer.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	target  *surface.Layer
	scratch *gg.Context
}

// NewRenderer returns a Renderer drawing onto target.
func NewRenderer(target *surface.Layer) *Renderer {
	return &Renderer{target: target}
}

// Begin starts a stroke at p. Nothing is drawn until the next sample.
func (r *Renderer) Begin(st *State, p gg.Point, style Style) {
	*st = State{
		Active:  true,
		Last:    p,
		Anchor:  p,
		Samples: 1,
		Style:   style,
	}
}

// Move extends the active stroke to p. Samples outside a stroke are
// ignored.
func (r *Renderer) Move(st *State, p gg.Point) error {
	if !st.Active {
		return nil
	}
	mid := st.Last.Lerp(p, 0.5)
	err := r.paint(quad(st.Anchor, st.Last, mid), st.Style)
	st.Anchor = mid
	st.Last = p
	st.Samples++
	return err
}

// End finalizes the trailing segment and returns the state to idle. A stroke
// with a single sample leaves a dot of diameter Style.Width.
func (r *Renderer) End(st *State) error {
	if !st.Active {
		return nil
	}
	defer st.Reset()

	if st.Samples == 1 {
		return r.paint(dot(st.Last), st.Style)
	}
	if st.Anchor == st.Last {
		return nil
	}
	return r.paint(line(st.Anchor, st.Last), st.Style)
}

func (r *Renderer) paint(s segment, style Style) error {
	if style.Erase {
		return r.erase(s, style.Width)
	}
	return r.target.Draw(func(dc *gg.Context) error {
		dc.SetColor(style.Color)
		return s.trace(dc, style.Width)
	})
}

// erase renders the segment's coverage into the scratch buffer and clamps
// the target's alpha by it.
func (r *Renderer) erase(s segment, width float64) error {
	dst := r.target.Pixmap()
	if dst == nil {
		return surface.ErrClosed
	}
	sc := r.scratchFor(r.target)

	sc.SetColor(gg.White)
	if err := s.trace(sc, width); err != nil {
		return err
	}

	cov := sc.ResizeTarget()
	rect := s.pixelBounds(width, r.target.Scale())
	blend.Rect(dst.Data(), cov.Data(), dst.Width(), dst.Height(), rect, blend.EraseClamp)
	cov.FillRect(rect, 0, 0, 0, 0)

	dst.NotifyPixelsChanged()
	r.target.MarkDirty()
	return nil
}

// scratchFor returns a transparent buffer matching the target's geometry,
// reallocating it when the target was resized.
func (r *Renderer) scratchFor(l *surface.Layer) *gg.Context {
	size := l.Size()
	if r.scratch != nil &&
		r.scratch.Width() == size.Width &&
		r.scratch.Height() == size.Height &&
		r.scratch.DeviceScale() == l.Scale() {
		return r.scratch
	}
	if r.scratch != nil {
		_ = r.scratch.Close()
	}
	r.scratch = gg.NewContextWithScale(size.Width, size.Height, l.Scale())
	r.scratch.SetLineCap(gg.LineCapRound)
	r.scratch.SetLineJoin(gg.LineJoinRound)
	gg.Logger().Debug("stroke: scratch allocated", "width", size.Width, "height", size.Height)
	return r.scratch
}

// Close releases the scratch buffer.
func (r *Renderer) Close() error {
	if r.scratch == nil {
		return nil
	}
	err := r.scratch.Close()
	r.scratch = nil
	return err
}
