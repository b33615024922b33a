package media

import (
	"github.com/gogpu/gg"
)

// selectionColor is used for the dashed border and the resize glyph.
var selectionColor = gg.Hex("#3b82f6")

const (
	borderWidth  = 1
	borderOutset = 2
	dashLength   = 5
)

// Render restores the underlay and draws the element on top. When decorate
// is set and the element is selected, the dashed selection border and the
// resize glyph are drawn before the bitmap.
func (t *Transform) Render(decorate bool) error {
	e := t.element
	if e == nil {
		return ErrNoElement
	}
	if err := t.surf.Restore(t.underlay); err != nil {
		return err
	}
	layer := t.surf.Surface()
	return layer.Draw(func(dc *gg.Context) error {
		if decorate && e.Selected {
			if err := t.decorate(dc, e); err != nil {
				return err
			}
		}
		dc.DrawImageEx(e.Source.buf(e.frame), gg.DrawImageOptions{
			X:             e.X,
			Y:             e.Y,
			DstWidth:      e.Width,
			DstHeight:     e.Height,
			Interpolation: gg.InterpBilinear,
		})
		return nil
	})
}

func (t *Transform) decorate(dc *gg.Context, e *Element) error {
	dc.SetColor(selectionColor)
	dc.SetLineWidth(borderWidth)
	dc.SetDash(dashLength, dashLength)
	dc.DrawRectangle(e.X-borderOutset, e.Y-borderOutset, e.Width+2*borderOutset, e.Height+2*borderOutset)
	err := dc.Stroke()
	dc.ClearDash()
	if err != nil {
		return err
	}

	c := e.Corner()
	s := t.limits.HandleSize
	dc.DrawRectangle(c.X-s/2, c.Y-s/2, s, s)
	return dc.Fill()
}
