package media

import (
	"errors"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/paintly/surface"
)

// ErrNoElement is returned by operations that need a placed element.
var ErrNoElement = errors.New("media: no element")

// Hit is the result of a press hit test.
type Hit uint8

const (
	// HitNone means the press missed the element.
	HitNone Hit = iota

	// HitBody means the press landed on the element's body.
	HitBody

	// HitHandle means the press landed on the resize hotzone.
	HitHandle
)

// String returns the hit name.
func (h Hit) String() string {
	switch h {
	case HitBody:
		return "body"
	case HitHandle:
		return "handle"
	default:
		return "none"
	}
}

// SelectionState is the drag-move gesture state.
type SelectionState struct {
	Dragging         bool
	OffsetX, OffsetY float64
}

// ResizeDragState is the corner-resize gesture state, live between a
// handle press and its release.
type ResizeDragState struct {
	Active         bool
	AnchorX        float64
	AnchorY        float64
	OriginalWidth  float64
	OriginalHeight float64
}

// Transform owns the embedded element and composites it onto the committed
// layer of a surface.Manager.
//
// Transform is NOT safe for concurrent use.
type Transform struct {
	surf     *surface.Manager
	limits   Limits
	element  *Element
	underlay *surface.Snapshot

	selection SelectionState
	resize    ResizeDragState
}

// NewTransform returns a Transform compositing onto m.
func NewTransform(m *surface.Manager, limits Limits) *Transform {
	return &Transform{surf: m, limits: limits}
}

// Element returns the placed element, or nil.
func (t *Transform) Element() *Element {
	return t.element
}

// Active reports whether an element is placed.
func (t *Transform) Active() bool {
	return t.element != nil
}

// Selected reports whether the placed element is selected.
func (t *Transform) Selected() bool {
	return t.element != nil && t.element.Selected
}

// Busy reports whether a drag or resize gesture is in progress.
func (t *Transform) Busy() bool {
	return t.selection.Dragging || t.resize.Active
}

// Selection returns the drag state.
func (t *Transform) Selection() SelectionState {
	return t.selection
}

// ResizeState returns the resize state.
func (t *Transform) ResizeState() ResizeDragState {
	return t.resize
}

// Place embeds src centered on the surface. A previously placed element is
// flattened first. The result is rendered undecorated and committed as
// the surface baseline.
func (t *Transform) Place(src *Source) error {
	if t.element != nil {
		if err := t.Flatten(); err != nil {
			return err
		}
	}
	under, err := t.surf.Snapshot()
	if err != nil {
		return err
	}
	size := t.surf.Size()
	t.underlay = under
	t.element = Place(src, float64(size.Width), float64(size.Height), t.limits.MaxFraction)
	t.selection = SelectionState{}
	t.resize = ResizeDragState{}

	if err := t.Render(false); err != nil {
		return err
	}
	return t.surf.Commit()
}

// PressAt hit-tests p against the resize hotzone, then the body.
// A handle hit starts a resize, a body hit selects the element and starts
// a drag, and a miss deselects.
func (t *Transform) PressAt(p gg.Point) Hit {
	e := t.element
	if e == nil {
		return HitNone
	}
	switch {
	case e.HandleContains(p, t.limits.HandleSize):
		e.Selected = true
		t.resize = ResizeDragState{
			Active:         true,
			AnchorX:        p.X,
			AnchorY:        p.Y,
			OriginalWidth:  e.Width,
			OriginalHeight: e.Height,
		}
		return HitHandle
	case e.Contains(p):
		e.Selected = true
		t.selection = SelectionState{
			Dragging: true,
			OffsetX:  p.X - e.X,
			OffsetY:  p.Y - e.Y,
		}
		return HitBody
	default:
		e.Selected = false
		return HitNone
	}
}

// MoveTo applies pointer motion to the active gesture and reports whether
// the element's geometry changed.
func (t *Transform) MoveTo(p gg.Point) bool {
	e := t.element
	if e == nil {
		return false
	}
	switch {
	case t.resize.Active:
		w := t.resize.OriginalWidth + (p.X - t.resize.AnchorX)
		h := w / e.AspectRatio
		if w < t.limits.MinSize || h < t.limits.MinSize {
			return false
		}
		if w == e.Width && h == e.Height {
			return false
		}
		e.Width, e.Height = w, h
		return true
	case t.selection.Dragging:
		x, y := p.X-t.selection.OffsetX, p.Y-t.selection.OffsetY
		if x == e.X && y == e.Y {
			return false
		}
		e.X, e.Y = x, y
		return true
	}
	return false
}

// Release ends the active gesture. It reports whether the element is
// selected, in which case the caller commits the composite.
func (t *Transform) Release() bool {
	t.selection = SelectionState{}
	t.resize = ResizeDragState{}
	return t.Selected()
}

// Deselect clears the selection and any gesture.
func (t *Transform) Deselect() {
	t.selection = SelectionState{}
	t.resize = ResizeDragState{}
	if t.element != nil {
		t.element.Selected = false
	}
}

// Commit renders the undecorated composite, records it as the surface
// baseline and renders the decoration again when selected. The baseline
// therefore never contains selection chrome.
func (t *Transform) Commit() error {
	if t.element == nil {
		return ErrNoElement
	}
	if err := t.Render(false); err != nil {
		return err
	}
	if err := t.surf.Commit(); err != nil {
		return err
	}
	if t.element.Selected {
		return t.Render(true)
	}
	return nil
}

// Flatten bakes the element into the committed layer, commits the result
// and drops the element.
func (t *Transform) Flatten() error {
	if t.element == nil {
		return nil
	}
	if err := t.Render(false); err != nil {
		return err
	}
	t.Discard()
	return t.surf.Commit()
}

// Discard drops the element without touching the committed layer.
func (t *Transform) Discard() {
	t.element = nil
	t.underlay = nil
	t.selection = SelectionState{}
	t.resize = ResizeDragState{}
}

// Resized rebuilds the underlay after the surface extent changed and
// re-renders the element. Area outside the old underlay is filled with the
// surface background.
func (t *Transform) Resized() error {
	if t.element == nil {
		return nil
	}
	layer := t.surf.Surface()
	if layer == nil {
		return surface.ErrClosed
	}
	layer.Fill(t.surf.Background())
	if err := t.surf.Restore(t.underlay); err != nil {
		return err
	}
	under, err := t.surf.Snapshot()
	if err != nil {
		return err
	}
	t.underlay = under
	return t.Render(t.element.Selected)
}

// Advance steps video playback by dt and reports whether the visible frame
// changed. The caller re-renders when it did.
func (t *Transform) Advance(dt time.Duration) bool {
	if t.element == nil {
		return false
	}
	return t.element.advance(dt)
}
