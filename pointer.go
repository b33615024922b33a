package paintly

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/paintly/input"
	"github.com/gogpu/paintly/media"
)

// Response tells the host how an event was consumed.
type Response struct {
	// PreventDefault asks the host to suppress scrolling and zooming.
	PreventDefault bool

	// Handled is set when the event changed engine state.
	Handled bool
}

// Attach routes every pointer event from src through HandlePointer.
func (e *Engine) Attach(src gpucontext.PointerEventSource) {
	src.OnPointer(func(ev gpucontext.PointerEvent) {
		e.HandlePointer(ev)
	})
}

// HandlePointer dispatches ev by type. Cancel ends a press like Up.
func (e *Engine) HandlePointer(ev gpucontext.PointerEvent) Response {
	switch ev.Type {
	case gpucontext.PointerDown:
		return e.OnPressStart(ev)
	case gpucontext.PointerMove:
		return e.OnMove(ev)
	case gpucontext.PointerUp, gpucontext.PointerCancel:
		return e.OnPressEnd(ev)
	case gpucontext.PointerLeave:
		return e.OnLeave(ev)
	default:
		return Response{}
	}
}

// sample normalizes ev. ok is false when the engine is not ready or the
// event must be dropped.
func (e *Engine) sample(ev gpucontext.PointerEvent) (input.Sample, bool) {
	if e.state != stateReady {
		return input.Sample{}, false
	}
	s := e.norm.Normalize(ev)
	if s.Ignored {
		return s, false
	}
	if s.Degenerate {
		Logger().Debug("paintly: degenerate pointer sample", "type", ev.Type.String())
		return s, false
	}
	return s, true
}

// OnPressStart starts a media gesture when the press hits the element,
// otherwise a stroke.
func (e *Engine) OnPressStart(ev gpucontext.PointerEvent) Response {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sample(ev)
	if !ok {
		return Response{PreventDefault: s.PreventDefault}
	}
	resp := Response{PreventDefault: s.PreventDefault, Handled: true}
	e.finishPress()

	if e.media.Active() {
		selected := e.media.Selected()
		switch e.media.PressAt(s.Point) {
		case media.HitHandle, media.HitBody:
			e.press = pressMedia
			e.preview.Hide()
			if err := e.media.Render(true); err != nil {
				e.warn("media render", err)
			}
			return resp
		default:
			if selected {
				// The press only deselects.
				if err := e.media.Commit(); err != nil {
					e.warn("media commit", err)
				}
				return resp
			}
			if err := e.media.Flatten(); err != nil {
				e.warn("media flatten", err)
			}
		}
	}

	e.preview.Hide()
	e.strokes.Begin(&e.gesture, s.Point, e.tool.style(s.Eraser))
	e.press = pressStroke
	return resp
}

// OnMove extends the active gesture, or moves the hover indicator when
// idle. Touch input never shows the indicator.
func (e *Engine) OnMove(ev gpucontext.PointerEvent) Response {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sample(ev)
	if !ok {
		return Response{PreventDefault: s.PreventDefault}
	}
	resp := Response{PreventDefault: s.PreventDefault}

	switch e.press {
	case pressStroke:
		if err := e.strokes.Move(&e.gesture, s.Point); err != nil {
			e.warn("stroke", err)
		}
		resp.Handled = true
	case pressMedia:
		if e.media.MoveTo(s.Point) {
			if err := e.media.Render(true); err != nil {
				e.warn("media render", err)
			}
		}
		resp.Handled = true
	default:
		if s.PointerType != gpucontext.PointerTypeTouch {
			if err := e.preview.Update(s.Point, e.tool.indicator()); err != nil {
				e.warn("hover", err)
			}
			resp.Handled = true
		}
	}
	return resp
}

// OnPressEnd finishes the active gesture and commits the result. After a
// stroke the hover indicator reappears where the stroke ended.
func (e *Engine) OnPressEnd(ev gpucontext.PointerEvent) Response {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateReady || e.press == pressNone {
		return Response{}
	}
	s := e.norm.Normalize(ev)
	if s.Ignored {
		return Response{}
	}
	at := e.gesture.Last
	wasStroke := e.press == pressStroke
	e.finishPress()

	if wasStroke && s.PointerType != gpucontext.PointerTypeTouch && ev.Type != gpucontext.PointerCancel {
		if !s.Degenerate {
			at = s.Point
		}
		if err := e.preview.Update(at, e.tool.indicator()); err != nil {
			e.warn("hover", err)
		}
	}
	return Response{Handled: true}
}

// OnLeave hides the hover indicator and ends any gesture without showing
// the indicator again.
func (e *Engine) OnLeave(ev gpucontext.PointerEvent) Response {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateReady {
		return Response{}
	}
	if ev.PointerType == gpucontext.PointerTypeTouch && !ev.IsPrimary {
		return Response{}
	}
	e.preview.Hide()
	e.finishPress()
	return Response{Handled: true}
}

// finishPress ends whichever gesture is in progress and commits it.
func (e *Engine) finishPress() {
	switch e.press {
	case pressStroke:
		if err := e.strokes.End(&e.gesture); err != nil {
			e.warn("stroke", err)
		}
		if err := e.surf.Commit(); err != nil {
			e.warn("commit", err)
		}
	case pressMedia:
		if e.media.Release() {
			if err := e.media.Commit(); err != nil {
				e.warn("media commit", err)
			}
		}
	}
	e.press = pressNone
}

// strokeActive reports whether a stroke is in progress. Used by tests.
func (e *Engine) strokeActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gesture.Active
}
