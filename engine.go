package paintly

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/paintly/hover"
	"github.com/gogpu/paintly/input"
	"github.com/gogpu/paintly/media"
	"github.com/gogpu/paintly/stroke"
	"github.com/gogpu/paintly/surface"
)

// Engine errors.
var (
	// ErrNotReady is returned by operations issued before a successful
	// Initialize.
	ErrNotReady = errors.New("paintly: engine not initialized")

	// ErrClosed is returned by operations issued after Teardown.
	ErrClosed = errors.New("paintly: engine closed")

	// ErrSuperseded is reported for media whose decode finished after the
	// surface was cleared.
	ErrSuperseded = errors.New("paintly: media superseded")
)

type engineState uint8

const (
	stateNew engineState = iota
	stateReady
	stateInert
	stateClosed
)

// pressTarget records which component owns the current press.
type pressTarget uint8

const (
	pressNone pressTarget = iota
	pressStroke
	pressMedia
)

// Engine is the drawing surface. It owns the committed and overlay layers,
// the stroke and media state and the active tool, and is the only type a
// host needs.
//
// Engine is safe for concurrent use. Methods are serialized by an internal
// lock; media decoding runs on its own goroutine.
type Engine struct {
	mu sync.Mutex

	cfg      Config
	tool     Tool
	dispatch Dispatcher
	bounds   input.BoundsFunc

	state engineState
	gen   uint64 // bumped on Clear and Teardown; stale decodes compare it

	surf    *surface.Manager
	norm    *input.Normalizer
	strokes *stroke.Renderer
	gesture stroke.State
	preview *hover.Preview
	media   *media.Transform
	press   pressTarget
}

// New creates an Engine. The surface is not acquired until Initialize.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}
	tool, _ := o.config.tool()

	e := &Engine{
		cfg:      o.config,
		tool:     tool.normalized(),
		dispatch: o.dispatch,
		bounds:   o.bounds,
	}
	e.surf = surface.New(o.layout, o.scale, surface.WithBackground(o.config.background()))
	e.norm = input.NewNormalizer(o.scale, e.surfaceBounds, e.bufferSize)
	e.media = media.NewTransform(e.surf, o.config.limits())
	return e, nil
}

// surfaceBounds is the normalizer's BoundsFunc. It is only called with
// e.mu held.
func (e *Engine) surfaceBounds() (input.Rect, bool) {
	if e.bounds != nil {
		return e.bounds()
	}
	size := e.surf.Size()
	r := input.Rect{Width: float64(size.Width), Height: float64(size.Height)}
	return r, e.surf.Ready()
}

func (e *Engine) bufferSize() (int, int) {
	l := e.surf.Surface()
	if l == nil || !e.surf.Ready() {
		return 0, 0
	}
	return l.PixelSize()
}

// Initialize acquires the drawing surface at the current layout size.
// On failure the error wraps surface.ErrSurfaceUnavailable, the engine
// stays inert and event handlers do nothing; Initialize may be retried.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case stateClosed:
		return ErrClosed
	case stateReady:
		return nil
	}
	if err := e.surf.Initialize(); err != nil {
		e.state = stateInert
		Logger().Error("paintly: surface unavailable", "err", err)
		return err
	}
	e.strokes = stroke.NewRenderer(e.surf.Surface())
	e.preview = hover.New(e.surf.Overlay())
	e.state = stateReady
	size := e.surf.Size()
	Logger().Info("paintly: engine initialized",
		"width", size.Width, "height", size.Height, "scale", e.surf.Scale())
	return nil
}

// Teardown releases the surface. Pending media decodes complete into
// nothing. Teardown is idempotent.
func (e *Engine) Teardown() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == stateClosed {
		return nil
	}
	e.state = stateClosed
	e.gen++
	e.gesture.Reset()
	e.press = pressNone
	e.media.Discard()

	var errs []error
	if e.strokes != nil {
		errs = append(errs, e.strokes.Close())
	}
	errs = append(errs, e.surf.Teardown())
	Logger().Info("paintly: engine torn down")
	return errors.Join(errs...)
}

// Ready reports whether the engine has a drawing surface.
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == stateReady
}

func (e *Engine) check() error {
	switch e.state {
	case stateReady:
		return nil
	case stateClosed:
		return ErrClosed
	default:
		return ErrNotReady
	}
}

func (e *Engine) warn(op string, err error) {
	Logger().Warn("paintly: frame abandoned", "op", op, "err", err)
}

// Resize re-reads the layout and resizes both layers, preserving committed
// content. An in-flight stroke continues on the resized surface.
func (e *Engine) Resize() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	if err := e.surf.ResizeProtected(); err != nil {
		e.warn("resize", err)
		return err
	}
	return e.afterGeometryChange()
}

// SetDeviceScale moves the surface to a new device scale, resampling the
// committed content.
func (e *Engine) SetDeviceScale(scale float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	if err := e.surf.SetScale(scale); err != nil {
		return err
	}
	e.norm.SetScale(scale)
	return e.afterGeometryChange()
}

func (e *Engine) afterGeometryChange() error {
	if err := e.media.Resized(); err != nil {
		e.warn("media resize", err)
		return err
	}
	if err := e.preview.Redraw(); err != nil {
		e.warn("hover redraw", err)
	}
	return nil
}

// SetTool validates and installs t. The color is normalized to #rrggbb.
// A visible hover indicator is redrawn with the new tool.
func (e *Engine) SetTool(t Tool) error {
	if err := t.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tool = t.normalized()
	if e.state == stateReady && e.preview.Visible() {
		if err := e.preview.Update(e.preview.Position(), e.tool.indicator()); err != nil {
			e.warn("hover", err)
		}
	}
	return nil
}

// Tool returns the active tool.
func (e *Engine) Tool() Tool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tool
}

// IndicatorColor returns the text contrast for the active tool's color
// swatch.
func (e *Engine) IndicatorColor() Contrast {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ContrastColor(e.tool.Color)
}

// Clear abandons any gesture, drops the media element and resets the
// committed layer to the background color.
func (e *Engine) Clear() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	e.gen++
	e.gesture.Reset()
	e.press = pressNone
	e.media.Discard()
	e.preview.Hide()
	if err := e.surf.Clear(); err != nil {
		return fmt.Errorf("paintly: clear: %w", err)
	}
	return nil
}

// Size returns the logical extent of the surface.
func (e *Engine) Size() surface.LogicalSize {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.surf.Size()
}

// Scale returns the device scale.
func (e *Engine) Scale() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.surf.Scale()
}

// Surface returns a copy of the committed layer, including selection
// decoration, or nil before Initialize.
func (e *Engine) Surface() *image.RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != stateReady {
		return nil
	}
	return e.surf.Surface().Image()
}

// Overlay returns a copy of the overlay layer, or nil before Initialize.
func (e *Engine) Overlay() *image.RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != stateReady {
		return nil
	}
	return e.surf.Overlay().Image()
}

// View runs fn with the surface manager while holding the engine lock.
// Presenters use it to read both layers without copying. fn must not call
// back into the engine.
func (e *Engine) View(fn func(*surface.Manager) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	return fn(e.surf)
}
