package paintly

import (
	"github.com/gogpu/paintly/input"
	"github.com/gogpu/paintly/surface"
)

// Dispatcher runs fn on the host's UI thread. Media decode completions are
// delivered through it. The default runs fn immediately on the decoding
// goroutine; the engine's internal lock serializes it with event handlers.
type Dispatcher func(fn func())

// Option configures an Engine during creation.
//
// Example:
//
//	eng, err := paintly.New(
//	    paintly.WithLayout(win.ClientSize),
//	    paintly.WithBounds(win.SurfaceRect),
//	    paintly.WithDeviceScale(win.ScaleFactor()),
//	)
type Option func(*engineOptions)

type engineOptions struct {
	scale    float64
	config   Config
	dispatch Dispatcher
	layout   surface.LayoutFunc
	bounds   input.BoundsFunc
}

func defaultOptions() engineOptions {
	return engineOptions{
		scale:    1,
		config:   DefaultConfig(),
		dispatch: func(fn func()) { fn() },
	}
}

// WithDeviceScale sets the ratio of physical to logical pixels.
// Values <= 0 are ignored. Default: 1.
func WithDeviceScale(scale float64) Option {
	return func(o *engineOptions) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithConfig replaces the default configuration. New validates it.
func WithConfig(cfg Config) Option {
	return func(o *engineOptions) {
		o.config = cfg
	}
}

// WithDispatcher routes media decode completions through d.
func WithDispatcher(d Dispatcher) Option {
	return func(o *engineOptions) {
		if d != nil {
			o.dispatch = d
		}
	}
}

// WithLayout sets the function reporting the surface's display size in
// logical pixels. Without a layout the surface cannot be acquired.
func WithLayout(fn surface.LayoutFunc) Option {
	return func(o *engineOptions) {
		o.layout = fn
	}
}

// WithBounds sets the function reporting the surface's on-screen rectangle
// in client pixels. Without it, client coordinates are taken to be
// logical surface coordinates, which suits headless use.
func WithBounds(fn input.BoundsFunc) Option {
	return func(o *engineOptions) {
		o.bounds = fn
	}
}
