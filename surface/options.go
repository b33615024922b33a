package surface

import "github.com/gogpu/gg"

// Option configures a Manager.
type Option func(*options)

type options struct {
	background gg.RGBA
}

func defaultOptions() options {
	return options{
		background: gg.White,
	}
}

// WithBackground sets the color the committed layer is filled with on
// Initialize and Clear. Default: opaque white.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}
