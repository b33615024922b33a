package media

import (
	"time"

	"github.com/gogpu/gg"
)

// Element is the embedded media instance. Coordinates are logical surface
// pixels. Width/Height equals AspectRatio after every resize step.
type Element struct {
	Kind        Kind
	Source      *Source
	X, Y        float64
	Width       float64
	Height      float64
	AspectRatio float64
	Selected    bool

	frame   int
	elapsed time.Duration
}

// Contains reports whether p lies within the element's bounding box.
func (e *Element) Contains(p gg.Point) bool {
	return p.X >= e.X && p.X <= e.X+e.Width && p.Y >= e.Y && p.Y <= e.Y+e.Height
}

// Corner returns the bottom-right corner.
func (e *Element) Corner() gg.Point {
	return gg.Pt(e.X+e.Width, e.Y+e.Height)
}

// HandleContains reports whether p lies in the square resize hotzone of
// the given side length centered on the bottom-right corner.
func (e *Element) HandleContains(p gg.Point, size float64) bool {
	c := e.Corner()
	h := size / 2
	return p.X >= c.X-h && p.X <= c.X+h && p.Y >= c.Y-h && p.Y <= c.Y+h
}

// Frame returns the index of the frame currently shown.
func (e *Element) Frame() int {
	return e.frame
}

// advance moves playback forward by dt, looping at the end. It reports
// whether the visible frame changed.
func (e *Element) advance(dt time.Duration) bool {
	if e.Source == nil || e.Source.FrameCount() < 2 || dt <= 0 {
		return false
	}
	start := e.frame
	e.elapsed += dt

	var total time.Duration
	for i := 0; i < e.Source.FrameCount(); i++ {
		total += e.Source.Delay(i)
	}
	if e.elapsed >= total {
		e.elapsed %= total
	}
	for e.elapsed >= e.Source.Delay(e.frame) {
		e.elapsed -= e.Source.Delay(e.frame)
		e.frame = (e.frame + 1) % e.Source.FrameCount()
	}
	return e.frame != start
}
