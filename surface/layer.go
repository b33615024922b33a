// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// LogicalSize is a surface extent in display (logical) pixels.
type LogicalSize struct {
	Width, Height int
}

// Empty reports whether the size has no area.
func (s LogicalSize) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Layer is one raster of the drawing surface.
//
// Layer is NOT safe for concurrent use.
type Layer struct {
	ctx    *gg.Context
	size   LogicalSize
	scale  float64
	dirty  bool
	closed bool
}

func newLayer(size LogicalSize, scale float64) (*Layer, error) {
	if size.Empty() {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, size.Width, size.Height)
	}
	l := &Layer{
		ctx:   gg.NewContextWithScale(size.Width, size.Height, scale),
		size:  size,
		scale: scale,
		dirty: true,
	}
	l.applyStyle()
	return l, nil
}

// applyStyle sets the state every drawing path relies on after the context
// has been (re)allocated.
func (l *Layer) applyStyle() {
	l.ctx.SetDeviceScale(l.scale)
	l.ctx.Identity()
	l.ctx.SetLineCap(gg.LineCapRound)
	l.ctx.SetLineJoin(gg.LineJoinRound)
}

// Context returns the underlying drawing context, or nil once closed.
// Callers that draw through it directly must call MarkDirty.
func (l *Layer) Context() *gg.Context {
	if l.closed {
		return nil
	}
	return l.ctx
}

// Size returns the logical extent.
func (l *Layer) Size() LogicalSize {
	return l.size
}

// Scale returns the device scale.
func (l *Layer) Scale() float64 {
	return l.scale
}

// PixelSize returns the backing buffer extent in physical pixels.
func (l *Layer) PixelSize() (width, height int) {
	if l.closed {
		return 0, 0
	}
	pm := l.ctx.ResizeTarget()
	return pm.Width(), pm.Height()
}

// Pixmap returns the backing buffer. Its data is premultiplied RGBA.
// Callers that write to it must call MarkDirty.
func (l *Layer) Pixmap() *gg.Pixmap {
	if l.closed {
		return nil
	}
	return l.ctx.ResizeTarget()
}

// Draw runs fn against the drawing context inside a Push/Pop pair and marks
// the layer dirty. The error returned by fn is passed through.
func (l *Layer) Draw(fn func(*gg.Context) error) error {
	if l.closed {
		return ErrClosed
	}
	l.ctx.Push()
	err := fn(l.ctx)
	l.ctx.Pop()
	l.ctx.ClearPath()
	l.dirty = true
	return err
}

// Fill replaces every pixel with c.
func (l *Layer) Fill(c gg.RGBA) {
	if l.closed {
		return
	}
	l.ctx.ClearWithColor(c)
	l.dirty = true
}

// Clear makes every pixel transparent.
func (l *Layer) Clear() {
	if l.closed {
		return
	}
	l.ctx.Clear()
	l.dirty = true
}

// Image returns a premultiplied copy of the layer at physical resolution.
func (l *Layer) Image() *image.RGBA {
	if l.closed {
		return image.NewRGBA(image.Rectangle{})
	}
	return l.ctx.ResizeTarget().ToImage()
}

// MarkDirty flags the layer as changed since the last MarkClean.
func (l *Layer) MarkDirty() {
	l.dirty = true
}

// MarkClean clears the dirty flag. Presenters call it after uploading.
func (l *Layer) MarkClean() {
	l.dirty = false
}

// IsDirty reports whether the layer changed since the last MarkClean.
func (l *Layer) IsDirty() bool {
	return l.dirty
}

// resize reallocates the buffer at size x scale. Content is discarded
// whenever the extent actually changes.
func (l *Layer) resize(size LogicalSize) error {
	if l.closed {
		return ErrClosed
	}
	if size.Empty() {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, size.Width, size.Height)
	}
	if err := l.ctx.Resize(size.Width, size.Height); err != nil {
		return fmt.Errorf("surface: context resize failed: %w", err)
	}
	l.size = size
	l.applyStyle()
	l.dirty = true
	return nil
}

// rescale reallocates the buffer at a new device scale, discarding content.
func (l *Layer) rescale(scale float64) error {
	if l.closed {
		return ErrClosed
	}
	l.scale = scale
	l.applyStyle()
	l.dirty = true
	return nil
}

func (l *Layer) close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	return l.ctx.Close()
}
