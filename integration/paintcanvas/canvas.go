// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paintcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/paintly/internal/blend"
	"github.com/gogpu/paintly/surface"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("paintcanvas: canvas is closed")

	// ErrNilSource is returned when New is given no source.
	ErrNilSource = errors.New("paintcanvas: nil source")

	// ErrInvalidRenderer is returned when the draw context has no texture creator.
	ErrInvalidRenderer = errors.New("paintcanvas: draw context has no texture creator")
)

// Source grants locked access to a surface manager. *paintly.Engine
// implements it.
type Source interface {
	View(fn func(*surface.Manager) error) error
}

// ManagerSource adapts a bare surface.Manager that is not shared with
// other goroutines.
type ManagerSource struct {
	M *surface.Manager
}

// View calls fn with the manager.
func (s ManagerSource) View(fn func(*surface.Manager) error) error {
	return fn(s.M)
}

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas uploads a drawing surface to a GPU texture.
type Canvas struct {
	src         Source
	frame       []byte
	texture     gpucontext.Texture
	oldTexture  gpucontext.Texture
	dirty       bool
	sizeChanged bool
	width       int
	height      int
	closed      bool
}

// New returns a Canvas reading from src.
func New(src Source) (*Canvas, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return &Canvas{src: src, dirty: true}, nil
}

// Size returns the frame extent in physical pixels, as of the last Flush.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// IsDirty reports whether the frame must be uploaded on the next render.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Frame returns the most recently composited frame. The slice is reused
// by later calls to Flush.
func (c *Canvas) Frame() []byte {
	return c.frame
}

// Flush recomposites the frame when either layer changed since the last
// call and marks both layers clean.
func (c *Canvas) Flush() error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.src.View(func(m *surface.Manager) error {
		s, o := m.Surface(), m.Overlay()
		if s == nil || o == nil {
			return surface.ErrNotReady
		}
		w, h := s.PixelSize()
		if w != c.width || h != c.height {
			c.width, c.height = w, h
			c.frame = make([]byte, w*h*4)
			c.sizeChanged = true
			c.dirty = true
		}
		if !s.IsDirty() && !o.IsDirty() && !c.dirty {
			return nil
		}

		sp, op := s.Pixmap(), o.Pixmap()
		if sp == nil || op == nil {
			return surface.ErrClosed
		}
		copy(c.frame, sp.Data())
		blend.All(c.frame, op.Data(), w, h, blend.SourceOver)
		s.MarkClean()
		o.MarkClean()
		c.dirty = true
		return nil
	})
}

// RenderTo flushes the surface and draws it at (0, 0).
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition flushes the surface and draws it at (x, y).
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if err := c.Flush(); err != nil {
		return err
	}
	if err := c.upload(dc); err != nil {
		return err
	}
	return dc.DrawTexture(c.texture, x, y)
}

func (c *Canvas) upload(dc gpucontext.TextureDrawer) error {
	if c.sizeChanged {
		if c.texture != nil {
			destroy(c.oldTexture)
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}
	if c.texture != nil && !c.dirty {
		return nil
	}

	if c.texture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		tex, err := creator.NewTextureFromRGBA(c.width, c.height, c.frame)
		if err != nil {
			return fmt.Errorf("paintcanvas: NewTextureFromRGBA failed: %w", err)
		}
		// Frame data is premultiplied.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		c.texture = tex
		destroy(c.oldTexture)
		c.oldTexture = nil
		c.dirty = false
		return nil
	}

	if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(c.frame); err != nil {
			return fmt.Errorf("paintcanvas: texture update failed: %w", err)
		}
	}
	c.dirty = false
	return nil
}

// Texture returns the current texture, or nil before the first render.
func (c *Canvas) Texture() gpucontext.Texture {
	return c.texture
}

// Close destroys the textures. It is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	destroy(c.oldTexture)
	destroy(c.texture)
	c.oldTexture = nil
	c.texture = nil
	c.frame = nil
	c.src = nil
	return nil
}

func destroy(t gpucontext.Texture) {
	if d, ok := t.(textureDestroyer); ok {
		d.Destroy()
	}
}
