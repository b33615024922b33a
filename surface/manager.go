// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Common errors returned by Manager operations.
var (
	// ErrSurfaceUnavailable is returned by Initialize when the drawing
	// contexts cannot be acquired.
	ErrSurfaceUnavailable = errors.New("surface: drawing context unavailable")

	// ErrClosed is returned by operations on a torn down Manager or Layer.
	ErrClosed = errors.New("surface: closed")

	// ErrNotReady is returned by operations issued before Initialize.
	ErrNotReady = errors.New("surface: not initialized")

	// ErrInvalidSize is returned when the layout yields no area.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrNilSnapshot is returned by Restore when given no snapshot.
	ErrNilSnapshot = errors.New("surface: nil snapshot")
)

// LayoutFunc reports the current display size of the surface in logical
// pixels. Fractional sizes are rounded to whole pixels.
type LayoutFunc func() (width, height float64)

// Manager owns the committed and overlay layers and the baseline snapshot.
//
// Manager is NOT safe for concurrent use.
type Manager struct {
	layout     LayoutFunc
	scale      float64
	background gg.RGBA

	surface  *Layer
	overlay  *Layer
	baseline *Snapshot

	closed bool
}

// New returns an inert Manager. Call Initialize before drawing.
// Non-positive scales are treated as 1.
func New(layout LayoutFunc, scale float64, opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if scale <= 0 {
		scale = 1
	}
	return &Manager{
		layout:     layout,
		scale:      scale,
		background: o.background,
	}
}

// Initialize acquires both layers at the current layout size, fills the
// committed layer with the background color and records it as the
// baseline.
func (m *Manager) Initialize() error {
	if m.closed {
		return ErrClosed
	}
	if m.Ready() {
		return nil
	}

	size := m.measure()
	surface, err := newLayer(size, m.scale)
	if err != nil {
		gg.Logger().Error("surface: acquire failed", "width", size.Width, "height", size.Height, "err", err)
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	overlay, err := newLayer(size, m.scale)
	if err != nil {
		_ = surface.close()
		gg.Logger().Error("surface: acquire failed", "width", size.Width, "height", size.Height, "err", err)
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}

	m.surface = surface
	m.overlay = overlay
	m.surface.Fill(m.background)
	m.baseline = capture(m.surface)

	gg.Logger().Info("surface: initialized",
		"width", size.Width, "height", size.Height, "scale", m.scale,
		"baseline", m.baseline.ID())
	return nil
}

// Ready reports whether the layers have been acquired and not released.
func (m *Manager) Ready() bool {
	return m.surface != nil && !m.closed
}

func (m *Manager) check() error {
	if m.closed {
		return ErrClosed
	}
	if m.surface == nil {
		return ErrNotReady
	}
	return nil
}

func (m *Manager) measure() LogicalSize {
	if m.layout == nil {
		return LogicalSize{}
	}
	w, h := m.layout()
	if math.IsNaN(w) || math.IsNaN(h) {
		return LogicalSize{}
	}
	return LogicalSize{Width: int(math.Round(w)), Height: int(math.Round(h))}
}

// Resize re-reads the layout and reallocates both layers. Content is
// discarded when the size changes; use ResizeProtected to keep it.
// A layout with no area leaves the current buffers in place and returns
// ErrInvalidSize.
func (m *Manager) Resize() error {
	if err := m.check(); err != nil {
		return err
	}
	size := m.measure()
	if size.Empty() {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, size.Width, size.Height)
	}
	if err := m.surface.resize(size); err != nil {
		return err
	}
	if err := m.overlay.resize(size); err != nil {
		return err
	}
	gg.Logger().Debug("surface: resized", "width", size.Width, "height", size.Height)
	return nil
}

// ResizeProtected resizes while preserving committed content: it takes a
// snapshot, resizes, fills the new buffer with the background color and
// restores the snapshot at the origin.
func (m *Manager) ResizeProtected() error {
	if err := m.check(); err != nil {
		return err
	}
	snap := capture(m.surface)
	if err := m.Resize(); err != nil {
		return err
	}
	m.surface.Fill(m.background)
	snap.restoreInto(m.surface)
	m.overlay.Clear()
	return nil
}

// SetScale moves both layers to a new device scale, as when the window
// moves to a display with a different pixel density. Committed content is
// resampled so it keeps its logical position.
func (m *Manager) SetScale(scale float64) error {
	if err := m.check(); err != nil {
		return err
	}
	if scale <= 0 {
		return fmt.Errorf("%w: scale=%v", ErrInvalidSize, scale)
	}
	if scale == m.scale {
		return nil
	}
	snap := capture(m.surface)
	if err := m.surface.rescale(scale); err != nil {
		return err
	}
	if err := m.overlay.rescale(scale); err != nil {
		return err
	}
	m.scale = scale
	m.surface.Fill(m.background)
	snap.restoreInto(m.surface)
	gg.Logger().Info("surface: rescaled", "scale", scale, "snapshot", snap.ID())
	return nil
}

// Snapshot captures the committed layer.
func (m *Manager) Snapshot() (*Snapshot, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	s := capture(m.surface)
	gg.Logger().Debug("surface: snapshot", "id", s.ID(), "width", s.size.Width, "height", s.size.Height)
	return s, nil
}

// Restore overwrites the committed layer with s anchored at the origin.
// Pixels beyond the snapshot's extent are left as they are.
func (m *Manager) Restore(s *Snapshot) error {
	if err := m.check(); err != nil {
		return err
	}
	if s == nil {
		return ErrNilSnapshot
	}
	s.restoreInto(m.surface)
	return nil
}

// Clear fills the committed layer with the background color and records
// the result as the baseline.
func (m *Manager) Clear() error {
	if err := m.check(); err != nil {
		return err
	}
	m.surface.Fill(m.background)
	m.overlay.Clear()
	m.baseline = capture(m.surface)
	gg.Logger().Debug("surface: cleared", "baseline", m.baseline.ID())
	return nil
}

// Commit records the current committed layer as the baseline.
func (m *Manager) Commit() error {
	s, err := m.Snapshot()
	if err != nil {
		return err
	}
	m.baseline = s
	return nil
}

// Baseline returns the most recently committed snapshot: the committed
// layer as of the last finished stroke or media commit, without any
// in-progress stroke or selection decoration. Hosts read it to persist or
// compare drawings; the Manager itself never restores from it.
func (m *Manager) Baseline() *Snapshot {
	return m.baseline
}

// ClearOverlay makes the overlay layer fully transparent.
func (m *Manager) ClearOverlay() {
	if m.check() != nil {
		return
	}
	m.overlay.Clear()
}

// Surface returns the committed layer, or nil before Initialize.
func (m *Manager) Surface() *Layer {
	return m.surface
}

// Overlay returns the overlay layer, or nil before Initialize.
func (m *Manager) Overlay() *Layer {
	return m.overlay
}

// Size returns the current logical extent.
func (m *Manager) Size() LogicalSize {
	if m.surface == nil {
		return LogicalSize{}
	}
	return m.surface.size
}

// Scale returns the device scale.
func (m *Manager) Scale() float64 {
	return m.scale
}

// Background returns the fill color used by Initialize and Clear.
func (m *Manager) Background() gg.RGBA {
	return m.background
}

// Teardown releases both layers. It is idempotent.
func (m *Manager) Teardown() error {
	if m.closed {
		return nil
	}
	m.closed = true
	var errs []error
	if m.surface != nil {
		errs = append(errs, m.surface.close())
	}
	if m.overlay != nil {
		errs = append(errs, m.overlay.close())
	}
	m.baseline = nil
	gg.Logger().Info("surface: torn down")
	return errors.Join(errs...)
}
