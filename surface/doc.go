// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface owns the two rasters of a drawing surface: the committed
// layer that holds finished strokes and media, and the overlay layer that
// holds transient decoration such as the brush hover indicator.
//
// # Layers
//
// A Layer wraps a gg.Context allocated at LogicalSize x DeviceScale physical
// pixels. gg applies the device matrix internally, so every drawing call
// issued through a Layer uses logical coordinates.
//
// # Snapshots
//
// Resizing a layer reallocates its pixel buffer and discards its content.
// Manager.ResizeProtected brackets every resize with a snapshot and a
// restore so committed content survives window changes:
//
//	snap, _ := m.Snapshot()
//	_ = m.Resize()
//	_ = m.Restore(snap)
//
// A snapshot is an exact premultiplied copy, so restoring a snapshot taken
// from the same layer is a pixel no-op. Snapshots taken at a different device
// scale are resampled so that content keeps its logical position.
//
// # Lifecycle
//
// A Manager is created inert. Initialize acquires both layers; Teardown
// releases them. A Manager whose layout yields no area cannot acquire its
// layers and reports ErrSurfaceUnavailable.
package surface
