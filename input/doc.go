// Package input converts host pointer events into logical surface
// coordinates.
//
// The host delivers gpucontext.PointerEvent values in client (display)
// pixels. A Normalizer maps them onto the logical coordinate space of the
// drawing surface, compensating for the surface's on-screen offset, for any
// stretching between its display size and its backing buffer, and for the
// device scale applied to the backing buffer:
//
//	scale   = bufferPixels / (deviceScale * displayPixels)
//	logical = (client - rectOrigin) * scale
//
// Only the primary touch pointer is honored. Secondary touches are reported
// as ignored samples so that multi-finger gestures do not produce strokes.
//
// Normalization never fails: when the surface is detached or has a
// degenerate size, the sample carries the sentinel point (0, 0) and
// Degenerate is set.
package input
