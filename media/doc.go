// Package media embeds a single raster or animated element in the drawing
// surface and lets the user select, drag and corner-resize it.
//
// # Placement
//
// A decoded Source is placed at its natural aspect ratio, scaled down
// uniformly so it fits within Limits.MaxFraction of the surface in both
// dimensions, and centered.
//
// # Compositing
//
// The element is not a separate layer. When it is placed, the Transform
// snapshots the committed layer as its underlay; every render restores the
// underlay and draws the element on top. Releasing a drag or resize commits
// the undecorated composite as the surface baseline. Flatten bakes the
// element into the underlay for good, after which free drawing continues on
// the committed layer.
//
// # Interaction
//
// PressAt hit-tests the resize handle first, then the body. The handle is
// a square hotzone centered on the bottom-right corner. Resizing is
// aspect-locked and stops at Limits.MinSize in either dimension.
//
// # Decoding
//
// Decode sniffs the content type with h2non/filetype and decodes PNG, JPEG,
// GIF, WebP, BMP and TIFF images. Animated GIF is the supported video
// container; other video containers return ErrUnsupportedFormat.
package media
