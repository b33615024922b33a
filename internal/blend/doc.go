// Package blend implements the pixel compositing used by the drawing
// surface: Porter-Duff source-over for presenting layers and the
// erase-clamp operator used by the eraser tool.
//
// All operations work on premultiplied RGBA bytes laid out the way
// gg.Pixmap stores them: four bytes per pixel, rows packed without padding.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend
