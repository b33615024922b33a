// Package stroke renders freehand strokes onto a surface layer.
//
// A stroke is a sequence of pointer samples. Rather than joining samples
// with straight lines, the Renderer uses midpoint quadratic smoothing: each
// new sample p closes the curve from the previous anchor to the midpoint of
// the last sample and p, with the last sample as control point. Consecutive
// curves share their endpoints and tangents, so the stroke is continuous and
// free of corners at sample points.
//
//	Begin(p0)          anchor = p0, last = p0
//	Move(p1)           quad(anchor, last, mid(last, p1)); anchor = mid, last = p1
//	End()              line(anchor, last), or a dot for a single sample
//
// Brush strokes paint source-over with the style color. Eraser strokes are
// rendered as coverage into a scratch buffer and applied with
// blend.EraseClamp, which makes covered pixels transparent and is
// idempotent where segments overlap.
package stroke
