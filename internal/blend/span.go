package blend

import "image"

// Rect composites src onto dst inside r. Both buffers hold width x height
// premultiplied RGBA pixels. r is clipped to the buffer bounds.
func Rect(dst, src []byte, width, height int, r image.Rectangle, m Mode) {
	r = r.Intersect(image.Rect(0, 0, width, height))
	if r.Empty() || len(dst) < width*height*4 || len(src) < width*height*4 {
		return
	}
	fn := FuncFor(m)
	stride := width * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y*stride + r.Min.X*4
		end := y*stride + r.Max.X*4
		for i := row; i < end; i += 4 {
			sa := src[i+3]
			if sa == 0 {
				continue
			}
			dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(
				src[i], src[i+1], src[i+2], sa,
				dst[i], dst[i+1], dst[i+2], dst[i+3])
		}
	}
}

// All composites src onto dst over the whole buffer.
func All(dst, src []byte, width, height int, m Mode) {
	Rect(dst, src, width, height, image.Rect(0, 0, width, height), m)
}
