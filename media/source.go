package media

import (
	"errors"
	"image"
	"time"

	"github.com/gogpu/gg"
)

// defaultFrameDelay is used for frames that declare no delay.
const defaultFrameDelay = 100 * time.Millisecond

// Source is decoded media content: one frame for an image, several timed
// frames for a video.
type Source struct {
	kind   Kind
	frames []image.Image
	delays []time.Duration
	bufs   []*gg.ImageBuf
	width  int
	height int
}

// NewImageSource wraps a still image.
func NewImageSource(img image.Image) (*Source, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmpty
	}
	b := img.Bounds()
	return &Source{
		kind:   KindImage,
		frames: []image.Image{img},
		delays: []time.Duration{0},
		bufs:   make([]*gg.ImageBuf, 1),
		width:  b.Dx(),
		height: b.Dy(),
	}, nil
}

// NewVideoSource wraps a sequence of equally sized frames. Delays shorter
// than or equal to zero are replaced with a default of 100ms. A missing
// delay slice is treated as all defaults.
func NewVideoSource(frames []image.Image, delays []time.Duration) (*Source, error) {
	if len(frames) == 0 || frames[0] == nil || frames[0].Bounds().Empty() {
		return nil, ErrEmpty
	}
	if delays != nil && len(delays) != len(frames) {
		return nil, errors.New("media: frame and delay counts differ")
	}
	d := make([]time.Duration, len(frames))
	for i := range d {
		d[i] = defaultFrameDelay
		if delays != nil && delays[i] > 0 {
			d[i] = delays[i]
		}
	}
	b := frames[0].Bounds()
	return &Source{
		kind:   KindVideo,
		frames: frames,
		delays: d,
		bufs:   make([]*gg.ImageBuf, len(frames)),
		width:  b.Dx(),
		height: b.Dy(),
	}, nil
}

// Kind returns the media kind.
func (s *Source) Kind() Kind {
	return s.kind
}

// Size returns the natural size in pixels.
func (s *Source) Size() (width, height int) {
	return s.width, s.height
}

// FrameCount returns the number of frames; 1 for images.
func (s *Source) FrameCount() int {
	return len(s.frames)
}

// Frame returns frame i.
func (s *Source) Frame(i int) image.Image {
	return s.frames[i]
}

// Delay returns how long frame i is shown.
func (s *Source) Delay(i int) time.Duration {
	return s.delays[i]
}

// buf returns frame i converted for gg, converting on first use.
func (s *Source) buf(i int) *gg.ImageBuf {
	if s.bufs[i] == nil {
		s.bufs[i] = gg.ImageBufFromImage(s.frames[i])
	}
	return s.bufs[i]
}
