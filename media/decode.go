package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"time"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Decoding errors.
var (
	// ErrEmpty is returned for empty input or images without pixels.
	ErrEmpty = errors.New("media: no data")

	// ErrUnsupportedFormat is returned when the content type is not
	// recognized or cannot be decoded.
	ErrUnsupportedFormat = errors.New("media: unsupported format")

	// ErrKindMismatch is returned when the content does not match the
	// requested kind, e.g. a PNG supplied as video.
	ErrKindMismatch = errors.New("media: content does not match kind")

	// ErrDecode wraps decoder failures for recognized formats.
	ErrDecode = errors.New("media: decode failed")

	// ErrTooLarge is returned, together with ErrDecode, when the declared
	// dimensions exceed the pixel budget.
	ErrTooLarge = errors.New("media: dimensions exceed pixel limit")
)

// DefaultMaxPixels is the pixel budget used by Decode: 64 Mpx, or 256 MiB
// of RGBA.
const DefaultMaxPixels = 64 << 20

// imageSubtypes lists the image MIME subtypes with a registered decoder.
var imageSubtypes = map[string]bool{
	"png":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
	"bmp":  true,
	"tiff": true,
}

// Detect sniffs the content type. It returns the kind the content would
// be placed as and its MIME type.
func Detect(data []byte) (Kind, string, error) {
	if len(data) == 0 {
		return 0, "", ErrEmpty
	}
	t, err := filetype.Match(data)
	if err != nil || t == filetype.Unknown {
		return 0, "", ErrUnsupportedFormat
	}
	switch t.MIME.Type {
	case "image":
		if t.MIME.Subtype == "gif" && animated(data) {
			return KindVideo, t.MIME.Value, nil
		}
		return KindImage, t.MIME.Value, nil
	case "video":
		return KindVideo, t.MIME.Value, nil
	default:
		return 0, t.MIME.Value, fmt.Errorf("%w: %s", ErrUnsupportedFormat, t.MIME.Value)
	}
}

// Decode decodes data as the given kind within DefaultMaxPixels.
//
// KindImage accepts any supported image; for an animated GIF the first
// frame is used. KindVideo accepts GIF, still or animated. Video
// containers such as MP4 or WebM are recognized but not decodable and
// return ErrUnsupportedFormat.
func Decode(data []byte, kind Kind) (*Source, error) {
	return DecodeLimit(data, kind, DefaultMaxPixels)
}

// DecodeLimit is Decode with an explicit pixel budget. The image header is
// read first; inputs declaring more than maxPixels pixels fail with
// ErrDecode and ErrTooLarge. A non-positive maxPixels means
// DefaultMaxPixels.
func DecodeLimit(data []byte, kind Kind, maxPixels int) (*Source, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	t, err := filetype.Match(data)
	if err != nil || t == filetype.Unknown {
		return nil, ErrUnsupportedFormat
	}
	mime := t.MIME.Value

	switch kind {
	case KindImage:
		if t.MIME.Type != "image" {
			return nil, fmt.Errorf("%w: %s as %s", ErrKindMismatch, mime, kind)
		}
		if !imageSubtypes[t.MIME.Subtype] {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mime)
		}
		if err := checkDimensions(data, mime, maxPixels); err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecode, mime, err)
		}
		return NewImageSource(img)

	case KindVideo:
		switch {
		case t.MIME.Type == "image" && t.MIME.Subtype == "gif":
			return decodeGIF(data, maxPixels)
		case t.MIME.Type == "video":
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mime)
		default:
			return nil, fmt.Errorf("%w: %s as %s", ErrKindMismatch, mime, kind)
		}

	default:
		return nil, fmt.Errorf("media: unknown kind %d", kind)
	}
}

// checkDimensions reads only the image header and rejects images larger
// than maxPixels.
func checkDimensions(data []byte, mime string, maxPixels int) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, mime, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return fmt.Errorf("%w: %w: %s %dx%d, limit %d",
			ErrDecode, ErrTooLarge, mime, cfg.Width, cfg.Height, maxPixels)
	}
	return nil
}

// animated reports whether a GIF stream holds more than one frame.
func animated(data []byte) bool {
	if checkDimensions(data, "image/gif", DefaultMaxPixels) != nil {
		return false
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	return err == nil && len(g.Image) > 1
}

// decodeGIF composes GIF frames onto a full-size canvas, honoring each
// frame's disposal method, so every resulting frame is self-contained.
func decodeGIF(data []byte, maxPixels int) (*Source, error) {
	if err := checkDimensions(data, "image/gif", maxPixels); err != nil {
		return nil, err
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: image/gif: %w", ErrDecode, err)
	}
	if len(g.Image) == 0 {
		return nil, ErrEmpty
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		for _, fr := range g.Image {
			bounds = bounds.Union(fr.Bounds())
		}
	}
	// Every frame is composed into its own full-size RGBA copy.
	if int64(bounds.Dx())*int64(bounds.Dy())*int64(len(g.Image)) > int64(maxPixels) {
		return nil, fmt.Errorf("%w: %w: image/gif %dx%d x%d frames, limit %d",
			ErrDecode, ErrTooLarge, bounds.Dx(), bounds.Dy(), len(g.Image), maxPixels)
	}

	canvas := image.NewRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))
	delays := make([]time.Duration, 0, len(g.Image))

	for i, fr := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		xdraw.Draw(canvas, fr.Bounds(), fr, fr.Bounds().Min, xdraw.Over)
		frames = append(frames, cloneRGBA(canvas))

		var delay time.Duration
		if i < len(g.Delay) {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		delays = append(delays, delay)

		switch disposal {
		case gif.DisposalBackground:
			xdraw.Draw(canvas, fr.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return NewVideoSource(frames, delays)
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}
