package paintly

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/paintly/internal/blend"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an export image encoding.
type Format uint8

const (
	// FormatPNG keeps transparency. This is the default.
	FormatPNG Format = iota

	// FormatJPEG is lossy and opaque; erased areas show the background.
	FormatJPEG

	// FormatBMP is opaque; erased areas show the background.
	FormatBMP

	// FormatTIFF keeps transparency.
	FormatTIFF
)

// String returns the format name as used in configuration files.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatTIFF:
		return "tif"
	default:
		return f.String()
	}
}

// Opaque reports whether the encoding drops the alpha channel.
func (f Format) Opaque() bool {
	return f == FormatJPEG || f == FormatBMP
}

// ParseFormat parses a format name or common extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("paintly: unknown export format %q", s)
	}
}

// Export encodes the committed surface at full buffer resolution in the
// configured format. The overlay and any selection decoration are not
// included.
func (e *Engine) Export(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return err
	}
	f, _ := ParseFormat(e.cfg.Export.Format)
	return e.encode(w, f)
}

// ExportFile writes the export into dir as <name>.<ext> and returns the
// file path.
func (e *Engine) ExportFile(dir string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return "", err
	}
	f, _ := ParseFormat(e.cfg.Export.Format)
	path := filepath.Join(dir, e.cfg.Export.Name+"."+f.Extension())

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("paintly: export: %w", err)
	}
	if err := e.encode(file, f); err != nil {
		_ = file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("paintly: export: %w", err)
	}
	Logger().Info("paintly: exported", "path", path, "format", f.String())
	return path, nil
}

// ExportImage returns a copy of the committed surface as it would be
// exported, with premultiplied channels.
func (e *Engine) ExportImage() (*image.RGBA, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(); err != nil {
		return nil, err
	}
	return e.cleanImage(), nil
}

func (e *Engine) encode(w io.Writer, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = e.withClean(func() error {
			return e.surf.Surface().Context().EncodePNG(w)
		})
	case FormatJPEG:
		err = jpeg.Encode(w, e.opaqueImage(), &jpeg.Options{Quality: e.cfg.Export.Quality})
	case FormatBMP:
		err = bmp.Encode(w, e.opaqueImage())
	case FormatTIFF:
		err = tiff.Encode(w, e.cleanImage(), &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("paintly: unknown export format %d", f)
	}
	if err != nil {
		return fmt.Errorf("paintly: export %s: %w", f, err)
	}
	return nil
}

// withClean runs fn while the committed layer shows no selection
// decoration.
func (e *Engine) withClean(fn func() error) error {
	if !e.media.Selected() {
		return fn()
	}
	if err := e.media.Render(false); err != nil {
		return err
	}
	ferr := fn()
	if err := e.media.Render(true); err != nil {
		e.warn("media render", err)
	}
	return ferr
}

func (e *Engine) cleanImage() *image.RGBA {
	var img *image.RGBA
	err := e.withClean(func() error {
		img = e.surf.Surface().Image()
		return nil
	})
	if err != nil {
		e.warn("clean render", err)
		img = e.surf.Surface().Image()
	}
	return img
}

// opaqueImage composites the clean surface over the background color.
func (e *Engine) opaqueImage() *image.RGBA {
	src := e.cleanImage()
	bg := e.cfg.background()
	dst := image.NewRGBA(src.Rect)
	r := uint8(bg.R*255 + 0.5)
	g := uint8(bg.G*255 + 0.5)
	b := uint8(bg.B*255 + 0.5)
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = r, g, b, 255
	}
	blend.All(dst.Pix, src.Pix, src.Rect.Dx(), src.Rect.Dy(), blend.SourceOver)
	return dst
}
