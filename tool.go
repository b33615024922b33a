package paintly

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/paintly/hover"
	"github.com/gogpu/paintly/stroke"
	"github.com/lucasb-eyer/go-colorful"
)

// Brush size bounds and defaults, in logical pixels.
const (
	MinSize     = 1
	MaxSize     = 50
	DefaultSize = 5
)

// DefaultColor is the initial brush color.
const DefaultColor = "#3b82f6"

// ErrInvalidTool is returned by SetTool and Tool.Validate.
var ErrInvalidTool = errors.New("paintly: invalid tool")

// ToolKind selects between painting and erasing.
type ToolKind uint8

const (
	// Brush paints with the tool color.
	Brush ToolKind = iota

	// Eraser makes covered pixels transparent.
	Eraser
)

// String returns "brush" or "eraser".
func (k ToolKind) String() string {
	switch k {
	case Brush:
		return "brush"
	case Eraser:
		return "eraser"
	default:
		return fmt.Sprintf("ToolKind(%d)", k)
	}
}

// ParseToolKind parses "brush" or "eraser", case-insensitively.
func ParseToolKind(s string) (ToolKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brush":
		return Brush, nil
	case "eraser":
		return Eraser, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidTool, s)
	}
}

// Tool is the active drawing tool. Color is a hex string such as "#3b82f6"
// and is ignored by the eraser. Size is the stroke width in logical pixels.
type Tool struct {
	Kind  ToolKind
	Color string
	Size  float64
}

// DefaultTool returns the initial tool: a 5px brush in DefaultColor.
func DefaultTool() Tool {
	return Tool{Kind: Brush, Color: DefaultColor, Size: DefaultSize}
}

// Validate checks the kind, the size range and, for the brush, the color
// syntax. The eraser accepts any color, including none.
func (t Tool) Validate() error {
	if t.Kind != Brush && t.Kind != Eraser {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidTool, t.Kind)
	}
	if t.Kind == Brush {
		if _, err := gg.ParseHex(t.Color); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTool, err)
		}
	}
	if math.IsNaN(t.Size) || t.Size < MinSize || t.Size > MaxSize {
		return fmt.Errorf("%w: size %v not in [%d, %d]", ErrInvalidTool, t.Size, MinSize, MaxSize)
	}
	return nil
}

// ClampSize limits s to [MinSize, MaxSize].
func ClampSize(s float64) float64 {
	if math.IsNaN(s) {
		return DefaultSize
	}
	return math.Max(MinSize, math.Min(MaxSize, s))
}

// normalized returns t with its color rewritten as lowercase #rrggbb.
func (t Tool) normalized() Tool {
	c, err := gg.ParseHex(t.Color)
	if err != nil {
		return t
	}
	t.Color = colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
	return t
}

func (t Tool) style(erase bool) stroke.Style {
	return stroke.Style{
		Erase: erase || t.Kind == Eraser,
		Color: gg.Hex(t.Color),
		Width: t.Size,
	}
}

func (t Tool) indicator() hover.Indicator {
	c := hover.Neutral
	if t.Kind == Brush {
		c = gg.Hex(t.Color)
	}
	return hover.Indicator{Color: c, Size: t.Size}
}

// Contrast is the text color a host should use on top of a swatch.
type Contrast uint8

const (
	// Dark text suits light swatches.
	Dark Contrast = iota

	// Light text suits dark swatches.
	Light
)

// String returns "dark" or "light".
func (c Contrast) String() string {
	if c == Light {
		return "light"
	}
	return "dark"
}

// Hex returns the text color: "#000000" for Dark, "#ffffff" for Light.
func (c Contrast) Hex() string {
	if c == Light {
		return "#ffffff"
	}
	return "#000000"
}

// ContrastColor picks dark or light text for a swatch of the given hex
// color using YIQ luma: 0.299R + 0.587G + 0.114B >= 128 selects Dark.
// Unparseable colors select Light.
func ContrastColor(hex string) Contrast {
	c, err := gg.ParseHex(hex)
	if err != nil {
		return Light
	}
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.RGB255()
	yiq := (int(r)*299 + int(g)*587 + int(b)*114) / 1000
	if yiq >= 128 {
		return Dark
	}
	return Light
}
