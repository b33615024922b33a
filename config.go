package paintly

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/paintly/media"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("paintly: invalid config")

// Config holds the engine settings that can be loaded from TOML.
//
// Example file:
//
//	background = "#ffffff"
//
//	[tool]
//	kind = "brush"
//	color = "#3b82f6"
//	size = 5
//
//	[media]
//	max_fraction = 0.8
//	min_size = 50
//	handle_size = 8
//	max_pixels = 67108864
//
//	[export]
//	format = "png"
//	quality = 90
//	name = "paintly-drawing"
type Config struct {
	Background string       `toml:"background"`
	Tool       ToolConfig   `toml:"tool"`
	Media      MediaConfig  `toml:"media"`
	Export     ExportConfig `toml:"export"`
}

// ToolConfig is the initial tool.
type ToolConfig struct {
	Kind  string  `toml:"kind"`
	Color string  `toml:"color"`
	Size  float64 `toml:"size"`
}

// MediaConfig bounds media placement and resizing.
type MediaConfig struct {
	MaxFraction float64 `toml:"max_fraction"`
	MinSize     float64 `toml:"min_size"`
	HandleSize  float64 `toml:"handle_size"`
	MaxPixels   int     `toml:"max_pixels"`
}

// ExportConfig selects the export encoding and file name.
type ExportConfig struct {
	Format  string `toml:"format"`
	Quality int    `toml:"quality"`
	Name    string `toml:"name"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	l := media.DefaultLimits()
	return Config{
		Background: "#ffffff",
		Tool: ToolConfig{
			Kind:  Brush.String(),
			Color: DefaultColor,
			Size:  DefaultSize,
		},
		Media: MediaConfig{
			MaxFraction: l.MaxFraction,
			MinSize:     l.MinSize,
			HandleSize:  l.HandleSize,
			MaxPixels:   l.MaxPixels,
		},
		Export: ExportConfig{
			Format:  FormatPNG.String(),
			Quality: 90,
			Name:    "paintly-drawing",
		},
	}
}

// ParseConfig decodes TOML on top of DefaultConfig and validates the
// result. Keys that do not map to a Config field are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("paintly: read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	if _, err := gg.ParseHex(c.Background); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalidConfig, err)
	}
	tool, err := c.tool()
	if err != nil {
		return fmt.Errorf("%w: tool: %w", ErrInvalidConfig, err)
	}
	if err := tool.Validate(); err != nil {
		return fmt.Errorf("%w: tool: %w", ErrInvalidConfig, err)
	}
	if err := c.limits().Validate(); err != nil {
		return fmt.Errorf("%w: media: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("%w: export: %w", ErrInvalidConfig, err)
	}
	if c.Export.Quality < 1 || c.Export.Quality > 100 {
		return fmt.Errorf("%w: export: quality %d not in [1, 100]", ErrInvalidConfig, c.Export.Quality)
	}
	name := strings.TrimSpace(c.Export.Name)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: export: bad file name %q", ErrInvalidConfig, c.Export.Name)
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func (c Config) tool() (Tool, error) {
	kind, err := ParseToolKind(c.Tool.Kind)
	if err != nil {
		return Tool{}, err
	}
	return Tool{Kind: kind, Color: c.Tool.Color, Size: c.Tool.Size}, nil
}

func (c Config) limits() media.Limits {
	return media.Limits{
		MaxFraction: c.Media.MaxFraction,
		MinSize:     c.Media.MinSize,
		HandleSize:  c.Media.HandleSize,
		MaxPixels:   c.Media.MaxPixels,
	}
}

func (c Config) background() gg.RGBA {
	return gg.Hex(c.Background)
}
