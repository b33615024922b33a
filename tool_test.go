package paintly

import (
	"errors"
	"math"
	"testing"
)

func TestToolValidate(t *testing.T) {
	tests := []struct {
		name    string
		tool    Tool
		wantErr bool
	}{
		{"default", DefaultTool(), false},
		{"short hex", Tool{Kind: Brush, Color: "#abc", Size: 1}, false},
		{"no hash", Tool{Kind: Brush, Color: "3b82f6", Size: 50}, false},
		{"eraser", Tool{Kind: Eraser, Color: "#000", Size: 20}, false},
		{"eraser without color", Tool{Kind: Eraser, Size: 6}, false},
		{"eraser ignores bad color", Tool{Kind: Eraser, Color: "nope", Size: 6}, false},
		{"eraser too large", Tool{Kind: Eraser, Size: 51}, true},
		{"bad color", Tool{Kind: Brush, Color: "#12345", Size: 5}, true},
		{"empty color", Tool{Kind: Brush, Size: 5}, true},
		{"too small", Tool{Kind: Brush, Color: "#000", Size: 0.5}, true},
		{"too large", Tool{Kind: Brush, Color: "#000", Size: 51}, true},
		{"nan", Tool{Kind: Brush, Color: "#000", Size: math.NaN()}, true},
		{"unknown kind", Tool{Kind: 7, Color: "#000", Size: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tool.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTool) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidTool)
			}
		})
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, MinSize},
		{-3, MinSize},
		{1, 1},
		{12.5, 12.5},
		{50, 50},
		{80, MaxSize},
		{math.NaN(), DefaultSize},
	}
	for _, tt := range tests {
		if got := ClampSize(tt.in); got != tt.want {
			t.Errorf("ClampSize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseToolKind(t *testing.T) {
	for _, k := range []ToolKind{Brush, Eraser} {
		got, err := ParseToolKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseToolKind(%q) = %v, %v, want %v", k.String(), got, err, k)
		}
	}
	if got, err := ParseToolKind(" Eraser "); err != nil || got != Eraser {
		t.Errorf("ParseToolKind(\" Eraser \") = %v, %v, want eraser", got, err)
	}
	if _, err := ParseToolKind("pencil"); !errors.Is(err, ErrInvalidTool) {
		t.Errorf("ParseToolKind(pencil) error = %v, want %v", err, ErrInvalidTool)
	}
	if got := ToolKind(9).String(); got != "ToolKind(9)" {
		t.Errorf("String() = %q, want %q", got, "ToolKind(9)")
	}
}

func TestToolNormalized(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#ABC", "#aabbcc"},
		{"3B82F6", "#3b82f6"},
		{"#3b82f6ff", "#3b82f6"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		got := Tool{Kind: Brush, Color: tt.in, Size: 5}.normalized().Color
		if got != tt.want {
			t.Errorf("normalized(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToolIndicator(t *testing.T) {
	brush := Tool{Kind: Brush, Color: "#ff0000", Size: 12}.indicator()
	if brush.Color.R != 1 || brush.Color.G != 0 || brush.Size != 12 {
		t.Errorf("brush indicator = %+v, want red size 12", brush)
	}
	eraser := Tool{Kind: Eraser, Color: "#ff0000", Size: 30}.indicator()
	if eraser.Color.R != 0 || eraser.Color.A != 1 || eraser.Size != 30 {
		t.Errorf("eraser indicator = %+v, want neutral black size 30", eraser)
	}
}

func TestContrastColor(t *testing.T) {
	tests := []struct {
		hex  string
		want Contrast
	}{
		{"#000000", Light},
		{"#ffffff", Dark},
		{"#3b82f6", Light},
		{"#ffff00", Dark},
		{"#808080", Dark},
		{"#7f7f7f", Light},
		{"fff", Dark},
		{"not a color", Light},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := ContrastColor(tt.hex); got != tt.want {
				t.Errorf("ContrastColor(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
	if Dark.Hex() != "#000000" || Light.Hex() != "#ffffff" {
		t.Errorf("Hex() = %q, %q, want #000000, #ffffff", Dark.Hex(), Light.Hex())
	}
}
