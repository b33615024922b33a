package blend

import (
	"image"
	"testing"
)

// TestMulDiv255 tests the multiply and divide by 255 helper function.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * max", 0, 255, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"100 * 100", 100, 100, 39},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv255(tt.a, tt.b); got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name     string
		src, dst [4]byte
		want     [4]byte
	}{
		{"opaque source", [4]byte{255, 0, 0, 255}, [4]byte{0, 0, 255, 255}, [4]byte{255, 0, 0, 255}},
		{"transparent source", [4]byte{0, 0, 0, 0}, [4]byte{0, 0, 255, 255}, [4]byte{0, 0, 255, 255}},
		{"half red over blue", [4]byte{128, 0, 0, 128}, [4]byte{0, 0, 255, 255}, [4]byte{128, 0, 127, 255}},
		{"over transparent", [4]byte{10, 20, 30, 40}, [4]byte{0, 0, 0, 0}, [4]byte{10, 20, 30, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := sourceOver(tt.src[0], tt.src[1], tt.src[2], tt.src[3], tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			if got := [4]byte{r, g, b, a}; got != tt.want {
				t.Errorf("sourceOver(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestEraseClamp(t *testing.T) {
	tests := []struct {
		name     string
		coverage byte
		dst      [4]byte
		want     [4]byte
	}{
		{"full coverage", 255, [4]byte{200, 100, 50, 255}, [4]byte{0, 0, 0, 0}},
		{"no coverage", 0, [4]byte{200, 100, 50, 255}, [4]byte{200, 100, 50, 255}},
		{"half coverage", 128, [4]byte{254, 128, 0, 255}, [4]byte{127, 64, 0, 127}},
		{"already below limit", 128, [4]byte{50, 50, 50, 100}, [4]byte{50, 50, 50, 100}},
		{"transparent", 200, [4]byte{0, 0, 0, 0}, [4]byte{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := eraseClamp(255, 255, 255, tt.coverage, tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			if got := [4]byte{r, g, b, a}; got != tt.want {
				t.Errorf("eraseClamp(%d, %v) = %v, want %v", tt.coverage, tt.dst, got, tt.want)
			}
		})
	}
}

func TestEraseClampIdempotent(t *testing.T) {
	for cov := 0; cov < 256; cov += 15 {
		for da := 0; da < 256; da += 17 {
			dr := byte(da / 2)
			r1, g1, b1, a1 := eraseClamp(0, 0, 0, byte(cov), dr, dr, dr, byte(da))
			r2, g2, b2, a2 := eraseClamp(0, 0, 0, byte(cov), r1, g1, b1, a1)
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Fatalf("cov=%d da=%d: second pass %v != first pass %v",
					cov, da, [4]byte{r2, g2, b2, a2}, [4]byte{r1, g1, b1, a1})
			}
			if r1 > a1 {
				t.Fatalf("cov=%d da=%d: premultiplied invariant broken: r=%d > a=%d", cov, da, r1, a1)
			}
		}
	}
}

func TestRectClipsAndSkips(t *testing.T) {
	const w, h = 4, 3
	dst := make([]byte, w*h*4)
	src := make([]byte, w*h*4)
	for i := range dst {
		dst[i] = 255
	}
	// Cover every pixel fully.
	for i := 3; i < len(src); i += 4 {
		src[i] = 255
	}

	Rect(dst, src, w, h, image.Rect(1, 1, 10, 10), EraseClamp)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := dst[(y*w+x)*4+3]
			inside := x >= 1 && y >= 1
			if inside && a != 0 {
				t.Errorf("pixel(%d,%d) alpha = %d, want 0", x, y, a)
			}
			if !inside && a != 255 {
				t.Errorf("pixel(%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestAllShortBuffers(t *testing.T) {
	dst := []byte{1, 2, 3, 4}
	All(dst, nil, 1, 1, SourceOver)
	if dst[0] != 1 || dst[3] != 4 {
		t.Errorf("All() with short src modified dst: %v", dst)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{SourceOver, "SourceOver"},
		{EraseClamp, "EraseClamp"},
		{Mode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestFuncFor(t *testing.T) {
	src := [4]byte{0, 0, 0, 255}
	dst := [4]byte{200, 100, 50, 255}
	tests := []struct {
		m    Mode
		want [4]byte
	}{
		{SourceOver, [4]byte{0, 0, 0, 255}},
		{EraseClamp, [4]byte{0, 0, 0, 0}},
		{Mode(99), [4]byte{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		r, g, b, a := FuncFor(tt.m)(src[0], src[1], src[2], src[3], dst[0], dst[1], dst[2], dst[3])
		if got := [4]byte{r, g, b, a}; got != tt.want {
			t.Errorf("FuncFor(%v) = %v, want %v", tt.m, got, tt.want)
		}
	}
}
