package input

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

func fixed(r Rect, bw, bh int) (BoundsFunc, BufferFunc) {
	return func() (Rect, bool) { return r, true },
		func() (int, int) { return bw, bh }
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizerPoint(t *testing.T) {
	tests := []struct {
		name   string
		scale  float64
		rect   Rect
		bw, bh int
		x, y   float64
		want   gg.Point
	}{
		{"identity", 1, Rect{0, 0, 500, 400}, 500, 400, 10, 20, gg.Pt(10, 20)},
		{"offset", 1, Rect{30, 40, 500, 400}, 500, 400, 130, 240, gg.Pt(100, 200)},
		{"hidpi", 2, Rect{0, 0, 500, 400}, 1000, 800, 250, 100, gg.Pt(250, 100)},
		{"stretched", 1, Rect{0, 0, 250, 200}, 500, 400, 100, 100, gg.Pt(200, 200)},
		{"hidpi offset", 3, Rect{10, 10, 100, 50}, 300, 150, 60, 35, gg.Pt(50, 25)},
		{"outside", 1, Rect{100, 100, 50, 50}, 50, 50, 90, 80, gg.Pt(-10, -20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, buf := fixed(tt.rect, tt.bw, tt.bh)
			n := NewNormalizer(tt.scale, b, buf)
			got, ok := n.Point(tt.x, tt.y)
			if !ok {
				t.Fatal("Point() ok = false, want true")
			}
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("Point(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNormalizerDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		bounds BoundsFunc
		buffer BufferFunc
	}{
		{"nil funcs", nil, nil},
		{"detached", func() (Rect, bool) { return Rect{0, 0, 100, 100}, false }, func() (int, int) { return 100, 100 }},
		{"zero width", func() (Rect, bool) { return Rect{0, 0, 0, 100}, true }, func() (int, int) { return 100, 100 }},
		{"zero height", func() (Rect, bool) { return Rect{0, 0, 100, 0}, true }, func() (int, int) { return 100, 100 }},
		{"zero buffer", func() (Rect, bool) { return Rect{0, 0, 100, 100}, true }, func() (int, int) { return 0, 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer(1, tt.bounds, tt.buffer)
			s := n.Normalize(gpucontext.PointerEvent{
				Type:        gpucontext.PointerMove,
				X:           42,
				Y:           17,
				PointerType: gpucontext.PointerTypeMouse,
				IsPrimary:   true,
			})
			if !s.Degenerate {
				t.Error("Degenerate = false, want true")
			}
			if s.Point != (gg.Point{}) {
				t.Errorf("Point = %v, want (0,0)", s.Point)
			}
			for _, v := range []float64{s.Point.X, s.Point.Y} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("Point = %v, want finite", s.Point)
				}
			}
		})
	}
}

func TestNormalizeTouch(t *testing.T) {
	b, buf := fixed(Rect{0, 0, 100, 100}, 100, 100)
	n := NewNormalizer(1, b, buf)

	tests := []struct {
		name        string
		ev          gpucontext.PointerEvent
		wantIgnored bool
		wantPrevent bool
	}{
		{"primary down", gpucontext.PointerEvent{Type: gpucontext.PointerDown, PointerType: gpucontext.PointerTypeTouch, IsPrimary: true}, false, true},
		{"primary move", gpucontext.PointerEvent{Type: gpucontext.PointerMove, PointerType: gpucontext.PointerTypeTouch, IsPrimary: true}, false, true},
		{"primary up", gpucontext.PointerEvent{Type: gpucontext.PointerUp, PointerType: gpucontext.PointerTypeTouch, IsPrimary: true}, false, false},
		{"secondary down", gpucontext.PointerEvent{Type: gpucontext.PointerDown, PointerType: gpucontext.PointerTypeTouch, PointerID: 2}, true, false},
		{"mouse down", gpucontext.PointerEvent{Type: gpucontext.PointerDown, PointerType: gpucontext.PointerTypeMouse, IsPrimary: true}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := n.Normalize(tt.ev)
			if s.Ignored != tt.wantIgnored {
				t.Errorf("Ignored = %v, want %v", s.Ignored, tt.wantIgnored)
			}
			if s.PreventDefault != tt.wantPrevent {
				t.Errorf("PreventDefault = %v, want %v", s.PreventDefault, tt.wantPrevent)
			}
		})
	}
}

func TestNormalizePenEraser(t *testing.T) {
	b, buf := fixed(Rect{0, 0, 100, 100}, 100, 100)
	n := NewNormalizer(1, b, buf)

	s := n.Normalize(gpucontext.PointerEvent{
		Type:        gpucontext.PointerDown,
		PointerType: gpucontext.PointerTypePen,
		IsPrimary:   true,
		Button:      gpucontext.ButtonEraser,
		Buttons:     gpucontext.ButtonsEraser,
	})
	if !s.Eraser {
		t.Error("Eraser = false, want true for pen eraser button")
	}

	s = n.Normalize(gpucontext.PointerEvent{
		Type:        gpucontext.PointerDown,
		PointerType: gpucontext.PointerTypeMouse,
		IsPrimary:   true,
		Buttons:     gpucontext.ButtonsEraser,
	})
	if s.Eraser {
		t.Error("Eraser = true, want false for mouse")
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if r.Empty() {
		t.Error("Empty() = true, want false")
	}
	if !r.Contains(10, 10) {
		t.Error("Contains(10,10) = false, want true")
	}
	if r.Contains(30, 15) {
		t.Error("Contains(30,15) = true, want false")
	}
	if (Rect{Width: 5}).Empty() != true {
		t.Error("Empty() = false for zero height, want true")
	}
	if got := r.Origin(); got != gg.Pt(10, 10) {
		t.Errorf("Origin() = %v, want (10,10)", got)
	}
}
