package stroke

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/paintly/surface"
)

var brushBlue = gg.Hex("#3b82f6")

func newTestSurface(t *testing.T, w, h, scale float64) *surface.Manager {
	t.Helper()
	m := surface.New(func() (float64, float64) { return w, h }, scale)
	if err := m.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { _ = m.Teardown() })
	return m
}

func closeTo(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func draw(t *testing.T, r *Renderer, style Style, pts ...gg.Point) {
	t.Helper()
	var st State
	r.Begin(&st, pts[0], style)
	for _, p := range pts[1:] {
		if err := r.Move(&st, p); err != nil {
			t.Fatalf("Move(%v) error = %v", p, err)
		}
	}
	if err := r.End(&st); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if st.Active {
		t.Error("State.Active = true after End")
	}
}

func TestBrushScenario(t *testing.T) {
	m := newTestSurface(t, 200, 100, 1)
	r := NewRenderer(m.Surface())
	defer func() { _ = r.Close() }()

	draw(t, r, Style{Color: brushBlue, Width: 5}, gg.Pt(0, 0), gg.Pt(100, 0))

	img := m.Surface().Image()
	got := img.RGBAAt(50, 0)
	want := color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	if !closeTo(got.R, want.R, 2) || !closeTo(got.G, want.G, 2) || !closeTo(got.B, want.B, 2) || got.A != 255 {
		t.Errorf("pixel(50,0) = %v, want ~%v", got, want)
	}
	if got := img.RGBAAt(50, 4); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel(50,4) = %v, want background", got)
	}
}

func TestSingleSampleDot(t *testing.T) {
	m := newTestSurface(t, 40, 40, 1)
	r := NewRenderer(m.Surface())
	defer func() { _ = r.Close() }()

	var st State
	r.Begin(&st, gg.Pt(20, 20), Style{Color: gg.Black, Width: 10})
	if got := m.Surface().Image().RGBAAt(20, 20); got.R != 255 {
		t.Errorf("Begin drew pixel(20,20) = %v, want untouched", got)
	}
	if err := r.End(&st); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	img := m.Surface().Image()
	if got := img.RGBAAt(20, 20); got.R > 2 {
		t.Errorf("dot center = %v, want black", got)
	}
	if got := img.RGBAAt(23, 20); got.R > 2 {
		t.Errorf("dot interior = %v, want black", got)
	}
	if got := img.RGBAAt(27, 20); got.R != 255 {
		t.Errorf("outside dot = %v, want white", got)
	}
}

func TestZeroLengthMoveDrawsDot(t *testing.T) {
	m := newTestSurface(t, 40, 40, 1)
	r := NewRenderer(m.Surface())
	defer func() { _ = r.Close() }()

	var st State
	r.Begin(&st, gg.Pt(10, 10), Style{Color: gg.Black, Width: 6})
	if err := r.Move(&st, gg.Pt(10, 10)); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if got := m.Surface().Image().RGBAAt(10, 10); got.R > 2 {
		t.Errorf("pixel(10,10) = %v, want black", got)
	}
	_ = r.End(&st)
}

func TestStrokeContinuity(t *testing.T) {
	m := newTestSurface(t, 200, 200, 1)
	r := NewRenderer(m.Surface())
	defer func() { _ = r.Close() }()

	pts := []gg.Point{
		gg.Pt(20, 20), gg.Pt(60, 80), gg.Pt(100, 30), gg.Pt(140, 150),
		gg.Pt(180, 60), gg.Pt(120, 180), gg.Pt(40, 140),
	}
	draw(t, r, Style{Color: gg.Black, Width: 4}, pts...)

	img := m.Surface().Image()
	check := func(p gg.Point) {
		t.Helper()
		if got := img.RGBAAt(int(p.X), int(p.Y)); got.R > 128 {
			t.Errorf("pixel at %v = %v, want covered", p, got)
		}
	}

	anchor, last := pts[0], pts[0]
	for _, p := range pts[1:] {
		mid := last.Lerp(p, 0.5)
		for i := 0; i <= 20; i++ {
			u := float64(i) / 20
			a := anchor.Lerp(last, u)
			b := last.Lerp(mid, u)
			check(a.Lerp(b, u))
		}
		anchor, last = mid, p
	}
	for i := 0; i <= 20; i++ {
		check(anchor.Lerp(last, float64(i)/20))
	}
}

func TestMoveWithoutBegin(t *testing.T) {
	m := newTestSurface(t, 20, 20, 1)
	r := NewRenderer(m.Surface())
	before := m.Surface().Image()

	var st State
	if err := r.Move(&st, gg.Pt(5, 5)); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if err := r.End(&st); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if !bytes.Equal(before.Pix, m.Surface().Image().Pix) {
		t.Error("idle Move/End changed pixels")
	}
}

func TestEraserMakesTransparent(t *testing.T) {
	m := newTestSurface(t, 100, 60, 1)
	r := NewRenderer(m.Surface())
	defer func() { _ = r.Close() }()

	draw(t, r, Style{Erase: true, Width: 10}, gg.Pt(10, 30), gg.Pt(50, 30), gg.Pt(90, 30))

	img := m.Surface().Image()
	if got := img.RGBAAt(50, 30); got.A != 0 {
		t.Errorf("erased pixel alpha = %d, want 0", got.A)
	}
	if got := img.RGBAAt(50, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("untouched pixel = %v, want white", got)
	}
}

func TestEraserIdempotent(t *testing.T) {
	m := newTestSurface(t, 100, 60, 1)
	r := NewRenderer(m.Surface())
	defer func() { _ = r.Close() }()

	path := []gg.Point{gg.Pt(10, 20), gg.Pt(40, 40), gg.Pt(70, 15), gg.Pt(90, 45)}
	style := Style{Erase: true, Width: 7}

	draw(t, r, style, path...)
	once := m.Surface().Image()
	draw(t, r, style, path...)
	twice := m.Surface().Image()

	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Error("erasing the same path twice changed pixels")
	}
}

func TestEraserHiDPI(t *testing.T) {
	m := newTestSurface(t, 50, 50, 2)
	r := NewRenderer(m.Surface())
	defer func() { _ = r.Close() }()

	draw(t, r, Style{Erase: true, Width: 8}, gg.Pt(25, 25))

	img := m.Surface().Image()
	if got := img.RGBAAt(50, 50); got.A != 0 {
		t.Errorf("erased center alpha = %d, want 0", got.A)
	}
	if got := img.RGBAAt(10, 10); got.A != 255 {
		t.Errorf("corner alpha = %d, want 255", got.A)
	}
}

func TestScratchFollowsResize(t *testing.T) {
	sz := [2]float64{40, 40}
	m := surface.New(func() (float64, float64) { return sz[0], sz[1] }, 1)
	if err := m.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer func() { _ = m.Teardown() }()
	r := NewRenderer(m.Surface())
	defer func() { _ = r.Close() }()

	draw(t, r, Style{Erase: true, Width: 4}, gg.Pt(5, 5))
	sz = [2]float64{80, 60}
	if err := m.ResizeProtected(); err != nil {
		t.Fatalf("ResizeProtected() error = %v", err)
	}
	draw(t, r, Style{Erase: true, Width: 4}, gg.Pt(70, 50))

	if got := m.Surface().Image().RGBAAt(70, 50); got.A != 0 {
		t.Errorf("erased pixel alpha after resize = %d, want 0", got.A)
	}
	if r.scratch.Width() != 80 || r.scratch.Height() != 60 {
		t.Errorf("scratch = %dx%d, want 80x60", r.scratch.Width(), r.scratch.Height())
	}
}
