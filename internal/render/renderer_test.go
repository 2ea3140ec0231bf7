package render

import (
	"image/color"
	"math"
	"testing"

	"lifedots/internal/core"
)

type circle struct {
	x, y, r float64
	c       color.Color
}

type recordingSurface struct {
	w, h    int
	clears  int
	circles []circle
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.circles = append(s.circles, circle{x: cx, y: cy, r: r, c: c})
}

func TestRenderAllDeadOnlyClears(t *testing.T) {
	surface := &recordingSurface{w: 800, h: 400}
	NewRenderer(core.NewRNG(1)).Render(surface, core.NewGrid(40, 80))

	if surface.clears != 1 {
		t.Fatalf("expected one clear, got %d", surface.clears)
	}
	if len(surface.circles) != 0 {
		t.Fatalf("expected no circles, got %d", len(surface.circles))
	}
}

func TestRenderPlacesCirclesInCells(t *testing.T) {
	g, err := core.ParseGrid(
		"#...",
		"..#.",
	)
	if err != nil {
		t.Fatal(err)
	}
	surface := &recordingSurface{w: 80, h: 30}
	NewRenderer(core.NewRNG(1)).Render(surface, g)

	if len(surface.circles) != 2 {
		t.Fatalf("expected 2 circles, got %d", len(surface.circles))
	}
	// Cells are 20x15, so the radius is min(20,15)/2 - 1.
	want := []circle{{x: 10, y: 7.5, r: 6.5}, {x: 50, y: 22.5, r: 6.5}}
	for i, w := range want {
		got := surface.circles[i]
		if math.Abs(got.x-w.x) > 1e-9 || math.Abs(got.y-w.y) > 1e-9 || math.Abs(got.r-w.r) > 1e-9 {
			t.Fatalf("circle %d = (%.2f,%.2f r=%.2f), expected (%.2f,%.2f r=%.2f)", i, got.x, got.y, got.r, w.x, w.y, w.r)
		}
		if _, _, _, a := got.c.RGBA(); a != 0xffff {
			t.Fatalf("circle %d colour is not opaque", i)
		}
	}
}

func TestRenderCirclesDoNotTouch(t *testing.T) {
	g := core.RandomGrid(6, 9, 1, core.NewRNG(3))
	surface := &recordingSurface{w: 90, h: 48}
	NewRenderer(core.NewRNG(3)).Render(surface, g)

	cellW, cellH := 10.0, 8.0
	for _, c := range surface.circles {
		if c.r*2 >= math.Min(cellW, cellH) {
			t.Fatalf("diameter %.2f does not fit a %.0fx%.0f cell with a margin", c.r*2, cellW, cellH)
		}
	}
	if len(surface.circles) != 6*9 {
		t.Fatalf("expected %d circles, got %d", 6*9, len(surface.circles))
	}
}

func TestRenderSkipsDegenerateRadius(t *testing.T) {
	g := core.RandomGrid(40, 80, 1, core.NewRNG(0))
	surface := &recordingSurface{w: 80, h: 40}
	NewRenderer(core.NewRNG(0)).Render(surface, g)
	if len(surface.circles) != 0 {
		t.Fatalf("1px cells should draw nothing, got %d circles", len(surface.circles))
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(20, 20)
	red := color.RGBA{R: 255, A: 255}
	r.FillCircle(10, 10, 6, red)

	if got := r.Image().RGBAAt(10, 10); got.A < 250 || got.R < 250 || got.G != 0 {
		t.Fatalf("centre pixel = %v, expected close to %v", got, red)
	}
	if got := r.Image().RGBAAt(1, 1); got.A != 0 {
		t.Fatalf("corner pixel should stay transparent, got %v", got)
	}

	r.Clear()
	if got := r.Image().RGBAAt(10, 10); got.A != 0 {
		t.Fatalf("Clear left %v at the centre", got)
	}
}

func TestRasterCompositeUsesBackground(t *testing.T) {
	r := NewRaster(4, 4)
	bg := PaletteFor(core.ThemeDark).Background
	out := r.Composite(bg)
	if got := out.RGBAAt(2, 2); got != bg {
		t.Fatalf("composite pixel = %v, expected background %v", got, bg)
	}
}

func TestPaletteForThemes(t *testing.T) {
	if PaletteFor(core.ThemeLight) == PaletteFor(core.ThemeDark) {
		t.Fatal("light and dark palettes should differ")
	}
}
