package render

import (
	"image/color"
	"math"

	"lifedots/internal/core"
)

// Surface is a drawing target sized in pixels.
type Surface interface {
	Size() (w, h int)
	// Clear resets every pixel to transparent.
	Clear()
	FillCircle(cx, cy, r float64, c color.Color)
}

// ColorSource yields fill colours for live cells.
type ColorSource interface {
	Color() color.RGBA
}

// Renderer draws live cells as dots, one per cell rectangle.
type Renderer struct {
	colors ColorSource
}

// NewRenderer returns a Renderer that picks a fresh colour from colors for
// every live cell on every frame.
func NewRenderer(colors ColorSource) *Renderer {
	return &Renderer{colors: colors}
}

// Render clears s and draws a filled circle centred in the cell rectangle of
// each live cell of g. The radius leaves a one pixel margin so neighbouring
// dots never touch.
func (r *Renderer) Render(s Surface, g *core.Grid) {
	s.Clear()
	w, h := s.Size()
	cols, rows := g.Cols(), g.Rows()
	cellW := float64(w) / float64(cols)
	cellH := float64(h) / float64(rows)
	radius := CellRadius(cellW, cellH)
	if radius <= 0 {
		return
	}
	for i, c := range g.Cells() {
		if c != core.Alive {
			continue
		}
		row, col := i/cols, i%cols
		x := float64(col)*cellW + cellW/2
		y := float64(row)*cellH + cellH/2
		s.FillCircle(x, y, radius, r.colors.Color())
	}
}

// CellRadius returns the dot radius for a cell of the given size.
func CellRadius(cellW, cellH float64) float64 {
	return math.Min(cellW, cellH)/2 - 1
}
