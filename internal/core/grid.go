package core

import (
	"errors"
	"fmt"
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)

// DefaultDensity is the probability that a freshly seeded cell starts alive.
const DefaultDensity = 0.2

// ErrEmptyPattern is returned by ParseGrid when no rows are supplied.
var ErrEmptyPattern = errors.New("core: empty pattern")

// Grid stores a fixed-size matrix of cells in row-major order.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates an all-dead grid. Non-positive dimensions panic.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", rows, cols))
	}
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// RandomGrid returns a grid where every cell is independently alive with
// probability density.
func RandomGrid(rows, cols int, density float64, rng *RNG) *Grid {
	if density < 0 || density > 1 {
		panic(fmt.Sprintf("core: density %v outside [0,1]", density))
	}
	g := NewGrid(rows, cols)
	for i := range g.cells {
		if rng.Chance(density) {
			g.cells[i] = Alive
		}
	}
	return g
}

// ParseGrid builds a grid from rows of '#' (alive) and '.' (dead) runes.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyPattern
	}
	g := NewGrid(len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("core: row %d has %d columns, want %d", r, len(line), g.cols)
		}
		for c, ch := range []byte(line) {
			switch ch {
			case '#':
				g.Set(r, c, Alive)
			case '.':
			default:
				return nil, fmt.Errorf("core: unexpected %q at row %d col %d", ch, r, c)
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions with W as columns and H as rows.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// At returns the cell at (row, col). Out-of-range coordinates panic.
func (g *Grid) At(row, col int) Cell { return g.cells[g.index(row, col)] }

// Set stores a cell value at (row, col).
func (g *Grid) Set(row, col int, c Cell) { g.cells[g.index(row, col)] = c }

// Alive reports whether the cell at (row, col) is populated.
func (g *Grid) Alive(row, col int) bool { return g.At(row, col) == Alive }

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// LiveNeighbors counts the live cells among the eight neighbours of (row, col),
// wrapping around the grid edges.
func (g *Grid) LiveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := g.Wrap(row+dr, col+dc)
			n += int(g.cells[r*g.cols+c])
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: append([]Cell(nil), g.cells...)}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Advance computes the next generation of g without modifying it.
func Advance(g *Grid) *Grid {
	next := NewGrid(g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			neighbors := g.LiveNeighbors(r, c)
			alive := g.cells[r*g.cols+c] == Alive
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				next.cells[r*g.cols+c] = Alive
			}
		}
	}
	return next
}
