package core

import "fmt"

// Grid stores a fixed-size rectangle of cells in row-major order.
type Grid struct {
	w, h  int
	cells []Cell
}

// MaxCells bounds width*height of a single grid.
const MaxCells = 1 << 28

// NewGrid allocates a grid with every cell Dead.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, width, height, MaxCells)
	}
	return &Grid{w: width, h: height, cells: make([]Cell, width*height)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice in row-major order so callers can read and
// write values directly. Index with row*Width()+col.
func (g *Grid) Cells() []Cell { return g.cells }

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.inBounds(row, col) {
		return Dead, g.outOfBounds(row, col)
	}
	return g.cells[row*g.w+col], nil
}

// Set stores cell at (row, col). The grid is left untouched on error.
func (g *Grid) Set(row, col int, cell Cell) error {
	if !g.inBounds(row, col) {
		return g.outOfBounds(row, col)
	}
	g.cells[row*g.w+col] = cell
	return nil
}

// CellOrDead returns the cell at (row, col), or Dead when the position lies
// outside the grid. Unlike Get it never fails: the area beyond the edges is
// permanently empty.
func (g *Grid) CellOrDead(row, col int) Cell {
	if !g.inBounds(row, col) {
		return Dead
	}
	return g.cells[row*g.w+col]
}

// Population counts the Alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// SameSize reports whether both grids have identical dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return other != nil && g.w == other.w && g.h == other.h
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameSize(other) {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfBounds, row, col, g.w, g.h)
}
