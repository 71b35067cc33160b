package core

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated grids start empty.
	Dead Cell = iota
	// Alive marks a populated cell.
	Alive
)

// String returns a lower-case name for the cell state.
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}
