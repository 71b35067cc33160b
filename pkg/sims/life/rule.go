package life

import "lifegrid/pkg/core"

// neighborhood lists the eight (row, col) offsets around a cell.
var neighborhood = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// LiveNeighbors counts the Alive cells among the eight neighbours of
// (row, col). Positions beyond the grid edge count as Dead.
func LiveNeighbors(g *core.Grid, row, col int) int {
	n := 0
	for _, d := range neighborhood {
		if g.CellOrDead(row+d[0], col+d[1]) == core.Alive {
			n++
		}
	}
	return n
}

// Rule applies B3/S23 to a cell with the given number of live neighbours.
func Rule(cell core.Cell, liveNeighbors int) core.Cell {
	if liveNeighbors == 3 || (cell == core.Alive && liveNeighbors == 2) {
		return core.Alive
	}
	return core.Dead
}
