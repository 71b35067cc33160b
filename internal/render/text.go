package render

import (
	"unicode/utf8"

	"lifegrid/pkg/core"
)

// AppendRow converts one row of cells into marker characters appended to buf.
func AppendRow(buf []byte, cells []core.Cell, on, off rune) []byte {
	for _, c := range cells {
		if c == core.Alive {
			buf = utf8.AppendRune(buf, on)
			continue
		}
		buf = utf8.AppendRune(buf, off)
	}
	return buf
}

// AppendGrid appends every row of g, each terminated by a newline, followed
// by one empty separator line.
func AppendGrid(buf []byte, g *core.Grid, on, off rune) []byte {
	w := g.Width()
	cells := g.Cells()
	for row := 0; row < g.Height(); row++ {
		buf = AppendRow(buf, cells[row*w:(row+1)*w], on, off)
		buf = append(buf, '\n')
	}
	return append(buf, '\n')
}
