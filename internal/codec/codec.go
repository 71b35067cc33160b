// Package codec reads and writes the plain-text grid protocol.
//
// An input starts with four whitespace-separated integers: a case count (kept
// but unused), the grid height, the grid width and the number of generations
// to simulate. Anything after the fourth integer on its line is ignored. The
// next height lines each hold exactly width marker characters.
//
// Output is a sequence of grids, each written as height lines of width
// markers followed by an empty line.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"lifegrid/internal/render"
	"lifegrid/pkg/core"
)

// maxLine bounds a single input line.
const maxLine = 16 << 20

// Markers are the characters used for alive and dead cells.
type Markers struct {
	Alive rune
	Dead  rune
}

// DefaultMarkers returns X for alive cells and + for dead ones.
func DefaultMarkers() Markers {
	return Markers{Alive: 'X', Dead: '+'}
}

// Validate reports whether the markers can be written and read back unambiguously.
func (m Markers) Validate() error {
	for _, r := range []rune{m.Alive, m.Dead} {
		if r == utf8.RuneError || !utf8.ValidRune(r) || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return fmt.Errorf("%w: %q is not a printable character", ErrInvalidMarkers, r)
		}
	}
	if m.Alive == m.Dead {
		return fmt.Errorf("%w: alive and dead are both %q", ErrInvalidMarkers, m.Alive)
	}
	return nil
}

// Input is a decoded simulation request.
type Input struct {
	Cases       int
	Generations int
	Grid        *core.Grid
}

// Decode parses an input document.
func Decode(r io.Reader, m Markers) (*Input, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	line := 0
	var header []int
	for len(header) < 4 {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read header: %w", err)
			}
			return nil, fmt.Errorf("%w: expected 4 integers, found %d", ErrMalformedHeader, len(header))
		}
		line++
		for _, field := range strings.Fields(sc.Text()) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedHeader, line, field)
			}
			header = append(header, v)
			if len(header) == 4 {
				break
			}
		}
	}

	in := &Input{Cases: header[0], Generations: header[3]}
	height, width := header[1], header[2]
	if in.Generations < 0 {
		return nil, fmt.Errorf("%w: negative generation count %d", ErrMalformedHeader, in.Generations)
	}
	if width > maxLine {
		return nil, fmt.Errorf("%w: width %d exceeds the %d byte line limit", ErrMalformedHeader, width, maxLine)
	}
	g, err := core.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	cells := g.Cells()
	for row := 0; row < height; row++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read row %d: %w", row, err)
			}
			return nil, fmt.Errorf("%w: line %d: expected %d rows, found %d", ErrMalformedRow, line+1, height, row)
		}
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if n := utf8.RuneCountInString(text); n != width {
			return nil, fmt.Errorf("%w: line %d: expected %d cells, found %d", ErrMalformedRow, line, width, n)
		}
		col := 0
		for _, ch := range text {
			switch ch {
			case m.Alive:
				cells[row*width+col] = core.Alive
			case m.Dead:
				cells[row*width+col] = core.Dead
			default:
				return nil, fmt.Errorf("%w: line %d column %d: unexpected %q", ErrMalformedRow, line, col+1, ch)
			}
			col++
		}
	}
	in.Grid = g
	return in, nil
}

// Encode writes one grid followed by its separator line.
func Encode(w io.Writer, g *core.Grid, m Markers) error {
	_, err := w.Write(render.AppendGrid(nil, g, m.Alive, m.Dead))
	return err
}

// EncodeInput writes in using the input protocol accepted by Decode.
func EncodeInput(w io.Writer, in *Input, m Markers) error {
	if err := m.Validate(); err != nil {
		return err
	}
	g := in.Grid
	buf := fmt.Appendf(nil, "%d\n%d %d\n%d\n", in.Cases, g.Height(), g.Width(), in.Generations)
	cells := g.Cells()
	for row := 0; row < g.Height(); row++ {
		buf = render.AppendRow(buf, cells[row*g.Width():(row+1)*g.Width()], m.Alive, m.Dead)
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}
