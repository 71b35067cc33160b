package life

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"lifegrid/pkg/core"
)

// ErrSizeMismatch is returned when the destination grid differs in size from the source.
var ErrSizeMismatch = errors.New("grid size mismatch")

// ErrAliased is returned when source and destination are the same grid.
var ErrAliased = errors.New("destination aliases source grid")

// NextGeneration returns a new grid holding the successor of cur. cur is not
// modified.
func NextGeneration(cur *core.Grid) *core.Grid {
	nxt, err := core.NewGrid(cur.Width(), cur.Height())
	if err != nil {
		// cur was built by NewGrid, so its dimensions are already valid.
		panic(err)
	}
	stepRows(nxt, cur, 0, cur.Height())
	return nxt
}

// NextGenerationInto writes the successor of cur into dst, overwriting every
// cell of dst.
func NextGenerationInto(dst, cur *core.Grid) error {
	if err := checkBuffers(dst, cur); err != nil {
		return err
	}
	stepRows(dst, cur, 0, cur.Height())
	return nil
}

func checkBuffers(dst, cur *core.Grid) error {
	if dst == cur {
		return ErrAliased
	}
	if !dst.SameSize(cur) {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch,
			cur.Width(), cur.Height(), dst.Width(), dst.Height())
	}
	return nil
}

// stepRows computes rows [from, to) of dst from cur.
func stepRows(dst, cur *core.Grid, from, to int) {
	w := cur.Width()
	src := cur.Cells()
	out := dst.Cells()
	for i := from; i < to; i++ {
		for j := 0; j < w; j++ {
			idx := i*w + j
			out[idx] = Rule(src[idx], LiveNeighbors(cur, i, j))
		}
	}
}

// Diff counts cells that were born and cells that died between two
// generations of the same size.
func Diff(prev, next *core.Grid) (births, deaths int) {
	if !prev.SameSize(next) {
		return 0, 0
	}
	a, b := prev.Cells(), next.Cells()
	for i := range a {
		switch {
		case a[i] == core.Dead && b[i] == core.Alive:
			births++
		case a[i] == core.Alive && b[i] == core.Dead:
			deaths++
		}
	}
	return births, deaths
}

// Option configures a Life stepper.
type Option func(*Life)

// WithWorkers splits the rows of each generation across n goroutines.
// Values below one are treated as one.
func WithWorkers(n int) Option {
	return func(l *Life) {
		if n < 1 {
			n = 1
		}
		l.workers = n
	}
}

// Life advances a grid generation by generation, alternating between two
// buffers of identical size.
type Life struct {
	cur, nxt *core.Grid
	gen      int
	workers  int
}

// New returns a stepper starting from a copy of seed.
func New(seed *core.Grid, opts ...Option) *Life {
	l := &Life{cur: seed.Clone(), nxt: seed.Clone(), workers: 1}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid returns the current generation. It is overwritten by the Step after
// next, so clone it to keep it longer.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns the index of the current generation, starting at zero.
func (l *Life) Generation() int { return l.gen }

// Step advances the simulation by one generation. It returns once every row
// of the new generation has been written. If ctx is cancelled first, the
// partial buffer is discarded and Grid keeps the previous generation.
func (l *Life) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h := l.cur.Height()
	workers := min(l.workers, h)
	if workers <= 1 {
		stepRows(l.nxt, l.cur, 0, h)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for _, span := range splitRows(h, workers) {
			g.Go(func() error {
				for row := span[0]; row < span[1]; row++ {
					if err := gctx.Err(); err != nil {
						return err
					}
					stepRows(l.nxt, l.cur, row, row+1)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
	return nil
}

// splitRows divides h rows into n contiguous [from, to) spans whose sizes
// differ by at most one.
func splitRows(h, n int) [][2]int {
	spans := make([][2]int, 0, n)
	each, extra := h/n, h%n
	from := 0
	for i := 0; i < n; i++ {
		size := each
		if i < extra {
			size++
		}
		spans = append(spans, [2]int{from, from + size})
		from += size
	}
	return spans
}
