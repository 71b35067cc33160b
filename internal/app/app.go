// Package app drives a simulation run from a text input to a text output.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"lifegrid/internal/codec"
	"lifegrid/internal/config"
	"lifegrid/internal/metrics"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

// Summary reports the outcome of a run.
type Summary struct {
	// Generations is the number of generations computed after the seed.
	Generations int
	// Population is the number of alive cells in the last generation.
	Population int
	// StableAt is the first generation identical to its predecessor, or -1.
	StableAt int
}

// Runner loads a seed grid, emits it and every following generation.
type Runner struct {
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Recorder
}

// New constructs a Runner. rec may be nil.
func New(cfg config.Config, log *slog.Logger, rec *metrics.Recorder) *Runner {
	return &Runner{cfg: cfg, log: log, metrics: rec}
}

// RunFiles reads the input file and writes all generations to the output
// file. The output file is only created once the input has been decoded.
func (r *Runner) RunFiles(ctx context.Context, inPath, outPath string) (Summary, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Summary{StableAt: -1}, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	input, err := codec.Decode(in, r.cfg.Markers())
	if err != nil {
		return Summary{StableAt: -1}, fmt.Errorf("decode %s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return Summary{StableAt: -1}, fmt.Errorf("open output: %w", err)
	}
	sum, err := r.Simulate(ctx, input, out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return sum, err
}

// Run decodes an input document from in and writes every generation to out.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	input, err := codec.Decode(in, r.cfg.Markers())
	if err != nil {
		return Summary{StableAt: -1}, err
	}
	return r.Simulate(ctx, input, out)
}

// Simulate emits input.Grid followed by input.Generations successors.
func (r *Runner) Simulate(ctx context.Context, input *codec.Input, out io.Writer) (Summary, error) {
	sum := Summary{StableAt: -1}
	markers := r.cfg.Markers()
	w := bufio.NewWriter(out)

	sim := life.New(input.Grid, life.WithWorkers(r.cfg.Workers))
	size := sim.Size()
	r.log.Info("simulation starting",
		"width", size.W,
		"height", size.H,
		"generations", input.Generations,
		"cases", input.Cases,
		"config", r.cfg.Parameters(),
	)

	prev := sim.Grid().Clone()
	sum.Population = prev.Population()
	if r.metrics != nil {
		r.metrics.Seeded(sum.Population)
	}
	if err := codec.Encode(w, prev, markers); err != nil {
		return sum, fmt.Errorf("write generation 0: %w", err)
	}

	for gen := 1; gen <= input.Generations; gen++ {
		if err := sim.Step(ctx); err != nil {
			_ = w.Flush()
			return sum, fmt.Errorf("generation %d: %w", gen, err)
		}
		cur := sim.Grid()
		if err := codec.Encode(w, cur, markers); err != nil {
			return sum, fmt.Errorf("write generation %d: %w", gen, err)
		}
		r.observe(&sum, gen, prev, cur)
		prev = reuse(prev, cur)
	}

	if err := w.Flush(); err != nil {
		return sum, fmt.Errorf("flush output: %w", err)
	}
	r.log.Info("simulation finished",
		"generations", sum.Generations,
		"population", sum.Population,
		"stable_at", sum.StableAt,
	)
	return sum, nil
}

func (r *Runner) observe(sum *Summary, gen int, prev, cur *core.Grid) {
	births, deaths := life.Diff(prev, cur)
	sum.Generations = gen
	sum.Population = cur.Population()
	if sum.StableAt < 0 && births == 0 && deaths == 0 {
		sum.StableAt = gen
		r.log.Debug("grid stable", "generation", gen)
	}
	if r.metrics != nil {
		r.metrics.Generation(sum.Population, births, deaths)
	}
	r.log.Debug("generation",
		"generation", gen,
		"population", sum.Population,
		"births", births,
		"deaths", deaths,
	)
}

// reuse copies src into dst, which must have the same size, and returns dst.
func reuse(dst, src *core.Grid) *core.Grid {
	copy(dst.Cells(), src.Cells())
	return dst
}

