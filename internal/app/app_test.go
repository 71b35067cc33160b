package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/codec"
	"lifegrid/internal/config"
	"lifegrid/internal/logging"
	"lifegrid/internal/metrics"
)

const blinkerInput = "1\n3 3\n2\n+++\nXXX\n+++\n"

const blinkerOutput = "+++\nXXX\n+++\n\n" +
	"+X+\n+X+\n+X+\n\n" +
	"+++\nXXX\n+++\n\n"

func newRunner(t *testing.T, cfg config.Config) *Runner {
	t.Helper()
	require.NoError(t, cfg.Validate())
	return New(cfg, logging.NewNop(), nil)
}

func TestRunEmitsEveryGeneration(t *testing.T) {
	var out bytes.Buffer
	sum, err := newRunner(t, config.Default()).Run(context.Background(), strings.NewReader(blinkerInput), &out)
	require.NoError(t, err)
	assert.Equal(t, blinkerOutput, out.String())
	assert.Equal(t, Summary{Generations: 2, Population: 3, StableAt: -1}, sum)
}

func TestRunZeroGenerations(t *testing.T) {
	var out bytes.Buffer
	sum, err := newRunner(t, config.Default()).Run(context.Background(),
		strings.NewReader("1\n1 4\n0\nX+X+\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "X+X+\n\n", out.String())
	assert.Equal(t, Summary{Generations: 0, Population: 2, StableAt: -1}, sum)
}

func TestRunDetectsStableGrid(t *testing.T) {
	var out bytes.Buffer
	sum, err := newRunner(t, config.Default()).Run(context.Background(),
		strings.NewReader("1\n3 3\n3\nXX+\nXX+\n+++\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.StableAt)
	assert.Equal(t, 4, sum.Population)
	assert.Equal(t, strings.Repeat("XX+\nXX+\n+++\n\n", 4), out.String())
}

func TestRunWithWorkersMatchesSequential(t *testing.T) {
	var seed bytes.Buffer
	input := randomInput(t, 40, 30, 25)
	require.NoError(t, codec.EncodeInput(&seed, input, codec.DefaultMarkers()))

	var seq, par bytes.Buffer
	_, err := newRunner(t, config.Default()).Run(context.Background(), bytes.NewReader(seed.Bytes()), &seq)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Workers = 6
	_, err = newRunner(t, cfg).Run(context.Background(), bytes.NewReader(seed.Bytes()), &par)
	require.NoError(t, err)

	assert.Equal(t, seq.String(), par.String())
	assert.Equal(t, 26, strings.Count(seq.String(), "\n\n"))
}

func TestRunCustomMarkers(t *testing.T) {
	cfg := config.Default()
	cfg.Alive, cfg.Dead = "#", "."
	var out bytes.Buffer
	_, err := newRunner(t, cfg).Run(context.Background(), strings.NewReader("0\n3 3\n1\n...\n###\n...\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "...\n###\n...\n\n.#.\n.#.\n.#.\n\n", out.String())
}

func TestRunRejectsBadInput(t *testing.T) {
	var out bytes.Buffer
	_, err := newRunner(t, config.Default()).Run(context.Background(), strings.NewReader("1\n3 3\n2\n+++\n"), &out)
	assert.ErrorIs(t, err, codec.ErrMalformedRow)
	assert.Empty(t, out.String())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	_, err := newRunner(t, config.Default()).Run(ctx, strings.NewReader(blinkerInput), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "+++\nXXX\n+++\n\n", out.String(), "generation 0 is flushed")
}

func TestRunRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	r := New(config.Default(), logging.NewNop(), rec)
	_, err := r.Run(context.Background(), strings.NewReader(blinkerInput), &bytes.Buffer{})
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(rec.Registry(), "life_generations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(`
# HELP life_births_total Total number of dead cells that became alive
# TYPE life_births_total counter
life_births_total 4
# HELP life_deaths_total Total number of alive cells that died
# TYPE life_deaths_total counter
life_deaths_total 4
# HELP life_generations_total Total number of generations computed
# TYPE life_generations_total counter
life_generations_total 2
`), "life_births_total", "life_deaths_total", "life_generations_total"))
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "blinker.in")
	outPath := filepath.Join(dir, "blinker.out")
	require.NoError(t, os.WriteFile(inPath, []byte(blinkerInput), 0o644))

	sum, err := newRunner(t, config.Default()).RunFiles(context.Background(), inPath, outPath)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Generations)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, blinkerOutput, string(got))
}

func TestRunFilesMissingInputCreatesNoOutput(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "never.out")

	_, err := newRunner(t, config.Default()).RunFiles(context.Background(), filepath.Join(dir, "missing.in"), outPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, "open input")

	_, statErr := os.Stat(outPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRunFilesUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "blinker.in")
	require.NoError(t, os.WriteFile(inPath, []byte(blinkerInput), 0o644))

	_, err := newRunner(t, config.Default()).RunFiles(context.Background(), inPath, filepath.Join(dir, "no", "such", "dir.out"))
	assert.ErrorContains(t, err, "open output")
}
