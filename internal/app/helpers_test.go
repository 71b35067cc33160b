package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lifegrid/internal/codec"
	"lifegrid/pkg/core"
)

func randomInput(t *testing.T, w, h, generations int) *codec.Input {
	t.Helper()
	g, err := core.NewGrid(w, h)
	require.NoError(t, err)
	core.FillGrid(core.NewRNG(int64(w*h)), g, 0.35)
	return &codec.Input{Cases: 1, Generations: generations, Grid: g}
}
