package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lifegrid/internal/codec"
	"lifegrid/internal/config"
	"lifegrid/pkg/core"
)

type genOptions struct {
	width       int
	height      int
	generations int
	seed        int64
	density     float64
	alive       string
	dead        string
}

var genOpts = genOptions{
	width:       32,
	height:      32,
	generations: 10,
	density:     0.3,
	alive:       config.Default().Alive,
	dead:        config.Default().Dead,
}

var genCmd = &cobra.Command{
	Use:   "gen [OUTPUT]",
	Short: "Write a random seed input file (stdout when OUTPUT is omitted or -)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromMap(map[string]string{"alive": genOpts.alive, "dead": genOpts.dead})
		if err != nil {
			return err
		}
		g, err := core.NewGrid(genOpts.width, genOpts.height)
		if err != nil {
			return err
		}
		seed := genOpts.seed
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		core.FillGrid(core.NewRNG(seed), g, genOpts.density)

		in := &codec.Input{Cases: 1, Generations: genOpts.generations, Grid: g}
		if len(args) == 0 || args[0] == "-" {
			return codec.EncodeInput(cmd.OutOrStdout(), in, cfg.Markers())
		}
		return writeInput(args[0], in, cfg.Markers())
	},
}

func writeInput(path string, in *codec.Input, m codec.Markers) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = codec.EncodeInput(f, in, m)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return err
}

func init() {
	fs := genCmd.Flags()
	fs.IntVar(&genOpts.width, "width", genOpts.width, "grid width")
	fs.IntVar(&genOpts.height, "height", genOpts.height, "grid height")
	fs.IntVar(&genOpts.generations, "generations", genOpts.generations, "generation count written to the header")
	fs.Int64Var(&genOpts.seed, "seed", genOpts.seed, "random seed (default: current time)")
	fs.Float64Var(&genOpts.density, "density", genOpts.density, "probability of a cell starting alive")
	fs.StringVar(&genOpts.alive, "alive", genOpts.alive, "character marking an alive cell")
	fs.StringVar(&genOpts.dead, "dead", genOpts.dead, "character marking a dead cell")
	rootCmd.AddCommand(genCmd)
}
