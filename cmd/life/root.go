package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "life runs Conway's Game of Life on a bounded grid",
	Long: `life reads a seed grid from a text file, computes the requested number of
generations under the B3/S23 rule and writes every generation to an output file.
Cells beyond the grid edges are always dead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
