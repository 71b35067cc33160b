package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lifegrid/internal/check"
)

var errMismatch = errors.New("output does not match reference")

var (
	checkWorkers int
	checkNoColor bool
)

var checkCmd = &cobra.Command{
	Use:   "check REF OUT",
	Short: "Compare output against reference (files, or directories of NAME.ref / NAME.out)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkNoColor {
			color.NoColor = true
		}
		results, err := compare(cmd, args[0], args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, res := range results {
			fmt.Fprintf(out, "%s %s\n", res.Status(), res.Name)
			if !res.Matched {
				failed++
				if len(res.Diffs) > 0 {
					fmt.Fprintln(out, res.Format())
				}
			}
		}
		fmt.Fprintf(out, "%d / %d matched\n", len(results)-failed, len(results))
		if failed > 0 {
			return errMismatch
		}
		return nil
	},
}

func compare(cmd *cobra.Command, ref, out string) ([]check.Result, error) {
	info, err := os.Stat(ref)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return check.CompareDirs(cmd.Context(), ref, out, checkWorkers)
	}
	res, err := check.CompareFiles(ref, out)
	if err != nil {
		return nil, err
	}
	return []check.Result{res}, nil
}

func init() {
	checkCmd.Flags().IntVar(&checkWorkers, "workers", runtime.NumCPU(), "files compared in parallel")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "disable coloured output")
	rootCmd.AddCommand(checkCmd)
}
