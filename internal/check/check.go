// Package check compares produced generation files against reference files.
package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/sync/errgroup"
)

const (
	refExt = ".ref"
	outExt = ".out"
)

// ErrNoReferences is returned when a reference directory holds no .ref files.
var ErrNoReferences = errors.New("no reference files")

// Result is the outcome of comparing one output with its reference.
type Result struct {
	Name    string
	Matched bool
	Diffs   []diffmatchpatch.Diff
}

// Compare diffs the reference text against the produced text.
func Compare(name, ref, out string) Result {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(ref, out, false)
	matched := len(diffs) == 0 || (len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual)
	return Result{Name: name, Matched: matched, Diffs: diffs}
}

// CompareFiles reads both files and compares their contents.
func CompareFiles(refPath, outPath string) (Result, error) {
	ref, err := os.ReadFile(refPath)
	if err != nil {
		return Result{}, fmt.Errorf("read reference: %w", err)
	}
	out, err := os.ReadFile(outPath)
	if err != nil {
		return Result{}, fmt.Errorf("read output: %w", err)
	}
	return Compare(filepath.Base(outPath), string(ref), string(out)), nil
}

// CompareDirs pairs every NAME.ref in refDir with NAME.out in outDir and
// compares them on up to workers goroutines. A missing output counts as a
// mismatch. Results are sorted by name.
func CompareDirs(ctx context.Context, refDir, outDir string, workers int) ([]Result, error) {
	refs, err := filepath.Glob(filepath.Join(refDir, "*"+refExt))
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoReferences, refDir)
	}
	sort.Strings(refs)

	results := make([]Result, len(refs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, refPath := range refs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(refPath), refExt)
			outPath := filepath.Join(outDir, name+outExt)
			if _, err := os.Stat(outPath); os.IsNotExist(err) {
				results[i] = Result{Name: name}
				return nil
			}
			res, err := CompareFiles(refPath, outPath)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			res.Name = name
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

var (
	deleted  = color.New(color.FgRed)
	inserted = color.New(color.FgGreen)
)

// Format renders the reference and produced text one after the other, with
// text missing from the output in red and unexpected text in green.
func (r Result) Format() string {
	var ref, out strings.Builder
	for _, d := range r.Diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			ref.WriteString(deleted.Sprint(d.Text))
		case diffmatchpatch.DiffInsert:
			out.WriteString(inserted.Sprint(d.Text))
		case diffmatchpatch.DiffEqual:
			ref.WriteString(d.Text)
			out.WriteString(d.Text)
		}
	}
	return "Reference - " + r.Name + "\n" + ref.String() + "\nOutput - " + r.Name + "\n" + out.String()
}

// Status returns a short coloured verdict.
func (r Result) Status() string {
	if r.Matched {
		return color.New(color.FgGreen).Sprint("MATCH")
	}
	return color.New(color.FgRed).Sprint("DIFF")
}
