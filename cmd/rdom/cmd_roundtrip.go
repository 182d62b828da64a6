package main

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dhamidi/rdom/dom"
	"github.com/dhamidi/rdom/frontend/csharp"
	"github.com/dhamidi/rdom/syntax"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newRoundtripCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "roundtrip <path>...",
		Short: "Check that .cs files survive the trip through the document object model",
		Long: `Parse every file, build its document object model, rebuild the syntax
from the model and compare the emitted text with the file. Directories are
searched for .cs files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandPaths(args)
			if err != nil {
				return err
			}
			results, err := roundtripAll(cmd.Context(), paths, jobs)
			if err != nil {
				return err
			}

			failed := 0
			out := cmd.OutOrStdout()
			for i, path := range paths {
				if results[i] == nil {
					fmt.Fprintf(out, "ok\t%s\n", path)
					continue
				}
				failed++
				fmt.Fprintf(out, "FAIL\t%s\t%s\n", path, results[i])
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(paths))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "files checked in parallel")

	return cmd
}

// expandPaths replaces directories by the .cs files below them.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == ".cs" {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// roundtripAll checks paths concurrently. The result for paths[i] is nil
// when the file round-trips. Every goroutine owns its parser and graph.
func roundtripAll(ctx context.Context, paths []string, jobs int) ([]error, error) {
	results := make([]error, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = roundtrip(ctx, csharp.NewParser(), path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func roundtrip(ctx context.Context, p *csharp.Parser, path string) error {
	doc, err := load(ctx, p, path)
	if err != nil {
		return err
	}
	out, err := dom.BuildSyntax(doc.root)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	text := []byte(syntax.Emit(out))
	if !bytes.Equal(text, doc.text) {
		return fmt.Errorf("text differs at line %d", firstDifference(doc.text, text))
	}
	return nil
}

// firstDifference returns the 1-based line of the first byte where a and b
// differ.
func firstDifference(a, b []byte) int {
	line := 1
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			break
		}
		if a[i] == '\n' {
			line++
		}
	}
	return line
}
