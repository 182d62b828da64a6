package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/rdom/dom"
	"github.com/dhamidi/rdom/frontend/csharp"
	"github.com/dhamidi/rdom/syntax"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Re-lay out a .cs file with the configured formatting",
		Long: `Drop the whitespace captured from a .cs file and rebuild it with the
indentation and line endings from the settings file.

Comments live in the captured whitespace and are dropped as well.
Use -w to overwrite the file in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			doc, err := load(cmd.Context(), csharp.NewParser(), args[0])
			if err != nil {
				return err
			}

			dom.Walk(doc.root, func(n dom.Node) bool {
				n.Whitespace().Clear()
				return true
			})
			out, err := dom.BuildSyntax(doc.root, dom.WithFormatting(cfg.Formatting()))
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			text := syntax.Emit(out)

			if fmtOverwrite {
				return os.WriteFile(args[0], []byte(text), 0644)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
