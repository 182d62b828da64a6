package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/rdom/format"
	"github.com/dhamidi/rdom/frontend/csharp"
	"github.com/spf13/cobra"
)

func newSyntaxCmd() *cobra.Command {
	var syntaxFormat string
	var positions bool

	cmd := &cobra.Command{
		Use:   "syntax [file]",
		Short: "Print the syntax tree of a .cs file",
		Long: `Print the syntax tree the C# front end hands to the document object model.

If no file is provided, reads C# source from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			if len(args) == 0 {
				source, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				source, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			f, err := csharp.Parse(cmd.Context(), source)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			out := cmd.OutOrStdout()
			switch syntaxFormat {
			case "json":
				return format.NewSyntaxJSONEncoder(out).Encode(f.Syntax)
			case "tree":
				if positions {
					_, err = io.WriteString(out, f.Syntax.StringWithPositions())
				} else {
					_, err = io.WriteString(out, f.Syntax.String())
				}
				return err
			default:
				return fmt.Errorf("unknown format: %s (expected json or tree)", syntaxFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&syntaxFormat, "format", "f", "tree", "output format (json, tree)")
	cmd.Flags().BoolVarP(&positions, "positions", "p", false, "show line and column of every node in tree output")

	return cmd
}
