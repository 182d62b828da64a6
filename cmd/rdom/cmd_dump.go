package main

import (
	"fmt"

	"github.com/dhamidi/rdom/format"
	"github.com/dhamidi/rdom/frontend/csharp"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the document object model of a .cs file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, ok := format.NewEncoder(dumpFormat, cmd.OutOrStdout())
			if !ok {
				return fmt.Errorf("unknown format: %s (expected json, yaml, or line)", dumpFormat)
			}
			doc, err := load(cmd.Context(), csharp.NewParser(), args[0])
			if err != nil {
				return err
			}
			if err := enc.Encode(doc.root); err != nil {
				return fmt.Errorf("encode %s: %w", dumpFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", "output format (json, yaml, line)")

	return cmd
}
