package main

import (
	"errors"
	"fmt"

	"github.com/dhamidi/rdom/dom"
	"github.com/dhamidi/rdom/frontend/csharp"
	"github.com/spf13/cobra"
)

var errDifferent = errors.New("files differ in intent")

func newSameCmd() *cobra.Command {
	var annotations bool

	cmd := &cobra.Command{
		Use:   "same <a.cs> <b.cs>",
		Short: "Report whether two .cs files declare the same thing",
		Long: `Compare the document object models of two files. Layout, comments and the
order of methods, properties, fields and constructors are ignored.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := csharp.NewParser()
			a, err := load(cmd.Context(), p, args[0])
			if err != nil {
				return err
			}
			b, err := load(cmd.Context(), p, args[1])
			if err != nil {
				return err
			}
			if !dom.SameIntent(a.root, b.root, annotations) {
				fmt.Fprintln(cmd.OutOrStdout(), "different")
				return errDifferent
			}
			fmt.Fprintln(cmd.OutOrStdout(), "same")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&annotations, "annotations", "a", false, "compare annotations too")

	return cmd
}
