package main

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/arturoeanton/go-htmldom/dom"
)

func newHTMLCmd(deps *rootDeps) *cobra.Command {
	var diffAgainst string

	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "parse and re-serialize an HTML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			input, err := readInput(path)
			if err != nil {
				return err
			}
			doc, err := dom.Parse(input, deps.configOptions()...)
			if err != nil {
				return err
			}
			out := doc.ToHTML()

			if diffAgainst != "" {
				other, err := readInput(diffAgainst)
				if err != nil {
					return err
				}
				diff := difflib.UnifiedDiff{
					A:        difflib.SplitLines(other),
					B:        difflib.SplitLines(out),
					FromFile: diffAgainst,
					ToFile:   "serialized",
					Context:  3,
				}
				text, err := difflib.GetUnifiedDiffString(diff)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&diffAgainst, "diff", "", "show a unified diff between this file and the re-serialized output")
	return cmd
}
