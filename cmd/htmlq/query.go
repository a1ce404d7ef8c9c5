package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arturoeanton/go-htmldom/dom"
)

func newQueryCmd(deps *rootDeps) *cobra.Command {
	var first bool
	var attr string
	var textOnly bool

	cmd := &cobra.Command{
		Use:   "query <selector> [file]",
		Short: "run a CSS selector query against an HTML document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := args[0]
			path := ""
			if len(args) == 2 {
				path = args[1]
			}
			input, err := readInput(path)
			if err != nil {
				return err
			}
			doc, err := dom.Parse(input, deps.configOptions()...)
			if err != nil {
				return err
			}

			var matches []dom.NodeId
			if first {
				id, err := doc.Find(sel)
				if err != nil {
					return err
				}
				if id != dom.NoNode {
					matches = []dom.NodeId{id}
				}
			} else {
				matches, err = doc.FindAll(sel)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, id := range matches {
				switch {
				case attr != "":
					if v, ok := doc.Attr(id, attr); ok {
						fmt.Fprintln(out, v)
					}
				case textOnly:
					fmt.Fprintln(out, doc.Text(id))
				default:
					fmt.Fprintln(out, doc.OuterHTML(id))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&first, "first", false, "stop after the first match (like find rather than find_all)")
	cmd.Flags().StringVar(&attr, "attr", "", "print this attribute's value instead of the matched markup")
	cmd.Flags().BoolVar(&textOnly, "text", false, "print each match's text content instead of its markup")
	return cmd
}
