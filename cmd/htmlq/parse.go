package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arturoeanton/go-htmldom/dom"
)

func (d *rootDeps) configOptions() []dom.Option {
	return []dom.Option{
		dom.WithMaxDepth(d.flags.maxDepth),
		dom.WithStrict(d.flags.strict),
		dom.WithLogger(d.logger),
	}
}

// readInput reads from path, or stdin when path is "-" or empty.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func newParseCmd(deps *rootDeps) *cobra.Command {
	var fragment string
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "parse an HTML document (or fragment) and report warnings",
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
			var doc *dom.Document
			if fragment != "" {
				doc, err = dom.ParseFragment(input, fragment, deps.configOptions()...)
			} else {
				doc, err = dom.Parse(input, deps.configOptions()...)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "parsed ok, title=%q\n", doc.Title())
			for _, w := range doc.Warnings() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fragment, "fragment-context", "", "parse input as a fragment with this context tag (e.g. tbody)")
	return cmd
}
