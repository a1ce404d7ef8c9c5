package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arturoeanton/go-htmldom/dom"
)

func newJSONCmd(deps *rootDeps) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "dump a parsed document (or a selector's matches) as debug JSON",
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

			roots := []dom.NodeId{doc.Root()}
			if selector != "" {
				roots, err = doc.FindAll(selector)
				if err != nil {
					return err
				}
			}
			for _, id := range roots {
				text, err := doc.DumpJSON(id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&selector, "select", "", "dump only elements matching this selector")
	return cmd
}
