package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arturoeanton/go-htmldom/dom"
)

func newBatchCmd(deps *rootDeps) *cobra.Command {
	var selector string
	var concurrency int
	var failFast bool

	cmd := &cobra.Command{
		Use:   "batch <selector> <file...>",
		Short: "run one selector across many HTML files concurrently",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector = args[0]
			files := args[1:]

			inputs := make([]string, len(files))
			for i, f := range files {
				b, err := os.ReadFile(f)
				if err != nil {
					return err
				}
				inputs[i] = string(b)
			}

			cfg := dom.NewConfig(deps.configOptions()...)
			results, err := dom.ParseBatch(cmd.Context(), inputs, dom.BatchOptions{
				Concurrency: concurrency,
				FailFast:    failFast,
				Config:      cfg,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, r := range results {
				if r.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: error: %v\n", files[i], r.Err)
					continue
				}
				matches, err := r.Doc.FindAll(selector)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: selector error: %v\n", files[i], err)
					continue
				}
				fmt.Fprintf(out, "%s: %d match(es)\n", files[i], len(matches))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "max documents parsed at once (0 = default)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "abort the whole batch on the first parse error")

	return cmd
}
