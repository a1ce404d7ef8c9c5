package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arturoeanton/go-htmldom/internal/applog"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

// fileConfig is the shape of an optional --config YAML file: defaults for
// flags a user doesn't want to repeat on every invocation.
type fileConfig struct {
	MaxDepth int  `yaml:"max_depth"`
	Strict   bool `yaml:"strict"`
	JSONLogs bool `yaml:"json_logs"`
}

type rootFlags struct {
	cfgFile  string
	maxDepth int
	strict   bool
	jsonLogs bool
	verbose  bool
}

type rootDeps struct {
	flags  rootFlags
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	deps := &rootDeps{}

	root := &cobra.Command{
		Use:     "htmlq",
		Short:   "htmlq — parse HTML and run CSS selector queries against it",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.flags.cfgFile != "" {
				fc, err := loadFileConfig(deps.flags.cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if fc.MaxDepth > 0 && !cmd.Flags().Changed("max-depth") {
					deps.flags.maxDepth = fc.MaxDepth
				}
				if fc.Strict && !cmd.Flags().Changed("strict") {
					deps.flags.strict = true
				}
				if fc.JSONLogs && !cmd.Flags().Changed("json-logs") {
					deps.flags.jsonLogs = true
				}
			}
			level := slog.LevelWarn
			if deps.flags.verbose {
				level = slog.LevelInfo
			}
			deps.logger = applog.NewLogger(applog.Options{
				Out:   os.Stderr,
				Level: level,
				JSON:  deps.flags.jsonLogs,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&deps.flags.cfgFile, "config", "", "optional YAML config file")
	root.PersistentFlags().IntVar(&deps.flags.maxDepth, "max-depth", 512, "maximum element nesting depth")
	root.PersistentFlags().BoolVar(&deps.flags.strict, "strict", false, "treat duplicate ids as fatal parse errors")
	root.PersistentFlags().BoolVar(&deps.flags.jsonLogs, "json-logs", false, "emit logs as JSON instead of text")
	root.PersistentFlags().BoolVarP(&deps.flags.verbose, "verbose", "v", false, "enable info-level logging")

	root.AddCommand(newParseCmd(deps))
	root.AddCommand(newQueryCmd(deps))
	root.AddCommand(newHTMLCmd(deps))
	root.AddCommand(newJSONCmd(deps))
	root.AddCommand(newBatchCmd(deps))

	return root
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
