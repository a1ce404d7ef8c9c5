// Package applog builds the CLI's structured logger. The dom package
// itself stays silent by default (see dom.Config.Logger); only the CLI
// boundary decides where diagnostics go.
package applog

import (
	"io"
	"log/slog"
	"os"
)

// Options configures NewLogger.
type Options struct {
	// Out defaults to os.Stderr so query/extraction results printed to
	// stdout are never interleaved with log lines.
	Out   io.Writer
	Level slog.Level
	JSON  bool
}

// NewLogger builds a *slog.Logger for the CLI, text-formatted by default
// or JSON when Options.JSON is set (useful when htmlq's own output is
// piped into another log-aggregating tool).
func NewLogger(opts Options) *slog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: opts.Level})
	} else {
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: opts.Level})
	}
	return slog.New(handler)
}
