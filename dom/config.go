package dom

import "log/slog"

// Config controls parsing and querying behavior. Zero value is not valid
// on its own; always construct via DefaultConfig or NewConfig(opts...).
type Config struct {
	// MaxDepth bounds element nesting depth during tree construction.
	// Exceeding it aborts the parse with a DepthExceeded error rather than
	// risking a stack-depth blowup in recursive consumers (serialization,
	// descendant walks).
	MaxDepth int

	// Strict turns a duplicate id attribute into a StrictParseError instead
	// of a recorded warning. Other recoverable markup problems (stray end
	// tags, repeated attribute names, misnested elements) are handled the
	// same way in both modes: they raise no error and record no warning.
	Strict bool

	// PreserveWhitespace disables collapsing of inter-element whitespace
	// text nodes; off by default, matching typical HTML tooling.
	PreserveWhitespace bool

	// IncludeComments controls whether comment nodes are retained in the
	// arena at all. Disabling this saves allocation on documents where
	// comments are never queried.
	IncludeComments bool

	// Logger is carried on the Config; nothing in the dom package writes
	// to it, so the core library never logs to stdout/stderr on its own.
	// A nil Logger is replaced with a no-op logger.
	Logger *slog.Logger
}

const defaultMaxDepth = 512

// DefaultConfig returns the configuration used when no Option is supplied.
func DefaultConfig() Config {
	return Config{
		MaxDepth:           defaultMaxDepth,
		Strict:             false,
		PreserveWhitespace: false,
		IncludeComments:    false,
		Logger:             noopLogger(),
	}
}

// Option mutates a Config being built by NewConfig. The functional-options
// shape mirrors how the teacher's xml package configures MapXML.
type Option func(*Config)

// NewConfig builds a Config starting from DefaultConfig and applying opts
// in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger()
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = defaultMaxDepth
	}
	return cfg
}

func WithMaxDepth(depth int) Option {
	return func(c *Config) { c.MaxDepth = depth }
}

func WithStrict(strict bool) Option {
	return func(c *Config) { c.Strict = strict }
}

func WithPreserveWhitespace(preserve bool) Option {
	return func(c *Config) { c.PreserveWhitespace = preserve }
}

func WithIncludeComments(include bool) Option {
	return func(c *Config) { c.IncludeComments = include }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

func noopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
