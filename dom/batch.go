package dom

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchResult is one slot of a ParseBatch call: either the parsed
// Document or the error that parsing that particular input produced.
// Per-document failures occupy their own slot rather than aborting the
// whole batch, unless FailFast is set.
type BatchResult struct {
	Doc *Document
	Err error
}

// BatchOptions controls ParseBatch's concurrency and failure behavior.
type BatchOptions struct {
	// Concurrency caps the number of documents parsed at once. Zero means
	// "use a reasonable default" (runtime.GOMAXPROCS(0)).
	Concurrency int
	// FailFast makes ParseBatch return the first parse error. Inputs whose
	// parse has not started by then are skipped and their slot carries the
	// cancellation error; parses already running finish normally. The
	// returned slice still holds one BatchResult per input.
	FailFast bool
	Config   Config
}

// ParseBatch parses every input concurrently, the way morfx's
// ParallelQuery fans work out across a worker pool, but using
// errgroup.Group with SetLimit instead of a hand-rolled channel/WaitGroup
// pair, since each input here is independent from the start (there is no
// shared, non-thread-safe parse tree to extract from sequentially first).
// Results preserve input order regardless of completion order.
func ParseBatch(ctx context.Context, inputs []string, opts BatchOptions) ([]BatchResult, error) {
	results := make([]BatchResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = BatchResult{Err: err}
				return nil
			}
			doc, err := parseWith(input, opts.Config)
			results[i] = BatchResult{Doc: doc, Err: err}
			if err != nil && opts.FailFast {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
