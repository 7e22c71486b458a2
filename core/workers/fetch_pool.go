// ABOUTME: Bounded worker pool for per-gist content fetches
// ABOUTME: Runs indexed jobs with limited parallelism so callers can keep input order

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WorkerConfig holds configuration for the fetch pool
type WorkerConfig struct {
	// MaxWorkers is the number of jobs allowed to run at once.
	// 1 runs jobs strictly one after another in index order.
	MaxWorkers int
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 4,
	}
}

// FetchPool runs a batch of indexed jobs with bounded parallelism
type FetchPool struct {
	maxWorkers int
}

// NewFetchPool creates a new fetch pool
func NewFetchPool(config WorkerConfig) *FetchPool {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultWorkerConfig().MaxWorkers
	}
	return &FetchPool{maxWorkers: config.MaxWorkers}
}

// Run calls job once for every index in [0, n) and waits for the jobs it
// started. Jobs report their own outcome, typically by writing into a slot
// of a pre-sized slice, so completion order never leaks into results.
// Once ctx is done no further jobs are started. Run returns ctx.Err() only
// when some index never ran; a batch that finished is not an error.
func (p *FetchPool) Run(ctx context.Context, n int, job func(ctx context.Context, index int)) error {
	if p.maxWorkers == 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			job(ctx, i)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)

	started := 0
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			job(gctx, i)
			return nil
		})
		started++
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if started < n {
		return ctx.Err()
	}
	return nil
}
