package domain

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelism is the default degree of concurrency of a pipeline stage.
const DefaultParallelism = 3

// RunStage applies work to every item with at most maxParallel calls in
// flight. Each call owns its result slot, so collection needs no locking.
// A maxParallel of 1 or less runs the items sequentially in order.
func RunStage[T, R any](ctx context.Context, items []T, work func(context.Context, T) R, maxParallel int) []R {
	results := make([]R, len(items))

	if maxParallel <= 1 {
		for i, item := range items {
			results[i] = work(ctx, item)
		}

		return results
	}

	var group errgroup.Group
	group.SetLimit(maxParallel)

	for i, item := range items {
		group.Go(func() error {
			results[i] = work(ctx, item)
			return nil
		})
	}

	_ = group.Wait()

	return results
}
