// Package workerpool runs bounded concurrent work over a slice.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Process runs process for every item on at most workerCount goroutines. The
// first error cancels the remaining work and is returned.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	_, err := Map(ctx, workerCount, items, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, process(ctx, item)
	})
	return err
}

// Map is Process with a result per item, returned in item order.
func Map[T, R any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]R, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workerCount, 1))

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r, err := fn(gctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
