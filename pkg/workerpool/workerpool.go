// Package workerpool provides bounded fan-out helpers for independent work
// items.
package workerpool

import (
	"context"
	"sync"
)

// Process runs process over items with at most workerCount concurrent
// workers. The first error cancels the remaining work and is returned;
// onCancel, when set, runs once on that cancellation.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount <= 0 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	abort := func(err error) {
		once.Do(func() {
			firstErr = err
			if onCancel != nil {
				onCancel()
			}
			cancel()
		})
	}

	tasks := make(chan T)
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					return
				}
				if err := process(ctx, item); err != nil {
					abort(err)
					return
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Collect runs process over items with bounded concurrency and returns one
// result per item, preserving input order. The first error aborts the run.
func Collect[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (R, error),
) ([]R, error) {
	results := make([]R, len(items))
	indices := make([]int, len(items))
	for i := range items {
		indices[i] = i
	}

	err := Process(ctx, workerCount, indices, func(ctx context.Context, i int) error {
		r, processErr := process(ctx, items[i])
		if processErr != nil {
			return processErr
		}
		results[i] = r
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}
