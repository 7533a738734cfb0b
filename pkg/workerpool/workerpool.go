// Package workerpool provides simple concurrent fan-out utilities.
package workerpool

import (
	"context"
	"sync"
)

type task[T any] struct {
	index int
	item  T
}

// Process runs a worker pool over the provided items, invoking process with
// each item's index and value. Workers never touch the same index twice, so
// callers may collect results into a preallocated slice without locking.
// If process returns an error, the pool cancels the shared context and stops
// handing out further work.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, int, T) error,
) error {
	if workerCount <= 0 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan task[T], workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case tk, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, tk.index, tk.item); err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		for i, item := range items {
			select {
			case <-ctx.Done():
				close(tasks)
				return
			case tasks <- task[T]{index: i, item: item}:
			}
		}
		close(tasks)
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	return ctx.Err()
}
