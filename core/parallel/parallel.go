// Package parallel provides the worker-pool primitives used by the library.
//
// ForEach is the executor the evaluation runner submits independent split
// jobs to: a bounded pool that streams item indices to workers and collects
// per-item errors, so results can be reassembled in submission order by the
// caller. Parallelize is a chunked range helper used by numerical code.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// ForEach runs fn(i) for i in [0, items) on a pool of at most workers
// goroutines. A workers value below 1 selects runtime.NumCPU().
//
// Item indices are streamed to the pool rather than pre-partitioned, so an
// expensive item does not serialize the rest behind it. When ctx is
// cancelled no further items are handed out; items already in flight run to
// completion. The returned slice has one entry per item: nil for success,
// the item's error otherwise, and ctx.Err() for items never started.
func ForEach(ctx context.Context, items, workers int, fn func(i int) error) []error {
	errs := make([]error, items)
	if items == 0 {
		return errs
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}

	if workers == 1 {
		// Sequential fast path, still cancellable between items.
		for i := 0; i < items; i++ {
			if err := ctx.Err(); err != nil {
				for j := i; j < items; j++ {
					errs[j] = err
				}
				return errs
			}
			errs[i] = fn(i)
		}
		return errs
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				errs[i] = fn(i)
			}
		}()
	}

	i := 0
feed:
	for ; i < items; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	// Items never handed out carry the cancellation cause.
	for ; i < items; i++ {
		errs[i] = ctx.Err()
	}
	return errs
}

// Parallelize divides [0, items) into contiguous chunks, one per available
// CPU core, and runs fn(start, end) for each chunk concurrently.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item lands in exactly one chunk.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold parallelizes only when items exceeds threshold;
// below it the work runs sequentially in the calling goroutine.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
