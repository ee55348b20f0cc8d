// Package parallel provides parallel execution helpers.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Workers resolves a requested worker count. Zero or negative means auto.
func Workers(requested int) int {
	if requested <= 0 {
		return NumWorkers()
	}
	return requested
}

// Map calls fn for every index in [0, n) using up to workers goroutines and
// collects the results in index order. Each index is handled by exactly one
// goroutine, so fn may own per-index state without locking.
func Map[T any](n, workers int, fn func(i int) T) []T {
	results := make([]T, n)
	if n <= 0 {
		return results
	}

	if workers <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			results[i] = fn(i)
		}
		return results
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	indices := make(chan int, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	wg.Wait()
	return results
}
