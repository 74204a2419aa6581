// Package rows fans a per-row transform out over a fixed number of workers.
//
// Row h is owned by worker h mod workers, so every worker writes a disjoint
// set of rows and no locking is needed. Partition returns only after every
// worker has finished.
package rows

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers returns n, or GOMAXPROCS when n <= 0.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Partition calls fn(w, h) for every row h in [0, height), where w is the
// index of the worker running it and always equals h mod the worker count.
// Each worker visits its rows in increasing order. A single worker, or a
// single row, runs inline as worker 0.
func Partition(height, workers int, fn func(w, h int)) {
	workers = min(Workers(workers), height)
	if workers <= 1 {
		for h := 0; h < height; h++ {
			fn(0, h)
		}
		return
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for h := w; h < height; h += workers {
				fn(w, h)
			}
			return nil
		})
	}
	// Workers cannot fail; Wait is only the join.
	_ = g.Wait()
}
