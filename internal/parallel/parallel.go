// Package parallel provides a scoped fork/join helper for pixel kernels.
//
// Work is distributed by striding: worker w processes items w, w+n, w+2n...
// Each item must own a disjoint slice of the output, so no locking is
// needed and results do not depend on the number of workers.
package parallel

import (
	"runtime"
	"sync"
)

// ForEach runs fn(i) for every i in [0, n), fanning out across at most
// workers goroutines and joining before returning. If workers is 0 or
// negative, GOMAXPROCS is used. fn must not touch state shared with other
// items without its own synchronization.
func ForEach(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < n; i += workers {
				fn(i)
			}
		}(w)
	}
	wg.Wait()
}
