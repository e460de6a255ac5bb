package blockfilt

import (
	"runtime"
	"sync"
)

// parallelFor runs fn(k) for every k in [0, n) across bounded workers.
// Each k is handed to exactly one worker; fn instances must write to
// disjoint state.
func parallelFor(n int, fn func(k int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for k := 0; k < n; k++ {
			fn(k)
		}
		return
	}
	work := make(chan int, n)
	for k := 0; k < n; k++ {
		work <- k
	}
	close(work)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range work {
				fn(k)
			}
		}()
	}
	wg.Wait()
}
