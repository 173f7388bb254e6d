package completion

import (
	"fmt"
	"runtime"
	"sync"
)

// forEachRow runs fn(m) for every row index in [0, rows). The per-row
// stages it drives are independent: each fn invocation reads shared
// inputs and writes only row m of its output, so no locking is needed.
//
// workers semantics follow Options.Workers: 1 ⇒ serial loop, ≤0 ⇒
// runtime.NumCPU(), otherwise the given count (clamped to rows).
//
// The first error by row order is returned, wrapped with its row index;
// the pool always drains before returning so no goroutine outlives the
// call.
func forEachRow(workers, rows int, fn func(m int) error) error {
	if workers == 1 || rows <= 1 {
		for m := 0; m < rows; m++ {
			if err := fn(m); err != nil {
				return fmt.Errorf("row %d: %w", m, err)
			}
		}
		return nil
	}

	n := workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > rows {
		n = rows
	}

	// Disjoint error slots per row: no mutex, deterministic reporting.
	errs := make([]error, rows)
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			for m := range jobs {
				errs[m] = fn(m)
			}
		}()
	}
	for m := 0; m < rows; m++ {
		jobs <- m
	}
	close(jobs)
	wg.Wait()

	for m, err := range errs {
		if err != nil {
			return fmt.Errorf("row %d: %w", m, err)
		}
	}
	return nil
}
