package runner

import (
	"context"
	"sync"
)

// runPool fans jobs out to a fixed-size goroutine pool and collects
// one result per job, in job order. Feeding stops when ctx is
// cancelled; results for unfed jobs are left at their zero value.
func runPool[T, R any](ctx context.Context, workers int, jobs []T, fn func(context.Context, T) R) []R {
	type indexed struct {
		i   int
		job T
	}
	ch := make(chan indexed)
	out := make([]R, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range ch {
				out[j.i] = fn(ctx, j.job)
			}
		}()
	}

feed:
	for i, job := range jobs {
		select {
		case ch <- indexed{i: i, job: job}:
		case <-ctx.Done():
			break feed
		}
	}
	close(ch)
	wg.Wait()
	return out
}
