package workers

import (
	"context"
	"sync"
	"time"
)

// defaultInterval is used when Start receives a non-positive interval.
const defaultInterval = time.Minute

type intervalJob struct {
	tick func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewIntervalJob creates a Job that calls tick on a ticker. The job is idle
// until Start is called.
func NewIntervalJob(tick func(ctx context.Context)) Job {
	return &intervalJob{tick: tick}
}

// Start implements Job. It stops any previously running job, then launches a
// background goroutine that calls tick every interval. If interval is zero or
// negative it defaults to one minute. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *intervalJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop implements Job. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *intervalJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
