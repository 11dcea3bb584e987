// Package workers provides abstractions for running periodic background
// jobs in the application. It defines the Job interface and an IntervalJob
// implementation that runs a function on a ticker until stopped.
package workers

import (
	"context"
	"time"
)

// Job is the contract for a background job with an explicit lifecycle.
//
// Start launches the job; calling Start on a running job restarts it.
// Stop cancels the job and blocks until its goroutine has fully exited;
// it is safe to call on a job that is not running.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
