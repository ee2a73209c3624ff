// Package jobs provides a small fixed-size worker pool for latency-bounded
// background work.
package jobs

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrDeadlineExceeded is returned when a job does not finish within the
// caller's deadline. The job itself is not cancelled; it keeps running and
// its result is discarded.
var ErrDeadlineExceeded = errors.New("jobs: deadline exceeded")

// Pool bounds the number of jobs running at once.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a pool running at most size jobs concurrently.
func NewPool(size int64) *Pool {
	if size <= 0 {
		size = 2
	}
	return &Pool{sem: semaphore.NewWeighted(size)}
}

// RunWithDeadline runs fn on a pool worker and waits at most timeout for its
// result. Waiting for a free worker counts against the same deadline. On
// timeout the job is abandoned, not cancelled: the worker finishes in the
// background and its result is dropped.
func (p *Pool) RunWithDeadline(ctx context.Context, timeout time.Duration, fn func() []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, ErrDeadlineExceeded
	}

	// Buffered so the abandoned worker never blocks on send.
	out := make(chan []byte, 1)
	go func() {
		defer p.sem.Release(1)
		out <- fn()
	}()

	select {
	case <-ctx.Done():
		return nil, ErrDeadlineExceeded
	case result := <-out:
		return result, nil
	}
}
