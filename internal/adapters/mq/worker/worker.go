// Package worker runs chart render jobs off the queue. Failures are
// isolated per job: one channel's broken chart never stops the others.
package worker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/okian/beamplot/internal/adapters/mq/queue"
	"github.com/okian/beamplot/pkg/logger"
	"github.com/okian/beamplot/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount = 1 // sequential reference behavior
)

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Job
}

// Worker processes render jobs until its queue drains or ctx is canceled.
type Worker struct {
	queue Queue
	name  string

	// Logging
	logger logger.Logger
}

// NewWorker creates a new worker with configuration options.
func NewWorker(q Queue, opts ...Option) *Worker {
	w := &Worker{
		queue:  q,
		name:   "worker",
		logger: logger.Get().Named("worker"),
	}

	// Apply all options
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run starts the worker loop. It returns when the queue closes and drains,
// or the context is canceled.
func (w *Worker) Run(ctx context.Context) {
	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-jobs:
			if !ok {
				return
			}
			w.process(ctx, j)
		}
	}
}

// process executes one job and records its outcome. Job errors are logged
// and counted, never propagated.
func (w *Worker) process(ctx context.Context, j queue.Job) {
	start := time.Now()
	err := j.Render(ctx)
	metrics.Get().ObserveRenderDuration(time.Since(start))

	switch {
	case err == nil:
		metrics.Get().ChartRendered(j.Family)
	case errors.Is(err, queue.ErrSkipped):
		metrics.Get().ChartSkipped(j.Family)
		w.logger.Debug(ctx, "chart skipped, no data",
			logger.String("chart", j.Name),
		)
	default:
		metrics.Get().ChartFailed(j.Family)
		w.logger.Warn(ctx, "chart failed",
			logger.String("chart", j.Name),
			logger.Error(err),
		)
	}
}

// Pool manages multiple workers over one queue.
type Pool struct {
	workers []*Worker
	queue   Queue

	wg sync.WaitGroup

	// Logging
	logger logger.Logger
}

// NewPool creates a new worker pool.
func NewPool(workerCount int, q Queue) *Pool {
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}

	pool := &Pool{
		workers: make([]*Worker, workerCount),
		queue:   q,
		logger:  logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewWorker(q, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.Get().SetWorkerCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		p.wg.Add(1)
		go func(w *Worker) {
			defer p.wg.Done()
			w.Run(ctx)
		}(w)
	}
}

// Wait blocks until every worker has drained the queue or ctx expires.
// The queue must be closed before calling Wait.
func (p *Pool) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		p.logger.Warn(ctx, "render pool wait timed out")
		return fmt.Errorf("render pool wait: %w", ctx.Err())
	}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int { return len(p.workers) }
