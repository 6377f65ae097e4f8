// Package worker provides the bounded task pool both services run their
// background work on. Submission is non-blocking: when the queue is full the
// caller gets ErrQueueFull and decides what to do with the load.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrQueueFull = errors.New("worker queue is full")

type Task func(ctx context.Context)

type Pool struct {
	log     *slog.Logger
	tasks   chan Task
	workers int

	mu      sync.Mutex
	wg      sync.WaitGroup
	started bool
	stopped bool
}

func NewPool(log *slog.Logger, workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	return &Pool{
		log:     log,
		tasks:   make(chan Task, queueSize),
		workers: workers,
	}
}

// Start launches the workers. Tasks run until the queue is drained or ctx is
// cancelled.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)

		go func() {
			defer p.wg.Done()

			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-p.tasks:
					if !ok {
						return
					}
					task(ctx)
				}
			}
		}()
	}

	p.log.Info("worker pool started",
		slog.Int("workers", p.workers),
		slog.Int("queue_size", cap(p.tasks)),
	)
}

// Submit enqueues a task without blocking. A stopped pool refuses all tasks.
func (p *Pool) Submit(task Task) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ErrQueueFull
	}

	// sending under the mutex keeps Stop from closing the channel mid-send
	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop refuses new tasks, lets queued ones finish and waits for the workers.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	close(p.tasks)
	p.wg.Wait()

	p.log.Info("worker pool stopped")
}
