package async

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chargeboard/rosterscan/internal/common"
	processor "github.com/chargeboard/rosterscan/internal/pipeline"
)

type ProcessorQueue struct {
	proc    *processor.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	processed atomic.Int64
	failed    atomic.Int64

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc *processor.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					if job.TraceID != "" {
						ctx = common.WithRequestID(ctx, job.TraceID)
					}
					_, err := q.proc.ProcessFile(ctx, job.Path)
					cancel()

					if err != nil {
						q.failed.Add(1)
						q.logger.Error("processing failed",
							"worker_id", workerID, "path", job.Path, "trace_id", job.TraceID, "error", err)
					} else {
						q.processed.Add(1)
						q.logger.Info("processed sheet successfully",
							"worker_id", workerID, "path", job.Path, "trace_id", job.TraceID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "path", job.Path)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued sheet for processing", "path", job.Path)
	default:
		q.logger.Warn("queue full, applying backpressure", "path", job.Path)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		processed, failed := q.Stats()
		q.logger.Info("queue drained, shutdown complete",
			"processed", processed, "failed", failed)
	}
}

// Stats reports how many jobs the workers have completed so far.
func (q *ProcessorQueue) Stats() (processed, failed int64) {
	return q.processed.Load(), q.failed.Load()
}
