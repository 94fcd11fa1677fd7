package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// Job is one stored asset to remove. Assets are detached from their listing
// row before they reach the queue, so a failed removal only leaves an
// orphaned file, never a dangling reference.
type Job struct {
	URL         string
	ListingID   uuid.UUID
	SubmittedAt time.Time
}

// Remover deletes one stored asset. Implementations talk to whatever bucket
// or media server holds the files.
type Remover interface {
	Remove(ctx context.Context, url string) error
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// CleanupQueue removes assets on a small worker pool so moderation and
// deletion endpoints never wait on storage.
type CleanupQueue struct {
	remover Remover
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*CleanupQueue)

func WithWorkers(n int) Option {
	return func(q *CleanupQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *CleanupQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithRemoveTimeout(d time.Duration) Option {
	return func(q *CleanupQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewCleanupQueue(remover Remover, logger *slog.Logger, opts ...Option) *CleanupQueue {
	q := &CleanupQueue{
		remover: remover,
		logger:  logger,
		workers: 4,
		timeout: 30 * time.Second,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *CleanupQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("cleanup worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.remover.Remove(ctx, job.URL)
					cancel()

					if err != nil {
						q.logger.Error("asset removal failed", "worker_id", workerID, "listing_id", job.ListingID, "url", job.URL, "error", err)
					} else {
						q.logger.Info("asset removed", "worker_id", workerID, "listing_id", job.ListingID, "url", job.URL)
					}
				}

				q.logger.Info("cleanup worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *CleanupQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "url", job.URL)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Debug("queued asset for removal", "url", job.URL)
	default:
		q.logger.Warn("queue full, applying backpressure", "url", job.URL)
		q.ch <- job
	}
	return nil
}

func (q *CleanupQueue) Shutdown(ctx context.Context) {
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
		q.logger.Info("queue drained, shutdown complete")
	}
}
