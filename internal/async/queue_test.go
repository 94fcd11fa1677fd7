package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRemover struct {
	mu      sync.Mutex
	removed []string
	failOn  string
}

func (r *recordingRemover) Remove(_ context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn != "" && url == r.failOn {
		return errors.New("bucket gone")
	}
	r.removed = append(r.removed, url)
	return nil
}

func (r *recordingRemover) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.removed)
}

func TestCleanupQueueDrainsOnShutdown(t *testing.T) {
	remover := &recordingRemover{}
	q := NewCleanupQueue(remover, slog.Default(), WithWorkers(2), WithQueueSize(16))

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Enqueue(ctx, Job{URL: "https://img.example/a.jpg", SubmittedAt: time.Now()}))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	assert.Equal(t, 10, remover.count())
}

func TestCleanupQueueEnqueueAfterShutdown(t *testing.T) {
	remover := &recordingRemover{}
	q := NewCleanupQueue(remover, slog.Default(), WithWorkers(1))

	ctx := context.Background()
	q.Shutdown(ctx)
	// second shutdown is a no-op
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(ctx, Job{URL: "https://img.example/late.jpg"}))
	assert.Zero(t, remover.count())
}

func TestCleanupQueueSurvivesRemoverErrors(t *testing.T) {
	remover := &recordingRemover{failOn: "https://img.example/a.jpg"}
	q := NewCleanupQueue(remover, slog.Default(), WithWorkers(1))

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, Job{URL: "https://img.example/a.jpg"}))
	require.NoError(t, q.Enqueue(ctx, Job{URL: "https://img.example/b.jpg"}))

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	assert.Equal(t, 1, remover.count())
}
