package extraction

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

// ErrWatchTimeout is delivered exactly once when a job fails to reach a
// terminal status within the polling ceiling.
var ErrWatchTimeout = errors.New("extraction watch timed out")

// StatusClient is the slice of the API the watcher needs: observing job
// status and fetching the canonical record for the comprehensive reload.
type StatusClient interface {
	JobStatus(ctx context.Context, et constants.EntityType, entityID uuid.UUID) (*entity.JobSnapshot, error)
	FetchRecord(ctx context.Context, et constants.EntityType, entityID uuid.UUID) (*entity.Listing, error)
}

// Update is one observation delivered to the subscriber: the projected job
// view plus a snapshot of the merged listing state. Done marks the last
// update a subscription will deliver; Err is set only for the timeout case.
type Update struct {
	Job    entity.ExtractionJob
	Record *entity.Listing
	Done   bool
	Err    error
}

// Watcher polls the extraction status for listings of one entity type and
// folds each response into accumulated state via the step projector and the
// incremental merger. One Watcher drives at most one subscription at a time:
// starting a new watch cancels the previous one (the page-instance semantics
// of the admin screens).
type Watcher struct {
	client   StatusClient
	et       constants.EntityType
	template []StepTemplate
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// WatcherOption tweaks polling parameters (tests shrink them).
type WatcherOption func(*Watcher)

func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.interval = d }
}

func WithTimeout(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.timeout = d }
}

func NewWatcher(client StatusClient, et constants.EntityType, logger *slog.Logger, opts ...WatcherOption) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Watcher{
		client:   client,
		et:       et,
		template: StepsFor(et),
		interval: 2 * time.Second,
		timeout:  10 * time.Minute,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Subscription is the owned handle for one polling loop. Updates is closed
// after the final update; Stop releases the loop deterministically and is
// safe to call more than once.
type Subscription struct {
	updates  chan Update
	stop     context.CancelFunc
	stopOnce sync.Once
}

func (s *Subscription) Updates() <-chan Update { return s.updates }

func (s *Subscription) Stop() {
	s.stopOnce.Do(s.stop)
}

// Watch starts polling the status endpoint for entityID until the job
// reaches a terminal state or the ceiling elapses. seed is the initial
// listing stub; the merged state snapshot on each update starts from it.
// Any watch previously started on this Watcher is cancelled.
func (w *Watcher) Watch(ctx context.Context, entityID uuid.UUID, seed *entity.Listing) *Subscription {
	ctx, cancel := context.WithCancel(ctx)

	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	w.cancel = cancel
	w.mu.Unlock()

	sub := &Subscription{
		updates: make(chan Update, 1),
		stop:    cancel,
	}

	var state entity.Listing
	if seed != nil {
		state = *seed
	}
	state.ID = entityID

	go w.run(ctx, entityID, state, sub)
	return sub
}

func (w *Watcher) run(ctx context.Context, entityID uuid.UUID, state entity.Listing, sub *Subscription) {
	defer close(sub.updates)

	deadline := time.Now().Add(w.timeout)
	steps := NewSteps(w.template)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		// poll immediately on entry, then on every tick
		done := w.tick(ctx, entityID, &state, &steps, sub)
		if done {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if time.Now().After(deadline) {
			w.logger.Error("watcher.timeout", "entity_id", entityID, "ceiling", w.timeout)
			w.deliver(ctx, sub, Update{
				Job: entity.ExtractionJob{
					EntityID: entityID,
					Status:   constants.JobStatusProcessing,
					Steps:    steps,
				},
				Record: cloneListing(&state),
				Done:   true,
				Err:    ErrWatchTimeout,
			})
			return
		}
	}
}

// tick performs one poll. A terminal response is processed to completion,
// including the comprehensive reload, before the loop is allowed to stop, so
// the final state update is never lost.
func (w *Watcher) tick(ctx context.Context, entityID uuid.UUID, state *entity.Listing, steps *[]entity.StepStatus, sub *Subscription) bool {
	snap, err := w.client.JobStatus(ctx, w.et, entityID)
	if err != nil || snap == nil {
		if ctx.Err() != nil {
			return true
		}
		// transient poll failures are retried on the next tick
		w.logger.Warn("watcher.poll.failed", "entity_id", entityID, "error", err)
		return false
	}

	*steps = ProjectSteps(w.template, *steps, snap.Steps)
	Merge(state, snap.ExtractedData)

	terminal := snap.Status.Terminal()
	if snap.Status == constants.JobStatusCompleted {
		full, err := w.client.FetchRecord(ctx, w.et, entityID)
		if err != nil {
			// a failed reload must not fail the completed extraction
			w.logger.Error("watcher.reload.failed", "entity_id", entityID, "error", err)
		} else {
			*state = *ApplyReload(state, full)
		}
	}

	w.deliver(ctx, sub, Update{
		Job: entity.ExtractionJob{
			EntityID:    entityID,
			Status:      snap.Status,
			CurrentStep: snap.CurrentStep,
			Progress:    snap.ProgressPercentage,
			Steps:       *steps,
		},
		Record: cloneListing(state),
		Done:   terminal,
	})
	return terminal
}

func (w *Watcher) deliver(ctx context.Context, sub *Subscription, u Update) {
	// drop the stale buffered update so the latest observation always lands
	select {
	case <-sub.updates:
	default:
	}
	select {
	case sub.updates <- u:
	case <-ctx.Done():
	}
}

func cloneListing(l *entity.Listing) *entity.Listing {
	if l == nil {
		return nil
	}
	out := *l
	out.Attributes = append([]entity.AttributeRef(nil), l.Attributes...)
	out.Images = append([]entity.Image(nil), l.Images...)
	out.FAQs = append([]entity.FAQ(nil), l.FAQs...)
	return &out
}
