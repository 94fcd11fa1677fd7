package extraction

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

type fakeStatusClient struct {
	mu          sync.Mutex
	snapshots   []*entity.JobSnapshot
	errs        []error
	calls       int
	record      *entity.Listing
	recordErr   error
	reloadCalls int
}

func (f *fakeStatusClient) JobStatus(context.Context, constants.EntityType, uuid.UUID) (*entity.JobSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i >= len(f.snapshots) {
		i = len(f.snapshots) - 1 // keep returning the last snapshot
	}
	return f.snapshots[i], nil
}

func (f *fakeStatusClient) FetchRecord(context.Context, constants.EntityType, uuid.UUID) (*entity.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reloadCalls++
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	return f.record, nil
}

func drain(t *testing.T, sub *Subscription) []Update {
	t.Helper()
	var updates []Update
	timeout := time.After(5 * time.Second)
	for {
		select {
		case u, ok := <-sub.Updates():
			if !ok {
				return updates
			}
			updates = append(updates, u)
		case <-timeout:
			t.Fatal("subscription never closed")
		}
	}
}

func TestWatcherCompletedFlow(t *testing.T) {
	entityID := uuid.New()
	client := &fakeStatusClient{
		snapshots: []*entity.JobSnapshot{
			{
				Status:             constants.JobStatusInProgress,
				CurrentStep:        "apify_fetch",
				ProgressPercentage: 20,
				Steps: []entity.StepReport{
					{Name: "create_record", Status: constants.StepCompleted},
					{Name: "apify_fetch", Status: constants.StepRunning},
				},
				ExtractedData: &entity.ExtractionPayload{
					Apify: map[string]any{"title": "Test Cafe", "totalScore": 4.5},
				},
			},
			{
				Status:             constants.JobStatusCompleted,
				ProgressPercentage: 100,
				Steps: []entity.StepReport{
					{Name: "finalize", Status: constants.StepCompleted},
				},
			},
		},
		record: &entity.Listing{
			ID:   entityID,
			Name: "Test Cafe",
			Attributes: []entity.AttributeRef{
				{ID: 1, Name: "Goan", Slug: "goan"},
			},
		},
	}

	w := NewWatcher(client, constants.EntityRestaurant, nil,
		WithInterval(5*time.Millisecond), WithTimeout(time.Second))
	sub := w.Watch(context.Background(), entityID, &entity.Listing{EntityType: constants.EntityRestaurant})
	defer sub.Stop()

	updates := drain(t, sub)
	require.NotEmpty(t, updates)

	final := updates[len(updates)-1]
	assert.True(t, final.Done)
	assert.NoError(t, final.Err)
	assert.Equal(t, constants.JobStatusCompleted, final.Job.Status)

	// every templated step present exactly once
	assert.Len(t, final.Job.Steps, len(StepsFor(constants.EntityRestaurant)))

	// create_record completed in poll 1, omitted in poll 2: must not regress
	byName := map[string]entity.StepStatus{}
	for _, s := range final.Job.Steps {
		byName[s.Name] = s
	}
	assert.Equal(t, constants.StepCompleted, byName["create_record"].Status)
	assert.Equal(t, constants.StepCompleted, byName["finalize"].Status)

	// comprehensive reload happened exactly once and its arrays are authoritative
	assert.Equal(t, 1, client.reloadCalls)
	require.NotNil(t, final.Record)
	require.Len(t, final.Record.Attributes, 1)
	assert.Equal(t, "goan", final.Record.Attributes[0].Slug)
	// scalar merged mid-poll survives a reload that lacked it
	require.NotNil(t, final.Record.Rating)
	assert.Equal(t, 4.5, *final.Record.Rating)
}

func TestWatcherTransientPollErrors(t *testing.T) {
	client := &fakeStatusClient{
		errs: []error{errors.New("timeout"), errors.New("502")},
		snapshots: []*entity.JobSnapshot{
			nil, nil,
			{Status: constants.JobStatusCompleted, ProgressPercentage: 100},
		},
		record: &entity.Listing{Name: "Test Cafe"},
	}

	w := NewWatcher(client, constants.EntityHotel, nil,
		WithInterval(5*time.Millisecond), WithTimeout(time.Second))
	sub := w.Watch(context.Background(), uuid.New(), nil)
	defer sub.Stop()

	updates := drain(t, sub)
	require.NotEmpty(t, updates)
	final := updates[len(updates)-1]
	assert.True(t, final.Done)
	assert.NoError(t, final.Err, "transient errors must be retried, not surfaced")
	assert.Equal(t, constants.JobStatusCompleted, final.Job.Status)
}

func TestWatcherTimeout(t *testing.T) {
	client := &fakeStatusClient{
		snapshots: []*entity.JobSnapshot{
			{Status: constants.JobStatusProcessing, ProgressPercentage: 40},
		},
	}

	w := NewWatcher(client, constants.EntityMall, nil,
		WithInterval(5*time.Millisecond), WithTimeout(25*time.Millisecond))
	sub := w.Watch(context.Background(), uuid.New(), nil)
	defer sub.Stop()

	updates := drain(t, sub)
	require.NotEmpty(t, updates)

	var timeouts int
	for _, u := range updates {
		if errors.Is(u.Err, ErrWatchTimeout) {
			timeouts++
			assert.True(t, u.Done)
		}
	}
	assert.Equal(t, 1, timeouts, "timeout error must be produced exactly once")
	assert.Zero(t, client.reloadCalls)
}

func TestWatcherReloadFailureSwallowed(t *testing.T) {
	client := &fakeStatusClient{
		snapshots: []*entity.JobSnapshot{
			{
				Status: constants.JobStatusCompleted,
				ExtractedData: &entity.ExtractionPayload{
					Apify: map[string]any{"title": "Test Cafe"},
				},
			},
		},
		recordErr: errors.New("review endpoint down"),
	}

	w := NewWatcher(client, constants.EntityFitness, nil,
		WithInterval(5*time.Millisecond), WithTimeout(time.Second))
	sub := w.Watch(context.Background(), uuid.New(), nil)
	defer sub.Stop()

	updates := drain(t, sub)
	final := updates[len(updates)-1]
	assert.True(t, final.Done)
	assert.NoError(t, final.Err, "reload failure must not fail the completed flow")
	assert.Equal(t, constants.JobStatusCompleted, final.Job.Status)
	// incremental state is kept when the reload fails
	require.NotNil(t, final.Record)
	assert.Equal(t, "Test Cafe", final.Record.Name)
}

func TestWatcherNewWatchCancelsPrevious(t *testing.T) {
	client := &fakeStatusClient{
		snapshots: []*entity.JobSnapshot{
			{Status: constants.JobStatusProcessing},
		},
	}

	w := NewWatcher(client, constants.EntitySchool, nil,
		WithInterval(5*time.Millisecond), WithTimeout(time.Minute))

	first := w.Watch(context.Background(), uuid.New(), nil)
	second := w.Watch(context.Background(), uuid.New(), nil)
	defer second.Stop()

	// the first subscription's channel must close once superseded
	drained := drain(t, first)
	for _, u := range drained {
		assert.NoError(t, u.Err)
	}
	second.Stop()
	drain(t, second)
}

func TestSubscriptionStopIsIdempotent(t *testing.T) {
	client := &fakeStatusClient{
		snapshots: []*entity.JobSnapshot{
			{Status: constants.JobStatusProcessing},
		},
	}
	w := NewWatcher(client, constants.EntityAttraction, nil,
		WithInterval(5*time.Millisecond), WithTimeout(time.Minute))
	sub := w.Watch(context.Background(), uuid.New(), nil)
	sub.Stop()
	sub.Stop()
	drain(t, sub)
}
