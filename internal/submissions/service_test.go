package submissions

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/repository"
)

type fakeSubmissionRepo struct {
	repository.SubmissionRepository

	created   *repository.CreateSubmissionRequest
	current   *entity.Submission
	setStatus *constants.SubmissionStatus
}

func (f *fakeSubmissionRepo) Create(_ context.Context, req *repository.CreateSubmissionRequest) (*entity.Submission, error) {
	f.created = req
	return &entity.Submission{
		ID:           uuid.New(),
		Status:       constants.SubmissionPending,
		Category:     req.Category,
		BusinessName: req.BusinessName,
	}, nil
}

func (f *fakeSubmissionRepo) Get(_ context.Context, _ uuid.UUID) (*entity.Submission, error) {
	return f.current, nil
}

func (f *fakeSubmissionRepo) SetStatus(_ context.Context, _ uuid.UUID, status constants.SubmissionStatus, _ *string) (*entity.Submission, error) {
	f.setStatus = &status
	out := *f.current
	out.Status = status
	return &out, nil
}

func TestCreateAcceptsValidPayload(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	svc := NewService(repo, slog.Default())

	body := []byte(`{
		"category": "restaurants",
		"business_name": "Spice Route",
		"business_website": "https://spiceroute.example",
		"submitter_name": "A. Fernandes",
		"submitter_email": "a.fernandes@example.com"
	}`)
	sub, err := svc.Create(context.Background(), body)
	require.NoError(t, err)

	assert.Equal(t, constants.SubmissionPending, sub.Status)
	require.NotNil(t, repo.created)
	// route synonym canonicalized before storage
	assert.Equal(t, constants.EntityRestaurant, repo.created.Category)
	assert.Equal(t, "Spice Route", repo.created.BusinessName)
}

func TestCreateRejectsBadPayloads(t *testing.T) {
	svc := NewService(&fakeSubmissionRepo{}, slog.Default())
	ctx := context.Background()

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"category":`},
		{"missing business name", `{"category":"hotel","submitter_name":"R","submitter_email":"r@example.com"}`},
		{"bad email", `{"category":"hotel","business_name":"Sea Breeze","submitter_name":"R. Naik","submitter_email":"not-an-email"}`},
		{"unknown field", `{"category":"hotel","business_name":"Sea Breeze","submitter_name":"R. Naik","submitter_email":"r@example.com","spam":"yes"}`},
		{"unknown category", `{"category":"casino","business_name":"Lucky 7","submitter_name":"R. Naik","submitter_email":"r@example.com"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, []byte(tt.body))
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestTransitionRules(t *testing.T) {
	tests := []struct {
		name    string
		from    constants.SubmissionStatus
		to      constants.SubmissionStatus
		allowed bool
	}{
		{"pending to in_review", constants.SubmissionPending, constants.SubmissionInReview, true},
		{"pending straight to approved", constants.SubmissionPending, constants.SubmissionApproved, true},
		{"in_review to rejected", constants.SubmissionInReview, constants.SubmissionRejected, true},
		{"reopen approved", constants.SubmissionApproved, constants.SubmissionInReview, true},
		{"approved to rejected", constants.SubmissionApproved, constants.SubmissionRejected, false},
		{"no self transition", constants.SubmissionPending, constants.SubmissionPending, false},
		{"in_review back to pending", constants.SubmissionInReview, constants.SubmissionPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSubmissionRepo{current: &entity.Submission{ID: uuid.New(), Status: tt.from}}
			svc := NewService(repo, slog.Default())

			sub, err := svc.Transition(context.Background(), repo.current.ID, tt.to, nil)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, sub.Status)
			} else {
				assert.ErrorIs(t, err, common.ErrConflict)
				assert.Nil(t, repo.setStatus)
			}
		})
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := NewService(&fakeSubmissionRepo{}, slog.Default())
	_, _, err := svc.List(context.Background(), "bogus", 0, 0)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
