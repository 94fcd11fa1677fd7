package listings

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/repository"
	"github.com/bestofgoa/bok/internal/runner"
)

type fakeListingRepo struct {
	repository.ListingRepository

	created    *repository.CreateListingRequest
	createID   uuid.UUID
	dupResult  *entity.DuplicateResult
	dupErr     error
	updated    *repository.UpdateListingRequest
	deleteImgs []entity.Image
	deleteErr  error
}

func (f *fakeListingRepo) Create(_ context.Context, req *repository.CreateListingRequest) (*entity.Listing, error) {
	f.created = req
	return &entity.Listing{ID: f.createID, EntityType: req.EntityType, Name: req.Name}, nil
}

func (f *fakeListingRepo) FindDuplicates(_ context.Context, _ constants.EntityType, _, _, _ string) (*entity.DuplicateResult, error) {
	if f.dupErr != nil {
		return nil, f.dupErr
	}
	if f.dupResult != nil {
		return f.dupResult, nil
	}
	return &entity.DuplicateResult{Exists: false}, nil
}

func (f *fakeListingRepo) Update(_ context.Context, _ constants.EntityType, id uuid.UUID, req *repository.UpdateListingRequest) (*entity.Listing, error) {
	f.updated = req
	return &entity.Listing{ID: id}, nil
}

func (f *fakeListingRepo) Delete(_ context.Context, _ constants.EntityType, _ uuid.UUID) ([]entity.Image, error) {
	return f.deleteImgs, f.deleteErr
}

type fakeAttrRepo struct {
	repository.AttributeRepository

	kind  string
	names []string
}

func (f *fakeAttrRepo) Ensure(_ context.Context, kind string, names []string) ([]entity.AttributeRef, error) {
	f.kind = kind
	f.names = names
	refs := make([]entity.AttributeRef, len(names))
	for i, n := range names {
		refs[i] = entity.AttributeRef{ID: i + 1, Name: n}
	}
	return refs, nil
}

type fakeRunner struct {
	started []runner.StartJobRequest
	err     error
}

func (f *fakeRunner) StartJob(_ context.Context, req runner.StartJobRequest) error {
	f.started = append(f.started, req)
	return f.err
}

func (f *fakeRunner) JobStatus(_ context.Context, _ constants.EntityType, _ uuid.UUID) (*entity.JobSnapshot, error) {
	return &entity.JobSnapshot{Status: constants.JobStatusPending}, nil
}

type fakeStore struct {
	removed []string
	failOn  map[string]bool
}

func (f *fakeStore) Remove(_ context.Context, url string) error {
	if f.failOn[url] {
		return errors.New("storage unavailable")
	}
	f.removed = append(f.removed, url)
	return nil
}

func newTestService(repo *fakeListingRepo, attrs *fakeAttrRepo, eng *fakeRunner, store ImageStore) *Service {
	if attrs == nil {
		attrs = &fakeAttrRepo{}
	}
	return NewService(repo, attrs, eng, store, slog.Default())
}

func TestStartExtractionHappyPath(t *testing.T) {
	repo := &fakeListingRepo{createID: uuid.New()}
	eng := &fakeRunner{}
	svc := newTestService(repo, nil, eng, nil)

	res, err := svc.StartExtraction(context.Background(), constants.EntityRestaurant, StartExtractionRequest{
		PlaceID:   "place-1",
		PlaceData: json.RawMessage(`{"title":"Gunpowder","address":"Assagao, Bardez"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, repo.createID, res.EntityID)

	require.NotNil(t, repo.created)
	assert.Equal(t, "Gunpowder", repo.created.Name)
	assert.Equal(t, "place-1", repo.created.GooglePlaceID)
	assert.Equal(t, "Assagao, Bardez", repo.created.Address)

	require.Len(t, eng.started, 1)
	assert.Equal(t, repo.createID, eng.started[0].EntityID)
	assert.Equal(t, constants.EntityRestaurant, eng.started[0].EntityType)
}

func TestStartExtractionBlocksDuplicates(t *testing.T) {
	repo := &fakeListingRepo{
		createID: uuid.New(),
		dupResult: &entity.DuplicateResult{
			Exists:    true,
			MatchType: "exact",
			Entities:  []entity.DuplicateMatch{{Name: "Gunpowder"}},
		},
	}
	eng := &fakeRunner{}
	svc := newTestService(repo, nil, eng, nil)

	res, err := svc.StartExtraction(context.Background(), constants.EntityRestaurant, StartExtractionRequest{
		PlaceID:   "place-1",
		PlaceData: json.RawMessage(`{"title":"Gunpowder"}`),
	})
	assert.ErrorIs(t, err, common.ErrConflict)
	require.NotNil(t, res)
	require.NotNil(t, res.Duplicate)
	assert.Equal(t, "exact", res.Duplicate.MatchType)

	assert.Nil(t, repo.created)
	assert.Empty(t, eng.started)
}

func TestStartExtractionOverrideSkipsGuard(t *testing.T) {
	repo := &fakeListingRepo{
		createID:  uuid.New(),
		dupResult: &entity.DuplicateResult{Exists: true, MatchType: "exact"},
	}
	eng := &fakeRunner{}
	svc := newTestService(repo, nil, eng, nil)

	res, err := svc.StartExtraction(context.Background(), constants.EntityRestaurant, StartExtractionRequest{
		PlaceID:   "place-1",
		PlaceData: json.RawMessage(`{"title":"Gunpowder"}`),
		Override:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, repo.createID, res.EntityID)
	assert.Len(t, eng.started, 1)
}

func TestStartExtractionGuardFailsOpen(t *testing.T) {
	repo := &fakeListingRepo{createID: uuid.New(), dupErr: errors.New("db down")}
	eng := &fakeRunner{}
	svc := newTestService(repo, nil, eng, nil)

	res, err := svc.StartExtraction(context.Background(), constants.EntityHotel, StartExtractionRequest{
		PlaceData: json.RawMessage(`{"name":"W Goa"}`),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.EntityID)
	assert.Len(t, eng.started, 1)
}

func TestStartExtractionNamelessCandidateRejected(t *testing.T) {
	repo := &fakeListingRepo{createID: uuid.New()}
	svc := newTestService(repo, nil, &fakeRunner{}, nil)

	_, err := svc.StartExtraction(context.Background(), constants.EntityHotel, StartExtractionRequest{
		PlaceData: json.RawMessage(`{"rating":4.5}`),
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Nil(t, repo.created)
}

func TestStartExtractionEngineFailureKeepsStub(t *testing.T) {
	repo := &fakeListingRepo{createID: uuid.New()}
	eng := &fakeRunner{err: errors.New("engine offline")}
	svc := newTestService(repo, nil, eng, nil)

	_, err := svc.StartExtraction(context.Background(), constants.EntityMall, StartExtractionRequest{
		SearchQuery: "Caculo Mall Panjim",
	})
	require.Error(t, err)
	// the stub was created before the engine call, so retry is possible
	require.NotNil(t, repo.created)
	assert.Equal(t, "Caculo Mall Panjim", repo.created.Name)
}

func TestUpdateReviewValidation(t *testing.T) {
	repo := &fakeListingRepo{}
	svc := newTestService(repo, nil, &fakeRunner{}, nil)
	ctx := context.Background()
	id := uuid.New()

	bad := "not-an-email"
	_, err := svc.UpdateReview(ctx, constants.EntityRestaurant, id, UpdateReviewRequest{
		UpdateListingRequest: repository.UpdateListingRequest{Email: &bad},
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	badURL := "ftp://example.com"
	_, err = svc.UpdateReview(ctx, constants.EntityRestaurant, id, UpdateReviewRequest{
		UpdateListingRequest: repository.UpdateListingRequest{Website: &badURL},
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	price := 7
	_, err = svc.UpdateReview(ctx, constants.EntityRestaurant, id, UpdateReviewRequest{
		UpdateListingRequest: repository.UpdateListingRequest{PriceLevel: &price},
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	assert.Nil(t, repo.updated)
}

func TestUpdateReviewResolvesAttributes(t *testing.T) {
	repo := &fakeListingRepo{}
	attrs := &fakeAttrRepo{}
	svc := newTestService(repo, attrs, &fakeRunner{}, nil)

	names := []string{"Goan", "Seafood"}
	_, err := svc.UpdateReview(context.Background(), constants.EntityRestaurant, uuid.New(), UpdateReviewRequest{
		AttributeNames: &names,
	})
	require.NoError(t, err)

	assert.Equal(t, "cuisine", attrs.kind)
	assert.Equal(t, names, attrs.names)
	require.NotNil(t, repo.updated)
	require.NotNil(t, repo.updated.AttributeIDs)
	assert.Equal(t, []int{1, 2}, *repo.updated.AttributeIDs)
}

func TestDeleteReportsCleanupFailures(t *testing.T) {
	repo := &fakeListingRepo{
		deleteImgs: []entity.Image{
			{URL: "https://img.example/a.jpg"},
			{URL: "https://img.example/b.jpg"},
			{URL: "https://img.example/c.jpg"},
		},
	}
	store := &fakeStore{failOn: map[string]bool{"https://img.example/b.jpg": true}}
	svc := newTestService(repo, nil, &fakeRunner{}, store)

	report, err := svc.Delete(context.Background(), constants.EntityRestaurant, uuid.New())
	require.NoError(t, err)
	assert.True(t, report.Deleted)
	assert.Equal(t, 2, report.ImagesRemoved)
	assert.Equal(t, []string{"https://img.example/b.jpg"}, report.CleanupFailures)
}

func TestDeleteWithoutStoreSkipsCleanup(t *testing.T) {
	repo := &fakeListingRepo{deleteImgs: []entity.Image{{URL: "https://img.example/a.jpg"}}}
	svc := newTestService(repo, nil, &fakeRunner{}, nil)

	report, err := svc.Delete(context.Background(), constants.EntityRestaurant, uuid.New())
	require.NoError(t, err)
	assert.True(t, report.Deleted)
	assert.Zero(t, report.ImagesRemoved)
	assert.Empty(t, report.CleanupFailures)
}

func TestCheckDuplicateRequiresIdentity(t *testing.T) {
	svc := newTestService(&fakeListingRepo{}, nil, &fakeRunner{}, nil)
	_, err := svc.CheckDuplicate(context.Background(), constants.EntityRestaurant, "", "", "Anjuna")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
