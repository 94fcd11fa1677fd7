package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/listings"
	"github.com/bestofgoa/bok/internal/repository"
)

type fakeListingService struct {
	startResult *listings.StartResult
	startErr    error
	listing     *entity.Listing
	snapshot    *entity.JobSnapshot
	report      *listings.DeleteReport
	dupResult   *entity.DuplicateResult
	err         error

	gotEntityType constants.EntityType
	gotUpdate     *listings.UpdateReviewRequest
}

func (f *fakeListingService) StartExtraction(_ context.Context, et constants.EntityType, _ listings.StartExtractionRequest) (*listings.StartResult, error) {
	f.gotEntityType = et
	return f.startResult, f.startErr
}

func (f *fakeListingService) ExtractionStatus(_ context.Context, _ constants.EntityType, _ uuid.UUID) (*entity.JobSnapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeListingService) GetReview(_ context.Context, et constants.EntityType, _ uuid.UUID) (*entity.Listing, error) {
	f.gotEntityType = et
	return f.listing, f.err
}

func (f *fakeListingService) UpdateReview(_ context.Context, _ constants.EntityType, _ uuid.UUID, req listings.UpdateReviewRequest) (*entity.Listing, error) {
	f.gotUpdate = &req
	return f.listing, f.err
}

func (f *fakeListingService) Publish(_ context.Context, _ constants.EntityType, _ uuid.UUID) (*entity.Listing, error) {
	return f.listing, f.err
}

func (f *fakeListingService) Unpublish(_ context.Context, _ constants.EntityType, _ uuid.UUID) (*entity.Listing, error) {
	return f.listing, f.err
}

func (f *fakeListingService) Delete(_ context.Context, _ constants.EntityType, _ uuid.UUID) (*listings.DeleteReport, error) {
	return f.report, f.err
}

func (f *fakeListingService) CheckDuplicate(_ context.Context, _ constants.EntityType, _, _, _ string) (*entity.DuplicateResult, error) {
	return f.dupResult, f.err
}

func (f *fakeListingService) List(_ context.Context, req *repository.ListListingsRequest) ([]*entity.Listing, int, error) {
	f.gotEntityType = req.EntityType
	if f.listing == nil {
		return nil, 0, f.err
	}
	return []*entity.Listing{f.listing}, 1, f.err
}

type fakeExporter struct{}

func (fakeExporter) ExportListingsXLSX(context.Context, constants.EntityType, *bool) ([]byte, error) {
	return []byte("xlsx"), nil
}

func newTestRouter(svc ListingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.Default()
	return NewRouter(Handlers{
		Listings:    NewListingHandler(svc, fakeExporter{}, logger),
		Images:      NewImageHandler(&fakeImageService{}, logger),
		Submissions: NewSubmissionHandler(&fakeSubmissionService{}, logger),
	}, []string{"http://localhost:3000"}, nil, logger)
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(bs)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUnknownEntityTypeIs404(t *testing.T) {
	router := newTestRouter(&fakeListingService{})
	w := doRequest(t, router, http.MethodGet, "/api/v1/casinos", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEntityTypeSynonymResolves(t *testing.T) {
	svc := &fakeListingService{listing: &entity.Listing{ID: uuid.New()}}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/api/v1/restaurants", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.EntityRestaurant, svc.gotEntityType)
}

func TestStartExtractionAccepted(t *testing.T) {
	id := uuid.New()
	svc := &fakeListingService{startResult: &listings.StartResult{EntityID: id}}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/restaurant/start-extraction", gin.H{
		"place_id":   "place-1",
		"place_data": gin.H{"title": "Gunpowder"},
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body["entity_id"])
}

func TestStartExtractionDuplicateConflict(t *testing.T) {
	svc := &fakeListingService{
		startResult: &listings.StartResult{Duplicate: &entity.DuplicateResult{
			Exists:    true,
			MatchType: "exact",
			Entities:  []entity.DuplicateMatch{{Name: "Gunpowder"}},
		}},
		startErr: fmt.Errorf("candidate matches an existing listing: %w", common.ErrConflict),
	}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/restaurant/start-extraction", gin.H{"place_id": "place-1"})
	require.Equal(t, http.StatusConflict, w.Code)

	var res entity.DuplicateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Exists)
	assert.Equal(t, "exact", res.MatchType)
	require.Len(t, res.Entities, 1)
}

func TestExtractionStatusBadUUID(t *testing.T) {
	router := newTestRouter(&fakeListingService{})
	w := doRequest(t, router, http.MethodGet, "/api/v1/restaurant/extraction-status/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReviewNotFound(t *testing.T) {
	svc := &fakeListingService{err: fmt.Errorf("listing: %w", common.ErrNotFound)}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/api/v1/hotel/"+uuid.NewString()+"/review", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateReviewForwardsFields(t *testing.T) {
	svc := &fakeListingService{listing: &entity.Listing{}}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodPut, "/api/v1/restaurant/"+uuid.NewString()+"/review", gin.H{
		"phone":      "+91 832 226 8091",
		"attributes": []string{"Goan"},
		"faqs":       []gin.H{{"question": "Q?", "answer": "A."}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, svc.gotUpdate)
	require.NotNil(t, svc.gotUpdate.Phone)
	assert.Equal(t, "+91 832 226 8091", *svc.gotUpdate.Phone)
	assert.Nil(t, svc.gotUpdate.Name)
	require.NotNil(t, svc.gotUpdate.AttributeNames)
	assert.Equal(t, []string{"Goan"}, *svc.gotUpdate.AttributeNames)
	require.NotNil(t, svc.gotUpdate.FAQs)
	assert.Equal(t, "Q?", (*svc.gotUpdate.FAQs)[0].Question)
}

func TestPublishConflict(t *testing.T) {
	svc := &fakeListingService{err: fmt.Errorf("already published: %w", common.ErrConflict)}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/attraction/"+uuid.NewString()+"/publish", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteReturnsReport(t *testing.T) {
	svc := &fakeListingService{report: &listings.DeleteReport{
		Deleted:         true,
		ImagesRemoved:   2,
		CleanupFailures: []string{"https://img.example/b.jpg"},
	}}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodDelete, "/api/v1/restaurant/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var report listings.DeleteReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.Deleted)
	assert.Equal(t, 2, report.ImagesRemoved)
	assert.Len(t, report.CleanupFailures, 1)
}

func TestCheckDuplicate(t *testing.T) {
	svc := &fakeListingService{dupResult: &entity.DuplicateResult{Exists: false}}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/restaurant/check-duplicate", gin.H{
		"placeId": "place-1",
		"name":    "Gunpowder",
		"area":    "Assagao",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res entity.DuplicateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Exists)
}

func TestListBadActiveParam(t *testing.T) {
	router := newTestRouter(&fakeListingService{})
	w := doRequest(t, router, http.MethodGet, "/api/v1/restaurant?active=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportSetsAttachmentHeaders(t *testing.T) {
	router := newTestRouter(&fakeListingService{})
	w := doRequest(t, router, http.MethodGet, "/api/v1/hotel/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "hotel-listings-")
	assert.Equal(t, "xlsx", w.Body.String())
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeListingService{})
	w := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
