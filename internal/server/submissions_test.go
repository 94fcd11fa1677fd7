package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
)

type fakeSubmissionService struct {
	sub *entity.Submission
	err error

	gotBody   []byte
	gotStatus constants.SubmissionStatus
}

func (f *fakeSubmissionService) Create(_ context.Context, body []byte) (*entity.Submission, error) {
	f.gotBody = body
	return f.sub, f.err
}

func (f *fakeSubmissionService) Get(_ context.Context, _ uuid.UUID) (*entity.Submission, error) {
	return f.sub, f.err
}

func (f *fakeSubmissionService) List(_ context.Context, _ string, _, _ int) ([]*entity.Submission, int, error) {
	if f.sub == nil {
		return nil, 0, f.err
	}
	return []*entity.Submission{f.sub}, 1, f.err
}

func (f *fakeSubmissionService) Transition(_ context.Context, _ uuid.UUID, to constants.SubmissionStatus, _ *string) (*entity.Submission, error) {
	f.gotStatus = to
	return f.sub, f.err
}

func (f *fakeSubmissionService) Delete(_ context.Context, _ uuid.UUID) error {
	return f.err
}

type fakeImageService struct {
	img *entity.Image
	err error

	gotStatus  constants.ImageStatus
	gotAltText string
	gotOrder   []uuid.UUID
	heroSet    bool
}

func (f *fakeImageService) List(_ context.Context, _ uuid.UUID) ([]entity.Image, error) {
	if f.img == nil {
		return nil, f.err
	}
	return []entity.Image{*f.img}, f.err
}

func (f *fakeImageService) Add(_ context.Context, _ uuid.UUID, _, _ string) (*entity.Image, error) {
	return f.img, f.err
}

func (f *fakeImageService) Moderate(_ context.Context, _ uuid.UUID, status constants.ImageStatus) (*entity.Image, error) {
	f.gotStatus = status
	return f.img, f.err
}

func (f *fakeImageService) UpdateAltText(_ context.Context, _ uuid.UUID, altText string) (*entity.Image, error) {
	f.gotAltText = altText
	return f.img, f.err
}

func (f *fakeImageService) SetHero(_ context.Context, _, _ uuid.UUID) (*entity.Image, error) {
	f.heroSet = true
	return f.img, f.err
}

func (f *fakeImageService) Reorder(_ context.Context, _ uuid.UUID, imageIDs []uuid.UUID) ([]entity.Image, error) {
	f.gotOrder = imageIDs
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Image, len(imageIDs))
	for i, id := range imageIDs {
		out[i] = entity.Image{ID: id, DisplayOrder: i}
	}
	return out, nil
}

func (f *fakeImageService) Delete(_ context.Context, _ uuid.UUID) error {
	return f.err
}

func newSubmissionRouter(svc SubmissionService, imgSvc ImageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.Default()
	return NewRouter(Handlers{
		Listings:    NewListingHandler(&fakeListingService{}, fakeExporter{}, logger),
		Images:      NewImageHandler(imgSvc, logger),
		Submissions: NewSubmissionHandler(svc, logger),
	}, []string{"http://localhost:3000"}, nil, logger)
}

func TestSubmissionCreatePassesRawBody(t *testing.T) {
	svc := &fakeSubmissionService{sub: &entity.Submission{ID: uuid.New(), Status: constants.SubmissionPending}}
	router := newSubmissionRouter(svc, &fakeImageService{})

	w := doRequest(t, router, http.MethodPost, "/api/v1/submissions", gin.H{
		"category":      "restaurant",
		"business_name": "Spice Route",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"category":"restaurant","business_name":"Spice Route"}`, string(svc.gotBody))
}

func TestSubmissionCreateValidationFailure(t *testing.T) {
	svc := &fakeSubmissionService{err: fmt.Errorf("bad payload: %w", common.ErrValidation)}
	router := newSubmissionRouter(svc, &fakeImageService{})

	w := doRequest(t, router, http.MethodPost, "/api/v1/submissions", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmissionTransition(t *testing.T) {
	svc := &fakeSubmissionService{sub: &entity.Submission{ID: uuid.New(), Status: constants.SubmissionApproved}}
	router := newSubmissionRouter(svc, &fakeImageService{})

	w := doRequest(t, router, http.MethodPatch, "/api/v1/submissions/"+uuid.NewString()+"/status", gin.H{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.SubmissionApproved, svc.gotStatus)
}

func TestSubmissionTransitionConflict(t *testing.T) {
	svc := &fakeSubmissionService{err: fmt.Errorf("cannot move: %w", common.ErrConflict)}
	router := newSubmissionRouter(svc, &fakeImageService{})

	w := doRequest(t, router, http.MethodPatch, "/api/v1/submissions/"+uuid.NewString()+"/status", gin.H{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmissionDelete(t *testing.T) {
	router := newSubmissionRouter(&fakeSubmissionService{}, &fakeImageService{})
	w := doRequest(t, router, http.MethodDelete, "/api/v1/submissions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestImageModerateRoute(t *testing.T) {
	imgSvc := &fakeImageService{img: &entity.Image{ID: uuid.New(), Status: constants.ImageApproved}}
	router := newSubmissionRouter(&fakeSubmissionService{}, imgSvc)

	path := "/api/v1/restaurant/" + uuid.NewString() + "/images/" + uuid.NewString()
	w := doRequest(t, router, http.MethodPatch, path, gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.ImageApproved, imgSvc.gotStatus)
}

func TestImageSetHeroRoute(t *testing.T) {
	imgSvc := &fakeImageService{img: &entity.Image{ID: uuid.New(), IsHero: true}}
	router := newSubmissionRouter(&fakeSubmissionService{}, imgSvc)

	path := "/api/v1/hotel/" + uuid.NewString() + "/images/" + uuid.NewString() + "/hero"
	w := doRequest(t, router, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, imgSvc.heroSet)

	var img entity.Image
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &img))
	assert.True(t, img.IsHero)
}

func TestImageReorderRoute(t *testing.T) {
	imgSvc := &fakeImageService{}
	router := newSubmissionRouter(&fakeSubmissionService{}, imgSvc)

	first, second := uuid.New(), uuid.New()
	path := "/api/v1/restaurant/" + uuid.NewString() + "/images/order"
	w := doRequest(t, router, http.MethodPut, path, gin.H{
		"image_ids": []string{second.String(), first.String()},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uuid.UUID{second, first}, imgSvc.gotOrder)
}

func TestImageAltTextRoute(t *testing.T) {
	imgSvc := &fakeImageService{img: &entity.Image{ID: uuid.New(), AltText: "Sunset deck"}}
	router := newSubmissionRouter(&fakeSubmissionService{}, imgSvc)

	path := "/api/v1/hotel/" + uuid.NewString() + "/images/" + uuid.NewString() + "/alt-text"
	w := doRequest(t, router, http.MethodPut, path, gin.H{"alt_text": "Sunset deck"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sunset deck", imgSvc.gotAltText)
}

func TestImageAddValidationError(t *testing.T) {
	imgSvc := &fakeImageService{err: fmt.Errorf("bad url: %w", common.ErrValidation)}
	router := newSubmissionRouter(&fakeSubmissionService{}, imgSvc)

	path := "/api/v1/restaurant/" + uuid.NewString() + "/images"
	w := doRequest(t, router, http.MethodPost, path, gin.H{"url": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
