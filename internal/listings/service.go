package listings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/extraction"
	"github.com/bestofgoa/bok/internal/repository"
	"github.com/bestofgoa/bok/internal/runner"
)

// ImageStore removes stored image assets when a listing is deleted.
// Implementations talk to whatever bucket or CDN holds the files.
type ImageStore interface {
	Remove(ctx context.Context, url string) error
}

// StartExtractionRequest starts a pipeline run for one search candidate.
// Override skips the duplicate guard after the operator confirmed the
// warning.
type StartExtractionRequest struct {
	PlaceID     string
	SearchQuery string
	PlaceData   json.RawMessage
	Override    bool
}

// StartResult reports either the created stub or the duplicate that
// blocked creation.
type StartResult struct {
	EntityID  uuid.UUID               `json:"entity_id,omitempty"`
	Duplicate *entity.DuplicateResult `json:"duplicate,omitempty"`
}

// UpdateReviewRequest is a partial review edit. AttributeNames, when
// non-nil, replaces the structured attribute set for the listing's kind.
type UpdateReviewRequest struct {
	repository.UpdateListingRequest
	AttributeNames *[]string
}

// DeleteReport describes a listing deletion, including any image assets
// that could not be cleaned up.
type DeleteReport struct {
	Deleted         bool     `json:"deleted"`
	ImagesRemoved   int      `json:"images_removed"`
	CleanupFailures []string `json:"cleanup_failures,omitempty"`
}

// Service handles the extraction, review and publish workflow.
type Service struct {
	repo   repository.ListingRepository
	attrs  repository.AttributeRepository
	engine runner.Runner
	store  ImageStore
	logger *slog.Logger
}

func NewService(repo repository.ListingRepository, attrs repository.AttributeRepository, engine runner.Runner, store ImageStore, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		attrs:  attrs,
		engine: engine,
		store:  store,
		logger: logger,
	}
}

// StartExtraction creates the listing stub and hands it to the extraction
// engine. Unless overridden, a duplicate candidate is rejected before any
// record is created.
func (s *Service) StartExtraction(ctx context.Context, et constants.EntityType, req StartExtractionRequest) (*StartResult, error) {
	name, address := candidateIdentity(req.PlaceData)
	if name == "" {
		name = req.SearchQuery
	}
	if name == "" {
		return nil, fmt.Errorf("candidate has no name: %w", common.ErrInvalidInput)
	}

	if !req.Override {
		dup, err := s.repo.FindDuplicates(ctx, et, req.PlaceID, name, extraction.DeriveArea(address))
		if err != nil {
			// the guard never blocks extraction on its own failure
			s.logger.Warn("duplicate.check.failed", "entity_type", et, "name", name, "error", err)
		} else if dup.Exists {
			s.logger.Info("extraction.blocked.duplicate", "entity_type", et, "name", name, "match_type", dup.MatchType)
			return &StartResult{Duplicate: dup}, fmt.Errorf("candidate matches an existing listing: %w", common.ErrConflict)
		}
	}

	l, err := s.repo.Create(ctx, &repository.CreateListingRequest{
		EntityType:    et,
		Name:          name,
		GooglePlaceID: req.PlaceID,
		Address:       address,
		PlaceData:     req.PlaceData,
	})
	if err != nil {
		return nil, err
	}

	if err := s.engine.StartJob(ctx, runner.StartJobRequest{
		EntityType:  et,
		EntityID:    l.ID,
		PlaceID:     req.PlaceID,
		SearchQuery: req.SearchQuery,
		PlaceData:   req.PlaceData,
	}); err != nil {
		// keep the stub so the operator can retry or delete it
		return nil, fmt.Errorf("extraction engine unavailable for %s: %w", l.ID, err)
	}

	s.logger.Info("extraction.started", "entity_type", et, "entity_id", l.ID, "name", name)
	return &StartResult{EntityID: l.ID}, nil
}

// ExtractionStatus proxies the engine's job snapshot for a listing.
func (s *Service) ExtractionStatus(ctx context.Context, et constants.EntityType, id uuid.UUID) (*entity.JobSnapshot, error) {
	if _, err := s.repo.Get(ctx, et, id); err != nil {
		return nil, err
	}
	return s.engine.JobStatus(ctx, et, id)
}

// GetReview returns the full record with attributes, images and FAQs.
func (s *Service) GetReview(ctx context.Context, et constants.EntityType, id uuid.UUID) (*entity.Listing, error) {
	return s.repo.Get(ctx, et, id)
}

// UpdateReview applies a partial edit from the review screen.
func (s *Service) UpdateReview(ctx context.Context, et constants.EntityType, id uuid.UUID, req UpdateReviewRequest) (*entity.Listing, error) {
	v := common.NewValidator()
	if req.Name != nil {
		v.Field("name", req.Name, common.Required)
	}
	if req.Email != nil {
		v.Field("email", *req.Email, common.Email)
	}
	if req.Website != nil {
		v.Field("website", *req.Website, common.AbsoluteURL)
	}
	if req.PriceLevel != nil && (*req.PriceLevel < 0 || *req.PriceLevel > 4) {
		return nil, fmt.Errorf("price_level must be between 0 and 4: %w", common.ErrValidation)
	}
	if err := v.Error(); err != nil {
		return nil, err
	}

	if req.AttributeNames != nil {
		refs, err := s.attrs.Ensure(ctx, et.AttributeKind(), *req.AttributeNames)
		if err != nil {
			return nil, err
		}
		ids := make([]int, len(refs))
		for i, ref := range refs {
			ids[i] = ref.ID
		}
		req.AttributeIDs = &ids
	}

	return s.repo.Update(ctx, et, id, &req.UpdateListingRequest)
}

// Publish makes an inactive listing publicly visible.
func (s *Service) Publish(ctx context.Context, et constants.EntityType, id uuid.UUID) (*entity.Listing, error) {
	return s.repo.SetActive(ctx, et, id, true)
}

// Unpublish takes a published listing off the public site without losing
// its data.
func (s *Service) Unpublish(ctx context.Context, et constants.EntityType, id uuid.UUID) (*entity.Listing, error) {
	return s.repo.SetActive(ctx, et, id, false)
}

// Delete removes the listing and attempts to clean up each stored image.
// A failed cleanup never fails the deletion; it is reported instead.
func (s *Service) Delete(ctx context.Context, et constants.EntityType, id uuid.UUID) (*DeleteReport, error) {
	removed, err := s.repo.Delete(ctx, et, id)
	if err != nil {
		return nil, err
	}

	report := &DeleteReport{Deleted: true}
	for _, img := range removed {
		if s.store == nil {
			continue
		}
		if err := s.store.Remove(ctx, img.URL); err != nil {
			s.logger.Warn("listing.delete.image_cleanup_failed", "listing_id", id, "url", img.URL, "error", err)
			report.CleanupFailures = append(report.CleanupFailures, img.URL)
			continue
		}
		report.ImagesRemoved++
	}

	s.logger.Info("listing.deleted", "entity_type", et, "listing_id", id,
		"images_removed", report.ImagesRemoved, "cleanup_failures", len(report.CleanupFailures))
	return report, nil
}

// CheckDuplicate runs the duplicate query without creating anything.
func (s *Service) CheckDuplicate(ctx context.Context, et constants.EntityType, placeID, name, area string) (*entity.DuplicateResult, error) {
	if placeID == "" && name == "" {
		return nil, fmt.Errorf("place id or name is required: %w", common.ErrInvalidInput)
	}
	return s.repo.FindDuplicates(ctx, et, placeID, name, area)
}

// List returns the admin index for one entity type.
func (s *Service) List(ctx context.Context, req *repository.ListListingsRequest) ([]*entity.Listing, int, error) {
	return s.repo.List(ctx, req)
}

// candidateIdentity pulls the display name and address out of the raw
// search result, trying the same aliases the providers use.
func candidateIdentity(placeData json.RawMessage) (name, address string) {
	if len(placeData) == 0 {
		return "", ""
	}
	var m map[string]any
	if err := json.Unmarshal(placeData, &m); err != nil {
		return "", ""
	}
	for _, key := range []string{"title", "name", "placeName"} {
		if s, ok := m[key].(string); ok && s != "" {
			name = s
			break
		}
	}
	for _, key := range []string{"address", "formatted_address"} {
		if s, ok := m[key].(string); ok && s != "" {
			address = s
			break
		}
	}
	return name, address
}
