package images

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/async"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/repository"
)

// Service handles image moderation for listings. Rejected and deleted
// images have their stored assets removed in the background when a cleanup
// queue is attached.
type Service struct {
	repo    repository.ImageRepository
	cleanup async.Queue
	logger  *slog.Logger
}

func NewService(repo repository.ImageRepository, cleanup async.Queue, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		cleanup: cleanup,
		logger:  logger,
	}
}

func (s *Service) List(ctx context.Context, listingID uuid.UUID) ([]entity.Image, error) {
	return s.repo.ListByListing(ctx, listingID)
}

// Add registers a candidate photo at the end of the display order.
func (s *Service) Add(ctx context.Context, listingID uuid.UUID, url, altText string) (*entity.Image, error) {
	v := common.NewValidator()
	v.Field("url", url, common.Required, common.AbsoluteURL)
	if err := v.Error(); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, listingID, url, altText, len(existing))
}

// Moderate approves or rejects a candidate photo.
func (s *Service) Moderate(ctx context.Context, id uuid.UUID, status constants.ImageStatus) (*entity.Image, error) {
	switch status {
	case constants.ImageApproved, constants.ImageRejected:
	default:
		return nil, fmt.Errorf("status must be approved or rejected, got %q: %w", status, common.ErrInvalidInput)
	}
	img, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if status == constants.ImageRejected {
		s.enqueueCleanup(ctx, img)
	}
	return img, nil
}

// SetHero picks the listing's cover photo. The repository demotes any
// previous hero in the same transaction.
func (s *Service) SetHero(ctx context.Context, listingID, imageID uuid.UUID) (*entity.Image, error) {
	return s.repo.SetHero(ctx, listingID, imageID)
}

func (s *Service) UpdateAltText(ctx context.Context, id uuid.UUID, altText string) (*entity.Image, error) {
	return s.repo.SetAltText(ctx, id, altText)
}

// Reorder applies a new display order. The id list must cover the listing's
// images exactly.
func (s *Service) Reorder(ctx context.Context, listingID uuid.UUID, imageIDs []uuid.UUID) ([]entity.Image, error) {
	if len(imageIDs) == 0 {
		return nil, fmt.Errorf("image_ids must not be empty: %w", common.ErrInvalidInput)
	}
	return s.repo.Reorder(ctx, listingID, imageIDs)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	img, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.enqueueCleanup(ctx, img)
	return nil
}

func (s *Service) enqueueCleanup(ctx context.Context, img *entity.Image) {
	if s.cleanup == nil || img == nil {
		return
	}
	_ = s.cleanup.Enqueue(ctx, async.Job{
		URL:         img.URL,
		ListingID:   img.ListingID,
		SubmittedAt: time.Now(),
	})
}
