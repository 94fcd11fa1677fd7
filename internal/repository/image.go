package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/gen/ent"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/utils"
)

type ImageRepository interface {
	Create(ctx context.Context, listingID uuid.UUID, url, altText string, displayOrder int) (*entity.Image, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Image, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]entity.Image, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.ImageStatus) (*entity.Image, error)
	SetAltText(ctx context.Context, id uuid.UUID, altText string) (*entity.Image, error)
	SetHero(ctx context.Context, listingID, imageID uuid.UUID) (*entity.Image, error)
	Reorder(ctx context.Context, listingID uuid.UUID, imageIDs []uuid.UUID) ([]entity.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type imageRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewImageRepository(client *ent.Client, logger *slog.Logger) ImageRepository {
	return &imageRepository{
		client: client,
		logger: logger,
	}
}

func (r *imageRepository) Create(ctx context.Context, listingID uuid.UUID, url, altText string, displayOrder int) (*entity.Image, error) {
	builder := r.client.ListingImage.Create().
		SetListingID(listingID).
		SetURL(url).
		SetDisplayOrder(displayOrder)
	if altText != "" {
		builder = builder.SetAltText(altText)
	}
	rec, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("listing %s: %w", listingID, common.ErrNotFound)
		}
		r.logger.Error("failed to create image", "listing_id", listingID, "error", err)
		return nil, err
	}
	img := utils.ToImage(rec)
	return &img, nil
}

func (r *imageRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	rec, err := r.client.ListingImage.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("image %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get image", "image_id", id, "error", err)
		return nil, err
	}
	img := utils.ToImage(rec)
	return &img, nil
}

func (r *imageRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]entity.Image, error) {
	recs, err := r.client.ListingImage.Query().
		Where(listingimage.ListingID(listingID)).
		Order(listingimage.ByDisplayOrder()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list images", "listing_id", listingID, "error", err)
		return nil, err
	}
	result := make([]entity.Image, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToImage(rec)
	}
	return result, nil
}

func (r *imageRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.ImageStatus) (*entity.Image, error) {
	rec, err := r.client.ListingImage.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("image %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to set image status", "image_id", id, "error", err)
		return nil, err
	}
	img := utils.ToImage(rec)
	return &img, nil
}

func (r *imageRepository) SetAltText(ctx context.Context, id uuid.UUID, altText string) (*entity.Image, error) {
	rec, err := r.client.ListingImage.UpdateOneID(id).
		SetAltText(altText).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("image %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to set image alt text", "image_id", id, "error", err)
		return nil, err
	}
	img := utils.ToImage(rec)
	return &img, nil
}

// Reorder rewrites display_order from the given id sequence. The sequence
// must name every image of the listing exactly once.
func (r *imageRepository) Reorder(ctx context.Context, listingID uuid.UUID, imageIDs []uuid.UUID) ([]entity.Image, error) {
	count, err := r.client.ListingImage.Query().
		Where(listingimage.ListingID(listingID)).
		Count(ctx)
	if err != nil {
		return nil, err
	}
	if count != len(imageIDs) {
		return nil, fmt.Errorf("expected %d image ids, got %d: %w", count, len(imageIDs), common.ErrInvalidInput)
	}
	seen := make(map[uuid.UUID]struct{}, len(imageIDs))
	for _, id := range imageIDs {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("image %s listed twice: %w", id, common.ErrInvalidInput)
		}
		seen[id] = struct{}{}
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	for i, id := range imageIDs {
		n, err := tx.ListingImage.Update().
			Where(listingimage.ID(id), listingimage.ListingID(listingID)).
			SetDisplayOrder(i).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		if n == 0 {
			_ = tx.Rollback()
			return nil, fmt.Errorf("image %s: %w", id, common.ErrNotFound)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info("image.reordered", "listing_id", listingID, "count", len(imageIDs))
	return r.ListByListing(ctx, listingID)
}

// SetHero promotes one image and demotes its siblings in the same
// transaction, so at most one hero exists per listing at any time.
func (r *imageRepository) SetHero(ctx context.Context, listingID, imageID uuid.UUID) (*entity.Image, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ListingImage.Update().
		Where(listingimage.ListingID(listingID), listingimage.IsHero(true)).
		SetIsHero(false).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	n, err := tx.ListingImage.Update().
		Where(listingimage.ID(imageID), listingimage.ListingID(listingID)).
		SetIsHero(true).
		SetStatus(string(constants.ImageApproved)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if n == 0 {
		_ = tx.Rollback()
		return nil, fmt.Errorf("image %s: %w", imageID, common.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	rec, err := r.client.ListingImage.Get(ctx, imageID)
	if err != nil {
		return nil, err
	}
	r.logger.Info("image.hero.changed", "listing_id", listingID, "image_id", imageID)
	img := utils.ToImage(rec)
	return &img, nil
}

func (r *imageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.ListingImage.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("image %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to delete image", "image_id", id, "error", err)
		return err
	}
	return nil
}
