package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/gen/ent"
	"github.com/bestofgoa/bok/gen/ent/faq"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/bestofgoa/bok/gen/ent/predicate"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/extraction"
	"github.com/bestofgoa/bok/internal/utils"
)

// CreateListingRequest wraps parameters for creating the initial draft record
// at the start of an extraction run.
type CreateListingRequest struct {
	EntityType    constants.EntityType
	Name          string
	GooglePlaceID string
	Address       string
	PlaceData     json.RawMessage
}

// UpdateListingRequest carries a partial review edit. Nil fields are left
// untouched; empty strings clear the column.
type UpdateListingRequest struct {
	Name             *string
	Address          *string
	Area             *string
	Latitude         *float64
	Longitude        *float64
	Phone            *string
	Email            *string
	Website          *string
	Instagram        *string
	Facebook         *string
	Description      *string
	ShortDescription *string
	MetaTitle        *string
	MetaDescription  *string
	MetaKeywords     *string
	PriceLevel       *int
	OpeningHours     *string
	BokScore         *float64
	Verified         *bool
	Featured         *bool

	// replaces the attribute set when non-nil
	AttributeIDs *[]int
	// replaces the FAQ collection when non-nil
	FAQs *[]entity.FAQ
}

// ListListingsRequest filters the admin listing index.
type ListListingsRequest struct {
	EntityType constants.EntityType
	Active     *bool
	Area       string
	Search     string
	Limit      int
	Offset     int
}

type ListingRepository interface {
	Create(ctx context.Context, req *CreateListingRequest) (*entity.Listing, error)
	Get(ctx context.Context, et constants.EntityType, id uuid.UUID) (*entity.Listing, error)
	Update(ctx context.Context, et constants.EntityType, id uuid.UUID, req *UpdateListingRequest) (*entity.Listing, error)
	SetActive(ctx context.Context, et constants.EntityType, id uuid.UUID, active bool) (*entity.Listing, error)
	Delete(ctx context.Context, et constants.EntityType, id uuid.UUID) ([]entity.Image, error)
	FindDuplicates(ctx context.Context, et constants.EntityType, placeID, name, area string) (*entity.DuplicateResult, error)
	List(ctx context.Context, req *ListListingsRequest) ([]*entity.Listing, int, error)
}

type listingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewListingRepository(client *ent.Client, logger *slog.Logger) ListingRepository {
	return &listingRepository{
		client: client,
		logger: logger,
	}
}

func (r *listingRepository) Create(ctx context.Context, req *CreateListingRequest) (*entity.Listing, error) {
	builder := r.client.Listing.Create().
		SetEntityType(string(req.EntityType)).
		SetName(req.Name).
		SetSlug(utils.Slugify(req.Name))
	if req.GooglePlaceID != "" {
		builder = builder.SetGooglePlaceID(req.GooglePlaceID)
	}
	if req.Address != "" {
		builder = builder.SetAddress(req.Address)
		builder = builder.SetArea(extraction.DeriveArea(req.Address))
	}
	if len(req.PlaceData) > 0 {
		builder = builder.SetApifyOutput(req.PlaceData)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			r.logger.Warn("listing.create.slug_conflict", "entity_type", req.EntityType, "name", req.Name)
			return nil, fmt.Errorf("listing %q already exists: %w", req.Name, common.ErrConflict)
		}
		r.logger.Error("failed to create listing", "entity_type", req.EntityType, "error", err)
		return nil, err
	}
	return utils.ToListing(rec), nil
}

func (r *listingRepository) Get(ctx context.Context, et constants.EntityType, id uuid.UUID) (*entity.Listing, error) {
	rec, err := r.client.Listing.Query().
		Where(listing.ID(id), listing.EntityType(string(et))).
		WithAttributes().
		WithImages(func(q *ent.ListingImageQuery) {
			q.Order(listingimage.ByDisplayOrder())
		}).
		WithFaqs(func(q *ent.FAQQuery) {
			q.Order(faq.ByDisplayOrder())
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("listing %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get listing", "listing_id", id, "error", err)
		return nil, err
	}
	return utils.ToListing(rec), nil
}

func (r *listingRepository) Update(ctx context.Context, et constants.EntityType, id uuid.UUID, req *UpdateListingRequest) (*entity.Listing, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	builder := tx.Listing.Update().
		Where(listing.ID(id), listing.EntityType(string(et)))
	if req.Name != nil {
		builder = builder.SetName(*req.Name)
	}
	if req.Address != nil {
		builder = builder.SetAddress(*req.Address)
	}
	if req.Area != nil {
		builder = builder.SetArea(*req.Area)
	}
	if req.Latitude != nil {
		builder = builder.SetLatitude(*req.Latitude)
	}
	if req.Longitude != nil {
		builder = builder.SetLongitude(*req.Longitude)
	}
	if req.Phone != nil {
		builder = builder.SetPhone(*req.Phone)
	}
	if req.Email != nil {
		builder = builder.SetEmail(*req.Email)
	}
	if req.Website != nil {
		builder = builder.SetWebsite(*req.Website)
	}
	if req.Instagram != nil {
		builder = builder.SetInstagram(*req.Instagram)
	}
	if req.Facebook != nil {
		builder = builder.SetFacebook(*req.Facebook)
	}
	if req.Description != nil {
		builder = builder.SetDescription(*req.Description)
	}
	if req.ShortDescription != nil {
		builder = builder.SetShortDescription(*req.ShortDescription)
	}
	if req.MetaTitle != nil {
		builder = builder.SetMetaTitle(*req.MetaTitle)
	}
	if req.MetaDescription != nil {
		builder = builder.SetMetaDescription(*req.MetaDescription)
	}
	if req.MetaKeywords != nil {
		builder = builder.SetMetaKeywords(*req.MetaKeywords)
	}
	if req.PriceLevel != nil {
		builder = builder.SetPriceLevel(*req.PriceLevel)
	}
	if req.OpeningHours != nil {
		builder = builder.SetOpeningHours(*req.OpeningHours)
	}
	if req.BokScore != nil {
		builder = builder.SetBokScore(*req.BokScore)
	}
	if req.Verified != nil {
		builder = builder.SetVerified(*req.Verified)
	}
	if req.Featured != nil {
		builder = builder.SetFeatured(*req.Featured)
	}
	if req.AttributeIDs != nil {
		builder = builder.ClearAttributes().AddAttributeIDs(*req.AttributeIDs...)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to update listing", "listing_id", id, "error", err)
		return nil, err
	}
	if n == 0 {
		_ = tx.Rollback()
		return nil, fmt.Errorf("listing %s: %w", id, common.ErrNotFound)
	}

	if req.FAQs != nil {
		if _, err := tx.FAQ.Delete().Where(faq.ListingID(id)).Exec(ctx); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		for i, f := range *req.FAQs {
			if err := tx.FAQ.Create().
				SetListingID(id).
				SetQuestion(f.Question).
				SetAnswer(f.Answer).
				SetDisplayOrder(i).
				Exec(ctx); err != nil {
				_ = tx.Rollback()
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.Get(ctx, et, id)
}

func (r *listingRepository) SetActive(ctx context.Context, et constants.EntityType, id uuid.UUID, active bool) (*entity.Listing, error) {
	rec, err := r.client.Listing.Query().
		Where(listing.ID(id), listing.EntityType(string(et))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("listing %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	if rec.Active == active {
		state := "unpublished"
		if active {
			state = "published"
		}
		return nil, fmt.Errorf("listing %s is already %s: %w", id, state, common.ErrConflict)
	}

	rec, err = rec.Update().SetActive(active).Save(ctx)
	if err != nil {
		r.logger.Error("failed to set listing active state", "listing_id", id, "active", active, "error", err)
		return nil, err
	}
	r.logger.Info("listing.active.changed", "listing_id", id, "active", active)
	return utils.ToListing(rec), nil
}

// Delete removes the listing and its child rows. The removed image rows are
// returned so the caller can attempt storage cleanup per image.
func (r *listingRepository) Delete(ctx context.Context, et constants.EntityType, id uuid.UUID) ([]entity.Image, error) {
	imgs, err := r.client.ListingImage.Query().
		Where(listingimage.ListingID(id)).
		Order(listingimage.ByDisplayOrder()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	if err := tx.Listing.Update().
		Where(listing.ID(id), listing.EntityType(string(et))).
		ClearAttributes().
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if _, err := tx.ListingImage.Delete().Where(listingimage.ListingID(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if _, err := tx.FAQ.Delete().Where(faq.ListingID(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	n, err := tx.Listing.Delete().
		Where(listing.ID(id), listing.EntityType(string(et))).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to delete listing", "listing_id", id, "error", err)
		return nil, err
	}
	if n == 0 {
		_ = tx.Rollback()
		return nil, fmt.Errorf("listing %s: %w", id, common.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	removed := make([]entity.Image, len(imgs))
	for i, img := range imgs {
		removed[i] = utils.ToImage(img)
	}
	return removed, nil
}

// FindDuplicates checks a candidate against existing listings of the same
// type. A google place id match is exact; failing that, a case-insensitive
// name match within the same area is fuzzy.
func (r *listingRepository) FindDuplicates(ctx context.Context, et constants.EntityType, placeID, name, area string) (*entity.DuplicateResult, error) {
	if placeID != "" {
		recs, err := r.client.Listing.Query().
			Where(listing.EntityType(string(et)), listing.GooglePlaceID(placeID)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		if len(recs) > 0 {
			return duplicateResult("exact", recs), nil
		}
	}

	if name != "" {
		preds := []predicate.Listing{listing.EntityType(string(et)), listing.NameEqualFold(name)}
		if area != "" {
			preds = append(preds, listing.AreaEqualFold(area))
		}
		recs, err := r.client.Listing.Query().Where(preds...).All(ctx)
		if err != nil {
			return nil, err
		}
		if len(recs) > 0 {
			return duplicateResult("fuzzy", recs), nil
		}
	}

	return &entity.DuplicateResult{Exists: false}, nil
}

func (r *listingRepository) List(ctx context.Context, req *ListListingsRequest) ([]*entity.Listing, int, error) {
	q := r.client.Listing.Query().Where(listing.EntityType(string(req.EntityType)))
	if req.Active != nil {
		q = q.Where(listing.Active(*req.Active))
	}
	if req.Area != "" {
		q = q.Where(listing.AreaEqualFold(req.Area))
	}
	if req.Search != "" {
		q = q.Where(listing.NameContainsFold(req.Search))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	if req.Limit > 0 {
		q = q.Limit(req.Limit)
	}
	if req.Offset > 0 {
		q = q.Offset(req.Offset)
	}
	recs, err := q.WithAttributes().Order(listing.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list listings", "entity_type", req.EntityType, "error", err)
		return nil, 0, err
	}

	result := make([]*entity.Listing, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToListing(rec)
	}
	return result, total, nil
}

func duplicateResult(matchType string, recs []*ent.Listing) *entity.DuplicateResult {
	res := &entity.DuplicateResult{Exists: true, MatchType: matchType}
	for _, rec := range recs {
		res.Entities = append(res.Entities, utils.ToDuplicateMatch(rec))
	}
	return res
}
