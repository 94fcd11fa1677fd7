package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
)

func strPtr(s string) *string { return &s }

func TestListingCreateDerivesSlugAndArea(t *testing.T) {
	client := openTestClient(t)
	repo := NewListingRepository(client, testLogger())

	l, err := repo.Create(context.Background(), &CreateListingRequest{
		EntityType:    constants.EntityRestaurant,
		Name:          "Fisherman's Wharf",
		GooglePlaceID: "place-123",
		Address:       "Mobor, Cavelossim, Salcete",
		PlaceData:     json.RawMessage(`{"title":"Fisherman's Wharf"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "fisherman-s-wharf", l.Slug)
	assert.Equal(t, "Mobor", l.Area)
	assert.False(t, l.Active)
	assert.JSONEq(t, `{"title":"Fisherman's Wharf"}`, string(l.ApifyOutput))
}

func TestListingCreateDuplicateSlugConflicts(t *testing.T) {
	client := openTestClient(t)
	repo := NewListingRepository(client, testLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, &CreateListingRequest{EntityType: constants.EntityHotel, Name: "Taj Exotica"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &CreateListingRequest{EntityType: constants.EntityHotel, Name: "Taj Exotica"})
	assert.ErrorIs(t, err, common.ErrConflict)

	// same name under a different type is fine
	_, err = repo.Create(ctx, &CreateListingRequest{EntityType: constants.EntityRestaurant, Name: "Taj Exotica"})
	assert.NoError(t, err)
}

func TestListingGetScopedByType(t *testing.T) {
	client := openTestClient(t)
	repo := NewListingRepository(client, testLogger())
	ctx := context.Background()

	l, err := repo.Create(ctx, &CreateListingRequest{EntityType: constants.EntityMall, Name: "Caculo Mall"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, constants.EntityMall, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)

	_, err = repo.Get(ctx, constants.EntityHotel, l.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = repo.Get(ctx, constants.EntityMall, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListingUpdatePartial(t *testing.T) {
	client := openTestClient(t)
	repo := NewListingRepository(client, testLogger())
	ctx := context.Background()

	l, err := repo.Create(ctx, &CreateListingRequest{EntityType: constants.EntityRestaurant, Name: "Gunpowder"})
	require.NoError(t, err)

	price := 3
	got, err := repo.Update(ctx, constants.EntityRestaurant, l.ID, &UpdateListingRequest{
		Phone:      strPtr("+91 832 226 8091"),
		PriceLevel: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Gunpowder", got.Name)
	assert.Equal(t, "+91 832 226 8091", got.Phone)
	assert.Equal(t, 3, got.PriceLevel)

	// nil fields untouched, empty string clears
	got, err = repo.Update(ctx, constants.EntityRestaurant, l.ID, &UpdateListingRequest{Phone: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, got.Phone)
	assert.Equal(t, 3, got.PriceLevel)
}

func TestListingUpdateReplacesFAQsAndAttributes(t *testing.T) {
	client := openTestClient(t)
	repo := NewListingRepository(client, testLogger())
	attrs := NewAttributeRepository(client, testLogger())
	ctx := context.Background()

	l, err := repo.Create(ctx, &CreateListingRequest{EntityType: constants.EntityRestaurant, Name: "Vinayak Family Restaurant"})
	require.NoError(t, err)

	refs, err := attrs.Ensure(ctx, "cuisine", []string{"Goan", "Seafood"})
	require.NoError(t, err)
	ids := []int{refs[0].ID, refs[1].ID}

	faqs := []entity.FAQ{
		{Question: "Do you take reservations?", Answer: "Yes, by phone."},
		{Question: "Is parking available?", Answer: "Street parking only."},
	}
	got, err := repo.Update(ctx, constants.EntityRestaurant, l.ID, &UpdateListingRequest{
		AttributeIDs: &ids,
		FAQs:         &faqs,
	})
	require.NoError(t, err)
	require.Len(t, got.Attributes, 2)
	require.Len(t, got.FAQs, 2)
	assert.Equal(t, "Do you take reservations?", got.FAQs[0].Question)
	assert.Equal(t, 0, got.FAQs[0].DisplayOrder)
	assert.Equal(t, 1, got.FAQs[1].DisplayOrder)

	// replace with a smaller set
	one := []int{refs[0].ID}
	empty := []entity.FAQ{}
	got, err = repo.Update(ctx, constants.EntityRestaurant, l.ID, &UpdateListingRequest{
		AttributeIDs: &one,
		FAQs:         &empty,
	})
	require.NoError(t, err)
	assert.Len(t, got.Attributes, 1)
	assert.Empty(t, got.FAQs)
}

func TestListingPublishUnpublish(t *testing.T) {
	client := openTestClient(t)
	repo := NewListingRepository(client, testLogger())
	ctx := context.Background()

	l, err := repo.Create(ctx, &CreateListingRequest{EntityType: constants.EntityAttraction, Name: "Dudhsagar Falls"})
	require.NoError(t, err)

	got, err := repo.SetActive(ctx, constants.EntityAttraction, l.ID, true)
	require.NoError(t, err)
	assert.True(t, got.Active)

	_, err = repo.SetActive(ctx, constants.EntityAttraction, l.ID, true)
	assert.ErrorIs(t, err, common.ErrConflict)

	got, err = repo.SetActive(ctx, constants.EntityAttraction, l.ID, false)
	require.NoError(t, err)
	assert.False(t, got.Active)

	_, err = repo.SetActive(ctx, constants.EntityAttraction, l.ID, false)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestListingDeleteRemovesChildrenAndReportsImages(t *testing.T) {
	client := openTestClient(t)
	repo := NewListingRepository(client, testLogger())
	images := NewImageRepository(client, testLogger())
	ctx := context.Background()

	l, err := repo.Create(ctx, &CreateListingRequest{EntityType: constants.EntityRestaurant, Name: "Ritz Classic"})
	require.NoError(t, err)
	_, err = images.Create(ctx, l.ID, "https://img.example/1.jpg", "", 0)
	require.NoError(t, err)
	_, err = images.Create(ctx, l.ID, "https://img.example/2.jpg", "", 1)
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, constants.EntityRestaurant, l.ID)
	require.NoError(t, err)
	require.Len(t, removed, 2)
	assert.Equal(t, "https://img.example/1.jpg", removed[0].URL)

	_, err = repo.Get(ctx, constants.EntityRestaurant, l.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = repo.Delete(ctx, constants.EntityRestaurant, l.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListingFindDuplicates(t *testing.T) {
	client := openTestClient(t)
	repo := NewListingRepository(client, testLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, &CreateListingRequest{
		EntityType:    constants.EntityRestaurant,
		Name:          "Martin's Corner",
		GooglePlaceID: "place-martins",
		Address:       "Betalbatim, Salcete",
	})
	require.NoError(t, err)

	// place id hit is exact
	res, err := repo.FindDuplicates(ctx, constants.EntityRestaurant, "place-martins", "Some Other Name", "")
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.Equal(t, "exact", res.MatchType)
	require.Len(t, res.Entities, 1)
	assert.Equal(t, "Martin's Corner", res.Entities[0].Name)

	// case-insensitive name within the same area is fuzzy
	res, err = repo.FindDuplicates(ctx, constants.EntityRestaurant, "", "martin's corner", "betalbatim")
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.Equal(t, "fuzzy", res.MatchType)

	// same name in another area passes
	res, err = repo.FindDuplicates(ctx, constants.EntityRestaurant, "", "Martin's Corner", "Anjuna")
	require.NoError(t, err)
	assert.False(t, res.Exists)

	// other entity types never collide
	res, err = repo.FindDuplicates(ctx, constants.EntityHotel, "place-martins", "Martin's Corner", "Betalbatim")
	require.NoError(t, err)
	assert.False(t, res.Exists)
}

func TestListingListFilters(t *testing.T) {
	client := openTestClient(t)
	repo := NewListingRepository(client, testLogger())
	ctx := context.Background()

	a, err := repo.Create(ctx, &CreateListingRequest{EntityType: constants.EntityHotel, Name: "Alila Diwa", Address: "Majorda, Salcete"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &CreateListingRequest{EntityType: constants.EntityHotel, Name: "W Goa", Address: "Vagator, Bardez"})
	require.NoError(t, err)
	_, err = repo.SetActive(ctx, constants.EntityHotel, a.ID, true)
	require.NoError(t, err)

	active := true
	got, total, err := repo.List(ctx, &ListListingsRequest{EntityType: constants.EntityHotel, Active: &active})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Alila Diwa", got[0].Name)

	got, total, err = repo.List(ctx, &ListListingsRequest{EntityType: constants.EntityHotel, Search: "goa"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "W Goa", got[0].Name)

	_, total, err = repo.List(ctx, &ListListingsRequest{EntityType: constants.EntityHotel, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
