package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/common"
)

func TestImageModeration(t *testing.T) {
	client := openTestClient(t)
	listings := NewListingRepository(client, testLogger())
	repo := NewImageRepository(client, testLogger())
	ctx := context.Background()

	l, err := listings.Create(ctx, &CreateListingRequest{EntityType: constants.EntityRestaurant, Name: "Black Sheep Bistro"})
	require.NoError(t, err)

	img, err := repo.Create(ctx, l.ID, "https://img.example/front.jpg", "Front entrance", 0)
	require.NoError(t, err)
	assert.Equal(t, constants.ImagePending, img.Status)
	assert.False(t, img.IsHero)

	img, err = repo.SetStatus(ctx, img.ID, constants.ImageApproved)
	require.NoError(t, err)
	assert.Equal(t, constants.ImageApproved, img.Status)

	img, err = repo.SetStatus(ctx, img.ID, constants.ImageRejected)
	require.NoError(t, err)
	assert.Equal(t, constants.ImageRejected, img.Status)

	_, err = repo.SetStatus(ctx, uuid.New(), constants.ImageApproved)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestImageSetHeroDemotesSiblings(t *testing.T) {
	client := openTestClient(t)
	listings := NewListingRepository(client, testLogger())
	repo := NewImageRepository(client, testLogger())
	ctx := context.Background()

	l, err := listings.Create(ctx, &CreateListingRequest{EntityType: constants.EntityHotel, Name: "Cidade de Goa"})
	require.NoError(t, err)

	first, err := repo.Create(ctx, l.ID, "https://img.example/a.jpg", "", 0)
	require.NoError(t, err)
	second, err := repo.Create(ctx, l.ID, "https://img.example/b.jpg", "", 1)
	require.NoError(t, err)

	hero, err := repo.SetHero(ctx, l.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, hero.IsHero)
	assert.Equal(t, constants.ImageApproved, hero.Status)

	hero, err = repo.SetHero(ctx, l.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, hero.IsHero)

	imgs, err := repo.ListByListing(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, imgs, 2)
	heroes := 0
	for _, img := range imgs {
		if img.IsHero {
			heroes++
			assert.Equal(t, second.ID, img.ID)
		}
	}
	assert.Equal(t, 1, heroes)
}

func TestImageSetHeroOtherListingNotFound(t *testing.T) {
	client := openTestClient(t)
	listings := NewListingRepository(client, testLogger())
	repo := NewImageRepository(client, testLogger())
	ctx := context.Background()

	a, err := listings.Create(ctx, &CreateListingRequest{EntityType: constants.EntityMall, Name: "Mall de Goa"})
	require.NoError(t, err)
	b, err := listings.Create(ctx, &CreateListingRequest{EntityType: constants.EntityMall, Name: "Caculo Mall"})
	require.NoError(t, err)

	img, err := repo.Create(ctx, a.ID, "https://img.example/a.jpg", "", 0)
	require.NoError(t, err)

	// an image can only be hero of its own listing
	_, err = repo.SetHero(ctx, b.ID, img.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestImageDelete(t *testing.T) {
	client := openTestClient(t)
	listings := NewListingRepository(client, testLogger())
	repo := NewImageRepository(client, testLogger())
	ctx := context.Background()

	l, err := listings.Create(ctx, &CreateListingRequest{EntityType: constants.EntityFitness, Name: "Prana Gym"})
	require.NoError(t, err)
	img, err := repo.Create(ctx, l.ID, "https://img.example/gym.jpg", "", 0)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, img.ID))
	assert.ErrorIs(t, repo.Delete(ctx, img.ID), common.ErrNotFound)

	imgs, err := repo.ListByListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, imgs)
}

func TestImageSetAltText(t *testing.T) {
	client := openTestClient(t)
	listings := NewListingRepository(client, testLogger())
	repo := NewImageRepository(client, testLogger())
	ctx := context.Background()

	l, err := listings.Create(ctx, &CreateListingRequest{EntityType: constants.EntityAttraction, Name: "Dudhsagar Falls"})
	require.NoError(t, err)
	img, err := repo.Create(ctx, l.ID, "https://img.example/falls.jpg", "", 0)
	require.NoError(t, err)

	img, err = repo.SetAltText(ctx, img.ID, "Falls in monsoon")
	require.NoError(t, err)
	assert.Equal(t, "Falls in monsoon", img.AltText)

	_, err = repo.SetAltText(ctx, uuid.New(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestImageReorder(t *testing.T) {
	client := openTestClient(t)
	listings := NewListingRepository(client, testLogger())
	repo := NewImageRepository(client, testLogger())
	ctx := context.Background()

	l, err := listings.Create(ctx, &CreateListingRequest{EntityType: constants.EntityMall, Name: "Caculo Mall"})
	require.NoError(t, err)

	first, err := repo.Create(ctx, l.ID, "https://img.example/1.jpg", "", 0)
	require.NoError(t, err)
	second, err := repo.Create(ctx, l.ID, "https://img.example/2.jpg", "", 1)
	require.NoError(t, err)
	third, err := repo.Create(ctx, l.ID, "https://img.example/3.jpg", "", 2)
	require.NoError(t, err)

	imgs, err := repo.Reorder(ctx, l.ID, []uuid.UUID{third.ID, first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, imgs, 3)
	assert.Equal(t, third.ID, imgs[0].ID)
	assert.Equal(t, first.ID, imgs[1].ID)
	assert.Equal(t, second.ID, imgs[2].ID)

	// partial id lists are rejected
	_, err = repo.Reorder(ctx, l.ID, []uuid.UUID{first.ID})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	// duplicated ids are rejected even when the count matches
	_, err = repo.Reorder(ctx, l.ID, []uuid.UUID{first.ID, first.ID, second.ID})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	// ids from another listing are not found
	other, err := listings.Create(ctx, &CreateListingRequest{EntityType: constants.EntityMall, Name: "Mall de Goa"})
	require.NoError(t, err)
	stray, err := repo.Create(ctx, other.ID, "https://img.example/stray.jpg", "", 0)
	require.NoError(t, err)
	_, err = repo.Reorder(ctx, l.ID, []uuid.UUID{third.ID, stray.ID, second.ID})
	assert.ErrorIs(t, err, common.ErrNotFound)
}
