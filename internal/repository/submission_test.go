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

func TestSubmissionLifecycle(t *testing.T) {
	client := openTestClient(t)
	repo := NewSubmissionRepository(client, testLogger())
	ctx := context.Background()

	s, err := repo.Create(ctx, &CreateSubmissionRequest{
		Category:       constants.EntityRestaurant,
		BusinessName:   "Spice Route",
		SubmitterName:  "A. Fernandes",
		SubmitterEmail: "a.fernandes@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.SubmissionPending, s.Status)

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spice Route", got.BusinessName)

	notes := "verified phone number"
	got, err = repo.SetStatus(ctx, s.ID, constants.SubmissionApproved, &notes)
	require.NoError(t, err)
	assert.Equal(t, constants.SubmissionApproved, got.Status)
	assert.Equal(t, notes, got.AdminNotes)

	require.NoError(t, repo.Delete(ctx, s.ID))
	_, err = repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSubmissionListFiltersByStatus(t *testing.T) {
	client := openTestClient(t)
	repo := NewSubmissionRepository(client, testLogger())
	ctx := context.Background()

	first, err := repo.Create(ctx, &CreateSubmissionRequest{
		Category:       constants.EntityHotel,
		BusinessName:   "Sea Breeze Inn",
		SubmitterName:  "R. Naik",
		SubmitterEmail: "r.naik@example.com",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &CreateSubmissionRequest{
		Category:       constants.EntityFitness,
		BusinessName:   "Coastal Crossfit",
		SubmitterName:  "P. Kamat",
		SubmitterEmail: "p.kamat@example.com",
	})
	require.NoError(t, err)

	_, err = repo.SetStatus(ctx, first.ID, constants.SubmissionInReview, nil)
	require.NoError(t, err)

	got, total, err := repo.List(ctx, constants.SubmissionInReview, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Sea Breeze Inn", got[0].BusinessName)

	got, total, err = repo.List(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, got, 2)
}

func TestSubmissionNotFound(t *testing.T) {
	client := openTestClient(t)
	repo := NewSubmissionRepository(client, testLogger())
	ctx := context.Background()

	_, err := repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = repo.SetStatus(ctx, uuid.New(), constants.SubmissionRejected, nil)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), common.ErrNotFound)
}

func TestAttributeEnsureIdempotent(t *testing.T) {
	client := openTestClient(t)
	repo := NewAttributeRepository(client, testLogger())
	ctx := context.Background()

	refs, err := repo.Ensure(ctx, "cuisine", []string{"Goan", "goan", "Seafood", ""})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "goan", refs[0].Slug)

	again, err := repo.Ensure(ctx, "cuisine", []string{"Goan"})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, refs[0].ID, again[0].ID)

	// same slug under a different kind is a distinct entry
	other, err := repo.Ensure(ctx, "amenity", []string{"Goan"})
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.NotEqual(t, refs[0].ID, other[0].ID)

	all, err := repo.ListByKind(ctx, "cuisine")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
