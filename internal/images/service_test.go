package images

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/async"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/repository"
)

type fakeImageRepo struct {
	repository.ImageRepository

	images  map[uuid.UUID]*entity.Image
	created *entity.Image
	deleted []uuid.UUID
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[uuid.UUID]*entity.Image)}
}

func (f *fakeImageRepo) add(img entity.Image) *entity.Image {
	img.ID = uuid.New()
	f.images[img.ID] = &img
	return &img
}

func (f *fakeImageRepo) Create(_ context.Context, listingID uuid.UUID, url, altText string, displayOrder int) (*entity.Image, error) {
	img := f.add(entity.Image{ListingID: listingID, URL: url, AltText: altText, DisplayOrder: displayOrder, Status: constants.ImagePending})
	f.created = img
	return img, nil
}

func (f *fakeImageRepo) Get(_ context.Context, id uuid.UUID) (*entity.Image, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return img, nil
}

func (f *fakeImageRepo) ListByListing(_ context.Context, listingID uuid.UUID) ([]entity.Image, error) {
	var out []entity.Image
	for _, img := range f.images {
		if img.ListingID == listingID {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (f *fakeImageRepo) SetStatus(_ context.Context, id uuid.UUID, status constants.ImageStatus) (*entity.Image, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	img.Status = status
	return img, nil
}

func (f *fakeImageRepo) Reorder(_ context.Context, listingID uuid.UUID, imageIDs []uuid.UUID) ([]entity.Image, error) {
	out := make([]entity.Image, 0, len(imageIDs))
	for i, id := range imageIDs {
		img, ok := f.images[id]
		if !ok || img.ListingID != listingID {
			return nil, common.ErrNotFound
		}
		img.DisplayOrder = i
		out = append(out, *img)
	}
	return out, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.images[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.images, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeQueue struct {
	jobs []async.Job
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) Shutdown(context.Context) {}

func TestAddValidatesURL(t *testing.T) {
	repo := newFakeImageRepo()
	svc := NewService(repo, nil, slog.Default())
	ctx := context.Background()
	listingID := uuid.New()

	_, err := svc.Add(ctx, listingID, "", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Add(ctx, listingID, "not a url", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	img, err := svc.Add(ctx, listingID, "https://img.example/new.jpg", "Pool view")
	require.NoError(t, err)
	assert.Equal(t, 0, img.DisplayOrder)

	img, err = svc.Add(ctx, listingID, "https://img.example/second.jpg", "")
	require.NoError(t, err)
	assert.Equal(t, 1, img.DisplayOrder)
}

func TestModerateRejectEnqueuesCleanup(t *testing.T) {
	repo := newFakeImageRepo()
	queue := &fakeQueue{}
	svc := NewService(repo, queue, slog.Default())
	ctx := context.Background()

	img := repo.add(entity.Image{ListingID: uuid.New(), URL: "https://img.example/bad.jpg", Status: constants.ImagePending})

	got, err := svc.Moderate(ctx, img.ID, constants.ImageRejected)
	require.NoError(t, err)
	assert.Equal(t, constants.ImageRejected, got.Status)
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, "https://img.example/bad.jpg", queue.jobs[0].URL)
}

func TestModerateApproveDoesNotCleanup(t *testing.T) {
	repo := newFakeImageRepo()
	queue := &fakeQueue{}
	svc := NewService(repo, queue, slog.Default())

	img := repo.add(entity.Image{ListingID: uuid.New(), URL: "https://img.example/good.jpg"})

	_, err := svc.Moderate(context.Background(), img.ID, constants.ImageApproved)
	require.NoError(t, err)
	assert.Empty(t, queue.jobs)
}

func TestModerateRejectsOtherStatuses(t *testing.T) {
	svc := NewService(newFakeImageRepo(), nil, slog.Default())

	_, err := svc.Moderate(context.Background(), uuid.New(), constants.ImagePending)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.Moderate(context.Background(), uuid.New(), constants.ImageStatus("bogus"))
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestDeleteEnqueuesCleanup(t *testing.T) {
	repo := newFakeImageRepo()
	queue := &fakeQueue{}
	svc := NewService(repo, queue, slog.Default())

	img := repo.add(entity.Image{ListingID: uuid.New(), URL: "https://img.example/old.jpg"})

	require.NoError(t, svc.Delete(context.Background(), img.ID))
	assert.Equal(t, []uuid.UUID{img.ID}, repo.deleted)
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, "https://img.example/old.jpg", queue.jobs[0].URL)
}

func TestReorder(t *testing.T) {
	repo := newFakeImageRepo()
	svc := NewService(repo, nil, slog.Default())
	ctx := context.Background()
	listingID := uuid.New()

	first := repo.add(entity.Image{ListingID: listingID, URL: "https://img.example/a.jpg", DisplayOrder: 0})
	second := repo.add(entity.Image{ListingID: listingID, URL: "https://img.example/b.jpg", DisplayOrder: 1})

	_, err := svc.Reorder(ctx, listingID, nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	out, err := svc.Reorder(ctx, listingID, []uuid.UUID{second.ID, first.ID})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, second.ID, out[0].ID)
	assert.Equal(t, 0, out[0].DisplayOrder)
	assert.Equal(t, first.ID, out[1].ID)
	assert.Equal(t, 1, out[1].DisplayOrder)
}

func TestDeleteWithoutQueue(t *testing.T) {
	repo := newFakeImageRepo()
	svc := NewService(repo, nil, slog.Default())

	img := repo.add(entity.Image{ListingID: uuid.New(), URL: "https://img.example/old.jpg"})
	require.NoError(t, svc.Delete(context.Background(), img.ID))
}
