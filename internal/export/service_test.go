package export

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/repository"
)

type fakeListingRepo struct {
	repository.ListingRepository

	gotReq *repository.ListListingsRequest
	items  []*entity.Listing
}

func (f *fakeListingRepo) List(_ context.Context, req *repository.ListListingsRequest) ([]*entity.Listing, int, error) {
	f.gotReq = req
	return f.items, len(f.items), nil
}

func TestExportListingsXLSX(t *testing.T) {
	rating := 4.5
	repo := &fakeListingRepo{
		items: []*entity.Listing{
			{
				Name:        "Gunpowder",
				Slug:        "gunpowder",
				Area:        "Assagao",
				Address:     "Near St. Michael Church, Assagao",
				Phone:       "+91 832 2268091",
				Website:     "https://gunpowder.in",
				PriceLevel:  3,
				Rating:      &rating,
				ReviewCount: 812,
				Active:      true,
				Verified:    true,
				Attributes: []entity.AttributeRef{
					{Name: "South Indian"},
					{Name: "Garden Seating"},
				},
				CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			},
			{
				Name:       "Plain Stub",
				Slug:       "plain-stub",
				PriceLevel: 0,
				CreatedAt:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	svc := NewService(repo, slog.Default())
	active := true
	data, err := svc.ExportListingsXLSX(context.Background(), constants.EntityRestaurant, &active)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	require.NotNil(t, repo.gotReq)
	assert.Equal(t, constants.EntityRestaurant, repo.gotReq.EntityType)
	require.NotNil(t, repo.gotReq.Active)
	assert.True(t, *repo.gotReq.Active)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	get := func(cell string) string {
		v, err := f.GetCellValue("Listings", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Name", get("A1"))
	assert.Equal(t, "Attributes", get("L1"))
	assert.Equal(t, "Gunpowder", get("A2"))
	assert.Equal(t, "Assagao", get("C2"))
	assert.Equal(t, "$$$", get("G2"))
	assert.Equal(t, "4.5", get("H2"))
	assert.Equal(t, "TRUE", get("J2"))
	assert.Equal(t, "South Indian, Garden Seating", get("L2"))
	assert.Equal(t, "2026-03-14", get("M2"))

	assert.Equal(t, "Plain Stub", get("A3"))
	assert.Equal(t, "", get("H3"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := "this address is definitely much longer than the limit"
	got := truncate(long, 20)
	assert.Len(t, []rune(got), 20)
	assert.Equal(t, "…", string([]rune(got)[19]))
}
