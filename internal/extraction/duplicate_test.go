package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

type fakeChecker struct {
	res  *entity.DuplicateResult
	err  error
	last DuplicateQuery
}

func (f *fakeChecker) CheckDuplicate(_ context.Context, _ constants.EntityType, q DuplicateQuery) (*entity.DuplicateResult, error) {
	f.last = q
	return f.res, f.err
}

func TestDeriveArea(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"Anjuna, Goa 403509, India", "Anjuna"},
		{"  Panaji , North Goa", "Panaji"},
		{"Calangute", "Calangute"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveArea(tt.address), tt.address)
	}
}

func TestCheckForDuplicatesAllowsWhenClean(t *testing.T) {
	checker := &fakeChecker{res: &entity.DuplicateResult{Exists: false}}
	cand := Candidate{PlaceID: "abc", Name: "Test Cafe", FormattedAddress: "Anjuna, Goa"}

	d := CheckForDuplicates(context.Background(), checker, constants.EntityRestaurant, cand, nil)

	assert.True(t, d.Allowed)
	assert.Equal(t, DuplicateQuery{PlaceID: "abc", Name: "Test Cafe", Area: "Anjuna"}, checker.last)
}

func TestCheckForDuplicatesBlocksOnMatch(t *testing.T) {
	checker := &fakeChecker{res: &entity.DuplicateResult{
		Exists:    true,
		MatchType: "exact",
		Entities:  []entity.DuplicateMatch{{Name: "Test Cafe", Slug: "test-cafe"}},
	}}

	d := CheckForDuplicates(context.Background(), checker, constants.EntityRestaurant,
		Candidate{PlaceID: "abc", Name: "Test Cafe"}, nil)

	assert.False(t, d.Allowed)
	require.NotNil(t, d.Result)
	assert.Equal(t, "exact", d.Result.MatchType)
	assert.Len(t, d.Result.Entities, 1)
}

func TestCheckForDuplicatesFailsOpen(t *testing.T) {
	checker := &fakeChecker{err: errors.New("connection refused")}

	d := CheckForDuplicates(context.Background(), checker, constants.EntityRestaurant,
		Candidate{PlaceID: "abc", Name: "Test Cafe"}, nil)

	assert.True(t, d.Allowed, "a broken duplicate check must not block extraction")
	assert.Nil(t, d.Result)
}
