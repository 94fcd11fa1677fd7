package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

func TestClientStartExtraction(t *testing.T) {
	entityID := uuid.New()
	var gotPath string
	var gotBody StartRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(StartResponse{EntityID: entityID})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	got, err := c.StartExtraction(context.Background(), constants.EntityRestaurant, StartRequest{
		PlaceID:  "place-1",
		Override: true,
	})
	require.NoError(t, err)

	assert.Equal(t, entityID, got)
	assert.Equal(t, "/api/v1/restaurant/start-extraction", gotPath)
	assert.Equal(t, "place-1", gotBody.PlaceID)
	assert.True(t, gotBody.Override)
}

func TestClientJobStatusPath(t *testing.T) {
	entityID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/hotel/extraction-status/"+entityID.String(), r.URL.Path)
		_ = json.NewEncoder(w).Encode(entity.JobSnapshot{
			Status:             constants.JobStatusInProgress,
			CurrentStep:        "apify_fetch",
			ProgressPercentage: 25,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	snap, err := c.JobStatus(context.Background(), constants.EntityHotel, entityID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusInProgress, snap.Status)
	assert.Equal(t, "apify_fetch", snap.CurrentStep)
}

func TestClientNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	_, err := c.JobStatus(context.Background(), constants.EntityMall, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClientCheckDuplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/restaurant/check-duplicate", r.URL.Path)
		var q DuplicateQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, "Assagao", q.Area)
		_ = json.NewEncoder(w).Encode(entity.DuplicateResult{Exists: true, MatchType: "fuzzy"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, nil)
	res, err := c.CheckDuplicate(context.Background(), constants.EntityRestaurant, DuplicateQuery{
		Name: "Gunpowder",
		Area: "Assagao",
	})
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.Equal(t, "fuzzy", res.MatchType)
}
