package extraction

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

// Candidate is a business selected for extraction, as picked from a place
// search result.
type Candidate struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
}

// DuplicateQuery is the payload for the check-duplicate endpoint.
type DuplicateQuery struct {
	PlaceID string `json:"placeId"`
	Name    string `json:"name"`
	Area    string `json:"area"`
}

// DuplicateChecker is the slice of the API the guard needs.
type DuplicateChecker interface {
	CheckDuplicate(ctx context.Context, et constants.EntityType, q DuplicateQuery) (*entity.DuplicateResult, error)
}

// Decision is the outcome of the duplicate guard. When Allowed is false the
// operator must either override, cancel the candidate, or inspect the
// conflicting records in Result.
type Decision struct {
	Allowed bool
	Result  *entity.DuplicateResult
}

// DeriveArea extracts the candidate's area as the first comma segment of its
// formatted address.
func DeriveArea(formattedAddress string) string {
	seg, _, _ := strings.Cut(formattedAddress, ",")
	return strings.TrimSpace(seg)
}

// CheckForDuplicates runs the duplicate guard for a candidate before an
// extraction is started. A failing duplicate check fails open: a broken
// check must not block legitimate work.
func CheckForDuplicates(ctx context.Context, checker DuplicateChecker, et constants.EntityType, cand Candidate, logger *slog.Logger) Decision {
	if logger == nil {
		logger = slog.Default()
	}

	q := DuplicateQuery{
		PlaceID: cand.PlaceID,
		Name:    cand.Name,
		Area:    DeriveArea(cand.FormattedAddress),
	}

	res, err := checker.CheckDuplicate(ctx, et, q)
	if err != nil {
		logger.Warn("duplicate.check.failed", "entity_type", et, "place_id", cand.PlaceID, "error", err)
		return Decision{Allowed: true}
	}

	if res != nil && res.Exists {
		logger.Info("duplicate.check.hit",
			"entity_type", et,
			"place_id", cand.PlaceID,
			"match_type", res.MatchType,
			"matches", len(res.Entities),
		)
		return Decision{Allowed: false, Result: res}
	}
	return Decision{Allowed: true, Result: res}
}
