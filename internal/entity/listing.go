package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
)

// AttributeRef is a resolved structured attribute reference
// (cuisine, amenity, fitness type, curriculum) as rendered to review screens.
type AttributeRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Listing represents a business record for data transfer between layers.
// It is built up progressively during extraction, hand-edited on review,
// and published to the public site once active.
type Listing struct {
	ID            uuid.UUID            `json:"id"`
	EntityType    constants.EntityType `json:"entity_type"`
	Name          string               `json:"name"`
	Slug          string               `json:"slug"`
	GooglePlaceID string               `json:"google_place_id,omitempty"`

	Address   string   `json:"address,omitempty"`
	Area      string   `json:"area,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`

	Description      string `json:"description,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	MetaTitle        string `json:"meta_title,omitempty"`
	MetaDescription  string `json:"meta_description,omitempty"`
	MetaKeywords     string `json:"meta_keywords,omitempty"`

	PriceLevel   int      `json:"price_level"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	ReviewCount  int      `json:"review_count"`
	BokScore     *float64 `json:"bok_score,omitempty"`

	Active   bool `json:"active"`
	Verified bool `json:"verified"`
	Featured bool `json:"featured"`

	Attributes []AttributeRef `json:"attributes,omitempty"`
	Images     []Image        `json:"images,omitempty"`
	FAQs       []FAQ          `json:"faqs,omitempty"`

	// raw provenance blobs; admin/audit only, never rendered publicly
	ApifyOutput     json.RawMessage `json:"apify_output,omitempty"`
	FirecrawlOutput json.RawMessage `json:"firecrawl_output,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FAQ is one question/answer pair attached to a listing.
type FAQ struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listing_id"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	DisplayOrder int       `json:"display_order"`
}

// DuplicateMatch describes one existing listing that conflicts with a candidate.
type DuplicateMatch struct {
	ID            uuid.UUID            `json:"id"`
	EntityType    constants.EntityType `json:"entity_type"`
	Name          string               `json:"name"`
	Slug          string               `json:"slug"`
	Area          string               `json:"area,omitempty"`
	GooglePlaceID string               `json:"google_place_id,omitempty"`
	Active        bool                 `json:"active"`
}

// DuplicateResult is the duplicate-check endpoint response.
// MatchType is "exact" for a place-id hit, "fuzzy" for a name/area hit.
type DuplicateResult struct {
	Exists    bool             `json:"exists"`
	MatchType string           `json:"match_type,omitempty"`
	Entities  []DuplicateMatch `json:"entities,omitempty"`
}
