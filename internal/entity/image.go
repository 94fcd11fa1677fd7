package entity

import (
	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
)

// Image is one candidate photo for a listing.
type Image struct {
	ID           uuid.UUID             `json:"id"`
	ListingID    uuid.UUID             `json:"listing_id"`
	URL          string                `json:"url"`
	AltText      string                `json:"alt_text,omitempty"`
	Status       constants.ImageStatus `json:"status"`
	IsHero       bool                  `json:"is_hero"`
	DisplayOrder int                   `json:"display_order"`
}
