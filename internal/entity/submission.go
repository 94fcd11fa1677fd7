package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
)

// Submission represents a public business nomination for data transfer between layers.
type Submission struct {
	ID       uuid.UUID                  `json:"id"`
	Status   constants.SubmissionStatus `json:"status"`
	Category constants.EntityType       `json:"category"`

	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address,omitempty"`
	BusinessPhone   string `json:"business_phone,omitempty"`
	BusinessWebsite string `json:"business_website,omitempty"`

	SubmitterName  string `json:"submitter_name"`
	SubmitterEmail string `json:"submitter_email"`
	SubmitterPhone string `json:"submitter_phone,omitempty"`

	Description string `json:"description,omitempty"`
	AdminNotes  string `json:"admin_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
