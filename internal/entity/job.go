package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
)

// StepProgress is the sub-progress reported by the image-processing step.
type StepProgress struct {
	Current int     `json:"current"`
	Total   int     `json:"total"`
	Cost    float64 `json:"cost"`
}

// StepStatus is one named stage of a job's fixed pipeline template, as shown
// to operators. DisplayName always comes from the static template, never from
// the backend, so labels stay stable if the runner renames internal keys.
type StepStatus struct {
	Name        string              `json:"name"`
	DisplayName string              `json:"display_name"`
	Status      constants.StepState `json:"status"`
	StartedAt   *time.Time          `json:"started_at,omitempty"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	Error       string              `json:"error,omitempty"`
	Progress    *StepProgress       `json:"progress,omitempty"`
}

// ExtractionJob is the projected view of one enrichment run for one listing.
// It is mutated exclusively by the external runner and only observed here.
type ExtractionJob struct {
	EntityID    uuid.UUID           `json:"entity_id"`
	Status      constants.JobStatus `json:"status"`
	CurrentStep string              `json:"current_step,omitempty"`
	Progress    int                 `json:"progress_percentage"`
	Steps       []StepStatus        `json:"steps"`
}

// StepReport is the wire shape of one step record in a status poll response.
// The runner only reports steps it has touched; the template fills the rest.
type StepReport struct {
	Name            string              `json:"name"`
	Status          constants.StepState `json:"status"`
	StartedAt       *time.Time          `json:"started_at,omitempty"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	Error           string              `json:"error,omitempty"`
	ImagesProcessed *int                `json:"images_processed,omitempty"`
	ImagesTotal     *int                `json:"images_total,omitempty"`
	CurrentCost     *float64            `json:"current_cost,omitempty"`
}

// ExtractionPayload is the partial extracted data carried on a poll response.
// Fields holds already-normalized column values; Apify and Firecrawl are the
// raw provider JSON shapes used as fallbacks; Attributes are advisory until
// the comprehensive reload after completion.
type ExtractionPayload struct {
	Fields     map[string]any            `json:"fields,omitempty"`
	Apify      map[string]any            `json:"apify_output,omitempty"`
	Firecrawl  map[string]any            `json:"firecrawl_output,omitempty"`
	Attributes map[string][]AttributeRef `json:"attributes,omitempty"`
}

// JobSnapshot is one poll response from the extraction-status endpoint.
type JobSnapshot struct {
	Status             constants.JobStatus `json:"status"`
	CurrentStep        string              `json:"current_step,omitempty"`
	ProgressPercentage int                 `json:"progress_percentage"`
	Steps              []StepReport        `json:"steps"`
	ExtractedData      *ExtractionPayload  `json:"extracted_data,omitempty"`
}
