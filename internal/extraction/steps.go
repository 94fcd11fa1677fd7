// Package extraction implements the admin-side view of the external
// enrichment pipeline: step projection onto fixed templates, incremental
// merging of polled payloads into listing state, the status polling watcher,
// and the duplicate guard run before an extraction is started.
package extraction

import "github.com/bestofgoa/bok/constants"

// StepTemplate is one named stage of an entity type's fixed pipeline.
// DisplayName is defined here, not by the runner.
type StepTemplate struct {
	Name        string
	DisplayName string
}

// StepProcessImages is the one step that carries sub-progress.
const StepProcessImages = "process_images"

var (
	leadingSteps = []StepTemplate{
		{Name: "create_record", DisplayName: "Create record"},
		{Name: "apify_fetch", DisplayName: "Fetch place data"},
	}
	trailingSteps = []StepTemplate{
		{Name: "ai_enrichment", DisplayName: "Generate descriptions"},
		{Name: "seo_metadata", DisplayName: "Generate SEO metadata"},
		{Name: StepProcessImages, DisplayName: "Process images"},
		{Name: "finalize", DisplayName: "Finalize"},
	}

	// the middle step differs per entity type: what Firecrawl is asked to scrape
	middleSteps = map[constants.EntityType]StepTemplate{
		constants.EntityRestaurant: {Name: "firecrawl_menu", DisplayName: "Scrape menu"},
		constants.EntityHotel:      {Name: "firecrawl_rooms", DisplayName: "Scrape room types"},
		constants.EntityMall:       {Name: "firecrawl_stores", DisplayName: "Scrape store directory"},
		constants.EntityAttraction: {Name: "firecrawl_info", DisplayName: "Scrape visitor info"},
		constants.EntitySchool:     {Name: "firecrawl_curriculum", DisplayName: "Scrape curriculum"},
		constants.EntityFitness:    {Name: "firecrawl_programs", DisplayName: "Scrape programs"},
	}
)

// StepsFor returns the fixed ordered step template for an entity type.
// The returned slice is a fresh copy; callers may keep it.
func StepsFor(et constants.EntityType) []StepTemplate {
	out := make([]StepTemplate, 0, len(leadingSteps)+1+len(trailingSteps))
	out = append(out, leadingSteps...)
	if mid, ok := middleSteps[et]; ok {
		out = append(out, mid)
	}
	out = append(out, trailingSteps...)
	return out
}
