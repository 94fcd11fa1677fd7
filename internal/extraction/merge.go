package extraction

import (
	"encoding/json"

	"github.com/bestofgoa/bok/internal/entity"
)

// Merge folds one poll's partial payload into the accumulated listing state.
// Each field resolves to the first non-empty value across its sources in
// priority order; an absent or empty value never overwrites a populated one.
// The listing is mutated in place.
func Merge(l *entity.Listing, p *entity.ExtractionPayload) {
	if l == nil || p == nil {
		return
	}

	// Guards see the state as it was before this poll, so a lockout cannot
	// trigger halfway through applying a single payload.
	before := *l

	for _, rule := range fieldRules {
		for _, src := range rule.sources {
			if src.guard != nil && !src.guard(&before) {
				continue
			}
			raw, ok := resolveSource(p, src)
			if !ok {
				continue
			}
			if src.transform != nil {
				raw = src.transform(raw)
			}
			if rule.apply(l, raw) {
				break
			}
		}
	}

	mergeAttributes(l, p)
	keepProvenance(l, p)
}

func resolveSource(p *entity.ExtractionPayload, src fieldSource) (any, bool) {
	var m map[string]any
	switch src.kind {
	case srcMapped:
		m = p.Fields
	case srcApify:
		m = p.Apify
	case srcFirecrawl:
		m = p.Firecrawl
	}
	for _, path := range src.paths {
		if v, ok := lookup(m, path); ok {
			return v, true
		}
	}
	return nil, false
}

// mergeAttributes applies mid-poll relational arrays, which are advisory:
// they only fill an empty slot and are replaced wholesale by the
// comprehensive reload once the job completes.
func mergeAttributes(l *entity.Listing, p *entity.ExtractionPayload) {
	if len(l.Attributes) > 0 {
		return
	}
	for _, refs := range p.Attributes {
		if len(refs) > 0 {
			l.Attributes = append([]entity.AttributeRef(nil), refs...)
			return
		}
	}
}

// keepProvenance stores the raw provider blobs for audit; latest poll wins.
func keepProvenance(l *entity.Listing, p *entity.ExtractionPayload) {
	if len(p.Apify) > 0 {
		if b, ok := marshalRaw(p.Apify); ok {
			l.ApifyOutput = b
		}
	}
	if len(p.Firecrawl) > 0 {
		if b, ok := marshalRaw(p.Firecrawl); ok {
			l.FirecrawlOutput = b
		}
	}
}

func marshalRaw(m map[string]any) (json.RawMessage, bool) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, false
	}
	return b, true
}

// ApplyReload replaces the incrementally merged state with the canonical
// resolved record fetched after the job completed. Relational collections are
// taken from the reload wholesale; scalar fields keep the merged value only
// where the reload has none.
func ApplyReload(merged, full *entity.Listing) *entity.Listing {
	if full == nil {
		return merged
	}
	if merged == nil {
		return full
	}

	out := *full

	// relational data from the reload is authoritative, even when empty
	out.Attributes = full.Attributes
	out.Images = full.Images
	out.FAQs = full.FAQs

	if out.Name == "" {
		out.Name = merged.Name
	}
	if out.GooglePlaceID == "" {
		out.GooglePlaceID = merged.GooglePlaceID
	}
	if out.Address == "" {
		out.Address = merged.Address
	}
	if out.Area == "" {
		out.Area = merged.Area
	}
	if out.Latitude == nil {
		out.Latitude = merged.Latitude
	}
	if out.Longitude == nil {
		out.Longitude = merged.Longitude
	}
	if out.Phone == "" {
		out.Phone = merged.Phone
	}
	if out.Email == "" {
		out.Email = merged.Email
	}
	if out.Website == "" {
		out.Website = merged.Website
	}
	if out.Instagram == "" {
		out.Instagram = merged.Instagram
	}
	if out.Facebook == "" {
		out.Facebook = merged.Facebook
	}
	if out.Description == "" {
		out.Description = merged.Description
	}
	if out.ShortDescription == "" {
		out.ShortDescription = merged.ShortDescription
	}
	if out.MetaTitle == "" {
		out.MetaTitle = merged.MetaTitle
	}
	if out.MetaDescription == "" {
		out.MetaDescription = merged.MetaDescription
	}
	if out.MetaKeywords == "" {
		out.MetaKeywords = merged.MetaKeywords
	}
	if out.PriceLevel == 0 {
		out.PriceLevel = merged.PriceLevel
	}
	if out.OpeningHours == "" {
		out.OpeningHours = merged.OpeningHours
	}
	if out.Rating == nil {
		out.Rating = merged.Rating
	}
	if out.ReviewCount == 0 {
		out.ReviewCount = merged.ReviewCount
	}
	if out.BokScore == nil {
		out.BokScore = merged.BokScore
	}
	if len(out.ApifyOutput) == 0 {
		out.ApifyOutput = merged.ApifyOutput
	}
	if len(out.FirecrawlOutput) == 0 {
		out.FirecrawlOutput = merged.FirecrawlOutput
	}
	return &out
}
