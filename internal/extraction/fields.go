package extraction

import (
	"strconv"
	"strings"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
)

// The merger is table-driven: each target field declares the sources it may
// be resolved from, in priority order. Mapped (already-normalized) values win
// over the first provider's raw JSON, which wins over the second provider's.
// Alias precedence within a source is the order of its paths.

type sourceKind int

const (
	srcMapped sourceKind = iota
	srcApify
	srcFirecrawl
)

type fieldSource struct {
	kind sourceKind
	// paths are tried in order; dots descend into nested objects
	paths []string
	// transform normalizes the raw value; nil keeps it as-is
	transform func(any) any
	// guard gates the source on current state; nil means always
	guard func(*entity.Listing) bool
}

type fieldRule struct {
	name    string
	sources []fieldSource
	// apply sets the value on the listing; returns false when the value
	// coerces to empty (so the next source is tried instead)
	apply func(*entity.Listing, any) bool
}

func mapped(paths ...string) fieldSource    { return fieldSource{kind: srcMapped, paths: paths} }
func apify(paths ...string) fieldSource     { return fieldSource{kind: srcApify, paths: paths} }
func firecrawl(paths ...string) fieldSource { return fieldSource{kind: srcFirecrawl, paths: paths} }

func (s fieldSource) with(t func(any) any) fieldSource {
	s.transform = t
	return s
}

func (s fieldSource) when(g func(*entity.Listing) bool) fieldSource {
	s.guard = g
	return s
}

// Firecrawl social links are a last-resort fallback, applied only while both
// social fields were still empty before the current poll. Once either is set
// the source stays locked out on later ticks, so links do not flap between
// two discovered URLs; a single payload may still fill both fields.
func socialsEmpty(l *entity.Listing) bool {
	return l.Instagram == "" && l.Facebook == ""
}

func strField(name string, set func(*entity.Listing, string), sources ...fieldSource) fieldRule {
	return fieldRule{
		name:    name,
		sources: sources,
		apply: func(l *entity.Listing, v any) bool {
			s := coerceString(v)
			if s == "" {
				return false
			}
			set(l, s)
			return true
		},
	}
}

func floatField(name string, set func(*entity.Listing, float64), sources ...fieldSource) fieldRule {
	return fieldRule{
		name:    name,
		sources: sources,
		apply: func(l *entity.Listing, v any) bool {
			f, ok := coerceFloat(v)
			if !ok {
				return false
			}
			set(l, f)
			return true
		},
	}
}

func intField(name string, set func(*entity.Listing, int), sources ...fieldSource) fieldRule {
	return fieldRule{
		name:    name,
		sources: sources,
		apply: func(l *entity.Listing, v any) bool {
			f, ok := coerceFloat(v)
			if !ok || f == 0 {
				return false
			}
			set(l, int(f))
			return true
		},
	}
}

var fieldRules = []fieldRule{
	strField("name",
		func(l *entity.Listing, v string) { l.Name = v },
		mapped("name"),
		apify("title", "name", "placeName"),
	),
	strField("google_place_id",
		func(l *entity.Listing, v string) { l.GooglePlaceID = v },
		mapped("google_place_id"),
		apify("placeId", "place_id"),
	),
	strField("address",
		func(l *entity.Listing, v string) { l.Address = v },
		mapped("address"),
		apify("address", "fullAddress"),
	),
	strField("area",
		func(l *entity.Listing, v string) { l.Area = v },
		mapped("area"),
		apify("neighborhood", "city"),
	),
	strField("phone",
		func(l *entity.Listing, v string) { l.Phone = v },
		mapped("phone"),
		apify("phone", "phoneUnformatted"),
	),
	strField("email",
		func(l *entity.Listing, v string) { l.Email = v },
		mapped("email"),
		apify("email"),
	),
	strField("website",
		func(l *entity.Listing, v string) { l.Website = v },
		mapped("website"),
		apify("website", "url"),
	),
	strField("instagram",
		func(l *entity.Listing, v string) { l.Instagram = v },
		mapped("instagram"),
		apify("instagram"),
		firecrawl("instagram", "socials.instagram").when(socialsEmpty),
	),
	strField("facebook",
		func(l *entity.Listing, v string) { l.Facebook = v },
		mapped("facebook"),
		apify("facebook"),
		firecrawl("facebook", "socials.facebook").when(socialsEmpty),
	),
	strField("description",
		func(l *entity.Listing, v string) { l.Description = v },
		mapped("description"),
		apify("description", "about"),
	),
	strField("short_description",
		func(l *entity.Listing, v string) { l.ShortDescription = v },
		mapped("short_description"),
	),
	strField("meta_title",
		func(l *entity.Listing, v string) { l.MetaTitle = v },
		mapped("meta_title"),
	),
	strField("meta_description",
		func(l *entity.Listing, v string) { l.MetaDescription = v },
		mapped("meta_description"),
	),
	strField("meta_keywords",
		func(l *entity.Listing, v string) { l.MetaKeywords = v },
		mapped("meta_keywords"),
	),
	intField("price_level",
		func(l *entity.Listing, v int) { l.PriceLevel = v },
		mapped("price_level"),
		apify("price", "priceLevel").with(priceSymbolToLevel),
	),
	strField("opening_hours",
		func(l *entity.Listing, v string) { l.OpeningHours = v },
		mapped("opening_hours"),
		apify("openingHours").with(func(v any) any { return FormatOpeningHours(v) }),
	),
	floatField("rating",
		func(l *entity.Listing, v float64) { l.Rating = &v },
		mapped("rating"),
		apify("totalScore", "rating"),
	),
	intField("review_count",
		func(l *entity.Listing, v int) { l.ReviewCount = v },
		mapped("review_count"),
		apify("reviewsCount", "userRatingsTotal"),
	),
	floatField("latitude",
		func(l *entity.Listing, v float64) { l.Latitude = &v },
		mapped("latitude"),
		apify("location.lat", "latitude"),
	),
	floatField("longitude",
		func(l *entity.Listing, v float64) { l.Longitude = &v },
		mapped("longitude"),
		apify("location.lng", "longitude"),
	),
}

// priceSymbolToLevel accepts either a qualitative symbol or a numeric level.
func priceSymbolToLevel(v any) any {
	if s, ok := v.(string); ok {
		return constants.PriceLevel(s)
	}
	return v
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, t != 0
	case int:
		return float64(t), t != 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil && f != 0
	default:
		return 0, false
	}
}

// lookup descends a dot path into a decoded JSON object.
func lookup(m map[string]any, path string) (any, bool) {
	if m == nil {
		return nil, false
	}
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}
