package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestofgoa/bok/internal/entity"
)

func TestMergeMonotonicity(t *testing.T) {
	l := &entity.Listing{Phone: "+91 832 555 0100", Website: ""}

	Merge(l, &entity.ExtractionPayload{
		Fields: map[string]any{
			"phone":   "", // empty never overwrites
			"website": "https://testcafe.example",
		},
	})

	assert.Equal(t, "+91 832 555 0100", l.Phone)
	assert.Equal(t, "https://testcafe.example", l.Website)
}

func TestMergeNonEmptyReplaces(t *testing.T) {
	l := &entity.Listing{Description: "auto-generated stub"}

	Merge(l, &entity.ExtractionPayload{
		Fields: map[string]any{"description": "A beachside cafe in Anjuna."},
	})

	assert.Equal(t, "A beachside cafe in Anjuna.", l.Description)
}

func TestMergeMappedWinsOverApify(t *testing.T) {
	l := &entity.Listing{}

	Merge(l, &entity.ExtractionPayload{
		Fields: map[string]any{"name": "Mapped Name"},
		Apify:  map[string]any{"title": "Apify Title"},
	})

	assert.Equal(t, "Mapped Name", l.Name)
}

func TestMergeApifyAliasPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		apify map[string]any
		want  string
	}{
		{
			name:  "title wins over name and placeName",
			apify: map[string]any{"title": "Title", "name": "Name", "placeName": "Place"},
			want:  "Title",
		},
		{
			name:  "name wins over placeName",
			apify: map[string]any{"name": "Name", "placeName": "Place"},
			want:  "Name",
		},
		{
			name:  "placeName as last alias",
			apify: map[string]any{"placeName": "Place"},
			want:  "Place",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &entity.Listing{}
			Merge(l, &entity.ExtractionPayload{Apify: tt.apify})
			assert.Equal(t, tt.want, l.Name)
		})
	}
}

func TestMergeApifyScalars(t *testing.T) {
	l := &entity.Listing{}

	Merge(l, &entity.ExtractionPayload{
		Apify: map[string]any{
			"totalScore":   4.4,
			"reviewsCount": float64(212),
			"price":        "$$",
			"location":     map[string]any{"lat": 15.5736, "lng": 73.7407},
			"openingHours": []any{
				map[string]any{"day": "monday", "hours": "9-5"},
				map[string]any{"day": "friday", "hours": "10-2"},
			},
		},
	})

	require.NotNil(t, l.Rating)
	assert.Equal(t, 4.4, *l.Rating)
	assert.Equal(t, 212, l.ReviewCount)
	assert.Equal(t, 2, l.PriceLevel)
	require.NotNil(t, l.Latitude)
	assert.Equal(t, 15.5736, *l.Latitude)
	require.NotNil(t, l.Longitude)
	assert.Equal(t, 73.7407, *l.Longitude)
	assert.Equal(t, "Mon: 9-5, Fri: 10-2", l.OpeningHours)
}

func TestMergeFirecrawlSocialsLastResort(t *testing.T) {
	t.Run("fills both while empty", func(t *testing.T) {
		l := &entity.Listing{}
		Merge(l, &entity.ExtractionPayload{
			Firecrawl: map[string]any{
				"instagram": "https://instagram.com/testcafe",
				"facebook":  "https://facebook.com/testcafe",
			},
		})
		assert.Equal(t, "https://instagram.com/testcafe", l.Instagram)
		assert.Equal(t, "https://facebook.com/testcafe", l.Facebook)
	})

	t.Run("one payload fills both, later polls are locked out", func(t *testing.T) {
		l := &entity.Listing{}
		Merge(l, &entity.ExtractionPayload{
			Firecrawl: map[string]any{
				"instagram": "https://instagram.com/testcafe",
				"facebook":  "https://facebook.com/testcafe",
			},
		})
		require.Equal(t, "https://instagram.com/testcafe", l.Instagram)
		require.Equal(t, "https://facebook.com/testcafe", l.Facebook)

		Merge(l, &entity.ExtractionPayload{
			Firecrawl: map[string]any{
				"instagram": "https://instagram.com/other",
				"facebook":  "https://facebook.com/other",
			},
		})
		assert.Equal(t, "https://instagram.com/testcafe", l.Instagram)
		assert.Equal(t, "https://facebook.com/testcafe", l.Facebook)
	})

	t.Run("locked out once any social is set", func(t *testing.T) {
		l := &entity.Listing{Instagram: "https://instagram.com/known"}
		Merge(l, &entity.ExtractionPayload{
			Firecrawl: map[string]any{"facebook": "https://facebook.com/discovered"},
		})
		assert.Empty(t, l.Facebook, "firecrawl must not fill socials once one is set")
		assert.Equal(t, "https://instagram.com/known", l.Instagram)
	})

	t.Run("apify social not gated", func(t *testing.T) {
		l := &entity.Listing{Instagram: "https://instagram.com/known"}
		Merge(l, &entity.ExtractionPayload{
			Apify: map[string]any{"facebook": "https://facebook.com/official"},
		})
		assert.Equal(t, "https://facebook.com/official", l.Facebook)
	})
}

func TestMergeAttributesAdvisory(t *testing.T) {
	refs := []entity.AttributeRef{{ID: 1, Name: "Goan", Slug: "goan"}}

	l := &entity.Listing{}
	Merge(l, &entity.ExtractionPayload{
		Attributes: map[string][]entity.AttributeRef{"cuisine": refs},
	})
	assert.Equal(t, refs, l.Attributes)

	// a later partial poll does not replace already-held attributes
	Merge(l, &entity.ExtractionPayload{
		Attributes: map[string][]entity.AttributeRef{
			"cuisine": {{ID: 9, Name: "Fusion", Slug: "fusion"}},
		},
	})
	assert.Equal(t, refs, l.Attributes)
}

func TestMergeKeepsProvenance(t *testing.T) {
	l := &entity.Listing{}
	Merge(l, &entity.ExtractionPayload{
		Apify:     map[string]any{"title": "Test Cafe"},
		Firecrawl: map[string]any{"instagram": "https://instagram.com/testcafe"},
	})
	assert.JSONEq(t, `{"title":"Test Cafe"}`, string(l.ApifyOutput))
	assert.JSONEq(t, `{"instagram":"https://instagram.com/testcafe"}`, string(l.FirecrawlOutput))
}

func TestApplyReloadRelationalAuthority(t *testing.T) {
	rating := 4.1
	merged := &entity.Listing{
		Name:   "Test Cafe",
		Phone:  "+91 832 555 0100",
		Rating: &rating,
		Attributes: []entity.AttributeRef{
			{ID: 99, Name: "Guessed", Slug: "guessed"},
		},
	}
	full := &entity.Listing{
		Name: "Test Cafe",
		Attributes: []entity.AttributeRef{
			{ID: 1, Name: "Goan", Slug: "goan"},
			{ID: 2, Name: "Seafood", Slug: "seafood"},
		},
		Images: []entity.Image{{URL: "https://cdn.example/hero.jpg"}},
	}

	out := ApplyReload(merged, full)

	// relational arrays come from the reload wholesale
	assert.Len(t, out.Attributes, 2)
	assert.Equal(t, "goan", out.Attributes[0].Slug)
	assert.Len(t, out.Images, 1)
	// scalars the reload lacked keep the merged value
	assert.Equal(t, "+91 832 555 0100", out.Phone)
	require.NotNil(t, out.Rating)
	assert.Equal(t, 4.1, *out.Rating)
}

func TestApplyReloadNilFull(t *testing.T) {
	merged := &entity.Listing{Name: "Test Cafe"}
	assert.Same(t, merged, ApplyReload(merged, nil))
}
