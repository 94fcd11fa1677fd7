package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/db/ent/schema/utils"
)

type Listing struct{ ent.Schema }

func (Listing) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "listings"},
	}
}

func (Listing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("entity_type").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.EntityTypeStrings()...)),
		field.String("name").NotEmpty(),
		// slug never changes after creation; public URLs depend on it
		field.String("slug").NotEmpty().Immutable(),
		field.String("google_place_id").Optional(),

		// location
		field.String("address").Optional(),
		field.String("area").Optional(),
		field.Float("latitude").Optional().Nillable(),
		field.Float("longitude").Optional().Nillable(),

		// contact
		field.String("phone").Optional(),
		field.String("email").Optional(),
		field.String("website").Optional(),
		field.String("instagram").Optional(),
		field.String("facebook").Optional(),

		// content / SEO
		field.String("description").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("short_description").Optional(),
		field.String("meta_title").Optional(),
		field.String("meta_description").Optional(),
		field.String("meta_keywords").Optional(),

		// provider-derived scalars
		field.Int("price_level").Default(0).Min(0).Max(4),
		field.String("opening_hours").Optional(),
		field.Float("rating").Optional().Nillable(),
		field.Int("review_count").Default(0),
		field.Float("bok_score").Optional().Nillable(),

		// publication flags
		field.Bool("active").Default(false),
		field.Bool("verified").Default(false),
		field.Bool("featured").Default(false),

		// raw provenance blobs, kept for audit/debug, never rendered publicly
		field.JSON("apify_output", json.RawMessage{}).Optional(),
		field.JSON("firecrawl_output", json.RawMessage{}).Optional(),

		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Listing) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("images", ListingImage.Type),
		edge.To("faqs", FAQ.Type),
		edge.To("attributes", Attribute.Type),
	}
}

func (Listing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "slug").Unique(),
		index.Fields("entity_type", "active"),
		index.Fields("google_place_id"),
		index.Fields("area"),
	}
}
