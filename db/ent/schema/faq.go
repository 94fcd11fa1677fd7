package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FAQ is a type-specific child collection entry shown on review and public pages.
type FAQ struct{ ent.Schema }

func (FAQ) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "listing_faqs"},
	}
}

func (FAQ) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("listing_id", uuid.UUID{}),
		field.String("question").NotEmpty(),
		field.String("answer").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("display_order").Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (FAQ) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("listing", Listing.Type).
			Ref("faqs").
			Field("listing_id").
			Unique().
			Required(),
	}
}

func (FAQ) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("listing_id", "display_order"),
	}
}
