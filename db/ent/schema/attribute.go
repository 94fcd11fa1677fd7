package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attribute is one entry of a per-entity structured vocabulary
// (cuisine, amenity, fitness_type, curriculum). Listings reference
// attributes many-to-many and render them as {id, name, slug} tuples.
type Attribute struct{ ent.Schema }

func (Attribute) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "attributes"},
	}
}

func (Attribute) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("slug").NotEmpty(),
	}
}

func (Attribute) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("listings", Listing.Type).Ref("attributes"),
	}
}

func (Attribute) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "slug").Unique(),
	}
}
