package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/db/ent/schema/utils"
)

// ListingImage is one candidate photo for a listing. At most one image per
// listing may have is_hero set; the repository enforces that in a transaction.
type ListingImage struct{ ent.Schema }

func (ListingImage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "listing_images"},
	}
}

func (ListingImage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("listing_id", uuid.UUID{}),
		field.String("url").NotEmpty(),
		field.String("alt_text").Optional(),
		field.String("status").Default(string(constants.ImagePending)).
			Validate(utils.EnumValidator(constants.ImageStatuses...)),
		field.Bool("is_hero").Default(false),
		field.Int("display_order").Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (ListingImage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("listing", Listing.Type).
			Ref("images").
			Field("listing_id").
			Unique().
			Required(),
	}
}

func (ListingImage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("listing_id", "display_order"),
		index.Fields("listing_id", "is_hero"),
	}
}
