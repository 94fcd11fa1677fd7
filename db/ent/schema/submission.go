package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/db/ent/schema/utils"
)

// Submission is a publicly-submitted business nomination awaiting admin triage.
type Submission struct{ ent.Schema }

func (Submission) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "submissions"},
	}
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("status").Default(string(constants.SubmissionPending)).
			Validate(utils.EnumValidator(constants.SubmissionStatuses...)),
		field.String("category").NotEmpty().
			Validate(utils.EnumValidator(constants.EntityTypeStrings()...)),

		// business being nominated
		field.String("business_name").NotEmpty(),
		field.String("business_address").Optional(),
		field.String("business_phone").Optional(),
		field.String("business_website").Optional(),

		// whoever nominated it
		field.String("submitter_name").NotEmpty(),
		field.String("submitter_email").NotEmpty(),
		field.String("submitter_phone").Optional(),

		field.String("description").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("admin_notes").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),

		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
