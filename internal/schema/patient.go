package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a clinical record owned by the user who created it. Email is
// unique across all patients, not per owner.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty().
			MaxLen(100),

		field.String("last_name").
			NotEmpty().
			MaxLen(100),

		field.Time("date_of_birth"),

		field.Enum("gender").
			Values("M", "F", "O"),

		field.Text("address").
			Optional().
			Nillable(),

		field.String("phone_number").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(254),

		field.Text("medical_history").
			Optional().
			Nillable().
			Comment("Brief medical history, free text"),

		field.String("emergency_contact_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("emergency_contact_phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.UUID("created_by_id", uuid.UUID{}).
			Immutable().
			Comment("FK → users.id (owning account)"),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("created_by", User.Type).
			Ref("patients").
			Unique().
			Required().
			Immutable().
			Field("created_by_id"),

		edge.To("assignments", Assignment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_by_id"),
	}
}
