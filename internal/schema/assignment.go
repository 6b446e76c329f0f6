package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Assignment links one patient to one doctor. At most one assignment may
// exist per (patient, doctor) pair; the unique index is the authority under
// concurrent creates.
type Assignment struct {
	ent.Schema
}

func (Assignment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.UUID("assigned_by_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id; nulled if that account is deleted"),

		field.Time("assignment_date").
			Default(time.Now).
			Immutable(),

		field.Text("notes").
			Optional().
			Nillable().
			Comment("Optional notes about the assignment"),
	}
}

func (Assignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("assignments").
			Unique().
			Required().
			Field("patient_id"),

		edge.From("doctor", Doctor.Type).
			Ref("assignments").
			Unique().
			Required().
			Field("doctor_id"),

		edge.From("assigned_by", User.Type).
			Ref("assignments_made").
			Unique().
			Field("assigned_by_id"),
	}
}

func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "doctor_id").Unique(),
		index.Fields("patient_id"),
		index.Fields("doctor_id"),
	}
}
