package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is a clinical-staff account. Accounts own the patient records they
// create; is_superuser widens assignment visibility only, never patient
// visibility.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			Optional().
			MaxLen(100),

		field.Bool("is_superuser").
			Default(false),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patients", Patient.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		// Assignments made by this user survive account deletion.
		edge.To("assignments_made", Assignment.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}
