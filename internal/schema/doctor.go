package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Doctor is a shared directory entry. There is no owner: any authenticated
// user may read or write doctor records. Email and license number are the
// primary identifiers in this domain, so both carry unique constraints.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty().
			MaxLen(100),

		field.String("last_name").
			NotEmpty().
			MaxLen(100),

		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(254),

		field.String("phone_number").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("specialization").
			NotEmpty().
			MaxLen(100),

		field.String("license_number").
			Unique().
			NotEmpty().
			MaxLen(50),

		field.Text("office_address").
			Optional().
			Nillable(),

		field.String("office_hours").
			Optional().
			Nillable().
			MaxLen(200),
	}
}

func (Doctor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("assignments", Assignment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
