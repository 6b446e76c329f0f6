// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carelinkhq/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldID, id))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPatientID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDoctorID, v))
}

// AssignedByID applies equality check predicate on the "assigned_by_id" field. It's identical to AssignedByIDEQ.
func AssignedByID(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignedByID, v))
}

// AssignmentDate applies equality check predicate on the "assignment_date" field. It's identical to AssignmentDateEQ.
func AssignmentDate(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignmentDate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNotes, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldPatientID, vs...))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldDoctorID, vs...))
}

// AssignedByIDEQ applies the EQ predicate on the "assigned_by_id" field.
func AssignedByIDEQ(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignedByID, v))
}

// AssignedByIDNEQ applies the NEQ predicate on the "assigned_by_id" field.
func AssignedByIDNEQ(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAssignedByID, v))
}

// AssignedByIDIn applies the In predicate on the "assigned_by_id" field.
func AssignedByIDIn(vs ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAssignedByID, vs...))
}

// AssignedByIDNotIn applies the NotIn predicate on the "assigned_by_id" field.
func AssignedByIDNotIn(vs ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAssignedByID, vs...))
}

// AssignedByIDIsNil applies the IsNil predicate on the "assigned_by_id" field.
func AssignedByIDIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldAssignedByID))
}

// AssignedByIDNotNil applies the NotNil predicate on the "assigned_by_id" field.
func AssignedByIDNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldAssignedByID))
}

// AssignmentDateEQ applies the EQ predicate on the "assignment_date" field.
func AssignmentDateEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignmentDate, v))
}

// AssignmentDateNEQ applies the NEQ predicate on the "assignment_date" field.
func AssignmentDateNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAssignmentDate, v))
}

// AssignmentDateIn applies the In predicate on the "assignment_date" field.
func AssignmentDateIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAssignmentDate, vs...))
}

// AssignmentDateNotIn applies the NotIn predicate on the "assignment_date" field.
func AssignmentDateNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAssignmentDate, vs...))
}

// AssignmentDateGT applies the GT predicate on the "assignment_date" field.
func AssignmentDateGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldAssignmentDate, v))
}

// AssignmentDateGTE applies the GTE predicate on the "assignment_date" field.
func AssignmentDateGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldAssignmentDate, v))
}

// AssignmentDateLT applies the LT predicate on the "assignment_date" field.
func AssignmentDateLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldAssignmentDate, v))
}

// AssignmentDateLTE applies the LTE predicate on the "assignment_date" field.
func AssignmentDateLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldAssignmentDate, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldNotes, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.Doctor) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignedBy applies the HasEdge predicate on the "assigned_by" edge.
func HasAssignedBy() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssignedByTable, AssignedByColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignedByWith applies the HasEdge predicate on the "assigned_by" edge with a given conditions (other predicates).
func HasAssignedByWith(preds ...predicate.User) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newAssignedByStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.NotPredicates(p))
}
