// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carelinkhq/carelink_backend/internal/repo/assignment"
	"github.com/carelinkhq/carelink_backend/internal/repo/doctor"
	"github.com/carelinkhq/carelink_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *DoctorUpdate) SetFirstName(v string) *DoctorUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableFirstName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *DoctorUpdate) SetLastName(v string) *DoctorUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableLastName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *DoctorUpdate) SetEmail(v string) *DoctorUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableEmail(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *DoctorUpdate) SetPhoneNumber(v string) *DoctorUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillablePhoneNumber(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *DoctorUpdate) ClearPhoneNumber() *DoctorUpdate {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *DoctorUpdate) SetSpecialization(v string) *DoctorUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableSpecialization(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *DoctorUpdate) SetLicenseNumber(v string) *DoctorUpdate {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableLicenseNumber(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// SetOfficeAddress sets the "office_address" field.
func (_u *DoctorUpdate) SetOfficeAddress(v string) *DoctorUpdate {
	_u.mutation.SetOfficeAddress(v)
	return _u
}

// SetNillableOfficeAddress sets the "office_address" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableOfficeAddress(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetOfficeAddress(*v)
	}
	return _u
}

// ClearOfficeAddress clears the value of the "office_address" field.
func (_u *DoctorUpdate) ClearOfficeAddress() *DoctorUpdate {
	_u.mutation.ClearOfficeAddress()
	return _u
}

// SetOfficeHours sets the "office_hours" field.
func (_u *DoctorUpdate) SetOfficeHours(v string) *DoctorUpdate {
	_u.mutation.SetOfficeHours(v)
	return _u
}

// SetNillableOfficeHours sets the "office_hours" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableOfficeHours(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetOfficeHours(*v)
	}
	return _u
}

// ClearOfficeHours clears the value of the "office_hours" field.
func (_u *DoctorUpdate) ClearOfficeHours() *DoctorUpdate {
	_u.mutation.ClearOfficeHours()
	return _u
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_u *DoctorUpdate) AddAssignmentIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_u *DoctorUpdate) AddAssignments(v ...*Assignment) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearAssignments clears all "assignments" edges to the Assignment entity.
func (_u *DoctorUpdate) ClearAssignments() *DoctorUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to Assignment entities by IDs.
func (_u *DoctorUpdate) RemoveAssignmentIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to Assignment entities.
func (_u *DoctorUpdate) RemoveAssignments(v ...*Assignment) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := doctor.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := doctor.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := doctor.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Doctor.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := doctor.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`repo: validator failed for field "Doctor.phone_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := doctor.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialization": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNumber(); ok {
		if err := doctor.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "Doctor.license_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OfficeHours(); ok {
		if err := doctor.OfficeHoursValidator(v); err != nil {
			return &ValidationError{Name: "office_hours", err: fmt.Errorf(`repo: validator failed for field "Doctor.office_hours": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(doctor.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(doctor.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(doctor.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(doctor.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(doctor.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(doctor.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(doctor.FieldLicenseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.OfficeAddress(); ok {
		_spec.SetField(doctor.FieldOfficeAddress, field.TypeString, value)
	}
	if _u.mutation.OfficeAddressCleared() {
		_spec.ClearField(doctor.FieldOfficeAddress, field.TypeString)
	}
	if value, ok := _u.mutation.OfficeHours(); ok {
		_spec.SetField(doctor.FieldOfficeHours, field.TypeString, value)
	}
	if _u.mutation.OfficeHoursCleared() {
		_spec.ClearField(doctor.FieldOfficeHours, field.TypeString)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AssignmentsTable,
			Columns: []string{doctor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AssignmentsTable,
			Columns: []string{doctor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AssignmentsTable,
			Columns: []string{doctor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *DoctorUpdateOne) SetFirstName(v string) *DoctorUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableFirstName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *DoctorUpdateOne) SetLastName(v string) *DoctorUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableLastName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *DoctorUpdateOne) SetEmail(v string) *DoctorUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableEmail(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *DoctorUpdateOne) SetPhoneNumber(v string) *DoctorUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillablePhoneNumber(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *DoctorUpdateOne) ClearPhoneNumber() *DoctorUpdateOne {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *DoctorUpdateOne) SetSpecialization(v string) *DoctorUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableSpecialization(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *DoctorUpdateOne) SetLicenseNumber(v string) *DoctorUpdateOne {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableLicenseNumber(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// SetOfficeAddress sets the "office_address" field.
func (_u *DoctorUpdateOne) SetOfficeAddress(v string) *DoctorUpdateOne {
	_u.mutation.SetOfficeAddress(v)
	return _u
}

// SetNillableOfficeAddress sets the "office_address" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableOfficeAddress(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetOfficeAddress(*v)
	}
	return _u
}

// ClearOfficeAddress clears the value of the "office_address" field.
func (_u *DoctorUpdateOne) ClearOfficeAddress() *DoctorUpdateOne {
	_u.mutation.ClearOfficeAddress()
	return _u
}

// SetOfficeHours sets the "office_hours" field.
func (_u *DoctorUpdateOne) SetOfficeHours(v string) *DoctorUpdateOne {
	_u.mutation.SetOfficeHours(v)
	return _u
}

// SetNillableOfficeHours sets the "office_hours" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableOfficeHours(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetOfficeHours(*v)
	}
	return _u
}

// ClearOfficeHours clears the value of the "office_hours" field.
func (_u *DoctorUpdateOne) ClearOfficeHours() *DoctorUpdateOne {
	_u.mutation.ClearOfficeHours()
	return _u
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_u *DoctorUpdateOne) AddAssignmentIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_u *DoctorUpdateOne) AddAssignments(v ...*Assignment) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearAssignments clears all "assignments" edges to the Assignment entity.
func (_u *DoctorUpdateOne) ClearAssignments() *DoctorUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to Assignment entities by IDs.
func (_u *DoctorUpdateOne) RemoveAssignmentIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to Assignment entities.
func (_u *DoctorUpdateOne) RemoveAssignments(v ...*Assignment) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := doctor.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := doctor.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := doctor.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Doctor.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := doctor.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`repo: validator failed for field "Doctor.phone_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := doctor.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialization": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNumber(); ok {
		if err := doctor.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "Doctor.license_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OfficeHours(); ok {
		if err := doctor.OfficeHoursValidator(v); err != nil {
			return &ValidationError{Name: "office_hours", err: fmt.Errorf(`repo: validator failed for field "Doctor.office_hours": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(doctor.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(doctor.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(doctor.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(doctor.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(doctor.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(doctor.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(doctor.FieldLicenseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.OfficeAddress(); ok {
		_spec.SetField(doctor.FieldOfficeAddress, field.TypeString, value)
	}
	if _u.mutation.OfficeAddressCleared() {
		_spec.ClearField(doctor.FieldOfficeAddress, field.TypeString)
	}
	if value, ok := _u.mutation.OfficeHours(); ok {
		_spec.SetField(doctor.FieldOfficeHours, field.TypeString, value)
	}
	if _u.mutation.OfficeHoursCleared() {
		_spec.ClearField(doctor.FieldOfficeHours, field.TypeString)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AssignmentsTable,
			Columns: []string{doctor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AssignmentsTable,
			Columns: []string{doctor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AssignmentsTable,
			Columns: []string{doctor.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
