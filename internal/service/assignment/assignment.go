package assignment

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/carelinkhq/carelink_backend/internal/repo"
	entassignment "github.com/carelinkhq/carelink_backend/internal/repo/assignment"
	entdoctor "github.com/carelinkhq/carelink_backend/internal/repo/doctor"
	entpatient "github.com/carelinkhq/carelink_backend/internal/repo/patient"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Caller identifies the authenticated user for authorization decisions.
// Superusers see and manage every assignment; everyone else is limited to
// assignments of their own patients.
type Caller struct {
	ID        uuid.UUID
	Superuser bool
}

type CreateRequest struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
	Notes     *string
}

type UpdateRequest struct {
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
	Notes     *string
}

type Service interface {
	List(ctx context.Context, caller Caller, page, pageSize int) ([]*repo.Assignment, int, error)
	Get(ctx context.Context, caller Caller, id uuid.UUID) (*repo.Assignment, error)
	Create(ctx context.Context, caller Caller, req CreateRequest) (*repo.Assignment, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req UpdateRequest) (*repo.Assignment, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
	DoctorsByPatient(ctx context.Context, caller Caller, patientID uuid.UUID) ([]*repo.Assignment, error)
}

type assignmentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &assignmentService{db: db}
}

func (s *assignmentService) List(ctx context.Context, caller Caller, page, pageSize int) ([]*repo.Assignment, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	q := s.db.Assignment.Query()
	if !caller.Superuser {
		q = q.Where(entassignment.HasPatientWith(entpatient.CreatedByID(caller.ID)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count assignments: %w", err)
	}

	items, err := q.
		WithPatient().
		WithDoctor().
		Order(entassignment.ByAssignmentDate(sql.OrderDesc())).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list assignments: %w", err)
	}
	return items, total, nil
}

func (s *assignmentService) Get(ctx context.Context, caller Caller, id uuid.UUID) (*repo.Assignment, error) {
	a, err := s.db.Assignment.Query().
		Where(entassignment.ID(id)).
		WithPatient().
		WithDoctor().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if err := s.authorize(caller, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *assignmentService) Create(ctx context.Context, caller Caller, req CreateRequest) (*repo.Assignment, error) {
	ve := validate.Errors{}

	if err := s.validatePatient(ctx, ve, caller, req.PatientID); err != nil {
		return nil, err
	}
	if err := s.validateDoctor(ctx, ve, req.DoctorID); err != nil {
		return nil, err
	}
	if len(ve) == 0 {
		if err := s.checkPairFree(ctx, ve, req.PatientID, req.DoctorID, nil); err != nil {
			return nil, err
		}
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	a, err := s.db.Assignment.Create().
		SetPatientID(req.PatientID).
		SetDoctorID(req.DoctorID).
		SetAssignedByID(caller.ID).
		SetNillableNotes(req.Notes).
		Save(ctx)
	if err != nil {
		// The unique (patient, doctor) index decides under concurrency.
		if repo.IsConstraintError(err) {
			return nil, validate.Single(validate.NonFieldErrors, "The fields patient, doctor must make a unique set.")
		}
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	return s.reload(ctx, a.ID)
}

func (s *assignmentService) Update(ctx context.Context, caller Caller, id uuid.UUID, req UpdateRequest) (*repo.Assignment, error) {
	current, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	patientID := current.PatientID
	if req.PatientID != nil {
		patientID = *req.PatientID
	}
	doctorID := current.DoctorID
	if req.DoctorID != nil {
		doctorID = *req.DoctorID
	}

	ve := validate.Errors{}
	if req.PatientID != nil {
		if err := s.validatePatient(ctx, ve, caller, patientID); err != nil {
			return nil, err
		}
	}
	if req.DoctorID != nil {
		if err := s.validateDoctor(ctx, ve, doctorID); err != nil {
			return nil, err
		}
	}
	if len(ve) == 0 && (req.PatientID != nil || req.DoctorID != nil) {
		if err := s.checkPairFree(ctx, ve, patientID, doctorID, &id); err != nil {
			return nil, err
		}
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	upd := s.db.Assignment.UpdateOneID(id).
		SetNillablePatientID(req.PatientID).
		SetNillableDoctorID(req.DoctorID)
	if req.Notes != nil {
		upd = upd.SetNotes(*req.Notes)
	}

	if _, err := upd.Save(ctx); err != nil {
		if repo.IsConstraintError(err) {
			return nil, validate.Single(validate.NonFieldErrors, "The fields patient, doctor must make a unique set.")
		}
		return nil, fmt.Errorf("update assignment: %w", err)
	}

	return s.reload(ctx, id)
}

func (s *assignmentService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if err := s.db.Assignment.DeleteOneID(id).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

// DoctorsByPatient lists a patient's assignments with doctors eager-loaded,
// ordered by doctor name to match the directory listing. A missing patient,
// or one the caller does not own, yields an empty list rather than an error
// so the endpoint never leaks record existence.
func (s *assignmentService) DoctorsByPatient(ctx context.Context, caller Caller, patientID uuid.UUID) ([]*repo.Assignment, error) {
	q := s.db.Assignment.Query().
		Where(entassignment.PatientID(patientID))
	if !caller.Superuser {
		q = q.Where(entassignment.HasPatientWith(entpatient.CreatedByID(caller.ID)))
	}

	items, err := q.
		WithPatient().
		WithDoctor().
		Order(
			entassignment.ByDoctorField(entdoctor.FieldLastName),
			entassignment.ByDoctorField(entdoctor.FieldFirstName),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient assignments: %w", err)
	}
	if items == nil {
		items = []*repo.Assignment{}
	}
	return items, nil
}

func (s *assignmentService) authorize(caller Caller, a *repo.Assignment) error {
	if caller.Superuser {
		return nil
	}
	p := a.Edges.Patient
	if p == nil || p.CreatedByID != caller.ID {
		return ErrAccessDenied
	}
	return nil
}

// validatePatient requires the patient to exist and to be owned by the
// caller. Superuser status widens read visibility only; it does not allow
// assigning someone else's patient. Both failures read the same so callers
// cannot probe for foreign patient ids.
func (s *assignmentService) validatePatient(ctx context.Context, ve validate.Errors, caller Caller, patientID uuid.UUID) error {
	ok, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.CreatedByID(caller.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		ve.Add("patient_id", "You can only create assignments for your own patients.")
	}
	return nil
}

func (s *assignmentService) validateDoctor(ctx context.Context, ve validate.Errors, doctorID uuid.UUID) error {
	ok, err := s.db.Doctor.Query().Where(entdoctor.ID(doctorID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check doctor: %w", err)
	}
	if !ok {
		ve.Add("doctor_id", "Doctor does not exist.")
	}
	return nil
}

func (s *assignmentService) checkPairFree(ctx context.Context, ve validate.Errors, patientID, doctorID uuid.UUID, excludeID *uuid.UUID) error {
	q := s.db.Assignment.Query().Where(
		entassignment.PatientID(patientID),
		entassignment.DoctorID(doctorID),
	)
	if excludeID != nil {
		q = q.Where(entassignment.IDNEQ(*excludeID))
	}
	taken, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check assignment pair: %w", err)
	}
	if taken {
		ve.Add(validate.NonFieldErrors, "The fields patient, doctor must make a unique set.")
	}
	return nil
}

func (s *assignmentService) reload(ctx context.Context, id uuid.UUID) (*repo.Assignment, error) {
	a, err := s.db.Assignment.Query().
		Where(entassignment.ID(id)).
		WithPatient().
		WithDoctor().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload assignment: %w", err)
	}
	return a, nil
}
