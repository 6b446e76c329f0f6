package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/carelinkhq/carelink_backend/internal/repo"
	entpatient "github.com/carelinkhq/carelink_backend/internal/repo/patient"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type CreateRequest struct {
	FirstName             string
	LastName              string
	DateOfBirth           time.Time
	Gender                string
	Email                 string
	Address               *string
	PhoneNumber           *string
	MedicalHistory        *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// UpdateRequest carries only the fields the caller wants to change; nil
// pointers leave the stored value alone.
type UpdateRequest struct {
	FirstName             *string
	LastName              *string
	DateOfBirth           *time.Time
	Gender                *string
	Email                 *string
	Address               *string
	PhoneNumber           *string
	MedicalHistory        *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// Service manages patient records. Every operation is scoped to the owning
// user; records created by other accounts are invisible.
type Service interface {
	List(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]*repo.Patient, int, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*repo.Patient, error)
	Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*repo.Patient, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func (s *patientService) List(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]*repo.Patient, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	q := s.db.Patient.Query().Where(entpatient.CreatedByID(ownerID))

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	items, err := q.
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}
	return items, total, nil
}

func (s *patientService) Get(ctx context.Context, ownerID, id uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(id), entpatient.CreatedByID(ownerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*repo.Patient, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ve := validate.Errors{}
	if strings.TrimSpace(req.FirstName) == "" {
		ve.Add("first_name", "This field is required.")
	}
	if strings.TrimSpace(req.LastName) == "" {
		ve.Add("last_name", "This field is required.")
	}
	if req.DateOfBirth.IsZero() {
		ve.Add("date_of_birth", "This field is required.")
	}
	validateGender(ve, req.Gender)
	validatePhones(ve, req.PhoneNumber, req.EmergencyContactPhone)

	if req.Email == "" {
		ve.Add("email", "This field is required.")
	} else if !validate.Email(req.Email) {
		ve.Add("email", "Enter a valid email address.")
	} else if err := s.checkEmailFree(ctx, ve, req.Email, nil); err != nil {
		return nil, err
	}

	if err := ve.Err(); err != nil {
		return nil, err
	}

	create := s.db.Patient.Create().
		SetFirstName(strings.TrimSpace(req.FirstName)).
		SetLastName(strings.TrimSpace(req.LastName)).
		SetDateOfBirth(req.DateOfBirth).
		SetGender(entpatient.Gender(req.Gender)).
		SetEmail(req.Email).
		SetNillableAddress(req.Address).
		SetNillablePhoneNumber(req.PhoneNumber).
		SetNillableMedicalHistory(req.MedicalHistory).
		SetNillableEmergencyContactName(req.EmergencyContactName).
		SetNillableEmergencyContactPhone(req.EmergencyContactPhone).
		SetCreatedByID(ownerID)

	p, err := create.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, validate.Single("email", "patient with this email already exists.")
		}
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	// Ownership gate first, so non-owners get the same answer as a miss.
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return nil, err
	}

	ve := validate.Errors{}
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		ve.Add("first_name", "This field may not be blank.")
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		ve.Add("last_name", "This field may not be blank.")
	}
	if req.Gender != nil {
		validateGender(ve, *req.Gender)
	}
	validatePhones(ve, req.PhoneNumber, req.EmergencyContactPhone)

	if req.Email != nil {
		em := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &em
		if em == "" {
			ve.Add("email", "This field may not be blank.")
		} else if !validate.Email(em) {
			ve.Add("email", "Enter a valid email address.")
		} else if err := s.checkEmailFree(ctx, ve, em, &id); err != nil {
			return nil, err
		}
	}

	if err := ve.Err(); err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOneID(id).
		SetNillableFirstName(req.FirstName).
		SetNillableLastName(req.LastName).
		SetNillableDateOfBirth(req.DateOfBirth).
		SetNillableEmail(req.Email)
	if req.Gender != nil {
		upd = upd.SetGender(entpatient.Gender(*req.Gender))
	}
	if req.Address != nil {
		upd = upd.SetAddress(*req.Address)
	}
	if req.PhoneNumber != nil {
		upd = upd.SetPhoneNumber(*req.PhoneNumber)
	}
	if req.MedicalHistory != nil {
		upd = upd.SetMedicalHistory(*req.MedicalHistory)
	}
	if req.EmergencyContactName != nil {
		upd = upd.SetEmergencyContactName(*req.EmergencyContactName)
	}
	if req.EmergencyContactPhone != nil {
		upd = upd.SetEmergencyContactPhone(*req.EmergencyContactPhone)
	}

	p, err := upd.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, validate.Single("email", "patient with this email already exists.")
		}
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	n, err := s.db.Patient.Delete().
		Where(entpatient.ID(id), entpatient.CreatedByID(ownerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// checkEmailFree records a field error when email is taken by another
// patient. excludeID skips the row being updated.
func (s *patientService) checkEmailFree(ctx context.Context, ve validate.Errors, email string, excludeID *uuid.UUID) error {
	q := s.db.Patient.Query().Where(entpatient.EmailEQ(email))
	if excludeID != nil {
		q = q.Where(entpatient.IDNEQ(*excludeID))
	}
	taken, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient email: %w", err)
	}
	if taken {
		ve.Add("email", "patient with this email already exists.")
	}
	return nil
}

func validateGender(ve validate.Errors, g string) {
	switch entpatient.Gender(g) {
	case entpatient.GenderM, entpatient.GenderF, entpatient.GenderO:
	default:
		ve.Add("gender", fmt.Sprintf("%q is not a valid choice.", g))
	}
}

func validatePhones(ve validate.Errors, phone, emergencyPhone *string) {
	if phone != nil && *phone != "" && !validate.Phone(*phone) {
		ve.Add("phone_number", "Enter a valid phone number.")
	}
	if emergencyPhone != nil && *emergencyPhone != "" && !validate.Phone(*emergencyPhone) {
		ve.Add("emergency_contact_phone", "Enter a valid phone number.")
	}
}
