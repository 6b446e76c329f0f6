package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carelinkhq/carelink_backend/internal/repo"
	entdoctor "github.com/carelinkhq/carelink_backend/internal/repo/doctor"
	"github.com/carelinkhq/carelink_backend/internal/repo/predicate"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type CreateRequest struct {
	FirstName      string
	LastName       string
	Email          string
	Specialization string
	LicenseNumber  string
	PhoneNumber    *string
	OfficeAddress  *string
	OfficeHours    *string
}

type UpdateRequest struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Specialization *string
	LicenseNumber  *string
	PhoneNumber    *string
	OfficeAddress  *string
	OfficeHours    *string
}

// Service manages the shared doctor directory. Unlike patients, doctor
// records have no owner and are visible to every authenticated user.
type Service interface {
	List(ctx context.Context, page, pageSize int) ([]*repo.Doctor, int, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Doctor, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Doctor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &doctorService{db: db}
}

func (s *doctorService) List(ctx context.Context, page, pageSize int) ([]*repo.Doctor, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	q := s.db.Doctor.Query()

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count doctors: %w", err)
	}

	items, err := q.
		Order(entdoctor.ByLastName(), entdoctor.ByFirstName()).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list doctors: %w", err)
	}
	return items, total, nil
}

func (s *doctorService) Get(ctx context.Context, id uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.LicenseNumber = strings.TrimSpace(req.LicenseNumber)

	ve := validate.Errors{}
	if strings.TrimSpace(req.FirstName) == "" {
		ve.Add("first_name", "This field is required.")
	}
	if strings.TrimSpace(req.LastName) == "" {
		ve.Add("last_name", "This field is required.")
	}
	if strings.TrimSpace(req.Specialization) == "" {
		ve.Add("specialization", "This field is required.")
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" && !validate.Phone(*req.PhoneNumber) {
		ve.Add("phone_number", "Enter a valid phone number.")
	}

	if req.Email == "" {
		ve.Add("email", "This field is required.")
	} else if !validate.Email(req.Email) {
		ve.Add("email", "Enter a valid email address.")
	} else if err := s.checkUnique(ctx, ve, entdoctor.EmailEQ(req.Email), "email", "doctor with this email already exists.", nil); err != nil {
		return nil, err
	}

	if req.LicenseNumber == "" {
		ve.Add("license_number", "This field is required.")
	} else if err := s.checkUnique(ctx, ve, entdoctor.LicenseNumberEQ(req.LicenseNumber), "license_number", "doctor with this license number already exists.", nil); err != nil {
		return nil, err
	}

	if err := ve.Err(); err != nil {
		return nil, err
	}

	d, err := s.db.Doctor.Create().
		SetFirstName(strings.TrimSpace(req.FirstName)).
		SetLastName(strings.TrimSpace(req.LastName)).
		SetEmail(req.Email).
		SetSpecialization(strings.TrimSpace(req.Specialization)).
		SetLicenseNumber(req.LicenseNumber).
		SetNillablePhoneNumber(req.PhoneNumber).
		SetNillableOfficeAddress(req.OfficeAddress).
		SetNillableOfficeHours(req.OfficeHours).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, validate.Single(validate.NonFieldErrors, "doctor with these identifiers already exists.")
		}
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Doctor, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	ve := validate.Errors{}
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		ve.Add("first_name", "This field may not be blank.")
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		ve.Add("last_name", "This field may not be blank.")
	}
	if req.Specialization != nil && strings.TrimSpace(*req.Specialization) == "" {
		ve.Add("specialization", "This field may not be blank.")
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" && !validate.Phone(*req.PhoneNumber) {
		ve.Add("phone_number", "Enter a valid phone number.")
	}

	if req.Email != nil {
		em := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &em
		if em == "" {
			ve.Add("email", "This field may not be blank.")
		} else if !validate.Email(em) {
			ve.Add("email", "Enter a valid email address.")
		} else if err := s.checkUnique(ctx, ve, entdoctor.EmailEQ(em), "email", "doctor with this email already exists.", &id); err != nil {
			return nil, err
		}
	}

	if req.LicenseNumber != nil {
		ln := strings.TrimSpace(*req.LicenseNumber)
		req.LicenseNumber = &ln
		if ln == "" {
			ve.Add("license_number", "This field may not be blank.")
		} else if err := s.checkUnique(ctx, ve, entdoctor.LicenseNumberEQ(ln), "license_number", "doctor with this license number already exists.", &id); err != nil {
			return nil, err
		}
	}

	if err := ve.Err(); err != nil {
		return nil, err
	}

	upd := s.db.Doctor.UpdateOneID(id).
		SetNillableFirstName(req.FirstName).
		SetNillableLastName(req.LastName).
		SetNillableEmail(req.Email).
		SetNillableSpecialization(req.Specialization).
		SetNillableLicenseNumber(req.LicenseNumber)
	if req.PhoneNumber != nil {
		upd = upd.SetPhoneNumber(*req.PhoneNumber)
	}
	if req.OfficeAddress != nil {
		upd = upd.SetOfficeAddress(*req.OfficeAddress)
	}
	if req.OfficeHours != nil {
		upd = upd.SetOfficeHours(*req.OfficeHours)
	}

	d, err := upd.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, validate.Single(validate.NonFieldErrors, "doctor with these identifiers already exists.")
		}
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.Doctor.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete doctor: %w", err)
	}
	return nil
}

func (s *doctorService) checkUnique(ctx context.Context, ve validate.Errors, pred predicate.Doctor, field, msg string, excludeID *uuid.UUID) error {
	q := s.db.Doctor.Query().Where(pred)
	if excludeID != nil {
		q = q.Where(entdoctor.IDNEQ(*excludeID))
	}
	taken, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check doctor %s: %w", field, err)
	}
	if taken {
		ve.Add(field, msg)
	}
	return nil
}
