package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carelinkhq/carelink_backend/internal/service/patient"
	pasetotoken "github.com/carelinkhq/carelink_backend/pkg/paseto"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	if ve, isFieldErr := validate.AsErrors(err); isFieldErr {
		return validationFailed(c, ve)
	}
	switch {
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// parseDateOnly accepts a "2006-01-02" date string.
func parseDateOnly(s string) (time.Time, error) {
	return time.Parse(dateOnly, s)
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	claims, hasClaims := pasetotoken.ClaimsFromFiber(c)
	if !hasClaims {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	items, total, err := h.svc.List(c.Context(), claims.UserID, q.Page, q.PerPage)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients": presentPatients(items),
		"total":    total,
	})
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	claims, hasClaims := pasetotoken.ClaimsFromFiber(c)
	if !hasClaims {
		return unauthorized(c)
	}

	var body struct {
		FirstName             string  `json:"first_name"`
		LastName              string  `json:"last_name"`
		DateOfBirth           string  `json:"date_of_birth"`
		Gender                string  `json:"gender"`
		Email                 string  `json:"email"`
		Address               *string `json:"address"`
		PhoneNumber           *string `json:"phone_number"`
		MedicalHistory        *string `json:"medical_history"`
		EmergencyContactName  *string `json:"emergency_contact_name"`
		EmergencyContactPhone *string `json:"emergency_contact_phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.CreateRequest{
		FirstName:             body.FirstName,
		LastName:              body.LastName,
		Gender:                body.Gender,
		Email:                 body.Email,
		Address:               body.Address,
		PhoneNumber:           body.PhoneNumber,
		MedicalHistory:        body.MedicalHistory,
		EmergencyContactName:  body.EmergencyContactName,
		EmergencyContactPhone: body.EmergencyContactPhone,
	}
	if body.DateOfBirth != "" {
		dob, err := parseDateOnly(body.DateOfBirth)
		if err != nil {
			return validationFailed(c, validate.Single("date_of_birth", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."))
		}
		req.DateOfBirth = dob
	}

	p, err := h.svc.Create(c.Context(), claims.UserID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, presentPatient(p))
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	claims, hasClaims := pasetotoken.ClaimsFromFiber(c)
	if !hasClaims {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "patient not found")
	}

	p, err := h.svc.Get(c.Context(), claims.UserID, id)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, presentPatient(p))
}

// PUT|PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	claims, hasClaims := pasetotoken.ClaimsFromFiber(c)
	if !hasClaims {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "patient not found")
	}

	var body struct {
		FirstName             *string `json:"first_name"`
		LastName              *string `json:"last_name"`
		DateOfBirth           *string `json:"date_of_birth"`
		Gender                *string `json:"gender"`
		Email                 *string `json:"email"`
		Address               *string `json:"address"`
		PhoneNumber           *string `json:"phone_number"`
		MedicalHistory        *string `json:"medical_history"`
		EmergencyContactName  *string `json:"emergency_contact_name"`
		EmergencyContactPhone *string `json:"emergency_contact_phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdateRequest{
		FirstName:             body.FirstName,
		LastName:              body.LastName,
		Gender:                body.Gender,
		Email:                 body.Email,
		Address:               body.Address,
		PhoneNumber:           body.PhoneNumber,
		MedicalHistory:        body.MedicalHistory,
		EmergencyContactName:  body.EmergencyContactName,
		EmergencyContactPhone: body.EmergencyContactPhone,
	}
	if body.DateOfBirth != nil {
		dob, err := parseDateOnly(*body.DateOfBirth)
		if err != nil {
			return validationFailed(c, validate.Single("date_of_birth", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."))
		}
		req.DateOfBirth = &dob
	}

	p, err := h.svc.Update(c.Context(), claims.UserID, id, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, presentPatient(p))
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	claims, hasClaims := pasetotoken.ClaimsFromFiber(c)
	if !hasClaims {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "patient not found")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, id); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}
