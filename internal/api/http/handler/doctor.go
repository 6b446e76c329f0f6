package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carelinkhq/carelink_backend/internal/service/doctor"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	if ve, isFieldErr := validate.AsErrors(err); isFieldErr {
		return validationFailed(c, ve)
	}
	switch {
	case errors.Is(err, doctor.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	items, total, err := h.svc.List(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, fiber.Map{
		"doctors": presentDoctors(items),
		"total":   total,
	})
}

// POST /doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName      string  `json:"first_name"`
		LastName       string  `json:"last_name"`
		Email          string  `json:"email"`
		Specialization string  `json:"specialization"`
		LicenseNumber  string  `json:"license_number"`
		PhoneNumber    *string `json:"phone_number"`
		OfficeAddress  *string `json:"office_address"`
		OfficeHours    *string `json:"office_hours"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.Create(c.Context(), doctor.CreateRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Email:          body.Email,
		Specialization: body.Specialization,
		LicenseNumber:  body.LicenseNumber,
		PhoneNumber:    body.PhoneNumber,
		OfficeAddress:  body.OfficeAddress,
		OfficeHours:    body.OfficeHours,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}

	return created(c, presentDoctor(d))
}

// GET /doctors/:id
func (h *DoctorHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "doctor not found")
	}

	d, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, presentDoctor(d))
}

// PUT|PATCH /doctors/:id
func (h *DoctorHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "doctor not found")
	}

	var body struct {
		FirstName      *string `json:"first_name"`
		LastName       *string `json:"last_name"`
		Email          *string `json:"email"`
		Specialization *string `json:"specialization"`
		LicenseNumber  *string `json:"license_number"`
		PhoneNumber    *string `json:"phone_number"`
		OfficeAddress  *string `json:"office_address"`
		OfficeHours    *string `json:"office_hours"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.Update(c.Context(), id, doctor.UpdateRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Email:          body.Email,
		Specialization: body.Specialization,
		LicenseNumber:  body.LicenseNumber,
		PhoneNumber:    body.PhoneNumber,
		OfficeAddress:  body.OfficeAddress,
		OfficeHours:    body.OfficeHours,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, presentDoctor(d))
}

// DELETE /doctors/:id
func (h *DoctorHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "doctor not found")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapDoctorError(c, err)
	}

	return noContent(c)
}
