package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/carelinkhq/carelink_backend/internal/service/assignment"
	pasetotoken "github.com/carelinkhq/carelink_backend/pkg/paseto"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

type AssignmentHandler struct {
	svc assignment.Service
}

func NewAssignmentHandler(svc assignment.Service) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

func callerFromLocals(c fiber.Ctx) (assignment.Caller, bool) {
	claims, hasClaims := pasetotoken.ClaimsFromFiber(c)
	if !hasClaims {
		return assignment.Caller{}, false
	}
	return assignment.Caller{ID: claims.UserID, Superuser: claims.Superuser}, true
}

func mapAssignmentError(c fiber.Ctx, err error) error {
	if ve, isFieldErr := validate.AsErrors(err); isFieldErr {
		return validationFailed(c, ve)
	}
	switch {
	case errors.Is(err, assignment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assignment.ErrAccessDenied):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /mappings
func (h *AssignmentHandler) List(c fiber.Ctx) error {
	caller, hasCaller := callerFromLocals(c)
	if !hasCaller {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	items, total, err := h.svc.List(c.Context(), caller, q.Page, q.PerPage)
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, fiber.Map{
		"mappings": presentAssignments(items),
		"total":    total,
	})
}

// POST /mappings
func (h *AssignmentHandler) Create(c fiber.Ctx) error {
	caller, hasCaller := callerFromLocals(c)
	if !hasCaller {
		return unauthorized(c)
	}

	var body struct {
		PatientID string  `json:"patient_id"`
		DoctorID  string  `json:"doctor_id"`
		Notes     *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ve := validate.Errors{}
	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		ve.Add("patient_id", "Must be a valid UUID.")
	}
	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		ve.Add("doctor_id", "Must be a valid UUID.")
	}
	if len(ve) > 0 {
		return validationFailed(c, ve)
	}

	a, err := h.svc.Create(c.Context(), caller, assignment.CreateRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return created(c, presentAssignment(a))
}

// GET /mappings/:id
func (h *AssignmentHandler) Get(c fiber.Ctx) error {
	caller, hasCaller := callerFromLocals(c)
	if !hasCaller {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "assignment not found")
	}

	a, err := h.svc.Get(c.Context(), caller, id)
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, presentAssignment(a))
}

// PUT|PATCH /mappings/:id
func (h *AssignmentHandler) Update(c fiber.Ctx) error {
	caller, hasCaller := callerFromLocals(c)
	if !hasCaller {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "assignment not found")
	}

	var body struct {
		PatientID *string `json:"patient_id"`
		DoctorID  *string `json:"doctor_id"`
		Notes     *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := assignment.UpdateRequest{Notes: body.Notes}
	ve := validate.Errors{}
	if body.PatientID != nil {
		pid, err := uuid.Parse(*body.PatientID)
		if err != nil {
			ve.Add("patient_id", "Must be a valid UUID.")
		} else {
			req.PatientID = &pid
		}
	}
	if body.DoctorID != nil {
		did, err := uuid.Parse(*body.DoctorID)
		if err != nil {
			ve.Add("doctor_id", "Must be a valid UUID.")
		} else {
			req.DoctorID = &did
		}
	}
	if len(ve) > 0 {
		return validationFailed(c, ve)
	}

	a, err := h.svc.Update(c.Context(), caller, id, req)
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, presentAssignment(a))
}

// DELETE /mappings/:id
func (h *AssignmentHandler) Delete(c fiber.Ctx) error {
	caller, hasCaller := callerFromLocals(c)
	if !hasCaller {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "assignment not found")
	}

	if err := h.svc.Delete(c.Context(), caller, id); err != nil {
		return mapAssignmentError(c, err)
	}

	return noContent(c)
}

// GET /mappings/by-patient/:patient_id
//
// Always answers 200 with the patient's doctors. An unknown or foreign
// patient id yields an empty list so the endpoint cannot be used to probe
// which records exist.
func (h *AssignmentHandler) ByPatient(c fiber.Ctx) error {
	caller, hasCaller := callerFromLocals(c)
	if !hasCaller {
		return unauthorized(c)
	}

	doctors := []*doctorJSON{}
	patientID, err := uuid.Parse(c.Params("patient_id"))
	if err != nil {
		return ok(c, fiber.Map{"doctors": doctors})
	}

	items, err := h.svc.DoctorsByPatient(c.Context(), caller, patientID)
	if err != nil {
		return mapAssignmentError(c, err)
	}

	for _, a := range items {
		if d := presentDoctor(a.Edges.Doctor); d != nil {
			doctors = append(doctors, d)
		}
	}
	return ok(c, fiber.Map{"doctors": doctors})
}
