package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/carelinkhq/carelink_backend/internal/repo"
)

// dateOnly is the wire format for date_of_birth.
const dateOnly = "2006-01-02"

type patientJSON struct {
	ID                    uuid.UUID `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	DateOfBirth           string    `json:"date_of_birth"`
	Gender                string    `json:"gender"`
	Address               *string   `json:"address"`
	PhoneNumber           *string   `json:"phone_number"`
	Email                 string    `json:"email"`
	MedicalHistory        *string   `json:"medical_history"`
	EmergencyContactName  *string   `json:"emergency_contact_name"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone"`
	CreatedBy             uuid.UUID `json:"created_by"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func presentPatient(p *repo.Patient) *patientJSON {
	if p == nil {
		return nil
	}
	return &patientJSON{
		ID:                    p.ID,
		FirstName:             p.FirstName,
		LastName:              p.LastName,
		DateOfBirth:           p.DateOfBirth.Format(dateOnly),
		Gender:                string(p.Gender),
		Address:               p.Address,
		PhoneNumber:           p.PhoneNumber,
		Email:                 p.Email,
		MedicalHistory:        p.MedicalHistory,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		CreatedBy:             p.CreatedByID,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func presentPatients(ps []*repo.Patient) []*patientJSON {
	out := make([]*patientJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, presentPatient(p))
	}
	return out
}

type doctorJSON struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	PhoneNumber    *string   `json:"phone_number"`
	Specialization string    `json:"specialization"`
	LicenseNumber  string    `json:"license_number"`
	OfficeAddress  *string   `json:"office_address"`
	OfficeHours    *string   `json:"office_hours"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func presentDoctor(d *repo.Doctor) *doctorJSON {
	if d == nil {
		return nil
	}
	return &doctorJSON{
		ID:             d.ID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		PhoneNumber:    d.PhoneNumber,
		Specialization: d.Specialization,
		LicenseNumber:  d.LicenseNumber,
		OfficeAddress:  d.OfficeAddress,
		OfficeHours:    d.OfficeHours,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func presentDoctors(ds []*repo.Doctor) []*doctorJSON {
	out := make([]*doctorJSON, 0, len(ds))
	for _, d := range ds {
		out = append(out, presentDoctor(d))
	}
	return out
}

type assignmentJSON struct {
	ID             uuid.UUID    `json:"id"`
	PatientID      uuid.UUID    `json:"patient_id"`
	DoctorID       uuid.UUID    `json:"doctor_id"`
	AssignedBy     *uuid.UUID   `json:"assigned_by"`
	AssignmentDate time.Time    `json:"assignment_date"`
	Notes          *string      `json:"notes"`
	PatientDetails *patientJSON `json:"patient_details"`
	DoctorDetails  *doctorJSON  `json:"doctor_details"`
}

func presentAssignment(a *repo.Assignment) *assignmentJSON {
	if a == nil {
		return nil
	}
	return &assignmentJSON{
		ID:             a.ID,
		PatientID:      a.PatientID,
		DoctorID:       a.DoctorID,
		AssignedBy:     a.AssignedByID,
		AssignmentDate: a.AssignmentDate,
		Notes:          a.Notes,
		PatientDetails: presentPatient(a.Edges.Patient),
		DoctorDetails:  presentDoctor(a.Edges.Doctor),
	}
}

func presentAssignments(as []*repo.Assignment) []*assignmentJSON {
	out := make([]*assignmentJSON, 0, len(as))
	for _, a := range as {
		out = append(out, presentAssignment(a))
	}
	return out
}
