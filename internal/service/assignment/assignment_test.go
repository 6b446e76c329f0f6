package assignment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/carelinkhq/carelink_backend/internal/repo"
	"github.com/carelinkhq/carelink_backend/internal/repo/enttest"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

type fixture struct {
	client *repo.Client
	svc    Service

	owner Caller
	other Caller
	admin Caller

	patient *repo.Patient // owned by owner
	doctor  *repo.Doctor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := newTestClient(t)
	ctx := context.Background()

	mkUser := func(email string, super bool) Caller {
		u, err := client.User.Create().
			SetEmail(email).
			SetPasswordHash("x").
			SetFirstName("Test").
			SetIsSuperuser(super).
			Save(ctx)
		if err != nil {
			t.Fatalf("create user: %v", err)
		}
		return Caller{ID: u.ID, Superuser: super}
	}

	f := &fixture{
		client: client,
		svc:    New(client),
		owner:  mkUser("owner@example.com", false),
		other:  mkUser("other@example.com", false),
		admin:  mkUser("admin@example.com", true),
	}

	p, err := client.Patient.Create().
		SetFirstName("Jane").
		SetLastName("Doe").
		SetDateOfBirth(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)).
		SetGender("F").
		SetEmail("jane@example.com").
		SetCreatedByID(f.owner.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	f.patient = p

	d, err := client.Doctor.Create().
		SetFirstName("Gregory").
		SetLastName("House").
		SetEmail("house@example.com").
		SetSpecialization("Diagnostics").
		SetLicenseNumber("LIC-1").
		Save(ctx)
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	f.doctor = d

	return f
}

func TestCreateLinksAndEagerLoads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.owner, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.AssignedByID == nil || *a.AssignedByID != f.owner.ID {
		t.Errorf("AssignedByID = %v, want %v", a.AssignedByID, f.owner.ID)
	}
	if a.Edges.Patient == nil || a.Edges.Patient.ID != f.patient.ID {
		t.Errorf("patient edge not loaded")
	}
	if a.Edges.Doctor == nil || a.Edges.Doctor.ID != f.doctor.ID {
		t.Errorf("doctor edge not loaded")
	}
	if a.AssignmentDate.IsZero() {
		t.Errorf("AssignmentDate not set")
	}
}

func TestCreateForForeignPatient(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.other, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
	})
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr || len(ve["patient_id"]) == 0 {
		t.Fatalf("want patient_id error, got %v", err)
	}
}

func TestCreateForUnknownDoctor(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.owner, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  uuid.New(),
	})
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr || len(ve["doctor_id"]) == 0 {
		t.Fatalf("want doctor_id error, got %v", err)
	}
}

func TestSuperuserCreateForeignPatientRejected(t *testing.T) {
	f := newFixture(t)

	// Superusers see every assignment but still may not assign a patient
	// they do not own.
	_, err := f.svc.Create(context.Background(), f.admin, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
	})
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr || len(ve["patient_id"]) == 0 {
		t.Fatalf("want patient_id error, got %v", err)
	}
}

func TestDuplicatePairRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, f.owner, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
	}); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := f.svc.Create(ctx, f.owner, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
	})
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr || len(ve[validate.NonFieldErrors]) == 0 {
		t.Fatalf("want non_field_errors, got %v", err)
	}
}

func TestVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.owner, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Owner and superuser see it in the list; strangers do not.
	for _, tc := range []struct {
		name   string
		caller Caller
		want   int
	}{
		{"owner", f.owner, 1},
		{"other", f.other, 0},
		{"admin", f.admin, 1},
	} {
		items, total, err := f.svc.List(ctx, tc.caller, 1, 10)
		if err != nil {
			t.Fatalf("List as %s: %v", tc.name, err)
		}
		if total != tc.want || len(items) != tc.want {
			t.Errorf("List as %s: total = %d, want %d", tc.name, total, tc.want)
		}
	}

	// Detail: strangers get an explicit permission failure.
	if _, err := f.svc.Get(ctx, f.other, a.ID); err != ErrAccessDenied {
		t.Errorf("Get as other: err = %v, want ErrAccessDenied", err)
	}
	if _, err := f.svc.Get(ctx, f.admin, a.ID); err != nil {
		t.Errorf("Get as admin: %v", err)
	}
	if err := f.svc.Delete(ctx, f.other, a.ID); err != ErrAccessDenied {
		t.Errorf("Delete as other: err = %v, want ErrAccessDenied", err)
	}
}

func TestUpdateNotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.owner, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	notes := "follow up in two weeks"
	upd, err := f.svc.Update(ctx, f.owner, a.ID, UpdateRequest{Notes: &notes})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.Notes == nil || *upd.Notes != notes {
		t.Errorf("Notes = %v", upd.Notes)
	}
	// Immutable date survives the update.
	if !upd.AssignmentDate.Equal(a.AssignmentDate) {
		t.Errorf("AssignmentDate changed: %v -> %v", a.AssignmentDate, upd.AssignmentDate)
	}
}

func TestUpdateIntoExistingPair(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d2, err := f.client.Doctor.Create().
		SetFirstName("James").
		SetLastName("Wilson").
		SetEmail("wilson@example.com").
		SetSpecialization("Oncology").
		SetLicenseNumber("LIC-2").
		Save(ctx)
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	if _, err := f.svc.Create(ctx, f.owner, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	a2, err := f.svc.Create(ctx, f.owner, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  d2.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Moving a2 onto doctor 1 would collide with the first assignment.
	_, err = f.svc.Update(ctx, f.owner, a2.ID, UpdateRequest{DoctorID: &f.doctor.ID})
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr || len(ve[validate.NonFieldErrors]) == 0 {
		t.Fatalf("want non_field_errors, got %v", err)
	}
}

func TestDoctorsByPatient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	second, err := f.client.Doctor.Create().
		SetFirstName("Allison").
		SetLastName("Cameron").
		SetEmail("cameron@example.com").
		SetSpecialization("Immunology").
		SetLicenseNumber("LIC-2").
		Save(ctx)
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	// House is assigned first; the listing is still ordered by doctor name,
	// so Cameron comes back ahead of House.
	for _, d := range []*repo.Doctor{f.doctor, second} {
		if _, err := f.svc.Create(ctx, f.owner, CreateRequest{
			PatientID: f.patient.ID,
			DoctorID:  d.ID,
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	items, err := f.svc.DoctorsByPatient(ctx, f.owner, f.patient.ID)
	if err != nil {
		t.Fatalf("DoctorsByPatient: %v", err)
	}
	if len(items) != 2 || items[0].Edges.Doctor == nil || items[1].Edges.Doctor == nil {
		t.Fatalf("items = %v", items)
	}
	if items[0].Edges.Doctor.LastName != "Cameron" || items[1].Edges.Doctor.LastName != "House" {
		t.Errorf("order = %s, %s; want Cameron, House",
			items[0].Edges.Doctor.LastName, items[1].Edges.Doctor.LastName)
	}

	// Foreign and unknown patients both answer with an empty list.
	items, err = f.svc.DoctorsByPatient(ctx, f.other, f.patient.ID)
	if err != nil || len(items) != 0 {
		t.Errorf("foreign patient: items = %v, err = %v", items, err)
	}
	items, err = f.svc.DoctorsByPatient(ctx, f.owner, uuid.New())
	if err != nil || len(items) != 0 {
		t.Errorf("unknown patient: items = %v, err = %v", items, err)
	}

	// Superusers see any patient's assignments.
	items, err = f.svc.DoctorsByPatient(ctx, f.admin, f.patient.ID)
	if err != nil || len(items) != 2 {
		t.Errorf("admin: items = %v, err = %v", items, err)
	}
}

func TestDoctorDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, f.owner, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := f.client.Doctor.DeleteOneID(f.doctor.ID).Exec(ctx); err != nil {
		t.Fatalf("delete doctor: %v", err)
	}

	_, total, err := f.svc.List(ctx, f.owner, 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0 after doctor delete", total)
	}
}

func TestPatientDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.owner, CreateRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := f.client.Patient.DeleteOneID(f.patient.ID).Exec(ctx); err != nil {
		t.Fatalf("delete patient: %v", err)
	}

	if _, err := f.svc.Get(ctx, f.admin, a.ID); err != ErrNotFound {
		t.Errorf("Get after patient delete: err = %v, want ErrNotFound", err)
	}
}
