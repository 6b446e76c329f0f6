package doctor

import (
	"context"
	"fmt"
	"testing"

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

func validCreate(email, license string) CreateRequest {
	return CreateRequest{
		FirstName:      "Gregory",
		LastName:       "House",
		Email:          email,
		Specialization: "Diagnostics",
		LicenseNumber:  license,
	}
}

func TestCreateAndGet(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	d, err := svc.Create(ctx, validCreate("house@example.com", "LIC-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.LicenseNumber != "LIC-1" {
		t.Errorf("LicenseNumber = %q", got.LicenseNumber)
	}
}

func TestCreateValidationAggregates(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)

	_, err := svc.Create(context.Background(), CreateRequest{Email: "bad"})
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr {
		t.Fatalf("want validate.Errors, got %v", err)
	}
	for _, field := range []string{"first_name", "last_name", "specialization", "email", "license_number"} {
		if len(ve[field]) == 0 {
			t.Errorf("missing error for %s: %v", field, ve)
		}
	}
}

func TestUniqueEmailAndLicense(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validCreate("house@example.com", "LIC-1")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Create(ctx, validCreate("house@example.com", "LIC-2"))
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr || len(ve["email"]) == 0 {
		t.Fatalf("want email error, got %v", err)
	}

	_, err = svc.Create(ctx, validCreate("wilson@example.com", "LIC-1"))
	ve, isFieldErr = validate.AsErrors(err)
	if !isFieldErr || len(ve["license_number"]) == 0 {
		t.Fatalf("want license_number error, got %v", err)
	}
}

func TestUpdateKeepingOwnIdentifiers(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	d, err := svc.Create(ctx, validCreate("house@example.com", "LIC-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	email := "house@example.com"
	license := "LIC-1"
	spec := "Nephrology"
	upd, err := svc.Update(ctx, d.ID, UpdateRequest{
		Email:          &email,
		LicenseNumber:  &license,
		Specialization: &spec,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.Specialization != "Nephrology" {
		t.Errorf("Specialization = %q", upd.Specialization)
	}
}

func TestUpdateToTakenLicense(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validCreate("a@example.com", "LIC-1")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	d2, err := svc.Create(ctx, validCreate("b@example.com", "LIC-2"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	license := "LIC-1"
	_, err = svc.Update(ctx, d2.ID, UpdateRequest{LicenseNumber: &license})
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr || len(ve["license_number"]) == 0 {
		t.Fatalf("want license_number error, got %v", err)
	}
}

func TestListOrdering(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	for _, d := range []struct{ first, last, email, lic string }{
		{"Robert", "Chase", "chase@example.com", "L-3"},
		{"Allison", "Cameron", "cameron@example.com", "L-2"},
		{"James", "Wilson", "wilson@example.com", "L-1"},
	} {
		req := validCreate(d.email, d.lic)
		req.FirstName = d.first
		req.LastName = d.last
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("Create %s: %v", d.last, err)
		}
	}

	items, total, err := svc.List(ctx, 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	want := []string{"Cameron", "Chase", "Wilson"}
	for i, w := range want {
		if items[i].LastName != w {
			t.Errorf("items[%d].LastName = %q, want %q", i, items[i].LastName, w)
		}
	}
}

func TestDeleteMissing(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)

	d, err := svc.Create(context.Background(), validCreate("house@example.com", "LIC-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), d.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), d.ID); err != ErrNotFound {
		t.Errorf("second Delete: err = %v, want ErrNotFound", err)
	}
}
