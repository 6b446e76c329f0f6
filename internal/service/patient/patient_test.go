package patient

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

func createUser(t *testing.T, client *repo.Client, email string) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetFirstName("Test").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func validCreate(email string) CreateRequest {
	return CreateRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:      "F",
		Email:       email,
	}
}

func TestCreateAndGet(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()
	owner := createUser(t, client, "owner@example.com")

	p, err := svc.Create(ctx, owner.ID, validCreate("jane@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.CreatedByID != owner.ID {
		t.Errorf("CreatedByID = %v, want %v", p.CreatedByID, owner.ID)
	}

	got, err := svc.Get(ctx, owner.ID, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Email != "jane@example.com" {
		t.Errorf("Email = %q", got.Email)
	}
}

func TestCreateValidationAggregates(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	owner := createUser(t, client, "owner@example.com")

	_, err := svc.Create(context.Background(), owner.ID, CreateRequest{
		Gender: "X",
		Email:  "not-an-email",
	})
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr {
		t.Fatalf("want validate.Errors, got %v", err)
	}
	for _, field := range []string{"first_name", "last_name", "date_of_birth", "gender", "email"} {
		if len(ve[field]) == 0 {
			t.Errorf("missing error for %s: %v", field, ve)
		}
	}
}

func TestEmailUniqueness(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()
	owner := createUser(t, client, "owner@example.com")
	other := createUser(t, client, "other@example.com")

	if _, err := svc.Create(ctx, owner.ID, validCreate("jane@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// The constraint spans owners.
	_, err := svc.Create(ctx, other.ID, validCreate("jane@example.com"))
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr || len(ve["email"]) == 0 {
		t.Fatalf("want email error, got %v", err)
	}
}

func TestUpdateKeepingOwnEmail(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()
	owner := createUser(t, client, "owner@example.com")

	p, err := svc.Create(ctx, owner.ID, validCreate("jane@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Re-submitting the record's own email must not trip uniqueness.
	email := "jane@example.com"
	first := "Janet"
	upd, err := svc.Update(ctx, owner.ID, p.ID, UpdateRequest{Email: &email, FirstName: &first})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.FirstName != "Janet" {
		t.Errorf("FirstName = %q", upd.FirstName)
	}
}

func TestUpdateToTakenEmail(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()
	owner := createUser(t, client, "owner@example.com")

	if _, err := svc.Create(ctx, owner.ID, validCreate("a@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	p2, err := svc.Create(ctx, owner.ID, validCreate("b@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	email := "a@example.com"
	_, err = svc.Update(ctx, owner.ID, p2.ID, UpdateRequest{Email: &email})
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr || len(ve["email"]) == 0 {
		t.Fatalf("want email error, got %v", err)
	}
}

func TestOwnershipScoping(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()
	owner := createUser(t, client, "owner@example.com")
	other := createUser(t, client, "other@example.com")

	p, err := svc.Create(ctx, owner.ID, validCreate("jane@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Non-owners get a miss, not a permission error.
	if _, err := svc.Get(ctx, other.ID, p.ID); err != ErrNotFound {
		t.Errorf("Get by non-owner: err = %v, want ErrNotFound", err)
	}
	first := "Hacked"
	if _, err := svc.Update(ctx, other.ID, p.ID, UpdateRequest{FirstName: &first}); err != ErrNotFound {
		t.Errorf("Update by non-owner: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, other.ID, p.ID); err != ErrNotFound {
		t.Errorf("Delete by non-owner: err = %v, want ErrNotFound", err)
	}

	items, total, err := svc.List(ctx, other.ID, 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Errorf("non-owner list: total = %d, items = %d", total, len(items))
	}
}

func TestListOrderAndPaging(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()
	owner := createUser(t, client, "owner@example.com")

	var last uuid.UUID
	for i := 0; i < 3; i++ {
		p, err := svc.Create(ctx, owner.ID, validCreate(fmt.Sprintf("p%d@example.com", i)))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		last = p.ID
		time.Sleep(5 * time.Millisecond)
	}

	items, total, err := svc.List(ctx, owner.ID, 1, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	// Newest first.
	if items[0].ID != last {
		t.Errorf("items[0].ID = %v, want %v", items[0].ID, last)
	}
}

func TestDelete(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()
	owner := createUser(t, client, "owner@example.com")

	p, err := svc.Create(ctx, owner.ID, validCreate("jane@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, owner.ID, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, owner.ID, p.ID); err != ErrNotFound {
		t.Errorf("Get after delete: err = %v, want ErrNotFound", err)
	}
}
