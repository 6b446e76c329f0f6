package auth

import (
	"context"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/carelinkhq/carelink_backend/internal/repo"
	"github.com/carelinkhq/carelink_backend/internal/repo/enttest"
	entuser "github.com/carelinkhq/carelink_backend/internal/repo/user"
	"github.com/carelinkhq/carelink_backend/pkg/util/password"
	"github.com/carelinkhq/carelink_backend/pkg/validate"
)

// testParams keeps hashing cheap in tests.
var testParams = &password.Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func newTestService(t *testing.T) (*authService, *repo.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	svc := &authService{
		db:     client,
		policy: password.DefaultPolicy(),
		params: testParams,
	}
	return svc, client
}

func TestRegister(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{
		Email:     "Nurse@Example.com",
		Password:  "correct horse battery",
		Password2: "correct horse battery",
		FirstName: "Pat",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "nurse@example.com" {
		t.Errorf("Email = %q, want lowercased", u.Email)
	}

	stored, err := client.User.Query().Where(entuser.EmailEQ("nurse@example.com")).Only(ctx)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.PasswordHash == "correct horse battery" {
		t.Fatal("password stored in plaintext")
	}
	if !password.Match(stored.PasswordHash, "correct horse battery") {
		t.Error("stored hash does not verify")
	}
	if stored.IsSuperuser {
		t.Error("new accounts must not be superusers")
	}
}

func TestRegisterAggregatesFieldErrors(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "not-an-email",
		Password:  "1234",
		Password2: "5678",
	})
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr {
		t.Fatalf("want validate.Errors, got %v", err)
	}
	if len(ve["email"]) == 0 {
		t.Errorf("missing email error: %v", ve)
	}
	if len(ve["first_name"]) == 0 {
		t.Errorf("missing first_name error: %v", ve)
	}
	// Short, numeric, and mismatched all reported together.
	if len(ve["password"]) < 3 {
		t.Errorf("password errors = %v, want 3", ve["password"])
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := RegisterRequest{
		Email:     "nurse@example.com",
		Password:  "correct horse battery",
		Password2: "correct horse battery",
		FirstName: "Pat",
	}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(ctx, req)
	ve, isFieldErr := validate.AsErrors(err)
	if !isFieldErr || len(ve["email"]) == 0 {
		t.Fatalf("want email error, got %v", err)
	}
}
