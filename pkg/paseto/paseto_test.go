package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	mgr, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "carelink-test",
		Audience:   "carelink-api",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return mgr
}

func TestIssueAndVerifyAccess(t *testing.T) {
	mgr := newTestManager(t)

	id := Identity{
		UserID:    uuid.New(),
		Email:     "staff@clinic.test",
		Superuser: true,
		SessionID: uuid.New(),
	}

	tok, err := mgr.IssueAccess(id)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := mgr.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != id.UserID {
		t.Errorf("UserID = %v, want %v", claims.UserID, id.UserID)
	}
	if claims.Email != id.Email {
		t.Errorf("Email = %q, want %q", claims.Email, id.Email)
	}
	if !claims.Superuser {
		t.Error("Superuser flag lost in round trip")
	}
	if claims.SessionID != id.SessionID {
		t.Errorf("SessionID = %v, want %v", claims.SessionID, id.SessionID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	mgr := newTestManager(t)

	tok, err := mgr.IssueRefresh(Identity{UserID: uuid.New(), SessionID: uuid.New()})
	if err != nil {
		t.Fatalf("IssueRefresh() error = %v", err)
	}

	claims, err := mgr.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
	if claims.Superuser {
		t.Error("Superuser defaulted to true")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	mgr := newTestManager(t)
	other := newTestManager(t) // different symmetric key

	tok, err := mgr.IssueAccess(Identity{UserID: uuid.New(), SessionID: uuid.New()})
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := other.Verify(tok); err == nil {
		t.Error("Verify() accepted a token encrypted with a different key")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	mgr := newTestManager(t)
	if _, err := mgr.Verify("v4.local.garbage"); err == nil {
		t.Error("Verify() accepted garbage input")
	}
}
