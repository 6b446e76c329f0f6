package validate

import (
	"errors"
	"testing"
)

func TestErrorsAccumulate(t *testing.T) {
	ve := Errors{}
	if ve.Err() != nil {
		t.Error("empty Errors should yield nil")
	}

	ve.Add("email", "already in use")
	ve.Add("password", "too short")
	ve.Add("password", "entirely numeric")

	err := ve.Err()
	if err == nil {
		t.Fatal("non-empty Errors should yield an error")
	}

	got, ok := AsErrors(err)
	if !ok {
		t.Fatal("AsErrors failed to unwrap")
	}
	if len(got["password"]) != 2 {
		t.Errorf("password messages = %v, want 2", got["password"])
	}
}

func TestAsErrorsRejectsPlainError(t *testing.T) {
	if _, ok := AsErrors(errors.New("boom")); ok {
		t.Error("plain error must not unwrap as Errors")
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"jane@example.com", true},
		{"a.b+c@clinic.co.uk", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"jane@", false},
		{"jane doe@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"+14155552671", true},
		{"+1 415 555 2671", true},
		{"555-0123", true},
		{"0211234567", true},
		{"+999999", false},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Phone(tt.in); got != tt.want {
			t.Errorf("Phone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
