package password

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	password := "correcthorsebatterystaple"

	hash, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// Check PHC format
	if !strings.HasPrefix(hash, "$argon2id$v=") {
		t.Errorf("Hash() format invalid, got %s", hash)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Errorf("Hash() expected 6 parts, got %d", len(parts))
	}
}

func TestVerify(t *testing.T) {
	password := "mysecretpassword"

	hash, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{
			name:     "correct password",
			hash:     hash,
			password: password,
			wantErr:  nil,
		},
		{
			name:     "wrong password",
			hash:     hash,
			password: "wrongpassword",
			wantErr:  ErrMismatch,
		},
		{
			name:     "invalid hash format",
			hash:     "notahash",
			password: password,
			wantErr:  ErrInvalidHash,
		},
		{
			name:     "empty password against valid hash",
			hash:     hash,
			password: "",
			wantErr:  ErrMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.hash, tt.password)
			if err != tt.wantErr {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashUniqueness(t *testing.T) {
	// Same password must produce different hashes (random salt).
	h1, err := Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	h2, err := Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical")
	}
	if !Match(h1, "samepassword") || !Match(h2, "samepassword") {
		t.Error("hashes do not verify against their password")
	}
}

func TestPolicyCheck(t *testing.T) {
	tests := []struct {
		name        string
		policy      Policy
		password    string
		wantReasons int
	}{
		{"acceptable", Policy{MinLength: 8}, "s3cure-enough", 0},
		{"too short", Policy{MinLength: 8}, "short1", 1},
		{"entirely numeric", Policy{MinLength: 8}, "123456789", 1},
		{"short and numeric", Policy{MinLength: 8}, "1234", 2},
		{"zero min falls back to 8", Policy{}, "abcdefg", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.Check(tt.password)
			if len(got) != tt.wantReasons {
				t.Errorf("Check(%q) = %v, want %d reasons", tt.password, got, tt.wantReasons)
			}
		})
	}
}
