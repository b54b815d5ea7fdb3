package password_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"salesdesk/shared/password"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "valid password",
			password:    "secret-password",
			expectError: false,
		},
		{
			name:        "empty password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(hash, "$2a$") {
				t.Errorf("expected a bcrypt hash, got %s", hash)
			}
			if hash == tt.password {
				t.Error("hash must not equal the plain password")
			}
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("secret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := password.Verify("secret-password", hash); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	if err := password.Verify("wrong-password", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}

	if err := password.Verify("", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty password, got %v", err)
	}

	if err := password.Verify("secret-password", ""); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty hash, got %v", err)
	}
}
