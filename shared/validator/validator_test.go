package validator_test

import (
	"strings"
	"testing"

	"salesdesk/shared/validator"
)

type inquiryPayload struct {
	Text  string `validate:"required"               json:"text"`
	Email string `validate:"omitempty,email"        json:"email"`
	Tier  string `validate:"oneof=free premium enterprise" json:"tier"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *inquiryPayload
		expectError bool
	}{
		{
			name: "valid payload",
			data: &inquiryPayload{
				Text:  "We would like to book a wedding.",
				Email: "anna@example.com",
				Tier:  "premium",
			},
			expectError: false,
		},
		{
			name: "missing required text",
			data: &inquiryPayload{
				Email: "anna@example.com",
				Tier:  "free",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &inquiryPayload{
				Text:  "booking request",
				Email: "not-an-email",
				Tier:  "free",
			},
			expectError: true,
		},
		{
			name: "tier outside allowed set",
			data: &inquiryPayload{
				Text: "booking request",
				Tier: "platinum",
			},
			expectError: true,
		},
		{
			name: "optional email may be empty",
			data: &inquiryPayload{
				Text: "booking request",
				Tier: "enterprise",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid JSON body", func(t *testing.T) {
		body := strings.NewReader(`{"text":"booking request","tier":"premium"}`)

		var payload inquiryPayload
		if err := validator.Validate(body, &payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.Text != "booking request" {
			t.Errorf("expected decoded text, got %q", payload.Text)
		}
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		body := strings.NewReader(`{not json`)

		var payload inquiryPayload
		if err := validator.Validate(body, &payload); err == nil {
			t.Error("expected an error for malformed JSON")
		}
	})

	t.Run("failing validation after decode", func(t *testing.T) {
		body := strings.NewReader(`{"tier":"premium"}`)

		var payload inquiryPayload
		if err := validator.Validate(body, &payload); err == nil {
			t.Error("expected a validation error for missing text")
		}
	})
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("anna@example.com", "email"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "email"); err == nil {
		t.Error("expected a validation error")
	}
}
