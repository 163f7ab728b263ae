package handler

import (
	"errors"
	"testing"

	"github.com/acquisitions/auth-api/internal/infrastructure/config"
)

func testValidator() *echoValidator {
	return NewValidator(config.PasswordConfig{MinLength: 8})
}

func TestValidator_SignUpValid(t *testing.T) {
	v := testValidator()

	req := signUpRequest{Name: "Ann", Email: "ann@x.com", Password: "Secret123"}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidator_SignUpFieldErrors(t *testing.T) {
	v := testValidator()

	req := signUpRequest{Email: "not-an-email", Password: "Secret123"}
	err := v.Validate(&req)
	if err == nil {
		t.Fatalf("expected validation errors")
	}

	var ve ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(ve) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %v", len(ve), ve)
	}
	// errors come back in schema field order
	if ve[0].Field != "name" || ve[1].Field != "email" {
		t.Fatalf("unexpected field order: %+v", ve)
	}
	if ve[0].Message != "name is required" {
		t.Fatalf("unexpected message: %q", ve[0].Message)
	}
}

func TestValidator_PasswordPolicy(t *testing.T) {
	v := testValidator()

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"ok mixed classes", "Secret123", true},
		{"too short", "Ab1", false},
		{"no digit", "longpassword", false},
		{"no letter", "1234567890", false},
		{"exactly minimum", "abcdefg1", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := signUpRequest{Name: "Ann", Email: "ann@x.com", Password: tc.password}
			err := v.Validate(&req)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected password policy violation")
			}
		})
	}
}

func TestValidator_RoleRestricted(t *testing.T) {
	v := testValidator()

	req := signUpRequest{Name: "Ann", Email: "ann@x.com", Password: "Secret123", Role: "superuser"}
	if err := v.Validate(&req); err == nil {
		t.Fatalf("expected role to be restricted to the enumerated set")
	}

	req.Role = "admin"
	if err := v.Validate(&req); err != nil {
		t.Fatalf("expected admin role to be accepted, got %v", err)
	}
}

func TestSignUpRequest_Normalize(t *testing.T) {
	req := signUpRequest{Name: "  Ann ", Email: " Ann@X.com "}
	req.normalize()

	if req.Email != "ann@x.com" {
		t.Fatalf("expected normalized email, got %q", req.Email)
	}
	if req.Name != "Ann" {
		t.Fatalf("expected trimmed name, got %q", req.Name)
	}
}
