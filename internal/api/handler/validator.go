package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/acquisitions/auth-api/internal/infrastructure/config"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the ordered list of field errors for one payload. It
// implements error so handlers can hand it straight to the response mapping.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, fe := range ve {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v      *validator.Validate
	minLen int
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator. The password policy (minimum length plus a mixed
// character-class rule) comes from configuration.
func NewValidator(policy config.PasswordConfig) *echoValidator {
	ev := &echoValidator{v: validator.New(), minLen: policy.MinLength}
	if err := ev.v.RegisterValidation("password", passwordRule(policy.MinLength)); err != nil {
		panic(fmt.Sprintf("validator: register password rule: %v", err))
	}
	return ev
}

// passwordRule enforces the configured minimum length and requires at least
// one letter and one digit.
func passwordRule(minLen int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) < minLen {
			return false
		}
		var hasLetter, hasDigit bool
		for _, r := range s {
			switch {
			case unicode.IsLetter(r):
				hasLetter = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		return hasLetter && hasDigit
	}
}

// Validate satisfies the echo.Validator interface. Malformed input never
// panics; it comes back as ValidationErrors in schema field order.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := make(ValidationErrors, 0, len(ve))
			for _, fe := range ve {
				out = append(out, FieldError{
					Field:   strings.ToLower(fe.Field()),
					Message: ev.fieldMessage(fe),
				})
			}
			return out
		}
		return err
	}
	return nil
}

// fieldMessage converts a single ValidationError into a human-readable message.
func (ev *echoValidator) fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "password":
		return fmt.Sprintf("%s must be at least %d characters with at least one letter and one digit", field, ev.minLen)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
