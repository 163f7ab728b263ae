package ports

import (
	"context"

	"github.com/acquisitions/auth-api/internal/core/domain"
)

// SignUpInput carries the validated, normalized registration fields.
// Password is the plaintext; it is hashed inside the service and discarded.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (string, *domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
}
