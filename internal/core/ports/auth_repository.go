package ports

import (
	"context"

	"github.com/acquisitions/auth-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// FindByEmail expects a normalized (trimmed, lower-cased) address and returns
// domain.ErrUserNotFound when no row matches; absence is a normal outcome.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
