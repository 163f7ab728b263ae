package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/acquisitions/auth-api/internal/core/domain"
	"github.com/acquisitions/auth-api/internal/core/ports"
)

// AuthService implements the sign-up and sign-in flows.
type AuthService struct {
	repo   ports.AuthRepository
	hasher *PasswordHasher
	tokens *TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher *PasswordHasher, tokens *TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// SignUp registers a new account and returns a signed session token alongside
// the persisted user.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (string, *domain.User, error) {
	// Pre-check gives the friendly conflict answer; the unique index on email
	// backstops the race window between this lookup and the insert.
	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return "", nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return "", nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", nil, err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Sign(created.ID, created.Email, created.Role)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return token, created, nil
}

// SignIn authenticates existing credentials and returns a signed session
// token. An unknown email surfaces as domain.ErrUserNotFound, a wrong
// password as domain.ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	match, err := s.hasher.Compare(password, user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !match {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", user.Email).Msg("user signed in")
	return token, user, nil
}
