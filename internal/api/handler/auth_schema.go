package handler

import (
	"strings"

	"github.com/acquisitions/auth-api/internal/core/domain"
)

type signUpRequest struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

// normalize canonicalises the payload before validation so the store only
// ever sees one form of an address. Lookups are exact-match downstream.
func (r *signUpRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *signInRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// userPayload is the public user projection: the fields safe to return to a
// client. The password hash is never part of it.
type userPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func publicUser(u *domain.User) *userPayload {
	return &userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type authResponse struct {
	Message string       `json:"message"`
	User    *userPayload `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
