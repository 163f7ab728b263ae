package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/acquisitions/auth-api/internal/api/metrics"
	"github.com/acquisitions/auth-api/internal/core/domain"
	"github.com/acquisitions/auth-api/internal/core/ports"
)

type AuthHandler struct {
	authService   ports.AuthService
	cookieTTL     time.Duration
	secureCookies bool
	log           zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration, secureCookies bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		cookieTTL:     cookieTTL,
		secureCookies: secureCookies,
		log:           log,
	}
}

// SignUp registers a new account and opens a session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	token, user, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusConflict, messageResponse{Message: "User already exists"})
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	setTokenCookie(c, token, h.cookieTTL, h.secureCookies)
	metrics.SignupsTotal.WithLabelValues("created").Inc()
	h.log.Info().Str("email", user.Email).Msg("sign-up completed")

	return c.JSON(http.StatusCreated, authResponse{
		Message: "User registered successfully",
		User:    publicUser(user),
	})
}

// SignIn authenticates existing credentials and opens a session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		metrics.SigninsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		metrics.SigninsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	token, user, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.SigninsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.SigninsTotal.WithLabelValues("unauthorized").Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid credentials"})
		}
		metrics.SigninsTotal.WithLabelValues("error").Inc()
		return err
	}

	setTokenCookie(c, token, h.cookieTTL, h.secureCookies)
	metrics.SigninsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		User:    publicUser(user),
	})
}

// SignOut unconditionally clears the session cookie. It never inspects the
// existing token and answers directly instead of deferring to the shared
// error handler.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /auth/sign-out [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	clearTokenCookie(c, h.secureCookies)
	metrics.SignoutsTotal.Inc()
	h.log.Info().Msg("user signed out")

	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
