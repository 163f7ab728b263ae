package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/acquisitions/auth-api/internal/api/handler"
	"github.com/acquisitions/auth-api/internal/api/middleware"
	"github.com/acquisitions/auth-api/internal/core/service"
	"github.com/acquisitions/auth-api/internal/infrastructure/config"
	"github.com/acquisitions/auth-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator(cfg.Password)
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth_api"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	hasher := service.NewPasswordHasher(cfg.Password.BcryptCost)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpires)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	authHandler := handler.NewAuthHandler(authService, tokens.TTL(), cfg.IsProduction(), log)
	authMiddleware := middleware.Auth(tokens)
	_ = authMiddleware

	// --- Auth routes ---
	e.POST("/auth/sign-up", authHandler.SignUp)
	e.POST("/auth/sign-in", authHandler.SignIn)
	e.POST("/auth/sign-out", authHandler.SignOut)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is Postgres up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
