package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTExpires time.Duration `env:"JWT_EXPIRES, default=24h"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`

	Postgres PostgresConfig
	Password PasswordConfig
}

type PostgresConfig struct {
	DSN string `env:"DATABASE_URL, default=postgres://localhost:5432/acquisitions?sslmode=disable"`
}

// PasswordConfig tunes the credential policy: validation minimum length and
// the bcrypt work factor.
type PasswordConfig struct {
	MinLength  int `env:"PASSWORD_MIN_LENGTH, default=8"`
	BcryptCost int `env:"BCRYPT_COST,         default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsProduction reports whether the service runs in a production-like
// environment, which controls the Secure attribute on session cookies.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
