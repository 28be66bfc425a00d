package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultSessionSecret is the development signing secret. Load rejects it in production.
const DefaultSessionSecret = "change-me"

// ErrInsecureSecret is returned when production runs with the default signing secret.
var ErrInsecureSecret = errors.New("SESSION_SECRET must be set in production")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env      string    `env:"APP_ENV" envDefault:"development"`
	LogLevel int       `env:"LOG_LEVEL" envDefault:"0"`
	ResetDB  bool      `env:"RESET_DB" envDefault:"false"`
	HTTP     HTTP      `envPrefix:"HTTP_"`
	MySQL    MySQL     `envPrefix:"MYSQL_"`
	Redis    Redis     `envPrefix:"REDIS_"`
	Session  Session   `envPrefix:"SESSION_"`
	Limit    RateLimit `envPrefix:"RATE_LIMIT_"`
}

// HTTP contains listener and browser-facing parameters.
type HTTP struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
	SwaggerHost    string   `env:"SWAGGER_HOST"`
}

// MySQL contains database connection parameters.
type MySQL struct {
	DSN string `env:"DSN" envDefault:"user:password@tcp(localhost:3306)/mealplanner?charset=utf8mb4&parseTime=True&loc=Local"`
}

// Redis contains cache connection parameters.
type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Session contains session token and cookie parameters.
type Session struct {
	Secret         string        `env:"SECRET" envDefault:"change-me"`
	TTL            time.Duration `env:"TTL" envDefault:"24h"`
	CookieName     string        `env:"COOKIE_NAME" envDefault:"session"`
	CookieSecure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	RevokeOnLogout bool          `env:"REVOKE_ON_LOGOUT" envDefault:"false"`
}

// RateLimit contains per-IP limits for the auth endpoints.
type RateLimit struct {
	RPS   float64 `env:"RPS" envDefault:"10"`
	Burst int     `env:"BURST" envDefault:"20"`
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load builds Config from a local .env file (when present) and the environment.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	return Parse()
}

// Parse builds Config from the process environment only.
func Parse() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.IsProduction() && cfg.Session.Secret == DefaultSessionSecret {
		return nil, ErrInsecureSecret
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("parse config: SESSION_TTL must be positive, got %s", cfg.Session.TTL)
	}

	return &cfg, nil
}
