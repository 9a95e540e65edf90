package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// Postgres
	PGHost     string `env:"PG_HOST" envDefault:"localhost"`
	PGPort     int    `env:"PG_PORT" envDefault:"5432"`
	PGUser     string `env:"PG_USER" envDefault:"keikoban"`
	PGPassword string `env:"PG_PASSWORD" envDefault:"keikoban"`
	PGDatabase string `env:"PG_DB" envDefault:"keikoban"`

	// Cache backend: "memory" or "redis"
	CacheBackend  string `env:"CACHE_BACKEND" envDefault:"memory"`
	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Identity provider
	IdPBaseURL       string `env:"IDP_BASE_URL" envDefault:"https://api.idp.example.com/v1"`
	IdPAPIKey        string `env:"IDP_API_KEY"`
	IdPSigningSecret string `env:"IDP_SIGNING_SECRET"`
	IdPWebhookSecret string `env:"IDP_WEBHOOK_SECRET"`
	IdPLoginURL      string `env:"IDP_LOGIN_URL" envDefault:"https://accounts.idp.example.com/sign-in"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://*,http://localhost:8081"`

	// Dev
	AllowInsecureDefaults bool `env:"ALLOW_INSECURE_DEFAULTS" envDefault:"false"`
}

// Load parses environment variables into a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// PostgresDSN renders the connection string shared by sqlx and GORM.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// Validate checks for insecure configuration that must not run in production.
// Set ALLOW_INSECURE_DEFAULTS=true to bypass (local dev only).
func (c *Config) Validate() error {
	if c.AllowInsecureDefaults {
		return nil
	}
	if c.IdPSigningSecret == "" {
		return fmt.Errorf("IDP_SIGNING_SECRET is not set; sessions cannot be verified")
	}
	if c.IdPWebhookSecret == "" {
		return fmt.Errorf("IDP_WEBHOOK_SECRET is not set; webhooks cannot be verified")
	}
	return nil
}
