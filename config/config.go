package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// PostgresConfig holds the POSTGRES_* connection settings.
type PostgresConfig struct {
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"5432"`
	Database string `env:"DATABASE"`
}

// Config is the server configuration read from the environment.
type Config struct {
	Port     string `env:"PORT"`
	Prod     bool   `env:"PROD"`
	UseHTTPS bool   `env:"USE_HTTPS"`
	CertFile string `env:"CERT_FILE" envDefault:"/etc/letsencrypt/live/jokerscore/fullchain.pem"`
	KeyFile  string `env:"KEY_FILE" envDefault:"/etc/letsencrypt/live/jokerscore/privkey.pem"`

	RedisURL      string        `env:"REDIS_URL" envDefault:"localhost:6379"`
	ScoreCacheTTL time.Duration `env:"SCORE_CACHE_TTL" envDefault:"24h"`

	Postgres        PostgresConfig `envPrefix:"POSTGRES_"`
	VerbosePostgres bool           `env:"VERBOSE_POSTGRES"`
	MigratePostgres bool           `env:"MIGRATE_POSTGRES"`

	SessionKey string `env:"KEY" envDefault:"secret"`
	JWTSecret  string `env:"JWT_SECRET"`
}

// Load parses the environment. Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return cfg, nil
}

// ListenPort falls back to 443 under HTTPS and 8080 otherwise.
func (c *Config) ListenPort() string {
	if c.Port != "" {
		return c.Port
	}
	if c.UseHTTPS {
		return "443"
	}
	return "8080"
}

// PostgresEnabled reports whether a history database was configured.
func (c *Config) PostgresEnabled() bool {
	return c.Postgres.Host != ""
}
