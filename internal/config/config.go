package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries all runtime settings, populated from the environment
type Config struct {
	Addr string `envconfig:"APP_ADDR" default:":8080"`

	// DBPath selects the SQLite database file. Empty keeps the whole
	// marketplace in memory, which is what the tests and the dev server use.
	DBPath string `envconfig:"DB_PATH" default:""`

	JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"20m"`
}

// Load reads the configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
