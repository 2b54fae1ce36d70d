package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Config holds the service settings, read from the environment.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// MaxYears bounds the horizon accepted over HTTP.
	MaxYears int `env:"MAX_YEARS" envDefault:"200"`

	RateRegistryURL     string        `env:"RATE_REGISTRY_URL"`
	RateRegistryTimeout time.Duration `env:"RATE_REGISTRY_TIMEOUT" envDefault:"2s"`
}

// Load reads the dotenv file named by ENV_FILE (".env" when unset), if it
// exists, and parses the environment into a Config. Variables already set in
// the environment take precedence over the file.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxYears <= 0 {
		return nil, fmt.Errorf("MAX_YEARS must be positive, got %d", cfg.MaxYears)
	}
	return &cfg, nil
}

func loadEnvFile() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = defaultEnvFile
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
