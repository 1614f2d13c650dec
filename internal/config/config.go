package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read when no path is given.
const DefaultEnvFile = ".env"

var (
	// ErrEnvFile is returned when the dotenv file cannot be read.
	ErrEnvFile = errors.New("env file unreadable")
	// ErrMissingAPIKey is returned when POLYGON_API_KEY is absent or blank.
	ErrMissingAPIKey = errors.New("POLYGON_API_KEY not set")
)

type Config struct {
	APIKey            string
	BaseURL           string
	RequestTimeoutSec int
	// MaxAttempts bounds the number of prompt/request cycles in a session.
	MaxAttempts int
	UserAgent   string
}

func Default() Config {
	return Config{
		BaseURL:           "https://api.polygon.io",
		RequestTimeoutSec: 10,
		MaxAttempts:       2,
		UserAgent:         "prevclose/1.0",
	}
}

// Load reads the dotenv file at path (DefaultEnvFile when empty) and layers
// the process environment on top of it. Variables already present in the
// environment win over file values. The environment itself is never modified.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultEnvFile
	}
	file, err := godotenv.Read(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrEnvFile, path, err)
	}
	apply(&cfg, func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return file[key]
	})
	if strings.TrimSpace(cfg.APIKey) == "" {
		return cfg, ErrMissingAPIKey
	}
	return cfg, nil
}

func apply(cfg *Config, getenv func(string) string) {
	if v := getenv("POLYGON_API_KEY"); v != "" {
		cfg.APIKey = strings.TrimSpace(v)
	}
	if v := getenv("POLYGON_BASE_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		if _, err := fmt.Sscanf(v, "%d", &x); err == nil && x >= 0 {
			cfg.RequestTimeoutSec = x
		}
	}
	if v := getenv("MAX_ATTEMPTS"); v != "" {
		var x int
		if _, err := fmt.Sscanf(v, "%d", &x); err == nil && x > 0 {
			cfg.MaxAttempts = x
		}
	}
	if v := getenv("USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
}
