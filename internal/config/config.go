// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is honored for
// local development.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the log handler: "json" (default) or "text" for
	// colored development output.
	LogFormat string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// JWTSecret signs staff session tokens. Required.
	JWTSecret string

	// SessionTTL is how long a staff session token stays valid.
	// Defaults to 12h. Set SESSION_TTL to a Go duration string to override.
	SessionTTL time.Duration

	// AdminEmail and AdminPasswordHash are the single staff credential that
	// gates the admin calendar. The hash is bcrypt. Both required.
	AdminEmail        string
	AdminPasswordHash string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Best effort: a missing .env file is fine, real env vars always win.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	var missing []string
	for _, v := range []struct {
		key  string
		dest *string
	}{
		{"DATABASE_URL", &cfg.DatabaseURL},
		{"JWT_SECRET", &cfg.JWTSecret},
		{"ADMIN_EMAIL", &cfg.AdminEmail},
		{"ADMIN_PASSWORD_HASH", &cfg.AdminPasswordHash},
	} {
		*v.dest = os.Getenv(v.key)
		if *v.dest == "" {
			missing = append(missing, v.key)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
