// Package config provides application configuration loading.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. The AI credential is read once
// here and injected into components at construction; nothing else reads the
// process environment.
type Config struct {
	Env      string
	HTTPAddr string

	// Model backend. An empty AIAPIKey switches every extraction path to
	// the deterministic pattern fallback.
	AIProvider string
	AIAPIKey   string
	AIBaseURL  string
	AIModel    string

	// Quotes/companies data source (opaque HTTP API).
	DataAPIBaseURL string
	DataAPIKey     string
	DataAPITimeout time.Duration

	// Conversation sessions. RedisURL empty means in-memory sessions.
	RedisURL   string
	SessionTTL time.Duration

	// Dashboard auth. Empty secret disables auth (development only).
	JWTAccessSecret string

	CORSAllowAll bool
	CORSOrigins  []string
}

// Load reads configuration from the environment (and .env in development).
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		AIProvider: getEnv("AI_PROVIDER", "openai"),
		AIAPIKey:   getEnv("AI_API_KEY", ""),
		AIBaseURL:  getEnv("AI_BASE_URL", ""),
		AIModel:    getEnv("AI_MODEL", ""),

		DataAPIBaseURL: getEnv("DATA_API_BASE_URL", ""),
		DataAPIKey:     getEnv("DATA_API_KEY", ""),
		DataAPITimeout: mustDuration(getEnv("DATA_API_TIMEOUT", "10s")),

		RedisURL:   getEnv("REDIS_URL", ""),
		SessionTTL: mustDuration(getEnv("SESSION_TTL", "2h")),

		JWTAccessSecret: getEnv("JWT_ACCESS_SECRET", ""),

		CORSAllowAll: corsAllowAll,
		CORSOrigins:  corsOrigins,
	}

	if cfg.DataAPIBaseURL == "" {
		return nil, fmt.Errorf("DATA_API_BASE_URL is required")
	}
	if strings.EqualFold(cfg.Env, "production") && cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required in production")
	}

	return cfg, nil
}

// ModelConfigured reports whether a model backend credential is present.
func (c *Config) ModelConfigured() bool {
	return c.AIAPIKey != ""
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
