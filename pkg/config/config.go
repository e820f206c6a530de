// ABOUTME: Configuration management for the digest run with environment variable support
// ABOUTME: Defines configuration structures for the DIP API, output locations and logging

package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	coreerrors "dip-digest/core/errors"
	"dip-digest/pkg/utils/parse"
)

// Defaults taken from the weekly digest bot
const (
	DefaultBaseURL      = "https://search.dip.bundestag.de/api/v1/"
	DefaultUserAgent    = "dip-digest-bot/weekly/1.0"
	DefaultDocumentType = "Antwort"
	DefaultTextDir      = "drucksache_texts"
	DefaultDigestDir    = "digests"
	DefaultTimezone     = "Europe/Berlin"
	DefaultWindowDays   = 7
	DefaultMaxPages     = 10000
	DefaultDelayMS      = 600
	DefaultTimeoutSec   = 90
)

// Config holds all application configuration
type Config struct {
	// API contains DIP API access configuration
	API APIConfig

	// Output contains file output locations
	Output OutputConfig

	// Run contains date window settings
	Run RunConfig

	// Log contains logging configuration
	Log LogConfig
}

// APIConfig holds DIP API configuration
type APIConfig struct {
	// Key is the opaque DIP API key
	Key string

	// BaseURL is the API root, ending in a slash
	BaseURL string

	// UserAgent identifies the bot on every request
	UserAgent string

	// Timeout is the per-request ceiling
	Timeout time.Duration

	// RequestDelay is the pause between two consecutive requests
	RequestDelay time.Duration

	// RateLimitRPS switches pacing to a token bucket when positive
	RateLimitRPS float64

	// MaxPages bounds the pagination loop
	MaxPages int

	// DocumentType is the answer discriminator, also sent as a server-side hint
	DocumentType string
}

// OutputConfig holds output locations
type OutputConfig struct {
	// TextDir receives one .txt file per downloaded document
	TextDir string

	// DigestDir receives the markdown digest
	DigestDir string
}

// RunConfig holds the query window settings
type RunConfig struct {
	// WindowDays is the number of days ending today to query
	WindowDays int

	// Timezone determines "today"
	Timezone string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string

	// File enables rotating file output when set
	File string

	// JSON switches to JSON formatted entries
	JSON bool
}

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are ignored; variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return err
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			Key:          strings.TrimSpace(os.Getenv("DIP_API_KEY")),
			BaseURL:      getEnvOrDefault("DIP_BASE_URL", DefaultBaseURL),
			UserAgent:    getEnvOrDefault("DIP_USER_AGENT", DefaultUserAgent),
			Timeout:      time.Duration(getEnvAsIntOrDefault("DIP_HTTP_TIMEOUT_SEC", DefaultTimeoutSec)) * time.Second,
			RequestDelay: time.Duration(getEnvAsIntOrDefault("DIP_REQUEST_DELAY_MS", DefaultDelayMS)) * time.Millisecond,
			RateLimitRPS: parse.FloatOrDefault(os.Getenv("DIP_RATE_LIMIT_RPS"), 0),
			MaxPages:     getEnvAsIntOrDefault("DIP_MAX_PAGES", DefaultMaxPages),
			DocumentType: getEnvOrDefault("DIP_DOCUMENT_TYPE", DefaultDocumentType),
		},
		Output: OutputConfig{
			TextDir:   getEnvOrDefault("DIP_TEXT_DIR", DefaultTextDir),
			DigestDir: getEnvOrDefault("DIP_DIGEST_DIR", DefaultDigestDir),
		},
		Run: RunConfig{
			WindowDays: getEnvAsIntOrDefault("DIP_WINDOW_DAYS", DefaultWindowDays),
			Timezone:   getEnvOrDefault("DIP_TIMEZONE", DefaultTimezone),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
			JSON:  parse.BoolOrDefault(os.Getenv("LOG_JSON"), false),
		},
	}

	if !strings.HasSuffix(cfg.API.BaseURL, "/") {
		cfg.API.BaseURL += "/"
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	return parse.IntOrDefault(os.Getenv(key), defaultValue)
}

// Validate checks if the configuration is valid.
// A missing API key is reported as a ConfigError before any network call.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return &coreerrors.ConfigError{Field: "DIP_API_KEY", Message: "missing; put it into .env or the environment"}
	}

	if c.API.BaseURL == "" {
		return &coreerrors.ConfigError{Field: "DIP_BASE_URL", Message: "cannot be empty"}
	}

	if c.API.RequestDelay < 0 {
		return &coreerrors.ConfigError{Field: "DIP_REQUEST_DELAY_MS", Message: "cannot be negative"}
	}

	if c.API.MaxPages < 1 {
		return &coreerrors.ConfigError{Field: "DIP_MAX_PAGES", Message: "must be at least 1"}
	}

	if c.API.DocumentType == "" {
		return &coreerrors.ConfigError{Field: "DIP_DOCUMENT_TYPE", Message: "cannot be empty"}
	}

	if c.Run.WindowDays < 1 {
		return &coreerrors.ConfigError{Field: "DIP_WINDOW_DAYS", Message: "must be at least 1"}
	}

	if c.Output.TextDir == "" || c.Output.DigestDir == "" {
		return &coreerrors.ConfigError{Field: "DIP_TEXT_DIR/DIP_DIGEST_DIR", Message: "cannot be empty"}
	}

	return nil
}
