// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Remote blog API
	APIBaseURL string
	APIToken   string
	APITimeout time.Duration

	// Folder path sent with media uploads
	UploadFolder string

	// Valkey (Redis-compatible cache); optional, empty host disables it
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Syntax highlighting style for the editor preview pane
	PreviewStyle string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		APIBaseURL: envOrDefault("BLOG_API_URL", "http://localhost:9000/v1"),
		APIToken:   os.Getenv("BLOG_API_TOKEN"),

		UploadFolder: envOrDefault("UPLOAD_FOLDER", "blog-images"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		PreviewStyle: os.Getenv("PREVIEW_STYLE"),
	}

	timeout, err := time.ParseDuration(envOrDefault("BLOG_API_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BLOG_API_TIMEOUT: %w", err)
	}
	cfg.APITimeout = timeout

	if cfg.Env == "production" {
		if os.Getenv("BLOG_API_URL") == "" {
			return nil, fmt.Errorf("BLOG_API_URL must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled returns true when a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
