package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Portal PortalConfig
	Auth   AuthConfig
	App    AppConfig
}

// PortalConfig holds connection settings for the portal backend
type PortalConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig holds the authenticity mechanism used on mutating requests.
// Session-cookie deployments need a CSRF token (or a session cookie the
// server pairs with a csrftoken cookie); token deployments use a static
// bearer token or OAuth2 client credentials.
type AuthConfig struct {
	CSRFToken     string
	SessionCookie string
	BearerToken   string

	OAuthTokenURL     string
	OAuthClientID     string
	OAuthClientSecret string
}

// AppConfig holds local application configuration
type AppConfig struct {
	PrefsPath string
	ReportDir string
}

func Load() (*Config, error) {
	// Optional; plain environment variables are enough without a .env file.
	_ = godotenv.Load()

	config := &Config{}

	timeoutSec, err := strconv.Atoi(getEnv("PORTAL_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORTAL_TIMEOUT_SECONDS: %w", err)
	}

	config.Portal = PortalConfig{
		BaseURL: getEnv("PORTAL_BASE_URL", "http://localhost:8000"),
		Timeout: time.Duration(timeoutSec) * time.Second,
	}

	config.Auth = AuthConfig{
		CSRFToken:         getEnv("PORTAL_CSRF_TOKEN", ""),
		SessionCookie:     getEnv("PORTAL_SESSION_COOKIE", ""),
		BearerToken:       getEnv("PORTAL_BEARER_TOKEN", ""),
		OAuthTokenURL:     getEnv("PORTAL_OAUTH_TOKEN_URL", ""),
		OAuthClientID:     getEnv("PORTAL_OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: getEnv("PORTAL_OAUTH_CLIENT_SECRET", ""),
	}

	config.App = AppConfig{
		PrefsPath: getEnv("PORTAL_PREFS_PATH", defaultPrefsPath()),
		ReportDir: getEnv("PORTAL_REPORT_DIR", "."),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Portal.BaseURL == "" {
		return fmt.Errorf("PORTAL_BASE_URL is required")
	}
	if c.Auth.OAuthTokenURL != "" {
		if c.Auth.OAuthClientID == "" {
			return fmt.Errorf("PORTAL_OAUTH_CLIENT_ID is required when PORTAL_OAUTH_TOKEN_URL is set")
		}
		if c.Auth.OAuthClientSecret == "" {
			return fmt.Errorf("PORTAL_OAUTH_CLIENT_SECRET is required when PORTAL_OAUTH_TOKEN_URL is set")
		}
	}
	return nil
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".portalctl-prefs.json"
	}
	return filepath.Join(dir, "portalctl", "prefs.json")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
