// Package config provides environment-based configuration for the portfolio
// CMS server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// AuthConfig holds the admin credential and session settings.
//
// The admin panel is gated on a single shared secret: set ADMIN_PASSWORD for
// the plain comparison, or ADMIN_PASSWORD_HASH (bcrypt) to opt into hashed
// comparison.
type AuthConfig struct {
	AdminPassword     string
	AdminPasswordHash string
	SessionTTL        time.Duration
}

// NewAuthConfig creates auth configuration from environment variables. It
// reads ADMIN_PASSWORD, ADMIN_PASSWORD_HASH, and SESSION_TTL_HOURS
// (default: 24). An absent secret is not an error here; login reports it as
// a configuration failure so the server can still serve the public site.
func NewAuthConfig() (*AuthConfig, error) {
	ttlStr := os.Getenv("SESSION_TTL_HOURS")
	if ttlStr == "" {
		ttlStr = "24" // default
	}

	hours, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %v", err)
	}

	cfg := &AuthConfig{
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionTTL:        time.Duration(hours) * time.Hour,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *AuthConfig) normalize() error {
	if c.SessionTTL < time.Hour {
		return fmt.Errorf("SESSION_TTL_HOURS must be at least 1 hour, got: %s", c.SessionTTL)
	}
	if c.AdminPassword != "" && c.AdminPasswordHash != "" {
		return fmt.Errorf("ADMIN_PASSWORD and ADMIN_PASSWORD_HASH are mutually exclusive")
	}
	return nil
}

// Configured reports whether any admin secret is present.
func (c *AuthConfig) Configured() bool {
	return c.AdminPassword != "" || c.AdminPasswordHash != ""
}
