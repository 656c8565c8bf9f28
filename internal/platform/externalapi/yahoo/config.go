// Package yahoo provides a client for the Yahoo Finance chart API.
package yahoo

import (
	"os"
	"time"
)

const (
	// DefaultBaseURL is the public chart API host.
	DefaultBaseURL = "https://query1.finance.yahoo.com"
	// DefaultUserAgent is sent because the API rejects Go's default User-Agent.
	DefaultUserAgent = "Mozilla/5.0 (compatible; kabu-app/1.0)"
)

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	BaseURL   string        // Base URL for the API (e.g., "https://query1.finance.yahoo.com")
	UserAgent string        // User-Agent header sent with every request
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads Yahoo Finance configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:   os.Getenv("YAHOO_FINANCE_BASE_URL"),
		UserAgent: os.Getenv("YAHOO_FINANCE_USER_AGENT"),
		Timeout:   10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return cfg
}
