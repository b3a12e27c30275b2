package api

import (
	"strings"
	"time"
)

// Config holds settings for the API gateway client.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8080/api".
	BaseURL string
	// Timeout bounds each request. Zero leaves requests unbounded.
	Timeout time.Duration
	// RateLimit caps outbound requests per second. Zero disables limiting.
	RateLimit float64
	// Burst is the limiter bucket size used when RateLimit is set.
	Burst int
	// UserAgent is sent with every request.
	UserAgent string
}

// DefaultBaseURL is the address of a locally running backend.
const DefaultBaseURL = "http://localhost:8080/api"

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   30 * time.Second,
		Burst:     1,
		UserAgent: "news2option-client",
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Burst <= 0 {
		c.Burst = def.Burst
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	return c
}
