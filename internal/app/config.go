package app

import (
	"io"

	"github.com/zappabad/news2option/internal/api"
	"github.com/zappabad/news2option/internal/config"
	"github.com/zappabad/news2option/internal/logger"
)

// Config holds configuration for the application.
type Config struct {
	// API is the configuration for the backend client.
	API api.Config
	// Logging selects level, format and log outputs.
	Logging logger.Options
	// AltScreen runs the TUI in the terminal's alternate screen.
	AltScreen bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		API: api.DefaultConfig(),
		Logging: logger.Options{
			Level:  "info",
			Format: "text",
		},
		AltScreen: true,
	}
}

// FromSettings converts loaded settings into an application Config.
// console receives log lines in addition to the log file; pass nil when
// the terminal is owned by the TUI.
func FromSettings(s *config.Config, console io.Writer) Config {
	return Config{
		API: api.Config{
			BaseURL:   s.API.BaseURL,
			Timeout:   s.API.Timeout,
			RateLimit: s.API.RateLimit,
			Burst:     s.API.Burst,
			UserAgent: s.API.UserAgent,
		},
		Logging: logger.Options{
			Level:   s.Logging.Level,
			Format:  s.Logging.Format,
			File:    s.Logging.File,
			Console: console,
		},
		AltScreen: s.TUI.AltScreen,
	}
}
