// Package config provides centralized configuration for Gitfiti runtime values.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/manav03panchal/gitfiti/internal/model"
)

// RuntimeConfig holds every value the painter reads at startup.
type RuntimeConfig struct {
	// Commit server configuration
	Server ServerConfig

	// Canvas configuration
	Canvas CanvasConfig

	// Log configuration
	Log LogConfig
}

// ServerConfig describes the commit server.
type ServerConfig struct {
	// BaseURL is the scheme and host of the commit server.
	// Default: http://localhost:5000
	BaseURL string

	// PushPath is the endpoint receiving submissions.
	// Default: /post-commits-to-github
	PushPath string

	// UserAgent is sent with every push.
	// Default: gitfiti/1.0
	UserAgent string
}

// CanvasConfig describes the painting surface.
type CanvasConfig struct {
	// MaxCount is the scale maximum the darkest placeholder is remapped to.
	// Default: 24
	MaxCount int

	// PaletteFile is an optional YAML palette. Empty means the built-in palette.
	PaletteFile string

	// Tooltips shows the day tooltip under the cursor.
	// Default: true
	Tooltips bool
}

// LogConfig describes where the painter logs while the TUI owns the terminal.
type LogConfig struct {
	// File is the log path. Empty means $XDG_STATE_HOME/gitfiti/gitfiti.log.
	File string

	// Debug enables debug level JSON logs.
	Debug bool
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Server: ServerConfig{
			BaseURL:   "http://localhost:5000",
			PushPath:  "/post-commits-to-github",
			UserAgent: "gitfiti/1.0",
		},
		Canvas: CanvasConfig{
			MaxCount: model.DefaultMaxCount,
			Tooltips: true,
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Server configuration
	if v := os.Getenv("GITFITI_SERVER_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("GITFITI_PUSH_PATH"); v != "" {
		c.Server.PushPath = v
	}

	// Canvas configuration
	if v := os.Getenv("GITFITI_MAX_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Canvas.MaxCount = n
		}
	}
	if v := os.Getenv("GITFITI_PALETTE"); v != "" {
		c.Canvas.PaletteFile = v
	}
	if v := os.Getenv("GITFITI_TOOLTIPS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Canvas.Tooltips = b
		}
	}

	// Log configuration
	if v := os.Getenv("GITFITI_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("GITFITI_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Log.Debug = b
		}
	}
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
