// Package config provides configuration management for app_tail.
package config

import (
	"time"
)

// Version is the current version of app_tail.
// This is set at build time via ldflags.
var Version = "dev"

// Config holds all configuration options for app_tail.
type Config struct {
	// Supervised application
	AppPort    string
	AppCommand []string // empty means re-exec the current binary with "app"

	// Browser
	ChromePort     string
	BrowserTimeout time.Duration

	// Lifecycle pacing
	StartupGrace   time.Duration
	NavigateSettle time.Duration
	ClickSettle    time.Duration

	// Log retention
	ConsoleCapacity int
	ConsoleWindow   int
	ServerLogWindow int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		// Supervised application
		AppPort:    "5001",
		AppCommand: nil,

		// Browser
		ChromePort:     "9222",
		BrowserTimeout: 30 * time.Second,

		// Lifecycle pacing
		StartupGrace:   2 * time.Second,
		NavigateSettle: 1 * time.Second,
		ClickSettle:    500 * time.Millisecond,

		// Log retention
		ConsoleCapacity: 100,
		ConsoleWindow:   20,
		ServerLogWindow: 50,
	}
}

// BaseURL returns the local base URL of the supervised application.
func (c *Config) BaseURL() string {
	return "http://localhost:" + c.AppPort
}
