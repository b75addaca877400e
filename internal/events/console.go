// Package events defines browser console event types and formatting.
package events

import (
	"fmt"
	"strings"
	"time"
)

// Severity levels reported by the browser's console API.
const (
	LevelLog     = "log"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
	LevelDebug   = "debug"
)

// timestampLayout is the display format for capture timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// ConsoleEntry represents a single browser-side console or page-error
// event captured from the supervised application's page.
type ConsoleEntry struct {
	Level     string
	Message   string
	Timestamp time.Time
	URL       string
	Args      []string
}

// NewConsoleEntry creates a ConsoleEntry with the current timestamp.
func NewConsoleEntry(level, message, url string, args []string) ConsoleEntry {
	return ConsoleEntry{
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
		URL:       url,
		Args:      args,
	}
}

// NewPageErrorEntry creates an entry for an uncaught in-page error.
// The message is prefixed so page errors are distinguishable from
// ordinary console output.
func NewPageErrorEntry(text, url string) ConsoleEntry {
	return ConsoleEntry{
		Level:     LevelError,
		Message:   "Page Error: " + text,
		Timestamp: time.Now(),
		URL:       url,
		Args:      []string{},
	}
}

// Format renders the entry as a single display line:
//
//	[timestamp] [LEVEL] message - url
func (e ConsoleEntry) Format() string {
	return fmt.Sprintf("[%s] [%s] %s - %s",
		e.Timestamp.Format(timestampLayout),
		strings.ToUpper(e.Level),
		e.Message,
		e.URL,
	)
}
