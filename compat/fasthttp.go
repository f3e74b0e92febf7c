// FILE: compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/lucenlabs/daylog"
)

// FastHTTPAdapter wraps daylog.Writer to implement fasthttp's Logger interface
type FastHTTPAdapter struct {
	writer        *daylog.Writer
	module        string
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(writer *daylog.Writer, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		writer:        writer,
		module:        "fasthttp",
		defaultLevel:  daylog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// WithModule sets the module name stamped on every record
func WithModule(module string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.module = module
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	// Detect log level from message content
	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected >= 0 {
			level = detected
		}
	}

	a.writer.Enqueue(daylog.Record{
		Module:  a.module,
		Level:   level,
		Message: msg,
	})
}

// DetectLogLevel attempts to detect log level from message content.
// Returns -1 when the message carries no level indicator.
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return daylog.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return daylog.LevelWarning
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return daylog.LevelDebug
	}

	return -1
}
