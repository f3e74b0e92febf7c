// FILE: compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/lucenlabs/daylog"
)

// GnetAdapter wraps daylog.Writer to implement gnet's logging.Logger interface
type GnetAdapter struct {
	writer       *daylog.Writer
	module       string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(writer *daylog.Writer, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		writer: writer,
		module: "gnet",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetModule sets the module name stamped on every record
func WithGnetModule(module string) GnetOption {
	return func(a *GnetAdapter) {
		a.module = module
	}
}

func (a *GnetAdapter) enqueue(level int64, format string, args ...any) {
	a.writer.Enqueue(daylog.Record{
		Module:  a.module,
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.enqueue(daylog.LevelDebug, format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.enqueue(daylog.LevelInfo, format, args...)
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.enqueue(daylog.LevelWarning, format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.enqueue(daylog.LevelError, format, args...)
}

// Fatalf logs at fatal level, drains the writer, and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.writer.Enqueue(daylog.Record{
		Module:  a.module,
		Level:   daylog.LevelFatal,
		Message: msg,
	})

	// Ensure pending lines reach disk before exit
	a.writer.Close()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
