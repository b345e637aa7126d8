// Package logging provides the structured debug logger. User-facing output
// goes through internal/ui; this logger carries engine diagnostics only and
// stays silent unless debug mode is on.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with component-scoped child loggers.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing pretty console output to stderr. With debug
// false the logger is disabled entirely.
func New(debug bool) *Logger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, debug)
}

// NewWithWriter creates a logger writing to w, for tests.
func NewWithWriter(w io.Writer, debug bool) *Logger {
	zl := zerolog.New(w).With().Timestamp().Logger()
	if debug {
		zl = zl.Level(zerolog.DebugLevel)
	} else {
		zl = zl.Level(zerolog.Disabled)
	}
	return &Logger{zl: zl}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Component returns a child logger tagged with a component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// Debug starts a debug-level event.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }

// Warn starts a warn-level event.
func (l *Logger) Warn() *zerolog.Event { return l.zl.Warn() }

// Error starts an error-level event.
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
