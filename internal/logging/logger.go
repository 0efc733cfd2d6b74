// Package logging provides structured logging for the gallery viewer.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ConsoleTimeFormat is the timestamp layout used by console output
const ConsoleTimeFormat = "15:04:05"

// Logger wraps zerolog with console formatting.
type Logger struct {
	zlog   zerolog.Logger
	output io.Writer
}

// NewLogger creates a logger writing human-readable lines to w.
// When debug is false, debug events are dropped.
func NewLogger(w io.Writer, debug bool) *Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: ConsoleTimeFormat,
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &Logger{
		zlog:   zerolog.New(output).Level(level).With().Timestamp().Logger(),
		output: output,
	}
}

// NewDefaultLogger creates a stderr logger at info level.
func NewDefaultLogger() *Logger {
	return NewLogger(os.Stderr, false)
}

// NewNopLogger returns a logger that discards everything; used in tests.
func NewNopLogger() *Logger {
	return &Logger{zlog: zerolog.Nop(), output: io.Discard}
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// With creates a child logger context with additional fields.
func (l *Logger) With() zerolog.Context {
	return l.zlog.With()
}

// Component returns a child logger tagged with the component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{
		zlog:   l.zlog.With().Str("component", name).Logger(),
		output: l.output,
	}
}

// Output returns the current output writer.
func (l *Logger) Output() io.Writer {
	return l.output
}

// Debugf logs a debug message with printf-style formatting.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zlog.Debug().Msgf(format, args...)
}

// Infof logs an info message with printf-style formatting.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.zlog.Info().Msgf(format, args...)
}

// Warnf logs a warning message with printf-style formatting.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.zlog.Warn().Msgf(format, args...)
}

// Errorf logs an error message with printf-style formatting.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.zlog.Error().Msgf(format, args...)
}
