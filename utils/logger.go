package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog behind the small leveled API the rest of the service
// uses. Methods are safe on a nil receiver so components can run unlogged.
type Logger struct {
	base zerolog.Logger
}

// NewLogger creates a logger writing to stdout. The level comes from the
// LOG_LEVEL environment variable (default info); outside production the output
// is rendered for the console instead of raw JSON.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("ENVIRONMENT") != "production")
}

// NewLoggerTo creates a logger with an explicit writer, level and format.
func NewLoggerTo(w io.Writer, level string, humanReadable bool) *Logger {
	parsed := zerolog.InfoLevel
	if level != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
			parsed = lvl
		}
	}

	var output io.Writer = w
	if humanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.RFC3339
		output = console
	}

	base := zerolog.New(output).Level(parsed).With().Timestamp().Logger()
	return &Logger{base: base}
}

// With returns a derived logger that always writes the supplied field.
func (l *Logger) With(key string, value interface{}) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

// Debug writes a debug entry with optional key/value pairs.
func (l *Logger) Debug(msg string, kv ...interface{}) {
	if l == nil {
		return
	}
	applyFields(l.base.Debug(), kv).Msg(msg)
}

// Info writes an informational entry with optional key/value pairs.
func (l *Logger) Info(msg string, kv ...interface{}) {
	if l == nil {
		return
	}
	applyFields(l.base.Info(), kv).Msg(msg)
}

// Warn writes a warning entry with optional key/value pairs.
func (l *Logger) Warn(msg string, kv ...interface{}) {
	if l == nil {
		return
	}
	applyFields(l.base.Warn(), kv).Msg(msg)
}

// Error writes an error entry with optional key/value pairs.
func (l *Logger) Error(msg string, err error, kv ...interface{}) {
	if l == nil {
		return
	}
	applyFields(l.base.Error().Err(err), kv).Msg(msg)
}

func applyFields(ev *zerolog.Event, kv []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	return ev
}
