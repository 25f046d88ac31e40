package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "debug", false)

	log.Info("submitting section", "section", "debtor")

	out := buf.String()
	assert.Contains(t, out, `"message":"submitting section"`)
	assert.Contains(t, out, `"section":"debtor"`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "warn", false)

	log.Debug("hidden")
	log.Info("also hidden")
	log.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "info", false)

	log.Error("section failed", errors.New("option not found"), "section", "site")

	out := buf.String()
	assert.Contains(t, out, "option not found")
	assert.Contains(t, out, `"section":"site"`)
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger

	assert.NotPanics(t, func() {
		log.Debug("x")
		log.Info("x")
		log.Warn("x")
		log.Error("x", errors.New("boom"))
		_ = log.With("k", "v")
	})
}
