package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "cli"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"generator": "user.name", "count": 3})
	log.Info("generated values")

	entry := decode(t, buf)
	require.Equal(t, "generated values", entry["message"])
	require.Equal(t, "user.name", entry["generator"])
	require.Equal(t, float64(3), entry["count"])
	require.Equal(t, "cli", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithComponent("preview")
	log.Error(errors.New("boom"), "failed")

	entry := decode(t, buf)
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "preview", entry["component"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log = log.WithCorrelationID("")
	_, parseErr := uuid.Parse(log.CorrelationID())
	require.NoError(t, parseErr)

	log.WithFields(map[string]any{"k": "v"}).Warn("careful")
	entry := decode(t, buf)
	require.Equal(t, log.CorrelationID(), entry["correlation_id"])
	require.Equal(t, "warn", entry["level"])

	fixed := log.WithCorrelationID("abc")
	require.Equal(t, "abc", fixed.CorrelationID())
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	require.Nil(t, log.WithCorrelationID("x"))
	require.Empty(t, log.CorrelationID())
	log.Info("ignored")
	log.Error(errors.New("x"), "ignored")

	Nop().Info("discarded")
}
