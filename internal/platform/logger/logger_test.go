package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel(" warning "))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nonsense"))
}

func TestLogger_JSON_WithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "test-app", Output: &buf})

	l.With(map[string]any{"request_id": "abc"}).Error("boom", map[string]any{
		"error":  errors.New("db down"),
		"status": 500,
		"":       "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "boom", entry["message"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "test-app", entry["app"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "db down", entry["error"])
	assert.EqualValues(t, 500, entry["status"])
	assert.NotContains(t, entry, "")
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	l.Info("hidden", nil)
	l.Debug("hidden", nil)
	assert.Zero(t, buf.Len())

	l.Warn("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}
