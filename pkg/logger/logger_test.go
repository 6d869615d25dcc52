package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T, format string) (*Logger, *bytes.Buffer) {
	t.Helper()
	log, err := NewLogger(&Config{Level: DebugLevel, Format: format, AppName: "Vyronex Motors", Version: "1.2.3"})
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	return log, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_JSONCarriesBaseAndRequestFields(t *testing.T) {
	log, buf := newBufferLogger(t, "json")

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-7")
	log.WithContext(ctx).WithError(errors.New("boom")).Warn("Something failed")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Something failed", entry["message"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "Vyronex Motors", entry["app"])
	assert.Equal(t, "1.2.3", entry["version"])
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Contains(t, entry, "timestamp")
}

func TestLogger_WithFieldDoesNotLeak(t *testing.T) {
	log, buf := newBufferLogger(t, "json")

	log.WithField("car_id", "car-g63").Info("scoped")
	log.Info("base")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "car-g63", entries[0]["car_id"])
	assert.NotContains(t, entries[1], "car_id")
}

func TestLogger_LogSubmission(t *testing.T) {
	log, buf := newBufferLogger(t, "json")

	log.LogSubmission("testdrivebookings", "tdb-1", map[string]interface{}{"car_id": "car-g63", "type": "ignored"})

	entry := decodeLines(t, buf)[0]
	assert.Equal(t, "Submission recorded", entry["message"])
	assert.Equal(t, "testdrivebookings", entry["collection"])
	assert.Equal(t, "tdb-1", entry["record_id"])
	assert.Equal(t, "car-g63", entry["car_id"])
	assert.Equal(t, "submission", entry["type"])
}

func TestLogger_LogHTTPRequestLevels(t *testing.T) {
	log, buf := newBufferLogger(t, "json")

	log.LogHTTPRequest("GET", "/", 200, 5*time.Millisecond, "req-1")
	log.LogHTTPRequest("GET", "/car/x", 404, time.Millisecond, "")
	log.LogHTTPRequest("POST", "/customization", 500, time.Millisecond, "")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 3)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "req-1", entries[0]["request_id"])
	assert.Equal(t, "warning", entries[1]["level"])
	assert.NotContains(t, entries[1], "request_id")
	assert.Equal(t, "error", entries[2]["level"])
}

func TestLogger_TextFormat(t *testing.T) {
	log, buf := newBufferLogger(t, "text")
	log.WithField("slug", "vip-cars").Info("Category listed")

	line := buf.String()
	assert.Contains(t, line, `msg="Category listed"`)
	assert.Contains(t, line, "slug=vip-cars")
	assert.Contains(t, line, "level=info")
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, buf := newBufferLogger(t, "json")
	log.SetLevel(WarnLevel)

	log.Info("hidden")
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.SetLevel("nonsense")
	log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
