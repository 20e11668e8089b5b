package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesFormattedMessages(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(&buf, "info")
	require.NoError(t, err)

	log.Debug("hidden %d", 1)
	log.Info("GetAvailableSlots: date=%s, duration=%d", "2024-01-05", 30)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "GetAvailableSlots: date=2024-01-05, duration=30", entry["message"])
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(&buf, "debug")
	require.NoError(t, err)

	log.With("request_id", "abc").Warn("slow request")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Info("nothing %s", "here")
		log.Error("nothing")
	})
	assert.NoError(t, log.Close())
}
