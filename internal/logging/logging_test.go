package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/placement/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.LogFormat = "json"

	New(&buf, cfg).Info("evaluated", "items", 8)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "evaluated", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.EqualValues(t, 8, rec["items"])
}

func TestNew_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.LogLevel = "warn"

	log := New(&buf, cfg)
	log.Info("hidden")
	log.Warn("shown", "tag", "B1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "tag=B1")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.LogLevel = "chatty"

	log := New(&buf, cfg)
	log.Debug("debug line")
	log.Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("dropped") })
}
