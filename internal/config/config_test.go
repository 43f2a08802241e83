package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	c := New()
	require.NoError(t, c.LoadFromEnv())

	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "console", c.LogFormat)
	assert.Equal(t, int64(0), c.Seed)
	assert.Equal(t, 90, c.GlucoseDays)
	assert.Equal(t, time.Duration(0), c.ChatDelay)
	assert.Equal(t, 3*time.Second, c.PlaybackInterval)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("GLUCODASH_DB", "/tmp/x.db")
	t.Setenv("GLUCODASH_LOG_LEVEL", "debug")
	t.Setenv("GLUCODASH_LOG_FORMAT", "json")
	t.Setenv("GLUCODASH_SEED", "42")
	t.Setenv("GLUCODASH_GLUCOSE_DAYS", "30")
	t.Setenv("GLUCODASH_CHAT_DELAY", "1500ms")
	t.Setenv("GLUCODASH_PLAYBACK_INTERVAL", "2s")

	c := New()
	require.NoError(t, c.LoadFromEnv())

	assert.Equal(t, "/tmp/x.db", c.DatabasePath())
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 30, c.GlucoseDays)
	assert.Equal(t, 1500*time.Millisecond, c.ChatDelay)
	assert.Equal(t, 2*time.Second, c.PlaybackInterval)
}

func TestLoadFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero days", "GLUCODASH_GLUCOSE_DAYS", "0"},
		{"not a number", "GLUCODASH_SEED", "abc"},
		{"negative delay", "GLUCODASH_CHAT_DELAY", "-1s"},
		{"zero interval", "GLUCODASH_PLAYBACK_INTERVAL", "0s"},
		{"bad format", "GLUCODASH_LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			assert.Error(t, New().LoadFromEnv())
		})
	}
}

func TestDatabasePathDefault(t *testing.T) {
	c := New()

	path := c.DatabasePath()
	assert.True(t, strings.HasSuffix(path, filepath.Join(".glucodash", "glucodash.db")))
}
