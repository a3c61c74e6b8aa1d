package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"STORAGE_DB_DSN": "/var/lib/horizone/horizone.db",

		"SESSION_MAX_AGE":           "720h",
		"SESSION_ACTIVITY_INTERVAL": "5m",

		"RATE_LIMIT_COMMENT_LIMIT":  "3",
		"RATE_LIMIT_COMMENT_WINDOW": "1m",
		"RATE_LIMIT_POST_LIMIT":     "2",
		"RATE_LIMIT_POST_WINDOW":    "5m",

		"IMAGE_MAX_BYTES":        "2097152",
		"IMAGE_TARGET_DIMENSION": "800",
		"IMAGE_DECODE_TIMEOUT":   "10s",

		"UI_THEME": "dark",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/var/lib/horizone/horizone.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 720*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 5*time.Minute, cfg.Session.ActivityInterval)

	assert.Equal(t, 3, cfg.RateLimit.CommentLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.CommentWindow)
	assert.Equal(t, 2, cfg.RateLimit.PostLimit)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.PostWindow)

	assert.Equal(t, int64(2097152), cfg.Image.MaxBytes)
	assert.Equal(t, 800, cfg.Image.TargetDimension)
	assert.Equal(t, 10*time.Second, cfg.Image.DecodeTimeout)

	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DSN": "only.db",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "only.db", cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Session.MaxAge)
	assert.Zero(t, cfg.RateLimit.CommentLimit)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SESSION_MAX_AGE": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
