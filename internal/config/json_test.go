package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings parseable by time.ParseDuration.
	jsonBody := `{
		"storage": {
			"db": { "dsn": "/var/lib/horizone/horizone.db" }
		},
		"session": {
			"max_age": "720h",
			"activity_interval": "5m"
		},
		"rate_limit": {
			"comment_limit": 3,
			"comment_window": "1m",
			"post_limit": 2,
			"post_window": "5m"
		},
		"image": {
			"max_bytes": 2097152,
			"target_dimension": 800,
			"decode_timeout": "10s"
		},
		"ui": { "theme": "dark" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/var/lib/horizone/horizone.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 720*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 5*time.Minute, cfg.Session.ActivityInterval)
	assert.Equal(t, 3, cfg.RateLimit.CommentLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.CommentWindow)
	assert.Equal(t, int64(2097152), cfg.Image.MaxBytes)
	assert.Equal(t, 800, cfg.Image.TargetDimension)
	assert.Equal(t, 10*time.Second, cfg.Image.DecodeTimeout)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// A numeric duration is interpreted as nanoseconds.
	jsonBody := `{"session": {"max_age": 60000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Session.MaxAge)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)
}
