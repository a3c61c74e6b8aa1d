package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the Horizone
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session controls session lifetime and the activity refresh cadence.
	Session Session `envPrefix:"SESSION_"`

	// RateLimit bounds comment and post creation.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Image controls avatar upload validation and re-encoding.
	Image Image `envPrefix:"IMAGE_"`

	// UI holds presentation preferences applied when the store has none.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains connection settings for the SQLite key-value store.
type DB struct {
	// DSN is the SQLite file path (e.g. "horizone.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds session lifetime policy.
type Session struct {
	// MaxAge is how long after login a session is still considered valid.
	// Validation measures from login time, not last activity.
	// Env: SESSION_MAX_AGE
	MaxAge time.Duration `env:"MAX_AGE"`

	// ActivityInterval is the cadence at which the background worker
	// refreshes the session's last-activity timestamp while the
	// application is open.
	// Env: SESSION_ACTIVITY_INTERVAL
	ActivityInterval time.Duration `env:"ACTIVITY_INTERVAL"`
}

// RateLimit holds sliding-window limits for mutations that create content.
// A window of W with limit N allows at most N successful actions within any
// trailing W interval per local profile.
type RateLimit struct {
	// CommentLimit is the maximum number of comments per CommentWindow.
	// Env: RATE_LIMIT_COMMENT_LIMIT
	CommentLimit int `env:"COMMENT_LIMIT"`

	// CommentWindow is the trailing interval for comment creation.
	// Env: RATE_LIMIT_COMMENT_WINDOW
	CommentWindow time.Duration `env:"COMMENT_WINDOW"`

	// PostLimit is the maximum number of created posts per PostWindow.
	// Env: RATE_LIMIT_POST_LIMIT
	PostLimit int `env:"POST_LIMIT"`

	// PostWindow is the trailing interval for post creation.
	// Env: RATE_LIMIT_POST_WINDOW
	PostWindow time.Duration `env:"POST_WINDOW"`
}

// Image holds avatar processing limits. Uploads outside these bounds are
// rejected with a cause-specific message; oversized but decodable images are
// re-encoded down to TargetEncodedKB.
type Image struct {
	// MaxBytes is the maximum accepted input file size.
	// Env: IMAGE_MAX_BYTES
	MaxBytes int64 `env:"MAX_BYTES"`

	// MinBytes guards against empty or truncated files.
	// Env: IMAGE_MIN_BYTES
	MinBytes int64 `env:"MIN_BYTES"`

	// MaxDimension is the largest accepted source width or height in
	// pixels.
	// Env: IMAGE_MAX_DIMENSION
	MaxDimension int `env:"MAX_DIMENSION"`

	// TargetDimension is the bounding box images are scaled into before
	// re-encoding.
	// Env: IMAGE_TARGET_DIMENSION
	TargetDimension int `env:"TARGET_DIMENSION"`

	// TargetEncodedKB is the upper bound on the encoded data-URI payload.
	// Env: IMAGE_TARGET_ENCODED_KB
	TargetEncodedKB int `env:"TARGET_ENCODED_KB"`

	// DecodeTimeout bounds a single decode attempt.
	// Env: IMAGE_DECODE_TIMEOUT
	DecodeTimeout time.Duration `env:"DECODE_TIMEOUT"`

	// ReadTimeout bounds reading the source file.
	// Env: IMAGE_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`
}

// UI holds presentation defaults.
type UI struct {
	// Theme is the theme applied when the store has no saved preference:
	// "light" or "dark".
	// Env: UI_THEME
	Theme string `env:"THEME"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig returns the built-in defaults merged below every other
// source. The values mirror the original product behavior: 30-day sessions
// refreshed every 5 minutes, 3 comments per minute, 2 posts per 5 minutes,
// 2MiB avatars scaled into an 800px box.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "horizone.db"}},
		Session: Session{
			MaxAge:           30 * 24 * time.Hour,
			ActivityInterval: 5 * time.Minute,
		},
		RateLimit: RateLimit{
			CommentLimit:  3,
			CommentWindow: time.Minute,
			PostLimit:     2,
			PostWindow:    5 * time.Minute,
		},
		Image: Image{
			MaxBytes:        2 * 1024 * 1024,
			MinBytes:        100,
			MaxDimension:    10000,
			TargetDimension: 800,
			TargetEncodedKB: 2048,
			DecodeTimeout:   10 * time.Second,
			ReadTimeout:     15 * time.Second,
		},
		UI: UI{Theme: "light"},
	}
}
