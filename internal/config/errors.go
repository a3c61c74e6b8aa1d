package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, a zero maximum age or activity interval).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidRateLimitConfigs indicates invalid rate-limit settings
	// (for example, a zero limit or window).
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidImageConfigs indicates invalid image processing settings.
	ErrInvalidImageConfigs = errors.New("invalid image configuration")
	// ErrInvalidUIConfigs indicates an unknown theme name.
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
