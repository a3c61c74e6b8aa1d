package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Session.MaxAge <= 0 || cfg.Session.ActivityInterval <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.RateLimit.CommentLimit <= 0 || cfg.RateLimit.CommentWindow <= 0 ||
		cfg.RateLimit.PostLimit <= 0 || cfg.RateLimit.PostWindow <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	if cfg.Image.MaxBytes <= 0 || cfg.Image.TargetDimension <= 0 ||
		cfg.Image.MaxDimension < cfg.Image.TargetDimension {
		return ErrInvalidImageConfigs
	}

	if cfg.UI.Theme != "light" && cfg.UI.Theme != "dark" {
		return ErrInvalidUIConfigs
	}

	return nil
}
