package store

import (
	"context"
	"time"

	"github.com/horizone-blog/horizone/internal/logger"
)

// rateLimitRepository stores per-action slices of attempt timestamps, one
// key per action.
type rateLimitRepository struct {
	kv     KV
	logger *logger.Logger
}

// NewRateLimitRepository constructs a [RateLimitRepository] backed by the
// provided key-value store and logger.
func NewRateLimitRepository(kv KV, logger *logger.Logger) RateLimitRepository {
	logger.Debug().Msg("creating rate limit repository")
	return &rateLimitRepository{kv: kv, logger: logger}
}

func (r *rateLimitRepository) Timestamps(ctx context.Context, action string) ([]time.Time, error) {
	raw, _, err := r.kv.Get(ctx, rateLimitKeyPrefix+action)
	if err != nil {
		return nil, err
	}

	return decodeOrDefault(r.logger, rateLimitKeyPrefix+action, raw, []time.Time{}), nil
}

func (r *rateLimitRepository) SetTimestamps(ctx context.Context, action string, ts []time.Time) error {
	value, err := encode(ts)
	if err != nil {
		return err
	}

	return r.kv.Set(ctx, rateLimitKeyPrefix+action, value)
}
