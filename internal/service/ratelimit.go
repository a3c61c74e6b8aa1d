package service

import (
	"context"
	"time"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/store"
)

type rateLimiter struct {
	limits store.RateLimitRepository
	logger *logger.Logger
	now    func() time.Time
}

// NewRateLimiter constructs a sliding-window [RateLimiter] over the given
// repository.
func NewRateLimiter(limits store.RateLimitRepository, logger *logger.Logger) RateLimiter {
	return &rateLimiter{limits: limits, logger: logger, now: time.Now}
}

func (r *rateLimiter) Allow(ctx context.Context, action string, limit int, window time.Duration) (bool, error) {
	now := r.now()

	attempts, err := r.limits.Timestamps(ctx, action)
	if err != nil {
		return false, err
	}

	// keep only attempts still inside the window
	recent := attempts[:0]
	for _, ts := range attempts {
		if now.Sub(ts) < window {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= limit {
		r.logger.Debug().Str("action", action).Int("attempts", len(recent)).Msg("rate limit exceeded")
		return false, nil
	}

	// a denied attempt is never recorded, only allowed ones consume a slot
	recent = append(recent, now)
	if err := r.limits.SetTimestamps(ctx, action, recent); err != nil {
		return false, err
	}

	return true, nil
}
