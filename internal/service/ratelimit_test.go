package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/store"
)

func newTestRateLimiter(now *time.Time) (*rateLimiter, store.RateLimitRepository) {
	log := logger.NewLogger("test")
	repo := store.NewRateLimitRepository(store.NewMemoryKV(), log)
	limiter := &rateLimiter{
		limits: repo,
		logger: log,
		now:    func() time.Time { return *now },
	}
	return limiter, repo
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter, _ := newTestRateLimiter(&now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "comment", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "comment", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "attempt over the limit must be denied")
}

func TestRateLimiter_DeniedAttemptIsNotRecorded(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter, repo := newTestRateLimiter(&now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "comment", 3, time.Minute)
		require.NoError(t, err)
	}

	// hammer the limiter while full: the stored window must not grow
	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "comment", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)
	}

	ts, err := repo.Timestamps(ctx, "comment")
	require.NoError(t, err)
	assert.Len(t, ts, 3)

	// once the original attempts age out, new ones go through immediately
	now = now.Add(time.Minute)
	allowed, err := limiter.Allow(ctx, "comment", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter, _ := newTestRateLimiter(&now)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "createPost", 2, 5*time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	now = now.Add(3 * time.Minute)
	allowed, err = limiter.Allow(ctx, "createPost", 2, 5*time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	// first attempt is still inside the window
	now = now.Add(time.Minute)
	allowed, err = limiter.Allow(ctx, "createPost", 2, 5*time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// first attempt ages out at exactly window width
	now = now.Add(time.Minute)
	allowed, err = limiter.Allow(ctx, "createPost", 2, 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiter_ActionsAreIndependent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter, _ := newTestRateLimiter(&now)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "comment", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "comment", 1, time.Minute)
	require.NoError(t, err)
	require.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "createPost", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "a full comment window must not block post creation")
}
