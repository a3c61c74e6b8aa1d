package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/models"
)

func TestPostRepository_SaveAndGetAll(t *testing.T) {
	repo := NewPostRepository(NewMemoryKV(), logger.NewLogger("test"))
	ctx := context.Background()

	posts, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, posts)
	assert.Empty(t, posts)

	post := models.Post{
		ID:       "my-first-trip",
		Title:    "My First Trip",
		Author:   "Alex",
		Category: "Adventure",
		Content:  "It was great.",
	}
	require.NoError(t, repo.Save(ctx, post))

	posts, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, post, posts["my-first-trip"])

	// saving under the same slug overwrites
	post.Title = "My First Trip, Revisited"
	require.NoError(t, repo.Save(ctx, post))

	posts, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "My First Trip, Revisited", posts["my-first-trip"].Title)
}

func TestCommentRepository_AppendPreservesOrder(t *testing.T) {
	repo := NewCommentRepository(NewMemoryKV(), logger.NewLogger("test"))
	ctx := context.Background()

	comments, err := repo.ListForPost(ctx, "urban-exploration")
	require.NoError(t, err)
	require.NotNil(t, comments)
	assert.Empty(t, comments)

	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, "urban-exploration", models.Comment{
			ID:     fmt.Sprintf("c-%d", i),
			Author: "Alex",
			Text:   fmt.Sprintf("comment %d", i),
			Date:   time.Date(2026, 3, 1, 12, i, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	comments, err = repo.ListForPost(ctx, "urban-exploration")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for i, c := range comments {
		assert.Equal(t, fmt.Sprintf("c-%d", i), c.ID)
	}

	// threads are isolated per post
	other, err := repo.ListForPost(ctx, "sustainable-travel")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRateLimitRepository_PerActionKeys(t *testing.T) {
	repo := NewRateLimitRepository(NewMemoryKV(), logger.NewLogger("test"))
	ctx := context.Background()

	ts, err := repo.Timestamps(ctx, "comment")
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Empty(t, ts)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetTimestamps(ctx, "comment", []time.Time{now, now.Add(time.Second)}))

	ts, err = repo.Timestamps(ctx, "comment")
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.True(t, ts[0].Equal(now))

	// actions do not share windows
	other, err := repo.Timestamps(ctx, "post")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPrefsRepository_Theme(t *testing.T) {
	repo := NewPrefsRepository(NewMemoryKV(), logger.NewLogger("test"))
	ctx := context.Background()

	theme, err := repo.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", theme)

	require.NoError(t, repo.SetTheme(ctx, "dark"))
	theme, err = repo.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestPrefsRepository_PerfLogIsBounded(t *testing.T) {
	repo := NewPrefsRepository(NewMemoryKV(), logger.NewLogger("test"))
	ctx := context.Background()

	for i := 0; i < maxPerfSamples+10; i++ {
		err := repo.AppendPerfSample(ctx, models.PerfSample{
			Timestamp: time.Date(2026, 3, 1, 0, 0, i, 0, time.UTC),
			Page:      "home",
			LoadTime:  float64(i),
		})
		require.NoError(t, err)
	}

	samples, err := repo.PerfLog(ctx)
	require.NoError(t, err)
	require.Len(t, samples, maxPerfSamples)

	// oldest entries are dropped first
	assert.Equal(t, float64(10), samples[0].LoadTime)
	assert.Equal(t, float64(maxPerfSamples+9), samples[len(samples)-1].LoadTime)
}
