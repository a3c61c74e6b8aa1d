package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/models"
)

func newTestUserRepo(now time.Time) (*userRepository, KV) {
	kv := NewMemoryKV()
	repo := &userRepository{
		kv:     kv,
		logger: logger.NewLogger("test"),
		now:    func() time.Time { return now },
	}
	return repo, kv
}

func TestUserRepository_GetAll_EmptyStore(t *testing.T) {
	repo, _ := newTestUserRepo(time.Now())

	users, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_GetAll_MigratesLegacyRecordsOnce(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo, kv := newTestUserRepo(now)
	ctx := context.Background()

	// two pre-versioning records, no schemaVersion, no joinDate
	legacy := `[{"name":"Alex","email":"a@b.com","password":"p1"},{"name":"Kim","email":"k@b.com","password":"p2"}]`
	require.NoError(t, kv.Set(ctx, keyUsers, legacy))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, now, u.JoinDate)
		assert.Nil(t, u.ProfileImage)
		assert.NotNil(t, u.SavedArticles)
	}

	// the upgraded collection must have been written back versioned
	raw, found, err := kv.Get(ctx, keyUsers)
	require.NoError(t, err)
	require.True(t, found)

	var stored []userRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 2)
	for _, rec := range stored {
		assert.Equal(t, userSchemaVersion, rec.SchemaVersion)
		require.NotNil(t, rec.JoinDate)
	}

	// a second read must not rewrite: JoinDate stays at the first migration
	// time even with a different clock
	repo.now = func() time.Time { return now.Add(72 * time.Hour) }
	again, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, again[0].JoinDate)
}

func TestUserRepository_GetAll_MalformedCollection(t *testing.T) {
	repo, kv := newTestUserRepo(time.Now())
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, keyUsers, `{not json`))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo, _ := newTestUserRepo(now)
	ctx := context.Background()

	user := models.User{
		Name:          "Alex",
		Email:         "a@b.com",
		Password:      "secret",
		SavedArticles: []string{},
		JoinDate:      now,
	}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user, found)

	_, err = repo.FindByEmail(ctx, "nobody@b.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, _ := newTestUserRepo(time.Now())
	ctx := context.Background()

	user := models.User{Name: "Alex", Email: "a@b.com", SavedArticles: []string{}}
	require.NoError(t, repo.Create(ctx, user))

	err := repo.Create(ctx, models.User{Name: "Other", Email: "a@b.com", SavedArticles: []string{}})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserRepository_Update(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo, _ := newTestUserRepo(now)
	ctx := context.Background()

	user := models.User{Name: "Alex", Email: "a@b.com", SavedArticles: []string{}, JoinDate: now}
	require.NoError(t, repo.Create(ctx, user))

	user.SavedArticles = []string{"urban-exploration"}
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"urban-exploration"}, found.SavedArticles)

	err = repo.Update(ctx, models.User{Email: "nobody@b.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_ProfileImage(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo, _ := newTestUserRepo(now)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.User{Name: "Alex", Email: "a@b.com", SavedArticles: []string{}, JoinDate: now}))

	require.NoError(t, repo.SetProfileImage(ctx, "a@b.com", "data:image/jpeg;base64,abc"))
	found, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, found.ProfileImage)
	assert.Equal(t, "data:image/jpeg;base64,abc", *found.ProfileImage)

	require.NoError(t, repo.RemoveProfileImage(ctx, "a@b.com"))
	found, err = repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Nil(t, found.ProfileImage)

	err = repo.SetProfileImage(ctx, "nobody@b.com", "data:image/jpeg;base64,abc")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
