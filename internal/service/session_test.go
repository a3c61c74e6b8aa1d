package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizone-blog/horizone/internal/config"
	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/store"
	"github.com/horizone-blog/horizone/models"
)

func newTestSessionService(now *time.Time) (*sessionService, *store.Storages) {
	log := logger.NewLogger("test")
	storages := store.NewStoragesWithKV(store.NewMemoryKV(), log)
	svc := &sessionService{
		sessions: storages.Sessions,
		users:    storages.Users,
		cfg:      config.Session{MaxAge: 30 * 24 * time.Hour, ActivityInterval: 5 * time.Minute},
		logger:   log,
		now:      func() time.Time { return *now },
	}
	return svc, storages
}

func seedUser(t *testing.T, storages *store.Storages, email string) {
	t.Helper()
	err := storages.Users.Create(context.Background(), models.User{
		Name:          "Alex",
		Email:         email,
		Password:      "secret",
		SavedArticles: []string{},
		JoinDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestSessionService_StartAndState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, storages := newTestSessionService(&now)
	ctx := context.Background()

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.NoSession, state)

	require.NoError(t, svc.Start(ctx, "a@b.com"))

	state, err = svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ValidSession, state)

	session, err := storages.Sessions.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", session.Email)
	assert.Equal(t, now, session.LoginTime)
	assert.True(t, session.Persistent)

	email, err := storages.Sessions.CurrentUserEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
}

func TestSessionService_Start_EmptyEmailIsNoop(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestSessionService(&now)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx, ""))

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.NoSession, state)
}

func TestSessionService_Validate_AgeBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestSessionService(&now)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx, "a@b.com"))

	// 29 days: still valid
	now = now.Add(29 * 24 * time.Hour)
	valid, err := svc.Validate(ctx)
	require.NoError(t, err)
	assert.True(t, valid)

	// 31 days from login: expired, and the expired session is removed
	now = now.Add(2 * 24 * time.Hour)
	valid, err = svc.Validate(ctx)
	require.NoError(t, err)
	assert.False(t, valid)

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.NoSession, state)
}

func TestSessionService_Validate_MeasuresFromLoginNotActivity(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestSessionService(&now)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx, "a@b.com"))

	// touching every day keeps activity fresh but never extends validity
	for day := 0; day < 31; day++ {
		now = now.Add(24 * time.Hour)
		require.NoError(t, svc.Touch(ctx))
	}

	valid, err := svc.Validate(ctx)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSessionService_Restore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, storages := newTestSessionService(&now)
	ctx := context.Background()

	seedUser(t, storages, "a@b.com")
	require.NoError(t, svc.Start(ctx, "a@b.com"))

	// simulate a fresh start: pointer gone, session still on disk
	require.NoError(t, storages.Sessions.DeleteCurrentUserEmail(ctx))

	now = now.Add(time.Hour)
	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	email, err := storages.Sessions.CurrentUserEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)

	session, err := storages.Sessions.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, session.LastActivity, "restore must refresh activity")
}

func TestSessionService_Restore_OrphanedSessionIsCleared(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, storages := newTestSessionService(&now)
	ctx := context.Background()

	// session exists but the account was never created
	require.NoError(t, svc.Start(ctx, "ghost@b.com"))

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored)

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.NoSession, state)

	email, err := storages.Sessions.CurrentUserEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", email)
}

func TestSessionService_Restore_NoSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestSessionService(&now)

	restored, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestSessionService_Touch_WithoutSessionIsNoop(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestSessionService(&now)

	require.NoError(t, svc.Touch(context.Background()))
}

func TestSessionService_Clear_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestSessionService(&now)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx, "a@b.com"))
	require.NoError(t, svc.Clear(ctx))
	require.NoError(t, svc.Clear(ctx))

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.NoSession, state)
}
