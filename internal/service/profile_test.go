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
)

func newTestProfileService(t *testing.T) (ProfileService, *store.Storages) {
	t.Helper()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	authSvc, storages := newTestAuthService(&now)
	_, err := authSvc.Register(context.Background(), "Alex", "a@b.com", "secret1")
	require.NoError(t, err)

	log := logger.NewLogger("test")
	svc := NewProfileService(storages.Users, storages.Prefs, authSvc, config.UI{Theme: "light"}, log)
	return svc, storages
}

func TestProfileService_Avatar(t *testing.T) {
	svc, storages := newTestProfileService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetAvatar(ctx, "data:image/jpeg;base64,abc"))

	user, err := storages.Users.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, user.ProfileImage)
	assert.Equal(t, "data:image/jpeg;base64,abc", *user.ProfileImage)

	require.NoError(t, svc.RemoveAvatar(ctx))

	user, err = storages.Users.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Nil(t, user.ProfileImage)
}

func TestProfileService_Theme(t *testing.T) {
	svc, _ := newTestProfileService(t)
	ctx := context.Background()

	// nothing stored yet: the configured default applies
	theme, err := svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	theme, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)

	// the toggle persists across reads
	theme, err = svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)

	theme, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)
}
