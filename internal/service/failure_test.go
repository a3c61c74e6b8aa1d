package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/horizone-blog/horizone/internal/config"
	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/mock"
	"github.com/horizone-blog/horizone/internal/store"
	"github.com/horizone-blog/horizone/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newMockedSessionSvc builds the session service over gomock repositories so
// storage failures can be scripted.
func newMockedSessionSvc(ctrl *gomock.Controller) (*sessionService, *mock.MockSessionRepository, *mock.MockUserRepository) {
	mockSessions := mock.NewMockSessionRepository(ctrl)
	mockUsers := mock.NewMockUserRepository(ctrl)

	cfg := config.Session{MaxAge: 30 * 24 * time.Hour}
	svc := NewSessionService(mockSessions, mockUsers, cfg, logger.Nop()).(*sessionService)

	return svc, mockSessions, mockUsers
}

func TestSessionService_State_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, _ := newMockedSessionSvc(ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().GetSession(ctx).Return(models.Session{}, errors.New("database is locked"))

	state, err := svc.State(ctx)
	require.Error(t, err)
	assert.Equal(t, models.NoSession, state)
}

func TestSessionService_Restore_RemovedAccountClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, mockUsers := newMockedSessionSvc(ctrl)
	ctx := context.Background()

	session := models.Session{
		Email:        "gone@example.com",
		LoginTime:    time.Now().Add(-time.Hour),
		LastActivity: time.Now().Add(-time.Hour),
		Persistent:   true,
	}

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(session, nil),
		mockSessions.EXPECT().GetSession(ctx).Return(session, nil),
		mockUsers.EXPECT().FindByEmail(ctx, session.Email).Return(models.User{}, store.ErrUserNotFound),
		mockSessions.EXPECT().DeleteSession(ctx).Return(nil),
		mockSessions.EXPECT().DeleteCurrentUserEmail(ctx).Return(nil),
	)

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestSessionService_Touch_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions, _ := newMockedSessionSvc(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(models.Session{Email: "a@b.com"}, nil),
		mockSessions.EXPECT().SetSession(ctx, gomock.Any()).Return(errors.New("disk full")),
	)

	err := svc.Touch(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRateLimiter_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLimits := mock.NewMockRateLimitRepository(ctrl)
	limiter := NewRateLimiter(mockLimits, logger.Nop())
	ctx := context.Background()

	mockLimits.EXPECT().Timestamps(ctx, "comment").Return(nil, errors.New("database is locked"))

	allowed, err := limiter.Allow(ctx, "comment", 3, time.Minute)
	require.Error(t, err)
	assert.False(t, allowed)

	gomock.InOrder(
		mockLimits.EXPECT().Timestamps(ctx, "comment").Return(nil, nil),
		mockLimits.EXPECT().SetTimestamps(ctx, "comment", gomock.Any()).Return(errors.New("disk full")),
	)

	allowed, err = limiter.Allow(ctx, "comment", 3, time.Minute)
	require.Error(t, err)
	assert.False(t, allowed)
}

func TestAuthService_Login_StorageErrorIsNotCredentialError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	svc := NewAuthService(mockUsers, mockSessions, nil, logger.Nop()).(*authService)
	ctx := context.Background()

	mockUsers.EXPECT().FindByEmail(ctx, "a@b.com").Return(models.User{}, errors.New("database is locked"))

	_, err := svc.Login(ctx, "a@b.com", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
