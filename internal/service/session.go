package service

import (
	"context"
	"errors"
	"time"

	"github.com/horizone-blog/horizone/internal/config"
	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/store"
	"github.com/horizone-blog/horizone/models"
)

type sessionService struct {
	sessions store.SessionRepository
	users    store.UserRepository
	cfg      config.Session
	logger   *logger.Logger
	now      func() time.Time
}

// NewSessionService constructs a [SessionService] with the configured
// maximum session age.
func NewSessionService(sessions store.SessionRepository, users store.UserRepository, cfg config.Session, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		users:    users,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *sessionService) Start(ctx context.Context, email string) error {
	if email == "" {
		return nil
	}

	now := s.now()
	session := models.Session{
		Email:        email,
		LoginTime:    now,
		LastActivity: now,
		Persistent:   true,
	}

	if err := s.sessions.SetSession(ctx, session); err != nil {
		return err
	}
	if err := s.sessions.SetCurrentUserEmail(ctx, email); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("session started")
	return nil
}

func (s *sessionService) State(ctx context.Context) (models.SessionState, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.NoSession, nil
		}
		return models.NoSession, err
	}

	if session.Age(s.now()) > s.cfg.MaxAge {
		return models.ExpiredSession, nil
	}

	return models.ValidSession, nil
}

func (s *sessionService) Validate(ctx context.Context) (bool, error) {
	state, err := s.State(ctx)
	if err != nil {
		return false, err
	}

	switch state {
	case models.ValidSession:
		return true, nil
	case models.ExpiredSession:
		// an expired session is cleared eagerly so the next check is cheap
		s.logger.Info().Msg("session expired, clearing")
		return false, s.Clear(ctx)
	default:
		return false, nil
	}
}

func (s *sessionService) Restore(ctx context.Context) (bool, error) {
	valid, err := s.Validate(ctx)
	if err != nil || !valid {
		return false, err
	}

	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	// the account behind the session may have been removed since login
	if _, err := s.users.FindByEmail(ctx, session.Email); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Warn().Str("email", session.Email).Msg("session account no longer exists, clearing")
			return false, s.Clear(ctx)
		}
		return false, err
	}

	if err := s.sessions.SetCurrentUserEmail(ctx, session.Email); err != nil {
		return false, err
	}
	if err := s.Touch(ctx); err != nil {
		return false, err
	}

	s.logger.Info().Str("email", session.Email).Msg("session restored")
	return true, nil
}

func (s *sessionService) Touch(ctx context.Context) error {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	session.LastActivity = s.now()
	return s.sessions.SetSession(ctx, session)
}

func (s *sessionService) Clear(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return err
	}
	return s.sessions.DeleteCurrentUserEmail(ctx)
}
