package store

import (
	"context"
	"encoding/json"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/models"
)

// sessionRepository persists the single active session blob and the
// separate current-user pointer key.
type sessionRepository struct {
	kv     KV
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided key-value store and logger.
func NewSessionRepository(kv KV, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{kv: kv, logger: logger}
}

func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	raw, found, err := r.kv.Get(ctx, keySession)
	if err != nil {
		return models.Session{}, err
	}
	if !found || raw == "" {
		return models.Session{}, ErrSessionNotFound
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		// a corrupted session blob is unrecoverable, drop it
		r.logger.Warn().Err(err).Msg("malformed session record removed")
		if delErr := r.kv.Delete(ctx, keySession); delErr != nil {
			return models.Session{}, delErr
		}
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (r *sessionRepository) SetSession(ctx context.Context, session models.Session) error {
	value, err := encode(session)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, keySession, value)
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	return r.kv.Delete(ctx, keySession)
}

func (r *sessionRepository) CurrentUserEmail(ctx context.Context) (string, error) {
	raw, found, err := r.kv.Get(ctx, keyCurrentEmail)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return raw, nil
}

func (r *sessionRepository) SetCurrentUserEmail(ctx context.Context, email string) error {
	return r.kv.Set(ctx, keyCurrentEmail, email)
}

func (r *sessionRepository) DeleteCurrentUserEmail(ctx context.Context) error {
	return r.kv.Delete(ctx, keyCurrentEmail)
}
