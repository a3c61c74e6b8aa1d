package store

import (
	"context"

	"github.com/horizone-blog/horizone/internal/config"
	"github.com/horizone-blog/horizone/internal/logger"
)

// Storages aggregates every repository over one shared key-value store.
type Storages struct {
	Users      UserRepository
	Sessions   SessionRepository
	Posts      PostRepository
	Comments   CommentRepository
	RateLimits RateLimitRepository
	Prefs      PrefsRepository
}

// NewStorages opens the SQLite database named by the configs, applies
// pending migrations and wires every repository over it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Debug().Msg("creating storages")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		log.Error().Err(err).Msg("sqlite connection error")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Error().Err(err).Msg("migration error")
		return nil, err
	}

	return NewStoragesWithKV(NewSQLiteKV(db, log), log), nil
}

// NewStoragesWithKV wires every repository over an existing key-value
// store. Used by tests and ephemeral setups.
func NewStoragesWithKV(kv KV, log *logger.Logger) *Storages {
	return &Storages{
		Users:      NewUserRepository(kv, log),
		Sessions:   NewSessionRepository(kv, log),
		Posts:      NewPostRepository(kv, log),
		Comments:   NewCommentRepository(kv, log),
		RateLimits: NewRateLimitRepository(kv, log),
		Prefs:      NewPrefsRepository(kv, log),
	}
}
