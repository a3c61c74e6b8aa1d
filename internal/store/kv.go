package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/horizone-blog/horizone/internal/logger"
)

// KV is the flat key-value substrate every collection is persisted in.
// Values are JSON text (or a raw string for scalar keys); collections are
// always written whole, so callers perform read-modify-write at the
// collection level rather than partial updates here.
type KV interface {
	// Get returns the value stored under key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// Storage keys. These are part of the stored profile format and must stay
// stable across releases.
const (
	keyUsers        = "users_db"
	keyCurrentEmail = "currentUserEmail"
	keySession      = "userSession"
	keyLocalPosts   = "user_posts"
	keyComments     = "post_comments"
	keyTheme        = "theme"
	keyPerfLog      = "performance_log"

	rateLimitKeyPrefix = "rateLimit_"
)

const (
	getValueQuery = `SELECT value FROM kv_store WHERE key = ?`
	setValueQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	deleteValueQuery = `DELETE FROM kv_store WHERE key = ?`
)

// sqliteKV is the SQLite-backed implementation of [KV] over the kv_store
// table created by the embedded migrations.
type sqliteKV struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteKV constructs a [KV] backed by the provided database connection
// and logger.
func NewSQLiteKV(db *DB, logger *logger.Logger) KV {
	logger.Debug().Msg("creating sqlite key-value store")
	return &sqliteKV{db: db, logger: logger}
}

func (s *sqliteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getValueQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		s.logger.Err(err).Str("key", key).Msg("error reading key")
		return "", false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return value, true, nil
}

func (s *sqliteKV) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, setValueQuery, key, value); err != nil {
		s.logger.Err(err).Str("key", key).Msg("error writing key")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (s *sqliteKV) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteValueQuery, key); err != nil {
		s.logger.Err(err).Str("key", key).Msg("error deleting key")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// memoryKV is an in-memory [KV] used by tests and by ephemeral runs that do
// not want an on-disk profile.
type memoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV returns an empty in-memory [KV].
func NewMemoryKV() KV {
	return &memoryKV{values: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
