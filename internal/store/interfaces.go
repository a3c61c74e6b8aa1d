package store

import (
	"context"
	"time"

	"github.com/horizone-blog/horizone/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository manages the user collection. Every read runs the schema
// migration, so callers must tolerate a possible write-back as a side effect
// of reading.
type UserRepository interface {
	// GetAll returns every stored user, upgraded to the current schema.
	// If any record had to be upgraded the whole migrated collection is
	// written back exactly once before returning.
	GetAll(ctx context.Context) ([]models.User, error)

	// FindByEmail returns the user record for email or [ErrUserNotFound].
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// Create appends a new user. Returns [ErrEmailAlreadyExists] when the
	// email is already taken.
	Create(ctx context.Context, user models.User) error

	// Update replaces the record whose email matches user.Email.
	// Returns [ErrUserNotFound] when no such record exists.
	Update(ctx context.Context, user models.User) error

	// SetProfileImage stores a data-URI avatar on the user record.
	SetProfileImage(ctx context.Context, email, dataURI string) error

	// RemoveProfileImage clears the avatar back to null.
	RemoveProfileImage(ctx context.Context, email string) error
}

// SessionRepository persists the session record and the lightweight
// current-user-email pointer it is layered on.
type SessionRepository interface {
	// GetSession returns the stored session or [ErrSessionNotFound]. A
	// malformed stored session is deleted and reported as not found.
	GetSession(ctx context.Context) (models.Session, error)

	// SetSession overwrites the session record.
	SetSession(ctx context.Context, session models.Session) error

	// DeleteSession removes the session record. Idempotent.
	DeleteSession(ctx context.Context) error

	// CurrentUserEmail returns the current-user pointer, or "" when nobody
	// is logged in.
	CurrentUserEmail(ctx context.Context) (string, error)

	// SetCurrentUserEmail updates the current-user pointer.
	SetCurrentUserEmail(ctx context.Context, email string) error

	// DeleteCurrentUserEmail clears the pointer. Idempotent.
	DeleteCurrentUserEmail(ctx context.Context) error
}

// PostRepository manages locally authored posts, keyed by slug.
type PostRepository interface {
	// GetAll returns the full local post map. Never nil.
	GetAll(ctx context.Context) (map[string]models.Post, error)

	// Save upserts a post under its ID.
	Save(ctx context.Context, post models.Post) error
}

// CommentRepository manages per-post comment threads. Threads are
// append-only.
type CommentRepository interface {
	// ListForPost returns the thread for postID in insertion order.
	ListForPost(ctx context.Context, postID string) ([]models.Comment, error)

	// Append adds a comment to the end of postID's thread.
	Append(ctx context.Context, postID string, comment models.Comment) error
}

// RateLimitRepository persists per-action attempt timestamps for the sliding
// window rate limiter.
type RateLimitRepository interface {
	// Timestamps returns the recorded attempt times for action.
	Timestamps(ctx context.Context, action string) ([]time.Time, error)

	// SetTimestamps replaces the recorded attempt times for action.
	SetTimestamps(ctx context.Context, action string, ts []time.Time) error
}

// PrefsRepository persists presentation preferences and the bounded
// performance-sample log.
type PrefsRepository interface {
	// Theme returns the saved theme name, or "" when unset.
	Theme(ctx context.Context) (string, error)

	// SetTheme saves the theme name.
	SetTheme(ctx context.Context, theme string) error

	// PerfLog returns the recorded performance samples, oldest first.
	PerfLog(ctx context.Context) ([]models.PerfSample, error)

	// AppendPerfSample appends a sample, discarding the oldest entries so
	// the log never exceeds its bound.
	AppendPerfSample(ctx context.Context, sample models.PerfSample) error
}
