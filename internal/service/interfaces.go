package service

import (
	"context"
	"time"

	"github.com/horizone-blog/horizone/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages accounts and the identity of the current user.
type AuthService interface {
	// Register validates the fields, creates the account and logs it in.
	// Returns [ErrEmailTaken] when the address is already registered, or a
	// field validation error.
	Register(ctx context.Context, name, email, password string) (models.User, error)

	// Login matches email and password against the stored accounts and, on
	// success, starts a session. Returns [ErrInvalidCredentials] on any
	// mismatch without saying which field was wrong.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Logout clears the session and the current-user pointer. Idempotent.
	Logout(ctx context.Context) error

	// CurrentUser resolves the current-user pointer to an account. A
	// pointer naming a deleted account is cleaned up and reported as
	// [ErrNotLoggedIn].
	CurrentUser(ctx context.Context) (models.User, error)
}

// SessionService manages the persisted login session lifecycle.
type SessionService interface {
	// Start creates a fresh persistent session for email and sets the
	// current-user pointer.
	Start(ctx context.Context, email string) error

	// State classifies the stored session without side effects beyond
	// dropping a malformed record.
	State(ctx context.Context) (models.SessionState, error)

	// Validate reports whether a usable session exists. A session older
	// than the configured maximum age is removed and reported invalid.
	Validate(ctx context.Context) (bool, error)

	// Restore re-establishes identity on startup: a valid session whose
	// account still exists refreshes the pointer and activity time. A
	// session pointing at a deleted account is cleared.
	Restore(ctx context.Context) (bool, error)

	// Touch refreshes the session's last-activity time. No-op when no
	// session exists.
	Touch(ctx context.Context) error

	// Clear removes the session and the current-user pointer. Idempotent.
	Clear(ctx context.Context) error
}

// RateLimiter enforces per-action sliding-window limits.
type RateLimiter interface {
	// Allow records an attempt at action if fewer than limit attempts
	// happened inside the window, and reports whether the attempt may
	// proceed. A denied attempt is not recorded and does not extend the
	// window.
	Allow(ctx context.Context, action string, limit int, window time.Duration) (bool, error)
}

// ContentService is the read/write surface over the merged post collection,
// comments and per-user saved articles.
type ContentService interface {
	// MergedPosts returns the built-in catalog overlaid with locally
	// authored posts. On a slug collision the local post wins.
	MergedPosts(ctx context.Context) (map[string]models.Post, error)

	// GetPost returns one post from the merged collection or
	// [ErrPostNotFound].
	GetPost(ctx context.Context, id string) (models.Post, error)

	// CreatePost validates, sanitizes, rate-limits and stores a new local
	// post authored by the current user, returning it with its slug ID.
	CreatePost(ctx context.Context, title, category, content, imageDataURL string) (models.Post, error)

	// SaveArticle adds postID to the current user's saved list. Saving an
	// already-saved article is a no-op.
	SaveArticle(ctx context.Context, postID string) error

	// UnsaveArticle removes postID from the current user's saved list.
	// Removing an absent entry is a no-op.
	UnsaveArticle(ctx context.Context, postID string) error

	// Comments returns the comment thread for postID in insertion order.
	Comments(ctx context.Context, postID string) ([]models.Comment, error)

	// AddComment validates, sanitizes and rate-limits a comment by the
	// current user, then appends it to postID's thread.
	AddComment(ctx context.Context, postID, text string) (models.Comment, error)

	// RelatedPosts scores every other merged post against postID by
	// category, author, keyword overlap and title similarity, returning up
	// to three positive-scoring posts, best first.
	RelatedPosts(ctx context.Context, postID string) ([]models.Post, error)

	// Search fuzzy-matches query against the merged posts' title, content,
	// author and category, best match first.
	Search(ctx context.Context, query string) ([]models.Post, error)
}

// ImageService turns image files into bounded data URIs for avatars and
// post headers.
type ImageService interface {
	// Load reads the file at path under the configured read timeout and
	// runs it through Process.
	Load(ctx context.Context, path string) (string, error)

	// Process validates, decodes, downscales and re-encodes the named
	// image file into a data URI no larger than the configured budget.
	// SVG files take a sanitize-and-embed path instead of re-encoding.
	Process(ctx context.Context, filename string, data []byte) (string, error)
}

// ProfileService manages the current user's avatar and presentation
// preferences.
type ProfileService interface {
	// SetAvatar stores a processed data URI as the current user's avatar.
	SetAvatar(ctx context.Context, dataURI string) error

	// RemoveAvatar clears the current user's avatar back to the initial
	// placeholder.
	RemoveAvatar(ctx context.Context) error

	// Theme returns the saved theme, falling back to the configured
	// default when nothing is stored.
	Theme(ctx context.Context) (string, error)

	// ToggleTheme flips between light and dark and persists the choice.
	ToggleTheme(ctx context.Context) (string, error)
}

// ShareService builds share links for a post and copies them out.
type ShareService interface {
	// ShareURL returns the share link for platform ("twitter", "facebook",
	// "linkedin" or "email") referencing the post's canonical URL.
	ShareURL(platform string, post models.Post) (string, error)

	// CopyLink places the post's canonical URL on the system clipboard.
	CopyLink(post models.Post) error
}

// PerfService records page-timing samples into the bounded log.
type PerfService interface {
	// RecordSample appends one timing sample.
	RecordSample(ctx context.Context, page string, loadTime, total float64) error

	// Samples returns the recorded log, oldest first.
	Samples(ctx context.Context) ([]models.PerfSample, error)
}
