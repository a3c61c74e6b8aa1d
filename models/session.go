package models

import "time"

// Session is the persisted login session record. It is layered on top of the
// lightweight current-user-email pointer: the pointer says who is logged in
// on this page load, the session record says when they logged in and whether
// that login is still fresh enough to restore.
type Session struct {
	// Email references the user the session belongs to. A session whose
	// email no longer resolves to a stored user is orphaned and is deleted
	// on the next validation.
	Email string `json:"email"`

	// LoginTime is when the session was created. Session age is always
	// measured from this value, not from LastActivity.
	LoginTime time.Time `json:"loginTime"`

	// LastActivity is refreshed periodically while the application is open
	// and on every successful restore.
	LastActivity time.Time `json:"lastActivity"`

	// Persistent marks the session as surviving application restarts.
	// Always true for sessions created by login.
	Persistent bool `json:"persistent"`
}

// Age returns how old the session is at the given instant.
func (s Session) Age(now time.Time) time.Duration {
	return now.Sub(s.LoginTime)
}

// SessionState classifies the current session record.
type SessionState int

const (
	// NoSession means no session record is stored.
	NoSession SessionState = iota

	// ValidSession means a session record exists and is within its maximum
	// age.
	ValidSession

	// ExpiredSession means a session record existed but exceeded its
	// maximum age; validation deletes it eagerly.
	ExpiredSession
)

func (s SessionState) String() string {
	switch s {
	case NoSession:
		return "none"
	case ValidSession:
		return "valid"
	case ExpiredSession:
		return "expired"
	default:
		return "unknown"
	}
}
