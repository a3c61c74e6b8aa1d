package models

import (
	"time"
	"unicode"
)

// User represents a registered Horizone account as persisted in the local
// store. Accounts are keyed by email; there is exactly one record per email
// in the user collection.
type User struct {
	// Name is the display name of the user, shown in navigation, comments
	// and on the profile page.
	Name string `json:"name"`

	// Email is the unique identifier of the account. All lookups and
	// updates address the user by this value.
	Email string `json:"email"`

	// Password is the account password, stored and compared in plaintext.
	// The application is local-first and offers no credential security;
	// this mirrors the product behavior.
	Password string `json:"password"`

	// SavedArticles holds the IDs of posts the user has bookmarked, in the
	// order they were saved. An ID appears at most once.
	SavedArticles []string `json:"savedArticles"`

	// ProfileImage is an optional avatar encoded as a data URI. Nil means
	// the UI falls back to an initial placeholder.
	ProfileImage *string `json:"profileImage"`

	// JoinDate is the timestamp of account creation. Records written before
	// this field existed are backfilled on read.
	JoinDate time.Time `json:"joinDate"`
}

// HasSaved reports whether the post with the given ID is in the user's
// saved-articles list.
func (u User) HasSaved(postID string) bool {
	for _, id := range u.SavedArticles {
		if id == postID {
			return true
		}
	}
	return false
}

// Initial returns the single character the UI shows when the user has no
// profile image.
func (u User) Initial() string {
	if u.Name == "" {
		return "?"
	}
	return string(unicode.ToUpper([]rune(u.Name)[0]))
}
