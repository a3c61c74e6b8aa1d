package store

import (
	"time"

	"github.com/horizone-blog/horizone/models"
)

// userSchemaVersion is the current shape of a stored user record.
//
// History:
//
//	v1: name, email, password, savedArticles
//	v2: adds profileImage (default null) and joinDate (default: time of
//	    migration)
const userSchemaVersion = 2

// userRecord is the storage representation of [models.User] across all
// schema versions. Fields added after v1 are pointers so a legacy record
// (which simply lacks them) can be told apart from one that set them
// explicitly. Records written before versioning carry no schemaVersion field
// and decode as version 0.
type userRecord struct {
	SchemaVersion int        `json:"schemaVersion,omitempty"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Password      string     `json:"password"`
	SavedArticles []string   `json:"savedArticles"`
	ProfileImage  *string    `json:"profileImage"`
	JoinDate      *time.Time `json:"joinDate"`
}

// upgradeUserRecord lifts a stored record of any historical version to the
// current [models.User] shape. The second return value reports whether the
// record had to change, which tells the caller a write-back is due.
//
// The function is pure: upgrading an already-current record returns it
// unchanged with changed=false, so running the migration on every read is
// idempotent.
func upgradeUserRecord(rec userRecord, now time.Time) (models.User, bool) {
	changed := rec.SchemaVersion != userSchemaVersion

	user := models.User{
		Name:          rec.Name,
		Email:         rec.Email,
		Password:      rec.Password,
		SavedArticles: rec.SavedArticles,
		ProfileImage:  rec.ProfileImage,
	}

	if rec.SavedArticles == nil {
		user.SavedArticles = []string{}
		changed = true
	}

	// v1 -> v2: profileImage defaults to null (already nil), joinDate to the
	// moment of migration.
	if rec.JoinDate == nil {
		user.JoinDate = now
		changed = true
	} else {
		user.JoinDate = *rec.JoinDate
	}

	return user, changed
}

// toUserRecord converts a domain user back to the current storage shape.
func toUserRecord(u models.User) userRecord {
	joinDate := u.JoinDate
	return userRecord{
		SchemaVersion: userSchemaVersion,
		Name:          u.Name,
		Email:         u.Email,
		Password:      u.Password,
		SavedArticles: u.SavedArticles,
		ProfileImage:  u.ProfileImage,
		JoinDate:      &joinDate,
	}
}
