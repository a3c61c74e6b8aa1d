package models

import "time"

// Comment is a single entry in a post's comment thread. Threads are
// append-only; display order is insertion order.
type Comment struct {
	// ID uniquely identifies the comment within its thread.
	ID string `json:"id"`

	// Author is the display name of the commenting user, sanitized at
	// submission time.
	Author string `json:"author"`

	// Text is the sanitized comment body.
	Text string `json:"text"`

	// Date is the submission timestamp.
	Date time.Time `json:"date"`
}
