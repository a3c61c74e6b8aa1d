package models

import "strings"

// Post is a blog article. The built-in catalog and user-authored posts share
// this shape; the two sets are merged by ID, with the locally stored post
// winning on collision.
type Post struct {
	// ID is the URL-safe slug derived from the title. It is the unique key
	// of the post in the merged view.
	ID string `json:"id"`

	// Title is the article headline, stored sanitized.
	Title string `json:"title"`

	// Author is the display name of the post author.
	Author string `json:"author"`

	// Date is a human-readable display string (e.g. "12 Jan 2025"), not a
	// machine timestamp. It is rendered verbatim.
	Date string `json:"date"`

	// Category is the single category label used for filtering and
	// related-post scoring.
	Category string `json:"category"`

	// Image is a local path, an absolute URL or an embedded data URI.
	Image string `json:"image"`

	// Content is a sanitized HTML fragment.
	Content string `json:"content"`
}

// ImageIsInline reports whether the post image is self-contained (a data URI
// or an absolute URL) rather than a repository-relative path.
func (p Post) ImageIsInline() bool {
	return strings.HasPrefix(p.Image, "data:") || strings.HasPrefix(p.Image, "http")
}
