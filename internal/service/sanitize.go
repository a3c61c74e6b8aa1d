package service

import (
	"regexp"
	"strings"
)

// sanitizeReplacer escapes the characters that carry meaning in HTML so
// user-supplied text is stored inert. The replacement set and output
// entities match what stored profiles already contain.
var sanitizeReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// SanitizeInput HTML-escapes user-supplied text before storage or display.
func SanitizeInput(input string) string {
	return sanitizeReplacer.Replace(input)
}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether email looks like an address and fits the
// 254-character limit.
func ValidateEmail(email string) bool {
	return len(email) <= 254 && emailRegexp.MatchString(email)
}

// ValidateTextInput reports whether text is non-blank and no longer than
// maxLength. Length is checked before trimming, trailing whitespace counts
// toward the limit.
func ValidateTextInput(text string, maxLength int) bool {
	return strings.TrimSpace(text) != "" && len(text) <= maxLength
}

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
)

// Slugify derives a storage slug from a post title: sanitize, lowercase,
// spaces to hyphens, strip everything outside [a-z0-9-].
func Slugify(title string) string {
	slug := strings.ToLower(SanitizeInput(title))
	slug = slugSpaces.ReplaceAllString(slug, "-")
	return slugInvalid.ReplaceAllString(slug, "")
}

var (
	htmlTags     = regexp.MustCompile(`<[^>]*>`)
	htmlEntities = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#x27;", "'",
		"&#x2F;", "/",
		"&nbsp;", " ",
	)
)

// StripHTML removes markup tags and decodes the common entities, leaving
// plain text suitable for search indexing and keyword extraction.
func StripHTML(html string) string {
	return htmlEntities.Replace(htmlTags.ReplaceAllString(html, " "))
}
