// Package sanitize holds the input filters applied to every request value
// before it is bound into a query or stored. All functions are total and
// idempotent; they return the empty string for empty input, never an error.
package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	slugPattern    = regexp.MustCompile(`[^a-z0-9-]`)
	contentPattern = regexp.MustCompile(`[^\w\s@!.:;äÄöÖåÅ]`)
	namePattern    = regexp.MustCompile(`[^a-zA-ZäåöÄÅÖ -]`)

	// htmlPolicy strips all markup from user-submitted text before the
	// character allowlist runs.
	htmlPolicy = bluemonday.StrictPolicy()
)

// Slug normalizes an identifier taken from a path segment or query parameter
// to lowercase [a-z0-9-].
func Slug(value string) string {
	return slugPattern.ReplaceAllString(strings.ToLower(value), "")
}

// Content sanitizes user-submitted long-form text. Markup is stripped first,
// then every character outside letters, digits, whitespace and @!.:; plus the
// Nordic vowels is removed.
func Content(value string) string {
	if value == "" {
		return ""
	}
	stripped := html.UnescapeString(htmlPolicy.Sanitize(value))
	return contentPattern.ReplaceAllString(stripped, "")
}

// Name sanitizes a display name down to letters (including the Nordic
// vowels), spaces and hyphens.
func Name(value string) string {
	return namePattern.ReplaceAllString(value, "")
}
