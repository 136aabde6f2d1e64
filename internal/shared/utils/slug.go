package utils

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateSlug derives a URL-safe slug from a human-readable name:
// lowercase, runs of non-alphanumeric characters collapsed to a single
// hyphen, leading/trailing hyphens trimmed. Idempotent.
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slug
}
