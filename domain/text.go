package domain

import (
	"math"
	"regexp"
	"strings"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9]+`)
	wordsPerMinute = 200
)

// GenerateSlug derives a URL-friendly slug from a title: lowercased, runs of
// non-alphanumeric characters collapsed to single hyphens, edges trimmed.
func GenerateSlug(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// ValidSlug reports whether s is a well-formed slug (lowercase letters,
// digits, and single hyphens only). The key delimiter "#" can never appear
// in a valid slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ReadingTime estimates reading time in minutes at 200 words per minute,
// never less than one minute.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / float64(wordsPerMinute)))
	if minutes < 1 {
		return 1
	}
	return minutes
}
