// Package slug derives URL-safe board slugs from titles.
package slug

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	maxLength       = 50
	fallback        = "untitled"
	numericAttempts = 100
)

var (
	separators = regexp.MustCompile(`[\s_]+`)
	disallowed = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Generate lower-cases title and reduces it to [a-z0-9-], at most 50 characters
func Generate(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = separators.ReplaceAllString(s, "-")
	s = disallowed.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLength {
		s = strings.TrimRight(s[:maxLength], "-")
	}
	return s
}

// GenerateUnique returns Generate(title), or "untitled" when that is empty,
// suffixed with -1..-100 and then a random suffix until it is not in existing
func GenerateUnique(title string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	base := Generate(title)
	if base == "" {
		base = fallback
	}
	if _, ok := taken[base]; !ok {
		return base
	}

	for i := 1; i <= numericAttempts; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}

	for {
		candidate := base + "-" + randomSuffix()
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}
