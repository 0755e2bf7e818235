package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims the string and collapses internal whitespace runs
// into single spaces.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeUsername lowercases a username after whitespace normalization.
// Usernames double as booking owner ids, so comparisons must be exact.
func NormalizeUsername(username string) string {
	return strings.ToLower(TrimAndNormalize(username))
}

// NormalizeTrainID uppercases a route-coded train id like "mude123".
func NormalizeTrainID(id string) string {
	return strings.ToUpper(TrimAndNormalize(id))
}

// NormalizeLabel normalizes free-text labels such as train or station names.
func NormalizeLabel(label string) string {
	return TrimAndNormalize(label)
}
