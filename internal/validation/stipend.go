// Package validation provides input validation utilities.
package validation

import (
	"strconv"
	"strings"

	"internhub/internal/models"
)

// ValidateStipend checks the optional stipend range string. Empty input is
// valid. Otherwise the input must split into exactly two parts on a single
// "-" separator, each trimmed part composed solely of decimal digits.
// min > max is deliberately not rejected; the source form never checked it
// and the feed filter simply never matches an inverted range.
func ValidateStipend(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return false
	}
	for _, part := range parts {
		if !isDigits(strings.TrimSpace(part)) {
			return false
		}
	}
	return true
}

// ParseStipendRange parses a stipend string into its two bounds.
// Absent input, the "Not Specified" sentinel and anything that fails
// ValidateStipend yield ok=false.
func ParseStipendRange(s string) (min, max int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == models.StipendNotSpecified {
		return 0, 0, false
	}
	if !ValidateStipend(s) {
		return 0, 0, false
	}
	parts := strings.Split(s, "-")
	min, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	max, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	return min, max, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
