package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email address shape.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// IsAllowedIdentity reports whether the email belongs to one of the
// institutional domains allowed to use the portal. The check is enforced
// here, not by the identity provider.
func IsAllowedIdentity(email string, suffixes []string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, suffix := range suffixes {
		suffix = strings.ToLower(strings.TrimSpace(suffix))
		if suffix == "" {
			continue
		}
		if strings.HasSuffix(email, suffix) {
			return true
		}
	}
	return false
}
