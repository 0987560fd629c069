package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== TOKEN ====================

// GenerateExpiringToken returns a one-time token and the moment it stops being valid.
func GenerateExpiringToken(ttl time.Duration) (string, time.Time) {
	return uuid.NewString(), time.Now().Add(ttl)
}

// ==================== USERNAME ====================

const usernameFallbackPrefix = "umkm"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s, collapses every non-alphanumeric run into one hyphen
// and trims hyphens from both ends.
func Slugify(s string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// RandomSuffix returns six lowercase hex characters.
func RandomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

// UsernameCandidate derives the username tried on the given attempt (0-based).
// Attempt 0 is the bare slug; later attempts append a random suffix.
func UsernameCandidate(companyName string, attempt int) string {
	base := Slugify(companyName)
	if base == "" {
		return usernameFallbackPrefix + "-" + RandomSuffix()
	}
	if attempt == 0 {
		return base
	}
	return base + "-" + RandomSuffix()
}
