// Package urlsan validates and normalizes free-text strings into safe
// absolute URLs suitable for embedding as hyperlink targets.
package urlsan

import (
	"net/url"
	"strings"
)

// DefaultMaxLength is the URL length cap applied when callers pass a
// non-positive limit.
const DefaultMaxLength = 2000

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// Sanitize normalizes raw into an absolute URL. The second return value is
// false when the input is blank, too long, malformed, or uses a scheme other
// than http, https, or mailto (javascript:, file:, data: and friends are all
// rejected). Inputs without a recognized scheme prefix are treated as
// https:// links.
func Sanitize(raw string, maxLength int) (string, bool) {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if len(trimmed) > maxLength {
		return "", false
	}

	u, err := url.Parse(trimmed)
	if err != nil || !allowedSchemes[u.Scheme] {
		// Inputs that open with an explicit scheme authority are rejected
		// outright; anything else is retried as an https link, so a "://"
		// buried in a query string does not disqualify a bare domain.
		if hasSchemeAuthority(trimmed) {
			return "", false
		}
		u, err = url.Parse("https://" + trimmed)
		if err != nil || !allowedSchemes[u.Scheme] {
			return "", false
		}
	}

	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return "", false
		}
		// Bare authority URLs get an explicit root path so the canonical
		// form is stable ("https://example.com/" rather than both variants).
		if u.Path == "" {
			u.Path = "/"
		}
	case "mailto":
		if u.Opaque == "" {
			return "", false
		}
	}

	return u.String(), true
}

// hasSchemeAuthority reports whether s starts with "scheme://" for any
// syntactically valid scheme.
func hasSchemeAuthority(s string) bool {
	i := strings.Index(s, "://")
	if i <= 0 {
		return false
	}
	for j, r := range s[:i] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case j > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
