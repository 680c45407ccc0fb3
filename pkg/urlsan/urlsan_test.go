package urlsan

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare domain gets https and root path", "example.com", "https://example.com/", true},
		{"existing https kept", "https://example.com/page", "https://example.com/page", true},
		{"http kept", "http://example.com", "http://example.com/", true},
		{"mailto kept verbatim", "mailto:a@b.com", "mailto:a@b.com", true},
		{"surrounding whitespace trimmed", "  example.com  ", "https://example.com/", true},
		{"uppercase scheme prefix accepted", "HTTPS://example.com", "https://example.com/", true},
		{"embedded url in query accepted", "example.com/?next=https://x", "https://example.com/?next=https://x", true},
		{"empty", "", "", false},
		{"whitespace only", "   \t ", "", false},
		{"javascript rejected", "javascript:alert(1)", "", false},
		{"file rejected", "file:///etc/passwd", "", false},
		{"data rejected", "data:text/html,hi", "", false},
		{"empty mailto rejected", "mailto:", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Sanitize(tc.in, 0)
			if ok != tc.ok {
				t.Fatalf("Sanitize(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeLengthCap(t *testing.T) {
	long := strings.Repeat("a", 2001)
	if _, ok := Sanitize(long, 0); ok {
		t.Error("expected 2001-char input to be rejected at default cap")
	}
	if _, ok := Sanitize(strings.Repeat("a", 1990), 0); !ok {
		t.Error("expected sub-cap input to be accepted")
	}
	if _, ok := Sanitize("example.com/some/path", 5); ok {
		t.Error("expected caller-supplied cap to apply")
	}
}
