package parse

import "strings"

const sanitizeFallback = "Untitled"

// SanitizeFilename makes a name safe for cross-platform filesystem use.
// Illegal characters are removed outright rather than replaced, trailing
// dots and spaces are trimmed, and a name with nothing left becomes
// "Untitled". The function is idempotent: sanitizing an already-sanitized
// name returns it unchanged.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r < 0x20, r >= 0x7f && r <= 0x9f:
			continue
		case strings.ContainsRune(`<>:"/\|?*`, r):
			continue
		}
		b.WriteRune(r)
	}
	cleaned := strings.TrimRight(b.String(), ". ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return sanitizeFallback
	}
	return cleaned
}
