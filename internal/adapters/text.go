package adapters

import "strings"

// Truncate shortens text to at most maxLen characters, replacing the tail
// with an ellipsis marker. It operates on runes, never splitting a
// multibyte character. A maxLen of 3 or less truncates without the marker.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		if maxLen < 0 {
			maxLen = 0
		}
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// SanitizeQuery normalizes untrusted search input: trimmed, lowercased,
// stripped to letters, digits, spaces and hyphens, capped at 100 runes.
func SanitizeQuery(input string) string {
	cleaned := strings.ToLower(strings.TrimSpace(input))

	var b strings.Builder
	for _, r := range cleaned {
		switch {
		case r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r == ' ', r == '-':
			b.WriteRune(r)
		}
	}

	out := b.String()
	if len([]rune(out)) > 100 {
		out = string([]rune(out)[:100])
	}
	return out
}
