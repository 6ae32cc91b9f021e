package domain

import (
	"strings"
	"unicode"
)

// NormalizeName prepares a name or address for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved.
func NormalizeName(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizePhone trims a phone number. Formatting inside the number is kept as given.
func NormalizePhone(number string) string {
	return strings.TrimSpace(number)
}
