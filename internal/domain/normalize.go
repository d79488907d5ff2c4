package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares free text (titles, authors, borrower names) for
// storage: trims leading/trailing whitespace and compresses any run of
// whitespace into a single space. Case is preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeCode prepares a copy code or barcode: surrounding whitespace is
// removed and inner whitespace is dropped entirely, so "CC 42" and "CC42"
// collide on the unique index.
func NormalizeCode(code string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, code)
}

// NormalizeOptional applies fn to *s and returns nil when the result is
// empty.
func NormalizeOptional(s *string, fn func(string) string) *string {
	if s == nil {
		return nil
	}
	v := fn(*s)
	if v == "" {
		return nil
	}
	return &v
}
