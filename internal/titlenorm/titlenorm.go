// Package titlenorm canonicalizes free-text book titles so that substring
// search works across stores that format titles differently.
package titlenorm

import (
	"strings"
	"unicode"
)

// quotes are dropped outright rather than replaced with a space, so that
// possessives and quoted words stay joined ("Don't" -> "dont").
var quotes = map[rune]bool{
	'"':  true,
	'\'': true,
	'`':  true,
	'“':  true,
	'”':  true,
	'„':  true,
	'’':  true,
}

var foldings = map[rune]rune{
	'ё': 'е',
}

// Normalize lowercases s, folds look-alike letters, strips quotes and turns
// everything outside ASCII letters/digits, Georgian and Cyrillic into single
// spaces. It returns "" when nothing comparable is left.
//
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := foldings[r]; ok {
			r = folded
		}
		if quotes[r] {
			continue
		}
		if keep(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizePtr is Normalize for optional titles; nil in, nil out, and an
// input that normalizes to nothing also yields nil.
func NormalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	n := Normalize(*s)
	if n == "" {
		return nil
	}
	return &n
}

func keep(r rune) bool {
	switch {
	case r < unicode.MaxASCII:
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || unicode.IsSpace(r)
	case r >= 0x10A0 && r <= 0x10FF: // Georgian
		return true
	case r >= 0x0400 && r <= 0x04FF: // Cyrillic
		return true
	default:
		return unicode.IsSpace(r)
	}
}
