package engine

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowercase folds s to lower case. The scan-then-copy ASCII path covers
// the common case without touching the Unicode tables; anything beyond
// ASCII goes through x/text casing, which handles the multi-byte and
// special-casing letters correctly.
func lowercase(s string) string {
	ascii := true
	changed := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
		if c >= 'A' && c <= 'Z' {
			changed = true
		}
	}
	if ascii {
		if !changed {
			return s
		}
		b := make([]byte, len(s))
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			b[i] = c
		}
		// b never escapes as a mutable slice
		return unsafeBytesToString(b)
	}
	// a Caser is stateful, so the slow path builds its own
	return cases.Lower(language.Und).String(s)
}

// stripSpaces appends s minus ASCII spaces to dst and returns it. Only
// ' ' separates words in generated phrases, so nothing else is removed.
func stripSpaces(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			dst = append(dst, s[i])
		}
	}
	return dst
}
