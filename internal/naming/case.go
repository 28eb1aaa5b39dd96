package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UpperFirst upper-cases the first rune.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the leading run of upper-case runes so acronyms
// stay readable: "Pet" -> "pet", "HTTPCall" -> "httpCall", "ID" -> "id".
func LowerFirst(s string) string {
	runes := []rune(s)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			break
		}

		next := i + 1
		if i > 0 && next < len(runes) && unicode.IsLower(runes[next]) {
			break
		}

		runes[i] = unicode.ToLower(r)
	}

	return string(runes)
}

// Snake converts CamelCase to snake_case: "HTTPResult" -> "http_result".
func Snake(s string) string {
	runes := []rune(s)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1]) && i > 0 && unicode.IsUpper(runes[i-1])

			if prevLower || nextLower {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
