package schema

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCaser = cases.Title(language.Und, cases.NoLower)
	lowerCaser = cases.Lower(language.Und)
)

// initialisms are written in upper case when they form a whole word of an
// identifier.
var initialisms = map[string]string{
	"Id":   "ID",
	"Uri":  "URI",
	"Url":  "URL",
	"Json": "JSON",
}

// Pascal converts a schema or property name to an exported Go identifier:
// "pixelOffset" becomes "PixelOffset", "id" becomes "ID", and characters
// that cannot appear in an identifier separate words.
func Pascal(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, part := range parts {
		for _, word := range splitWords(titleCaser.String(part)) {
			if up, ok := initialisms[word]; ok {
				word = up
			}
			b.WriteString(word)
		}
	}
	return b.String()
}

// splitWords splits a camel-case identifier before each upper-case letter
// that follows a lower-case letter or digit.
func splitWords(s string) []string {
	var words []string
	start := 0
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			words = append(words, s[start:i])
			start = i
		}
		prev = r
	}
	return append(words, s[start:])
}

// lowerFirst lowers the first letter of s unless it begins an acronym.
func lowerFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	if next, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(next) {
		return s
	}
	return lowerCaser.String(s[:size]) + s[size:]
}
