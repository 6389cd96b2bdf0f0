package generator

import (
	"go/token"
	"strings"
	"unicode"
)

// runtimeMethods are promoted into every generated writer from the runtime.
// A generated method with one of these names would shadow it.
var runtimeMethods = map[string]bool{
	"Open":                               true,
	"Close":                              true,
	"Output":                             true,
	"IsOpen":                             true,
	"WriteMemberName":                    true,
	"OpenIntervalIfNecessary":            true,
	"OpenDirectValue":                    true,
	"WriteInterval":                      true,
	"WriteTimeInterval":                  true,
	"PropertyName":                       true,
	"State":                              true,
	"IsInterval":                         true,
	"OpenMultipleIntervals":              true,
	"WriteInterpolationAlgorithm":        true,
	"WriteInterpolationDegree":           true,
	"WriteForwardExtrapolationType":      true,
	"WriteForwardExtrapolationDuration":  true,
	"WriteBackwardExtrapolationType":     true,
	"WriteBackwardExtrapolationDuration": true,
}

// reservedParams are names used by generated method bodies.
var reservedParams = map[string]bool{"w": true, "writer": true}

// lowerCamel lowers the leading upper-case run of an identifier, keeping the
// last letter of the run upper-case when it starts the next word:
// "URIWriter" becomes "uriWriter" and "ID" becomes "id".
func lowerCamel(s string) string {
	r := []rune(s)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	switch {
	case n == 0:
		return s
	case n == 1 || n == len(r):
	default:
		if unicode.IsLower(r[n]) {
			n--
		}
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

// fieldName returns an unexported struct field name for a Pascal name.
func fieldName(pascal string) string {
	f := lowerCamel(pascal)
	if token.IsKeyword(f) {
		f += "_"
	}
	return f
}

// snake converts a Pascal name to a file name stem: "LabelStyle" becomes
// "label_style" and "URI" becomes "uri".
func snake(pascal string) string {
	var b strings.Builder
	r := []rune(pascal)
	for i, c := range r {
		if unicode.IsUpper(c) && i > 0 {
			prevLower := unicode.IsLower(r[i-1]) || unicode.IsDigit(r[i-1])
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if prevLower || (unicode.IsUpper(r[i-1]) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(c))
	}
	return b.String()
}
