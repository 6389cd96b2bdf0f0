package czml

import (
	"errors"
	"fmt"
	"strings"
)

// Reference points at a property of another packet: an identifier plus a
// path of one or more property names.
type Reference struct {
	Identifier    string
	PropertyNames []string
}

// NewReference returns a reference to the named property path of the packet
// with the given identifier.
func NewReference(identifier string, propertyNames ...string) Reference {
	return Reference{Identifier: identifier, PropertyNames: propertyNames}
}

// String formats the reference as "id#a.b". Backslash, '#' and '.' in the
// identifier and in each property name are escaped with a backslash.
func (r Reference) String() string {
	var b strings.Builder
	escapeReferencePart(&b, r.Identifier)
	b.WriteByte('#')
	for i, name := range r.PropertyNames {
		if i > 0 {
			b.WriteByte('.')
		}
		escapeReferencePart(&b, name)
	}
	return b.String()
}

func escapeReferencePart(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '#', '.':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
}

// ErrInvalidReference is wrapped by every ParseReference error.
var ErrInvalidReference = errors.New("invalid reference")

// ParseReference parses the "id#a.b" form written by Reference.String.
func ParseReference(s string) (Reference, error) {
	var (
		parts   []string
		current strings.Builder
		hashAt  = -1
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			if i+1 == len(s) {
				return Reference{}, fmt.Errorf("%w %q: trailing escape", ErrInvalidReference, s)
			}
			i++
			current.WriteByte(s[i])
		case c == '#' && hashAt < 0:
			hashAt = i
			parts = append(parts, current.String())
			current.Reset()
		case c == '#':
			return Reference{}, fmt.Errorf("%w %q: unescaped '#' in property path", ErrInvalidReference, s)
		case c == '.' && hashAt >= 0:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if hashAt < 0 {
		return Reference{}, fmt.Errorf("%w %q: missing '#'", ErrInvalidReference, s)
	}
	parts = append(parts, current.String())
	for _, p := range parts[1:] {
		if p == "" {
			return Reference{}, fmt.Errorf("%w %q: empty property name", ErrInvalidReference, s)
		}
	}
	return Reference{Identifier: parts[0], PropertyNames: parts[1:]}, nil
}
