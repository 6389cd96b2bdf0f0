// Package schema is the in-memory model of a CZML schema: node types, their
// ordered properties, and the references between them.
//
// A Set is built once and never mutated. Every property that refers to a
// schema by name resolves to the same *Schema, so schema pointers can be used
// as identity keys. Reference graphs may be cyclic.
package schema

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/token"
)

// JSONType is a set of JSON value kinds.
type JSONType uint8

const (
	TypeString JSONType = 1 << iota
	TypeNumber
	TypeInteger
	TypeBoolean
	TypeObject
	TypeArray
	TypeNull
	TypeAny

	TypeNone JSONType = 0
)

var jsonTypeNames = []struct {
	name string
	t    JSONType
}{
	{"string", TypeString},
	{"number", TypeNumber},
	{"integer", TypeInteger},
	{"boolean", TypeBoolean},
	{"object", TypeObject},
	{"array", TypeArray},
	{"null", TypeNull},
	{"any", TypeAny},
}

// ParseJSONType returns the type named name.
func ParseJSONType(name string) (JSONType, bool) {
	for _, n := range jsonTypeNames {
		if n.name == name {
			return n.t, true
		}
	}
	return TypeNone, false
}

// Has reports whether t includes every kind in other.
func (t JSONType) Has(other JSONType) bool { return t&other == other && other != TypeNone }

func (t JSONType) String() string {
	if t == TypeNone {
		return "none"
	}
	var names []string
	for _, n := range jsonTypeNames {
		if t.Has(n.t) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// Schema is a named node type.
type Schema struct {
	Name        string
	Description string

	// JSONTypes are the JSON kinds a value of this schema may take.
	JSONTypes JSONType

	// FromType marks a schema synthesized for a property declared with a
	// primitive type instead of a reference.
	FromType bool

	// Interpolatable marks schemas whose value properties may be sampled.
	Interpolatable bool

	// Interfaces are the capability interfaces the schema's writer claims.
	Interfaces []string

	Extends    []*Schema
	Properties []*Property

	// AdditionalProperties, if set, describes properties the caller may
	// add under arbitrary names.
	AdditionalProperties *Property

	Pos token.Pos

	all []*Property
}

// AllProperties returns the inherited properties of every base schema,
// in order, followed by the schema's own. A property redeclared by the
// schema replaces the inherited one in place.
func (s *Schema) AllProperties() []*Property { return s.all }

// ValueProperties returns the properties of AllProperties marked IsValue.
func (s *Schema) ValueProperties() []*Property {
	var out []*Property
	for _, p := range s.all {
		if p.IsValue {
			out = append(out, p)
		}
	}
	return out
}

// PascalName returns the Go-style exported form of the schema name.
func (s *Schema) PascalName() string { return Pascal(s.Name) }

func (s *Schema) String() string { return s.Name }

// Property is one declared property of a schema.
type Property struct {
	Name        string
	Description string
	Owner       *Schema
	ValueType   *Schema

	// IsValue marks the property as one of the alternative representations
	// of its owner's value.
	IsValue            bool
	RequiredForDisplay bool
	Default            any

	Pos token.Pos
}

// PascalName returns the Go-style exported form of the property name.
func (p *Property) PascalName() string { return Pascal(p.Name) }

// IsLeaf reports whether the property holds a primitive value rather than a
// nested node.
func (p *Property) IsLeaf() bool { return !p.ValueType.JSONTypes.Has(TypeObject) }

func (p *Property) String() string {
	if p.Owner == nil {
		return p.Name
	}
	return fmt.Sprintf("%s.%s", p.Owner.Name, p.Name)
}

// Set is an immutable arena of schemas.
type Set struct {
	schemas []*Schema
	byName  map[string]*Schema
}

// Lookup returns the named schema.
func (s *Set) Lookup(name string) (*Schema, bool) {
	sc, ok := s.byName[name]
	return sc, ok
}

// Schemas returns the declared schemas in declaration order. Schemas
// synthesized for primitive-typed properties are not included.
func (s *Set) Schemas() []*Schema { return s.schemas }
