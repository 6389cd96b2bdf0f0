package schema

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/token"
)

// SchemaDecl is a schema as written in a schema document, with references
// still by name.
type SchemaDecl struct {
	Name                 string
	Description          string
	Type                 []string
	Extends              []string
	Interpolatable       bool
	Interfaces           []string
	Properties           []PropertyDecl
	AdditionalProperties *PropertyDecl
	Pos                  token.Pos
}

// PropertyDecl is a property as written in a schema document. Exactly one of
// Ref and Type is set.
type PropertyDecl struct {
	Name               string
	Description        string
	Ref                string
	Type               []string
	Value              bool
	RequiredForDisplay bool
	Default            any
	Pos                token.Pos
}

// Build links decls into a Set. All schemas are allocated before any
// reference is resolved, so cyclic references are fine.
func Build(decls []SchemaDecl) (*Set, error) {
	b := &builder{
		set:      &Set{byName: make(map[string]*Schema, len(decls))},
		fromType: make(map[JSONType]*Schema),
	}

	for _, d := range decls {
		if _, dup := b.set.byName[d.Name]; dup {
			return nil, &CompileError{Field: d.Name, Message: "duplicate schema", Pos: d.Pos}
		}
		s := &Schema{
			Name:           d.Name,
			Description:    d.Description,
			Interpolatable: d.Interpolatable,
			Interfaces:     d.Interfaces,
			Pos:            d.Pos,
		}
		b.set.schemas = append(b.set.schemas, s)
		b.set.byName[d.Name] = s
	}

	for i, d := range decls {
		if err := b.link(b.set.schemas[i], d); err != nil {
			return nil, err
		}
	}

	state := make(map[*Schema]int, len(decls))
	for _, s := range b.set.schemas {
		if err := aggregate(s, state); err != nil {
			return nil, err
		}
	}
	return b.set, nil
}

type builder struct {
	set      *Set
	fromType map[JSONType]*Schema
}

func (b *builder) link(s *Schema, d SchemaDecl) error {
	if len(d.Type) == 0 {
		s.JSONTypes = TypeObject
	} else {
		t, err := parseTypes(d.Type, d.Name+".type", d.Pos)
		if err != nil {
			return err
		}
		s.JSONTypes = t
	}

	for _, name := range d.Extends {
		base, ok := b.set.byName[name]
		if !ok {
			return &CompileError{Field: d.Name + ".extends", Message: fmt.Sprintf("unknown schema %q", name), Pos: d.Pos}
		}
		s.Extends = append(s.Extends, base)
	}

	seen := make(map[string]bool, len(d.Properties))
	for _, pd := range d.Properties {
		if seen[pd.Name] {
			return &CompileError{Field: d.Name + "." + pd.Name, Message: "duplicate property", Pos: pd.Pos}
		}
		seen[pd.Name] = true
		p, err := b.property(s, pd)
		if err != nil {
			return err
		}
		s.Properties = append(s.Properties, p)
	}

	if d.AdditionalProperties != nil {
		p, err := b.property(s, *d.AdditionalProperties)
		if err != nil {
			return err
		}
		s.AdditionalProperties = p
	}
	return nil
}

func (b *builder) property(owner *Schema, d PropertyDecl) (*Property, error) {
	field := owner.Name + "." + d.Name
	p := &Property{
		Name:               d.Name,
		Description:        d.Description,
		Owner:              owner,
		IsValue:            d.Value,
		RequiredForDisplay: d.RequiredForDisplay,
		Default:            d.Default,
		Pos:                d.Pos,
	}
	switch {
	case d.Ref != "" && len(d.Type) > 0:
		return nil, &CompileError{Field: field, Message: "ref and type are mutually exclusive", Pos: d.Pos}
	case d.Ref != "":
		vt, ok := b.set.byName[d.Ref]
		if !ok {
			return nil, &CompileError{Field: field, Message: fmt.Sprintf("unknown schema %q", d.Ref), Pos: d.Pos}
		}
		p.ValueType = vt
	default:
		t, err := parseTypes(d.Type, field+".type", d.Pos)
		if err != nil {
			return nil, err
		}
		p.ValueType = b.internFromType(t)
	}
	return p, nil
}

// internFromType returns the one schema for the primitive type set t.
func (b *builder) internFromType(t JSONType) *Schema {
	if s, ok := b.fromType[t]; ok {
		return s
	}
	s := &Schema{Name: t.String(), JSONTypes: t, FromType: true}
	b.fromType[t] = s
	return s
}

func parseTypes(names []string, field string, pos token.Pos) (JSONType, error) {
	var t JSONType
	for _, n := range names {
		k, ok := ParseJSONType(n)
		if !ok {
			return TypeNone, &CompileError{Field: field, Message: fmt.Sprintf("unknown JSON type %q", n), Pos: pos}
		}
		t |= k
	}
	return t, nil
}

const (
	unvisited = iota
	visiting
	done
)

// aggregate fills s.all from its bases first.
func aggregate(s *Schema, state map[*Schema]int) error {
	switch state[s] {
	case done:
		return nil
	case visiting:
		return &CompileError{Field: s.Name + ".extends", Message: "schema extends itself", Pos: s.Pos}
	}
	state[s] = visiting

	var all []*Property
	index := make(map[string]int)
	add := func(p *Property) {
		if i, ok := index[p.Name]; ok {
			all[i] = p
			return
		}
		index[p.Name] = len(all)
		all = append(all, p)
	}
	for _, base := range s.Extends {
		if err := aggregate(base, state); err != nil {
			return err
		}
		for _, p := range base.all {
			add(p)
		}
	}
	for _, p := range s.Properties {
		add(p)
	}
	s.all = all
	state[s] = done
	return nil
}

// Describe returns the property description with its first letter lowered
// and default value and display requirement appended, for use in generated
// documentation.
func (p *Property) Describe() string {
	d := strings.TrimSuffix(strings.TrimSpace(p.Description), ".")
	if d != "" {
		d = lowerFirst(d) + "."
	}
	if p.Default != nil {
		d += fmt.Sprintf(" If not specified, the default value is %v.", p.Default)
	}
	if p.RequiredForDisplay {
		d += " This value must be specified in order for the client to display graphics."
	}
	return strings.TrimSpace(d)
}
