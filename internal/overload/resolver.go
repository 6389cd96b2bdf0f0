package overload

import (
	"fmt"
	"iter"

	"cuelang.org/go/cue/token"

	"github.com/sm665371/czml-writer/internal/schema"
)

// SchemaError reports a property whose value type cannot be written. It is
// an authoring error in the schema, found while generating.
type SchemaError struct {
	Property string
	Message  string
	Pos      token.Pos
}

func (e *SchemaError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: property %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Property, e.Message)
	}
	return fmt.Sprintf("property %s: %s", e.Property, e.Message)
}

// primitive is the default overload for one JSON primitive kind.
type primitive struct {
	kind   schema.JSONType
	suffix string
	goType string
	write  string
}

// primitives are in canonical order: the first permitted kind of a value
// type supplies its canonical overload.
var primitives = []primitive{
	{schema.TypeString, "String", "string", "w.Output().WriteString(value)"},
	{schema.TypeNumber, "Float", "float64", "w.Output().WriteFloat(value)"},
	{schema.TypeInteger, "Int", "int", "w.Output().WriteInt(value)"},
	{schema.TypeBoolean, "Bool", "bool", "w.Output().WriteBool(value)"},
}

const unwritable = schema.TypeObject | schema.TypeArray | schema.TypeNull | schema.TypeAny

// Resolver maps properties to their overloads. It is safe for concurrent
// use once constructed.
type Resolver struct {
	cfg *Config
}

// NewResolver returns a resolver consulting cfg for named value types.
func NewResolver(cfg *Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// OverloadsFor yields the overloads of p in order, the canonical one first.
// A property that cannot be written yields a single *SchemaError.
func (r *Resolver) OverloadsFor(p *schema.Property) iter.Seq2[*Overload, error] {
	return func(yield func(*Overload, error) bool) {
		vt := p.ValueType
		if !vt.FromType {
			if tc, ok := r.cfg.Types[vt.Name]; ok {
				for _, o := range tc.Overloads {
					if !yield(o, nil) {
						return
					}
				}
				return
			}
			yield(defaultOverload(vt.PascalName(), "", "w.Output().WriteValue(value)"), nil)
			return
		}

		if vt.JSONTypes&unwritable != 0 || vt.JSONTypes == schema.TypeNone {
			yield(nil, &SchemaError{
				Property: p.String(),
				Message:  fmt.Sprintf("type %s is neither a schema reference nor a simple JSON type", vt.JSONTypes),
				Pos:      p.Pos,
			})
			return
		}

		first := true
		for _, prim := range primitives {
			if !vt.JSONTypes.Has(prim.kind) {
				continue
			}
			suffix := prim.suffix
			if first {
				suffix = ""
				first = false
			}
			if !yield(defaultOverload(prim.goType, suffix, prim.write), nil) {
				return
			}
		}
	}
}

// Resolve collects OverloadsFor(p).
func (r *Resolver) Resolve(p *schema.Property) ([]*Overload, error) {
	var out []*Overload
	for o, err := range r.OverloadsFor(p) {
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// SampleOverload returns the configured sub-range sample overload of a
// value type, or nil when the type cannot be sampled.
func (r *Resolver) SampleOverload(valueType *schema.Schema) *Overload {
	tc, ok := r.cfg.Types[valueType.Name]
	if !ok || tc.Samples == "" {
		return nil
	}
	return tc.Overload(tc.Samples)
}

func defaultOverload(goType, suffix, write string) *Overload {
	return &Overload{
		Suffix:            suffix,
		Parameters:        []Parameter{{Type: goType, Name: "value", Description: "The value."}},
		WriteValue:        write,
		WritePropertyName: true,
		NeedsInterval:     true,
	}
}
