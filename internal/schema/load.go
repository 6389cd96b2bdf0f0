package schema

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueload "cuelang.org/go/cue/load"
)

// LoadFile reads a single CUE or JSON schema document and builds its Set.
func LoadFile(path string) (*Set, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return LoadBytes(path, src)
}

// LoadBytes compiles src, named filename in positions, and builds its Set.
func LoadBytes(filename string, src []byte) (*Set, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return Compile(v)
}

// LoadDir loads the CUE package in dir, unifying all of its files, and
// builds its Set.
func LoadDir(dir string) (*Set, error) {
	instances := cueload.Instances([]string{"."}, &cueload.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances in %s", dir)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, formatCUEError(inst.Err)
	}
	v := cuecontext.New().BuildInstance(inst)
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return Compile(v)
}

// Load loads path as a directory package or a single file.
func Load(path string) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("schema path: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// Compile decodes the schemas struct of v and builds its Set.
func Compile(v cue.Value) (*Set, error) {
	decls, err := Decode(v)
	if err != nil {
		return nil, err
	}
	return Build(decls)
}

// Decode reads the schema declarations of a document, preserving field
// order.
//
//	schemas: {
//		LabelStyle: {
//			description: "the style of a label."
//			properties: {
//				labelStyle: {ref: "LabelStyleValue", value: true}
//			}
//		}
//	}
func Decode(v cue.Value) ([]SchemaDecl, error) {
	schemasVal := v.LookupPath(cue.ParsePath("schemas"))
	if !schemasVal.Exists() {
		return nil, &CompileError{Field: "schemas", Message: "schemas is required", Pos: v.Pos()}
	}
	iter, err := schemasVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var decls []SchemaDecl
	for iter.Next() {
		d, err := decodeSchema(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}

func decodeSchema(name string, v cue.Value) (SchemaDecl, error) {
	d := SchemaDecl{Name: name, Pos: v.Pos()}
	var err error

	if d.Description, err = optString(v, "description"); err != nil {
		return d, err
	}
	if d.Type, err = optStrings(v, "type"); err != nil {
		return d, err
	}
	if d.Extends, err = optStrings(v, "extends"); err != nil {
		return d, err
	}
	if d.Interpolatable, err = optBool(v, "interpolatable"); err != nil {
		return d, err
	}
	if d.Interfaces, err = optStrings(v, "interfaces"); err != nil {
		return d, err
	}

	if props := v.LookupPath(cue.ParsePath("properties")); props.Exists() {
		iter, err := props.Fields()
		if err != nil {
			return d, formatCUEError(err)
		}
		for iter.Next() {
			p, err := decodeProperty(iter.Label(), iter.Value())
			if err != nil {
				return d, err
			}
			d.Properties = append(d.Properties, p)
		}
	}

	if extra := v.LookupPath(cue.ParsePath("additionalProperties")); extra.Exists() {
		p, err := decodeProperty(name+"[*]", extra)
		if err != nil {
			return d, err
		}
		d.AdditionalProperties = &p
	}
	return d, nil
}

func decodeProperty(name string, v cue.Value) (PropertyDecl, error) {
	d := PropertyDecl{Name: name, Pos: v.Pos()}
	var err error

	if d.Description, err = optString(v, "description"); err != nil {
		return d, err
	}
	if d.Ref, err = optString(v, "ref"); err != nil {
		return d, err
	}
	if d.Type, err = optStrings(v, "type"); err != nil {
		return d, err
	}
	if d.Ref == "" && len(d.Type) == 0 {
		return d, &CompileError{Field: name, Message: "property needs a ref or a type", Pos: v.Pos()}
	}
	if d.Value, err = optBool(v, "value"); err != nil {
		return d, err
	}
	if d.RequiredForDisplay, err = optBool(v, "requiredForDisplay"); err != nil {
		return d, err
	}
	if def := v.LookupPath(cue.ParsePath("default")); def.Exists() {
		if err := def.Decode(&d.Default); err != nil {
			return d, formatCUEError(err)
		}
	}
	return d, nil
}

func optString(v cue.Value, field string) (string, error) {
	f := v.LookupPath(cue.ParsePath(field))
	if !f.Exists() {
		return "", nil
	}
	s, err := f.String()
	if err != nil {
		return "", &CompileError{Field: field, Message: "must be a string", Pos: f.Pos()}
	}
	return s, nil
}

func optBool(v cue.Value, field string) (bool, error) {
	f := v.LookupPath(cue.ParsePath(field))
	if !f.Exists() {
		return false, nil
	}
	b, err := f.Bool()
	if err != nil {
		return false, &CompileError{Field: field, Message: "must be a boolean", Pos: f.Pos()}
	}
	return b, nil
}

// optStrings accepts a single string or a list of strings.
func optStrings(v cue.Value, field string) ([]string, error) {
	f := v.LookupPath(cue.ParsePath(field))
	if !f.Exists() {
		return nil, nil
	}
	if s, err := f.String(); err == nil {
		return []string{s}, nil
	}
	iter, err := f.List()
	if err != nil {
		return nil, &CompileError{Field: field, Message: "must be a string or a list of strings", Pos: f.Pos()}
	}
	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, &CompileError{Field: field, Message: "must be a string or a list of strings", Pos: iter.Value().Pos()}
		}
		out = append(out, s)
	}
	return out, nil
}
