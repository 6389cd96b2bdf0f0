package generator

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/sm665371/czml-writer/internal/overload"
	"github.com/sm665371/czml-writer/internal/schema"
)

// writer holds what is needed to emit one schema's writer.
type writer struct {
	g      *Generator
	s      *schema.Schema
	root   bool
	typ    string
	consts map[*schema.Property]string

	methods   map[string]bool
	imports   map[string]bool
	overloads map[*schema.Property][]*overload.Overload
	b         bytes.Buffer
}

func (g *Generator) newWriter(s *schema.Schema, root bool) (*writer, error) {
	w := &writer{
		g:         g,
		s:         s,
		root:      root,
		typ:       g.writerType(s),
		consts:    make(map[*schema.Property]string),
		methods:   make(map[string]bool),
		imports:   make(map[string]bool),
		overloads: make(map[*schema.Property][]*overload.Overload),
	}

	if err := g.declare(w.typ, s); err != nil {
		return nil, err
	}
	if err := g.declare(g.constructor(s), s); err != nil {
		return nil, err
	}
	for _, p := range s.AllProperties() {
		c := g.ident(s.PascalName() + "Writer" + p.PascalName() + "PropertyName")
		if err := g.declare(c, s); err != nil {
			return nil, err
		}
		w.consts[p] = c

		if p.IsLeaf() {
			ovs, err := w.resolve(p)
			if err != nil {
				return nil, err
			}
			w.overloads[p] = ovs
		}
	}
	for _, imp := range g.cfg.Imports {
		w.imports[imp] = true
	}
	if g.rt("") != "" {
		w.imports[g.cfg.RuntimePath] = true
	}
	return w, nil
}

func (w *writer) resolve(p *schema.Property) ([]*overload.Overload, error) {
	ovs, err := w.g.resolver.Resolve(p)
	if err != nil {
		return nil, err
	}
	for _, o := range ovs {
		for _, param := range o.Parameters {
			if reservedParams[param.Name] {
				return nil, &overload.SchemaError{
					Property: p.String(),
					Message:  fmt.Sprintf("parameter name %q is reserved", param.Name),
					Pos:      p.Pos,
				}
			}
		}
	}
	return ovs, nil
}

// method records a method name of the writer, failing on collision.
func (w *writer) method(name string, p *schema.Property) (string, error) {
	name = w.g.ident(name)
	if w.methods[name] || runtimeMethods[name] {
		return "", &overload.SchemaError{
			Property: p.String(),
			Message:  fmt.Sprintf("method %s.%s is generated twice or shadows the runtime", w.typ, name),
			Pos:      p.Pos,
		}
	}
	w.methods[name] = true
	return name, nil
}

func (w *writer) printf(format string, args ...any) {
	fmt.Fprintf(&w.b, format, args...)
}

func (w *writer) use(o *overload.Overload) {
	for _, imp := range o.Imports {
		w.imports[imp] = true
	}
}

// emit returns the unformatted source of the writer's file.
func (w *writer) emit() ([]byte, error) {
	w.emitConstants()
	w.emitType()

	firstValue := true
	for _, p := range w.s.AllProperties() {
		var err error
		if p.IsLeaf() {
			err = w.emitLeaf(p, p.IsValue && firstValue)
		} else {
			err = w.emitComposite(p)
		}
		if err != nil {
			return nil, err
		}
		if p.IsValue {
			firstValue = false
		}
	}
	if ap := w.s.AdditionalProperties; ap != nil {
		if err := w.emitAdditional(ap); err != nil {
			return nil, err
		}
	}
	if !w.root {
		if err := w.emitAdaptors(); err != nil {
			return nil, err
		}
		w.emitIntervalList()
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "%s\n\npackage %s\n\n", Header, w.g.cfg.Package)
	if len(w.imports) > 0 {
		imports := make([]string, 0, len(w.imports))
		for imp := range w.imports {
			imports = append(imports, imp)
		}
		slices.Sort(imports)
		out.WriteString("import (\n")
		for _, imp := range imports {
			fmt.Fprintf(&out, "\t%q\n", imp)
		}
		out.WriteString(")\n\n")
	}
	out.Write(w.b.Bytes())
	return out.Bytes(), nil
}

func (w *writer) emitConstants() {
	props := w.s.AllProperties()
	if len(props) == 0 {
		return
	}
	w.printf("// Property names of %s.\n", w.typ)
	w.printf("const (\n")
	for _, p := range props {
		w.printf("\t%s = %q\n", w.consts[p], p.Name)
	}
	w.printf(")\n\n")
}

func (w *writer) emitType() {
	if w.root {
		w.printf("// %s writes a %s.", w.typ, w.s.Name)
	} else {
		w.printf("// %s writes a %s property.", w.typ, w.s.Name)
	}
	if d := describeSchema(w.s); d != "" {
		w.printf(" It defines %s", d)
	}
	w.printf("\n")
	for _, attr := range w.g.cfg.Attributes {
		if !strings.HasPrefix(attr, "//") {
			attr = "//" + attr
		}
		w.printf("%s\n", attr)
	}

	w.printf("type %s struct {\n", w.typ)
	w.printf("\t*%s\n", w.embedded())

	var fields []string
	for _, p := range w.s.AllProperties() {
		if !p.IsLeaf() {
			fields = append(fields, fmt.Sprintf("\t%s *%s\n", fieldName(p.PascalName()), w.g.writerType(p.ValueType)))
		}
	}
	if !w.root {
		for _, a := range w.adaptors() {
			fields = append(fields, fmt.Sprintf("\t%s *%s\n", a.field, a.typ))
		}
	}
	if len(fields) > 0 {
		w.printf("\n")
		for _, f := range fields {
			w.printf("%s", f)
		}
	}
	w.printf("}\n\n")

	if !w.root {
		for _, iface := range w.s.Interfaces {
			w.printf("var _ %s = (*%s)(nil)\n", w.g.rt(iface), w.typ)
		}
		if len(w.s.Interfaces) > 0 {
			w.printf("\n")
		}
	}

	if w.root {
		w.printf("// %s returns an unopened packet writer.\n", w.g.constructor(w.s))
		w.printf("func %s() *%s {\n", w.g.constructor(w.s), w.typ)
		w.printf("\treturn &%s{ElementWriter: %s()}\n", w.typ, w.g.rt("NewPacketElement"))
		w.printf("}\n\n")
		return
	}
	embedded := "PropertyWriter"
	if w.s.Interpolatable {
		embedded = "InterpolatablePropertyWriter"
	}
	w.printf("// %s returns an unopened writer for the named property.\n", w.g.constructor(w.s))
	w.printf("func %s(propertyName string) *%s {\n", w.g.constructor(w.s), w.typ)
	w.printf("\treturn &%s{%s: %s(propertyName)}\n", w.typ, embedded, w.g.rt("New"+embedded))
	w.printf("}\n\n")
}

// embedded is the runtime type the writer embeds.
func (w *writer) embedded() string {
	switch {
	case w.root:
		return w.g.rt("ElementWriter")
	case w.s.Interpolatable:
		return w.g.rt("InterpolatablePropertyWriter")
	default:
		return w.g.rt("PropertyWriter")
	}
}

func (w *writer) emitLeaf(p *schema.Property, firstValue bool) error {
	key := w.consts[p]
	for _, o := range w.overloads[p] {
		name, err := w.method("Write"+p.PascalName()+o.Suffix, p)
		if err != nil {
			return err
		}
		w.use(o)

		if d := p.Describe(); d != "" {
			w.printf("// %s writes the %s property, which is %s\n", name, p.Name, d)
		} else {
			w.printf("// %s writes the %s property.\n", name, p.Name)
		}
		w.printf("func (w *%s) %s(%s) {\n", w.typ, name, formatParams(o.Parameters))

		if o.Delegates() {
			args, err := w.g.expand(o.CallArgs, key)
			if err != nil {
				return err
			}
			w.printf("\tw.%s(%s)\n}\n\n", w.g.ident("Write"+p.PascalName()+o.CallSuffix), args)
			continue
		}

		switch {
		case w.root:
			if o.WritePropertyName {
				w.printf("\tw.WriteMemberName(%s)\n", key)
			}
		case firstValue && !o.NeedsInterval:
			if o.WritePropertyName {
				w.printf("\tw.OpenDirectValue(%s)\n", key)
			} else {
				w.printf("\tw.OpenDirectValue(\"\")\n")
			}
		default:
			w.printf("\tw.OpenIntervalIfNecessary()\n")
			if o.WritePropertyName {
				w.printf("\tw.WriteMemberName(%s)\n", key)
			}
		}
		body, err := w.g.expand(o.WriteValue, key)
		if err != nil {
			return err
		}
		w.printf("\t%s\n}\n\n", body)
	}
	return nil
}

func (w *writer) emitComposite(p *schema.Property) error {
	child := w.g.writerType(p.ValueType)
	field := fieldName(p.PascalName())

	accessor, err := w.method(p.PascalName()+"Writer", p)
	if err != nil {
		return err
	}
	w.printf("// %s returns the writer for the %s property. It must be opened before use.\n", accessor, p.Name)
	w.printf("func (w *%s) %s() *%s {\n", w.typ, accessor, child)
	w.printf("\tif w.%s == nil {\n", field)
	w.printf("\t\tw.%s = %s(%s)\n", field, w.g.constructor(p.ValueType), w.consts[p])
	w.printf("\t}\n\treturn w.%s\n}\n\n", field)

	open, err := w.method("Open"+p.PascalName()+"Property", p)
	if err != nil {
		return err
	}
	w.printf("// %s opens and returns the writer for the %s property.\n", open, p.Name)
	w.printf("func (w *%s) %s() *%s {\n", w.typ, open, child)
	if !w.root {
		w.printf("\tw.OpenIntervalIfNecessary()\n")
	}
	w.printf("\treturn %s(w, w.%s())\n}\n\n", w.g.rt("OpenAndReturn"), accessor)

	firstValue := true
	for _, nested := range p.ValueType.AllProperties() {
		if !nested.IsValue || !nested.IsLeaf() {
			continue
		}
		ovs, err := w.resolve(nested)
		if err != nil {
			return err
		}
		sub := nested.PascalName()
		if firstValue || sub == p.PascalName() {
			sub = ""
		}
		for _, o := range ovs {
			name, err := w.method("Write"+p.PascalName()+"Property"+sub+o.Suffix, p)
			if err != nil {
				return err
			}
			w.use(o)
			w.printf("// %s writes the %s property as a %s value.\n", name, p.Name, nested.Name)
			w.printf("func (w *%s) %s(%s) {\n", w.typ, name, formatParams(o.Parameters))
			w.printf("\twriter := w.%s()\n", open)
			w.printf("\tdefer writer.Close()\n")
			w.printf("\twriter.%s(%s)\n}\n\n", w.g.ident("Write"+nested.PascalName()+o.Suffix), paramNames(o.Parameters))
		}
		firstValue = false
	}
	return nil
}

func (w *writer) emitAdditional(ap *schema.Property) error {
	vt := ap.ValueType
	if ap.IsLeaf() {
		return &overload.SchemaError{
			Property: ap.String(),
			Message:  "additional properties must refer to an object schema",
			Pos:      ap.Pos,
		}
	}
	child := w.g.writerType(vt)

	get, err := w.method("Get"+vt.PascalName()+"Writer", ap)
	if err != nil {
		return err
	}
	w.printf("// %s returns a new writer for a %s property named name. It must be opened before use.\n", get, vt.Name)
	w.printf("func (w *%s) %s(name string) *%s {\n", w.typ, get, child)
	w.printf("\treturn %s(name)\n}\n\n", w.g.constructor(vt))

	open, err := w.method("Open"+vt.PascalName()+"Property", ap)
	if err != nil {
		return err
	}
	w.printf("// %s opens and returns a new writer for a %s property named name.\n", open, vt.Name)
	w.printf("func (w *%s) %s(name string) *%s {\n", w.typ, open, child)
	if !w.root {
		w.printf("\tw.OpenIntervalIfNecessary()\n")
	}
	w.printf("\treturn %s(w, w.%s(name))\n}\n\n", w.g.rt("OpenAndReturn"), get)
	return nil
}

// adaptor is the capability adaptor of one value property.
type adaptor struct {
	prop       *schema.Property
	field      string
	typ        string
	write      string
	writeRange string
}

// adaptors lists the value properties whose canonical overload takes a
// single parameter.
func (w *writer) adaptors() []adaptor {
	var out []adaptor
	for _, p := range w.s.AllProperties() {
		if !p.IsValue || !p.IsLeaf() {
			continue
		}
		ovs := w.overloads[p]
		if len(ovs) == 0 || len(ovs[0].Parameters) != 1 {
			continue
		}
		v := ovs[0].Parameters[0].Type
		a := adaptor{
			prop:  p,
			field: fieldName(p.PascalName()) + "Adaptor",
			write: w.g.ident("Write" + p.PascalName() + ovs[0].Suffix),
		}
		if samples := w.g.resolver.SampleOverload(p.ValueType); w.s.Interpolatable && samples != nil {
			a.typ = fmt.Sprintf("%s[%s]", w.g.rt("InterpolatableValuePropertyAdaptor"), v)
			a.writeRange = w.g.ident("Write" + p.PascalName() + samples.Suffix)
		} else {
			a.typ = fmt.Sprintf("%s[%s]", w.g.rt("ValuePropertyAdaptor"), v)
		}
		out = append(out, a)
	}
	return out
}

func (w *writer) emitAdaptors() error {
	for _, a := range w.adaptors() {
		name, err := w.method("As"+a.prop.PascalName(), a.prop)
		if err != nil {
			return err
		}
		w.printf("// %s returns the %s representation of the writer as an adaptor sharing its scope.\n", name, a.prop.Name)
		w.printf("func (w *%s) %s() *%s {\n", w.typ, name, a.typ)
		w.printf("\tif w.%s == nil {\n", a.field)
		if a.writeRange != "" {
			w.printf("\t\tw.%s = %s(w.PropertyWriter, w.%s, w.%s)\n", a.field, w.g.rt("NewInterpolatableValuePropertyAdaptor"), a.write, a.writeRange)
		} else {
			w.printf("\t\tw.%s = %s(w.PropertyWriter, w.%s)\n", a.field, w.g.rt("NewValuePropertyAdaptor"), a.write)
		}
		w.printf("\t}\n\treturn w.%s\n}\n\n", a.field)
	}
	return nil
}

func (w *writer) emitIntervalList() {
	list := fmt.Sprintf("*%s[*%s]", w.g.rt("IntervalListWriter"), w.typ)
	w.printf("// OpenMultipleIntervals writes the property as a list of intervals.\n")
	w.printf("func (w *%s) OpenMultipleIntervals() %s {\n", w.typ, list)
	w.printf("\treturn %s(w.PropertyWriter, func() *%s {\n", w.g.rt("OpenIntervalList"), w.typ)
	w.printf("\t\treturn %s(w.PropertyName())\n", w.g.constructor(w.s))
	w.printf("\t})\n}\n")
}

func formatParams(params []overload.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

func paramNames(params []overload.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name
	}
	return strings.Join(parts, ", ")
}

// describeSchema returns the schema description with its first letter
// lowered and a trailing period.
func describeSchema(s *schema.Schema) string {
	p := schema.Property{Description: s.Description}
	return p.Describe()
}
