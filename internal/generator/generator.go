// Package generator compiles a schema Set into Go writer types built on the
// czml runtime.
//
// Each distinct schema reachable from the root yields exactly one writer,
// however many properties refer to it; reference cycles are followed once.
// The root schema becomes the packet writer, which opens and closes the
// packet object instead of a property.
package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/sm665371/czml-writer/internal/overload"
	"github.com/sm665371/czml-writer/internal/schema"
)

// Header starts every generated file.
const Header = "// Code generated by czmlgen. DO NOT EDIT."

// File is one generated Go source file.
type File struct {
	Name    string
	Schema  *schema.Schema
	Content []byte
}

// Generator emits writers. A Generator memoizes what it has emitted, so a
// second Generate call only returns writers not emitted before.
type Generator struct {
	cfg      *overload.Config
	resolver *overload.Resolver
	logger   *slog.Logger

	emitted    map[*schema.Schema]bool
	inProgress map[*schema.Schema]bool
	globals    map[string]string
	files      []File

	// marked lists the schemas marked emitted by the running Generate call.
	marked []*schema.Schema
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New returns a Generator for cfg.
func New(cfg *overload.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:        cfg,
		resolver:   overload.NewResolver(cfg),
		logger:     slog.Default(),
		emitted:    make(map[*schema.Schema]bool),
		inProgress: make(map[*schema.Schema]bool),
		globals:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Emitted reports whether a writer for s has been generated.
func (g *Generator) Emitted(s *schema.Schema) bool { return g.emitted[s] }

// Generate emits the packet writer for root and a writer for every schema
// it reaches. Files are returned dependencies first. A failed call leaves
// the generator as it was before the call.
func (g *Generator) Generate(root *schema.Schema) ([]File, error) {
	g.files = nil
	g.marked = nil
	if err := g.generate(root, true); err != nil {
		g.rollback()
		return nil, err
	}
	g.logger.Info("generated writers", "root", root.Name, "files", len(g.files))
	return g.files, nil
}

func (g *Generator) generate(s *schema.Schema, root bool) error {
	if g.emitted[s] {
		if g.inProgress[s] {
			g.logger.Warn("schema reference cycle", "schema", s.Name)
		}
		return nil
	}
	g.emitted[s] = true
	g.marked = append(g.marked, s)
	g.inProgress[s] = true
	defer delete(g.inProgress, s)

	g.logger.Debug("generating writer", "schema", s.Name, "root", root)

	for _, p := range s.AllProperties() {
		if !p.IsLeaf() {
			if err := g.generate(p.ValueType, false); err != nil {
				return err
			}
		}
	}
	if ap := s.AdditionalProperties; ap != nil && !ap.IsLeaf() {
		if err := g.generate(ap.ValueType, false); err != nil {
			return err
		}
	}

	w, err := g.newWriter(s, root)
	if err != nil {
		return fmt.Errorf("schema %s: %w", s.Name, err)
	}
	src, err := w.emit()
	if err != nil {
		return fmt.Errorf("schema %s: %w", s.Name, err)
	}

	name := snake(s.PascalName()) + "_writer.go"
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", name, err)
	}
	g.files = append(g.files, File{Name: name, Schema: s, Content: formatted})
	return nil
}

// rollback forgets the schemas and identifiers of a failed Generate call.
func (g *Generator) rollback() {
	for _, s := range g.marked {
		delete(g.emitted, s)
		for ident, owner := range g.globals {
			if owner == s.Name {
				delete(g.globals, ident)
			}
		}
	}
	g.marked = nil
	g.files = nil
}

// declare records a package-level identifier, failing on collision.
func (g *Generator) declare(ident string, s *schema.Schema) error {
	if owner, dup := g.globals[ident]; dup {
		return &overload.SchemaError{
			Property: s.Name,
			Message:  fmt.Sprintf("identifier %s collides with one generated for %s", ident, owner),
			Pos:      s.Pos,
		}
	}
	g.globals[ident] = s.Name
	return nil
}

// ident applies the configured access level to an exported identifier.
func (g *Generator) ident(exported string) string {
	if g.cfg.Exported {
		return exported
	}
	return lowerCamel(exported)
}

// rt qualifies a runtime identifier.
func (g *Generator) rt(name string) string {
	if g.cfg.RuntimePath == "" || g.cfg.RuntimeName == g.cfg.Package {
		return name
	}
	return g.cfg.RuntimeName + "." + name
}

func (g *Generator) writerType(s *schema.Schema) string {
	return g.ident(s.PascalName() + "Writer")
}

func (g *Generator) constructor(s *schema.Schema) string {
	return g.ident("New" + s.PascalName() + "Writer")
}

type templateData struct {
	Key     string
	Runtime string
}

// expand renders a configured Go fragment. {{.Key}} is the property name
// constant and {{.Runtime}} the runtime package qualifier.
func (g *Generator) expand(fragment, key string) (string, error) {
	t, err := template.New("fragment").Option("missingkey=error").Parse(fragment)
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", fragment, err)
	}
	var b bytes.Buffer
	if err := t.Execute(&b, templateData{Key: key, Runtime: g.rt("")}); err != nil {
		return "", fmt.Errorf("expanding %q: %w", fragment, err)
	}
	return b.String(), nil
}

// WriteFiles writes files into dir, creating it if needed.
func WriteFiles(dir string, files []File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}
	return nil
}

// Names returns the file names of files, sorted.
func Names(files []File) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	slices.Sort(names)
	return names
}
