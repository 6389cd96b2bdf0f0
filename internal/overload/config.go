// Package overload decides the Go signatures through which each schema
// property can be written.
package overload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the generator configuration document.
type Config struct {
	// Package is the name of the generated package.
	Package string

	// Exported selects exported identifiers for generated writers.
	Exported bool

	// RuntimePath is the import path of the writer runtime. It is empty, or
	// equal to the generated package, when writers are generated into the
	// runtime package itself.
	RuntimePath string

	// RuntimeName is the package name of the runtime.
	RuntimeName string

	// Attributes are comment directives written above every writer type.
	Attributes []string

	// Imports are added to every generated file.
	Imports []string

	// Types holds the configured overloads keyed by value type name.
	Types map[string]*TypeConfig
}

// TypeConfig lists the overloads of one value type.
type TypeConfig struct {
	// Samples names the suffix of the overload taking a sample sub-range,
	// making the type eligible for interpolatable adaptors.
	Samples   string
	Overloads []*Overload
}

// Parameter is one parameter of an overload.
type Parameter struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Overload is one write signature for a property.
type Overload struct {
	// Suffix is appended to the write method name. The canonical overload
	// has none.
	Suffix     string
	Parameters []Parameter

	// WriteValue is the Go statement writing the value, a text/template
	// expanded with {{.Key}} as the property name constant and {{.Runtime}}
	// as the runtime package qualifier. The receiver is w.
	WriteValue string

	// CallSuffix and CallArgs delegate to the overload with suffix
	// CallSuffix, passing CallArgs (expanded like WriteValue), instead of
	// writing directly.
	CallSuffix string
	CallArgs   string

	// WritePropertyName writes the representation key before WriteValue.
	WritePropertyName bool

	// NeedsInterval forces the property into its wrapped form even when the
	// value could be written in place of the property.
	NeedsInterval bool

	// Imports are added to files using this overload.
	Imports []string
}

// Delegates reports whether the overload calls another overload.
func (o *Overload) Delegates() bool { return o.CallArgs != "" || o.CallSuffix != "" }

// ConfigError reports an invalid configuration document.
type ConfigError struct {
	Type    string
	Index   int
	Message string
}

func (e *ConfigError) Error() string {
	if e.Type == "" {
		return "config: " + e.Message
	}
	return fmt.Sprintf("config: types.%s.overloads[%d]: %s", e.Type, e.Index, e.Message)
}

type configDoc struct {
	Package    string                   `yaml:"package"`
	Access     string                   `yaml:"access"`
	Runtime    runtimeDoc               `yaml:"runtime"`
	Attributes []string                 `yaml:"attributes"`
	Imports    []string                 `yaml:"imports"`
	Types      map[string]typeConfigDoc `yaml:"types"`
}

type runtimeDoc struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

type typeConfigDoc struct {
	Samples   string        `yaml:"samples"`
	Overloads []overloadDoc `yaml:"overloads"`
}

type overloadDoc struct {
	Suffix            string      `yaml:"suffix"`
	Parameters        []Parameter `yaml:"parameters"`
	WriteValue        string      `yaml:"writeValue"`
	CallSuffix        string      `yaml:"callSuffix"`
	CallArgs          string      `yaml:"callArgs"`
	WritePropertyName *bool       `yaml:"writePropertyName"`
	NeedsInterval     *bool       `yaml:"needsInterval"`
	Imports           []string    `yaml:"imports"`
}

// LoadConfig reads a configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a configuration document. Unknown fields are errors.
func ParseConfig(data []byte) (*Config, error) {
	var doc configDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg := &Config{
		Package:     doc.Package,
		RuntimePath: doc.Runtime.Path,
		RuntimeName: doc.Runtime.Name,
		Attributes:  doc.Attributes,
		Imports:     doc.Imports,
		Types:       make(map[string]*TypeConfig, len(doc.Types)),
	}
	if cfg.Package == "" {
		return nil, &ConfigError{Message: "package is required"}
	}

	switch doc.Access {
	case "", "exported":
		cfg.Exported = true
	case "unexported":
		cfg.Exported = false
	default:
		return nil, &ConfigError{Message: fmt.Sprintf("access must be exported or unexported, got %q", doc.Access)}
	}

	if cfg.RuntimePath != "" && cfg.RuntimeName == "" {
		return nil, &ConfigError{Message: "runtime.name is required with runtime.path"}
	}

	for name, tdoc := range doc.Types {
		tc, err := convertType(name, tdoc)
		if err != nil {
			return nil, err
		}
		cfg.Types[name] = tc
	}
	return cfg, nil
}

func convertType(name string, doc typeConfigDoc) (*TypeConfig, error) {
	if len(doc.Overloads) == 0 {
		return nil, &ConfigError{Type: name, Message: "at least one overload is required"}
	}

	tc := &TypeConfig{Samples: doc.Samples}
	suffixes := make(map[string]bool, len(doc.Overloads))
	for i, od := range doc.Overloads {
		o := &Overload{
			Suffix:            od.Suffix,
			Parameters:        od.Parameters,
			WriteValue:        od.WriteValue,
			CallSuffix:        od.CallSuffix,
			CallArgs:          od.CallArgs,
			WritePropertyName: od.WritePropertyName == nil || *od.WritePropertyName,
			NeedsInterval:     od.NeedsInterval == nil || *od.NeedsInterval,
			Imports:           od.Imports,
		}
		if suffixes[o.Suffix] {
			return nil, &ConfigError{Type: name, Index: i, Message: fmt.Sprintf("duplicate suffix %q", o.Suffix)}
		}
		suffixes[o.Suffix] = true

		if o.WriteValue == "" && !o.Delegates() {
			return nil, &ConfigError{Type: name, Index: i, Message: "writeValue or callArgs is required"}
		}
		if o.WriteValue != "" && o.Delegates() {
			return nil, &ConfigError{Type: name, Index: i, Message: "writeValue and callArgs are mutually exclusive"}
		}
		for _, p := range o.Parameters {
			if p.Name == "" || p.Type == "" {
				return nil, &ConfigError{Type: name, Index: i, Message: "parameters need a name and a type"}
			}
		}
		tc.Overloads = append(tc.Overloads, o)
	}

	for i, o := range tc.Overloads {
		if o.Delegates() && (!suffixes[o.CallSuffix] || o.CallSuffix == o.Suffix) {
			return nil, &ConfigError{Type: name, Index: i, Message: fmt.Sprintf("callSuffix %q names no other overload", o.CallSuffix)}
		}
	}
	if tc.Samples != "" && !suffixes[tc.Samples] {
		return nil, &ConfigError{Type: name, Message: fmt.Sprintf("samples names unknown suffix %q", tc.Samples)}
	}
	return tc, nil
}

// Overload returns the overload of tc with the given suffix.
func (tc *TypeConfig) Overload(suffix string) *Overload {
	for _, o := range tc.Overloads {
		if o.Suffix == suffix {
			return o
		}
	}
	return nil
}
