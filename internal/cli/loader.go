package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue/token"

	"github.com/sm665371/czml-writer/internal/overload"
	"github.com/sm665371/czml-writer/internal/schema"
)

// LoadError is an input error with its error code and, when known, the CUE
// position it refers to.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
	Exit    int
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Line returns the line of the error position, or 0.
func (e *LoadError) Line() int {
	if e.Pos.IsValid() {
		return e.Pos.Line()
	}
	return 0
}

// Location returns the error position, or nil when it is unknown.
func (e *LoadError) Location() *Location {
	if !e.Pos.IsValid() {
		return nil
	}
	return &Location{File: e.Pos.Filename(), Line: e.Pos.Line()}
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeLoadFailed  = "E004" // CUE load or build failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeWriteFailed = "E007" // File write error

	ErrCodeSchema     = "E101" // Invalid schema declaration
	ErrCodeConfig     = "E102" // Invalid overload configuration
	ErrCodeGeneration = "E103" // Property cannot be generated
	ErrCodeNoRoot     = "E104" // Root schema not found

	ErrCodeDatabase = "E201" // Sample store error
	ErrCodeEmit     = "E202" // Document emission failed
)

// loadSchema loads a schema file or package directory.
func loadSchema(path string) (*schema.Set, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, notFound("schema", path, err)
	}
	set, err := schema.Load(path)
	if err != nil {
		return nil, classify(err)
	}
	return set, nil
}

// loadConfig reads the overload configuration. An empty path yields the
// configuration of an exported package named czml with no configured types.
func loadConfig(path string) (*overload.Config, error) {
	if path == "" {
		return &overload.Config{Package: "czml", Exported: true}, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, notFound("config", path, err)
	}
	cfg, err := overload.LoadConfig(path)
	if err != nil {
		return nil, classify(err)
	}
	return cfg, nil
}

// lookupRoot returns the named root schema.
func lookupRoot(set *schema.Set, name string) (*schema.Schema, error) {
	root, ok := set.Lookup(name)
	if !ok {
		return nil, &LoadError{Code: ErrCodeNoRoot, Message: fmt.Sprintf("root schema %q not found", name), Exit: ExitFailure}
	}
	return root, nil
}

func notFound(what, path string, err error) *LoadError {
	msg := fmt.Sprintf("%s path not found: %s", what, path)
	if !errors.Is(err, fs.ErrNotExist) {
		msg = fmt.Sprintf("error accessing %s path %s: %v", what, path, err)
	}
	return &LoadError{Code: ErrCodeNotFound, Message: msg, Exit: ExitCommandError}
}

// classify maps an error from the schema, overload or generator packages to
// a LoadError with its code and position.
func classify(err error) *LoadError {
	var (
		loadErr    *LoadError
		compileErr *schema.CompileError
		configErr  *overload.ConfigError
		schemaErr  *overload.SchemaError
	)
	switch {
	case errors.As(err, &loadErr):
		return loadErr
	case errors.As(err, &compileErr):
		code := ErrCodeSchema
		if compileErr.Field == "cue" {
			code = ErrCodeLoadFailed
		}
		return &LoadError{Code: code, Message: compileErr.Message, Pos: compileErr.Pos, Exit: ExitFailure}
	case errors.As(err, &configErr):
		return &LoadError{Code: ErrCodeConfig, Message: configErr.Error(), Exit: ExitFailure}
	case errors.As(err, &schemaErr):
		return &LoadError{Code: ErrCodeGeneration, Message: fmt.Sprintf("property %s: %s", schemaErr.Property, schemaErr.Message), Pos: schemaErr.Pos, Exit: ExitFailure}
	default:
		return &LoadError{Code: ErrCodeGeneric, Message: err.Error(), Exit: ExitFailure}
	}
}

// fail reports a LoadError through f and returns the matching ExitError.
func fail(f *OutputFormatter, err *LoadError) error {
	return f.report(err.Exit, err.Code, err.Message, err.Location(), err)
}
