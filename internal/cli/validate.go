package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sm665371/czml-writer/internal/generator"
	"github.com/sm665371/czml-writer/internal/overload"
	"github.com/sm665371/czml-writer/internal/schema"
)

// ValidationIssue is one problem found in the inputs.
type ValidationIssue struct {
	Code     string `json:"code"`
	Property string `json:"property,omitempty"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool                  `json:"valid"`
	Schemas int                   `json:"schemas"`
	Issues  []ValidationIssue     `json:"issues,omitempty"`
	Cycles  []schema.CycleWarning `json:"cycles,omitempty"`
}

func (r ValidationResult) String() string {
	var b strings.Builder
	if r.Valid {
		fmt.Fprintf(&b, "✓ %d schema(s) valid", r.Schemas)
	} else {
		fmt.Fprintf(&b, "✗ Validation failed with %d issue(s)", len(r.Issues))
		for _, issue := range r.Issues {
			b.WriteString("\n  ")
			if issue.Line > 0 {
				fmt.Fprintf(&b, "%s:%d: ", issue.File, issue.Line)
			}
			fmt.Fprintf(&b, "[%s] %s", issue.Code, issue.Message)
		}
	}
	for _, c := range r.Cycles {
		fmt.Fprintf(&b, "\n  warning: %s", c.Message)
	}
	return b.String()
}

type validateOptions struct {
	config string
	root   string
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <schema-path>",
		Short: "Validate a schema without writing files",
		Long: `Validate a schema and its overload configuration without generating output.

Every leaf property must resolve to at least one overload. With --root, the
writers are also generated in memory so identifier collisions are reported.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "overload configuration file")
	cmd.Flags().StringVar(&opts.root, "root", "", "root schema to generate in memory")

	return cmd
}

func runValidate(rootOpts *RootOptions, opts *validateOptions, schemaPath string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	// Load failures stop validation before any per-property check.
	set, err := loadSchema(schemaPath)
	if err != nil {
		return fail(formatter, classify(err))
	}
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return fail(formatter, classify(err))
	}

	result := ValidationResult{
		Schemas: len(set.Schemas()),
		Cycles:  schema.AnalyzeCycles(set),
	}
	result.Issues = resolveAll(overload.NewResolver(cfg), set)

	if opts.root != "" {
		if issue, ok := generateInMemory(cfg, set, opts.root); !ok {
			result.Issues = append(result.Issues, issue)
		}
	}
	result.Valid = len(result.Issues) == 0

	if err := formatter.Success(result); err != nil {
		return err
	}
	if !result.Valid {
		return NewExitError(ExitFailure, "validation failed")
	}
	return nil
}

// resolveAll resolves the overloads of every leaf property of set.
func resolveAll(r *overload.Resolver, set *schema.Set) []ValidationIssue {
	var issues []ValidationIssue
	check := func(p *schema.Property) {
		if p == nil || !p.IsLeaf() {
			return
		}
		if _, err := r.Resolve(p); err != nil {
			issues = append(issues, issueFrom(err))
		}
	}
	for _, s := range set.Schemas() {
		if s.FromType {
			continue
		}
		for _, p := range s.AllProperties() {
			check(p)
		}
		check(s.AdditionalProperties)
	}
	return issues
}

func generateInMemory(cfg *overload.Config, set *schema.Set, rootName string) (ValidationIssue, bool) {
	root, err := lookupRoot(set, rootName)
	if err == nil {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		_, err = generator.New(cfg, generator.WithLogger(logger)).Generate(root)
	}
	if err != nil {
		return issueFrom(err), false
	}
	return ValidationIssue{}, true
}

func issueFrom(err error) ValidationIssue {
	le := classify(err)
	issue := ValidationIssue{Code: le.Code, Message: le.Message, Line: le.Line()}
	if issue.Line > 0 {
		issue.File = le.Pos.Filename()
	}
	var se *overload.SchemaError
	if errors.As(err, &se) {
		issue.Property = se.Property
	}
	return issue
}
