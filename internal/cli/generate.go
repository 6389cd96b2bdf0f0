package cli

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sm665371/czml-writer/internal/generator"
	"github.com/sm665371/czml-writer/internal/schema"
)

// GenerateResult is the outcome of a generate run.
type GenerateResult struct {
	Dir    string                `json:"dir,omitempty"`
	Files  []string              `json:"files"`
	Cycles []schema.CycleWarning `json:"cycles,omitempty"`
	DryRun bool                  `json:"dry_run,omitempty"`
}

func (r GenerateResult) String() string {
	if r.DryRun {
		return fmt.Sprintf("✓ Would generate %d writer(s)", len(r.Files))
	}
	return fmt.Sprintf("✓ Generated %d writer(s) in %s", len(r.Files), r.Dir)
}

type generateOptions struct {
	config string
	root   string
	output string
	watch  bool
	dryRun bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <schema-path>",
		Short: "Generate writer types from a schema",
		Long: `Generate one Go writer type per schema reachable from the root schema.

The schema path is a CUE file or a directory of CUE files. Overloads for
the value types come from the YAML configuration given with --config.
With --watch, writers are regenerated whenever an input changes.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "overload configuration file (required)")
	cmd.Flags().StringVar(&opts.root, "root", "Packet", "root schema")
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "regenerate when inputs change")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "generate without writing files")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *generateOptions, schemaPath string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	logger := rootOpts.logger(cmd.ErrOrStderr())

	err := generateOnce(formatter, logger, opts, schemaPath)
	if !opts.watch {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	iw, werr := newInputWatcher(logger, schemaPath, opts.config)
	if werr != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, werr)
	}
	defer iw.Close()

	formatter.VerboseLog("watching %s and %s", schemaPath, opts.config)
	return watchLoop(ctx, iw, func() {
		// Failures are reported and the watch continues.
		_ = generateOnce(formatter, logger, opts, schemaPath)
	})
}

// generateOnce loads the inputs and generates writers with a fresh
// generator, so that every run emits the full set.
func generateOnce(formatter *OutputFormatter, logger *slog.Logger, opts *generateOptions, schemaPath string) error {
	set, err := loadSchema(schemaPath)
	if err != nil {
		return fail(formatter, classify(err))
	}
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return fail(formatter, classify(err))
	}
	root, err := lookupRoot(set, opts.root)
	if err != nil {
		return fail(formatter, classify(err))
	}

	cycles := schema.AnalyzeCycles(set)
	for _, c := range cycles {
		logger.Warn("schema reference cycle", "path", c.Path, "level", c.Level)
	}

	files, err := generator.New(cfg, generator.WithLogger(logger)).Generate(root)
	if err != nil {
		return fail(formatter, classify(err))
	}

	result := GenerateResult{
		Files:  generator.Names(files),
		Cycles: cycles,
		DryRun: opts.dryRun,
	}
	if !opts.dryRun {
		if err := generator.WriteFiles(opts.output, files); err != nil {
			return fail(formatter, &LoadError{Code: ErrCodeWriteFailed, Message: err.Error(), Exit: ExitCommandError})
		}
		result.Dir = opts.output
	}
	return formatter.Success(result)
}
