package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sm665371/czml-writer/czml"
	"github.com/sm665371/czml-writer/internal/emit"
	"github.com/sm665371/czml-writer/internal/store"
)

// EmitResult is the outcome of writing a document to a file.
type EmitResult struct {
	Output string `json:"output"`
}

func (r EmitResult) String() string {
	return fmt.Sprintf("✓ Wrote %s", r.Output)
}

var interpolationAlgorithms = map[string]czml.InterpolationAlgorithm{
	"linear":   czml.InterpolationLinear,
	"lagrange": czml.InterpolationLagrange,
	"hermite":  czml.InterpolationHermite,
}

type emitOptions struct {
	db            string
	output        string
	chunk         int
	pretty        bool
	name          string
	interpolation string
	degree        int
}

// NewEmitCommand creates the emit command.
func NewEmitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Write stored tracks as a CZML document",
		Long: `Write every track of a sample database as a CZML document.

Samples are streamed from the database in chunks of --chunk, so documents
larger than memory can be written. The document goes to stdout unless
--output names a file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.db, "db", "", "sample database path (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().IntVar(&opts.chunk, "chunk", emit.DefaultChunkSize, "samples read per query")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the document")
	cmd.Flags().StringVar(&opts.name, "name", "", "document name")
	cmd.Flags().StringVar(&opts.interpolation, "interpolation", "", "position interpolation (linear|lagrange|hermite)")
	cmd.Flags().IntVar(&opts.degree, "degree", 1, "interpolation degree")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runEmit(rootOpts *RootOptions, opts *emitOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	logger := rootOpts.logger(cmd.ErrOrStderr())

	emitOpts := []emit.Option{
		emit.WithChunkSize(opts.chunk),
		emit.WithPrettyFormatting(opts.pretty),
		emit.WithDocumentName(opts.name),
		emit.WithLogger(logger),
	}
	if opts.interpolation != "" {
		alg, ok := interpolationAlgorithms[strings.ToLower(opts.interpolation)]
		if !ok {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric,
				fmt.Errorf("invalid interpolation %q: must be linear, lagrange or hermite", opts.interpolation))
		}
		emitOpts = append(emitOpts, emit.WithInterpolation(alg, opts.degree))
	}

	// Opening creates a missing database, so check first.
	if _, err := os.Stat(opts.db); err != nil {
		return fail(formatter, notFound("database", opts.db, err))
	}
	st, err := store.Open(opts.db)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, err)
	}
	defer st.Close()

	var w io.Writer = cmd.OutOrStdout()
	toFile := opts.output != "-"
	if toFile {
		f, err := os.Create(opts.output)
		if err != nil {
			return fail(formatter, &LoadError{Code: ErrCodeWriteFailed, Message: err.Error(), Exit: ExitCommandError})
		}
		defer f.Close()
		w = f
	}

	if err := emit.New(st, emitOpts...).Emit(cmd.Context(), w); err != nil {
		code := ErrCodeEmit
		if errors.Is(err, store.ErrTrackNotFound) {
			code = ErrCodeDatabase
		}
		return formatter.Fail(ExitFailure, code, err)
	}

	if toFile {
		return formatter.Success(EmitResult{Output: opts.output})
	}
	return nil
}
