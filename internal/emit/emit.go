// Package emit streams stored tracks into a CZML document.
//
// Samples are read from the source in chunks and handed to the position
// writer one chunk at a time, so memory use is bounded by the chunk size
// while the document is the same as if every sample were written at once.
package emit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sm665371/czml-writer/czml"
	"github.com/sm665371/czml-writer/internal/store"
)

// DefaultChunkSize is the number of samples read per query.
const DefaultChunkSize = 1000

// DocumentID is the id of the packet that starts every document.
const DocumentID = "document"

// Version is the CZML version written on the document packet.
const Version = "1.0"

// Source provides tracks and their samples. *store.Store implements it.
type Source interface {
	ReadTracks(ctx context.Context) ([]store.Track, error)
	SampleSpan(ctx context.Context, trackID string) (store.Span, error)
	ReadSamples(ctx context.Context, trackID string, offset, limit int) ([]store.Sample, error)
}

var _ Source = (*store.Store)(nil)

// Emitter writes documents from a Source.
type Emitter struct {
	src    Source
	logger *slog.Logger

	chunkSize    int
	pretty       bool
	documentName string

	interpolate bool
	algorithm   czml.InterpolationAlgorithm
	degree      int
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithChunkSize sets how many samples are read and written at a time.
// Values below one are ignored.
func WithChunkSize(n int) Option {
	return func(e *Emitter) {
		if n > 0 {
			e.chunkSize = n
		}
	}
}

// WithPrettyFormatting indents the document.
func WithPrettyFormatting(pretty bool) Option {
	return func(e *Emitter) { e.pretty = pretty }
}

// WithDocumentName sets the name of the document packet.
func WithDocumentName(name string) Option {
	return func(e *Emitter) { e.documentName = name }
}

// WithInterpolation writes the interpolation settings of every position.
func WithInterpolation(a czml.InterpolationAlgorithm, degree int) Option {
	return func(e *Emitter) {
		e.interpolate = true
		e.algorithm = a
		e.degree = degree
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Emitter) { e.logger = l }
}

// New returns an Emitter reading from src.
func New(src Source, opts ...Option) *Emitter {
	e := &Emitter{
		src:       src,
		logger:    slog.Default(),
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit writes the document packet followed by one packet per track.
func (e *Emitter) Emit(ctx context.Context, w io.Writer) error {
	tracks, err := e.src.ReadTracks(ctx)
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	out := czml.NewOutputStream(w, e.pretty)
	err = czml.NewStreamWriter().Document(out, func(open func() *czml.PacketWriter) error {
		doc := open()
		doc.WriteID(DocumentID)
		if e.documentName != "" {
			doc.WriteName(e.documentName)
		}
		doc.WriteVersion(Version)
		doc.Close()

		for _, t := range tracks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := e.emitTrack(ctx, open(), t); err != nil {
				return fmt.Errorf("track %s: %w", t.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	e.logger.Info("emitted document", "tracks", len(tracks))
	return nil
}

func (e *Emitter) emitTrack(ctx context.Context, packet *czml.PacketWriter, t store.Track) error {
	defer packet.Close()

	span, err := e.src.SampleSpan(ctx, t.ID)
	if err != nil {
		return err
	}

	packet.WriteID(t.ID)
	if t.Name != "" {
		packet.WriteName(t.Name)
	}
	if span.Count > 0 {
		packet.WriteAvailabilityInterval(span.First, span.Last)
	}
	if t.Label != "" {
		label := packet.OpenLabelProperty()
		label.WriteTextProperty(t.Label)
		label.Close()
	}
	if span.Count > 0 {
		if err := e.emitPosition(ctx, packet, t.ID, span.Count); err != nil {
			return err
		}
	}

	e.logger.Debug("emitted track", "id", t.ID, "samples", span.Count)
	return nil
}

// emitPosition writes the samples of a track. The position writer is closed
// on every return so that a failed read still leaves balanced output.
func (e *Emitter) emitPosition(ctx context.Context, packet *czml.PacketWriter, trackID string, n int) error {
	position := packet.OpenPositionProperty()
	defer position.Close()
	if e.interpolate {
		position.WriteInterpolationAlgorithm(e.algorithm)
		position.WriteInterpolationDegree(e.degree)
	}

	dates := make([]time.Time, 0, min(e.chunkSize, n))
	values := make([]czml.Cartesian, 0, cap(dates))
	for offset := 0; offset < n; offset += e.chunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		samples, err := e.src.ReadSamples(ctx, trackID, offset, e.chunkSize)
		if err != nil {
			return err
		}
		dates, values = dates[:0], values[:0]
		for _, s := range samples {
			dates = append(dates, s.Time)
			values = append(values, s.Position)
		}
		position.WriteCartesianSamples(dates, values)
	}
	return nil
}
