package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sm665371/czml-writer/czml"
)

// ErrTrackNotFound is returned when a track id has no row.
var ErrTrackNotFound = errors.New("track not found")

// Track is one object of the scene.
type Track struct {
	ID    string
	Name  string
	Label string
	Seq   int64
}

// Sample is a position at an instant.
type Sample struct {
	Time     time.Time
	Position czml.Cartesian
}

const timeLayout = time.RFC3339Nano

// WriteTrack inserts or updates a track and returns its id. A track without
// an id gets a UUIDv7. An existing track keeps its seq.
func (s *Store) WriteTrack(ctx context.Context, t Track) (string, error) {
	if t.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("write track: %w", err)
		}
		t.ID = id.String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tracks (id, name, label, seq)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM tracks))
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, label = excluded.label
	`, t.ID, t.Name, t.Label)
	if err != nil {
		return "", fmt.Errorf("write track: %w", err)
	}
	return t.ID, nil
}

// AppendSamples adds samples after the track's existing ones, in one
// transaction.
func (s *Store) AppendSamples(ctx context.Context, trackID string, samples []Sample) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("append samples: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tracks WHERE id = ?`, trackID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("append samples: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("append samples: %w: %s", ErrTrackNotFound, trackID)
	}

	var next int64
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM samples WHERE track_id = ?`, trackID).Scan(&next)
	if err != nil {
		return fmt.Errorf("append samples: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO samples (track_id, seq, at, x, y, z)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("append samples: %w", err)
	}
	defer stmt.Close()

	for _, sm := range samples {
		next++
		at := sm.Time.UTC().Format(timeLayout)
		p := sm.Position
		if _, err := stmt.ExecContext(ctx, trackID, next, at, p.X, p.Y, p.Z); err != nil {
			return fmt.Errorf("append samples: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("append samples: %w", err)
	}
	return nil
}

// ReadTrack returns the track with the given id.
func (s *Store) ReadTrack(ctx context.Context, id string) (Track, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, label, seq FROM tracks WHERE id = ?`, id)
	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Track{}, fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}
	return t, err
}

// ReadTracks returns every track in insertion order.
//
// Returns an empty slice (not nil) if the store has no tracks.
func (s *Store) ReadTracks(ctx context.Context) ([]Track, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, label, seq
		FROM tracks
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query tracks: %w", err)
	}
	defer rows.Close()

	tracks := []Track{}
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return tracks, nil
}

// Span summarizes the samples of a track.
type Span struct {
	Count int
	First time.Time
	Last  time.Time
}

// SampleSpan returns the number of samples of a track and the times of its
// first and last sample. First and Last are zero when Count is zero.
func (s *Store) SampleSpan(ctx context.Context, trackID string) (Span, error) {
	var (
		span        Span
		first, last string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE((SELECT at FROM samples WHERE track_id = ?1 ORDER BY seq ASC LIMIT 1), ''),
			COALESCE((SELECT at FROM samples WHERE track_id = ?1 ORDER BY seq DESC LIMIT 1), '')
		FROM samples
		WHERE track_id = ?1
	`, trackID).Scan(&span.Count, &first, &last)
	if err != nil {
		return Span{}, fmt.Errorf("sample span: %w", err)
	}
	if span.Count == 0 {
		return span, nil
	}
	if span.First, err = time.Parse(timeLayout, first); err != nil {
		return Span{}, fmt.Errorf("sample span: %w", err)
	}
	if span.Last, err = time.Parse(timeLayout, last); err != nil {
		return Span{}, fmt.Errorf("sample span: %w", err)
	}
	return span, nil
}

// ReadSamples returns up to limit samples of a track starting at offset, in
// order. A negative limit reads to the end.
func (s *Store) ReadSamples(ctx context.Context, trackID string, offset, limit int) ([]Sample, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT at, x, y, z
		FROM samples
		WHERE track_id = ?
		ORDER BY seq ASC
		LIMIT ? OFFSET ?
	`, trackID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	samples := []Sample{}
	for rows.Next() {
		var (
			at string
			p  czml.Cartesian
		)
		if err := rows.Scan(&at, &p.X, &p.Y, &p.Z); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		t, err := time.Parse(timeLayout, at)
		if err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		samples = append(samples, Sample{Time: t, Position: p})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	return samples, nil
}

// DeleteTrack removes a track and its samples.
func (s *Store) DeleteTrack(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tracks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete track: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete track: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete track: %w: %s", ErrTrackNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrack(row scanner) (Track, error) {
	var t Track
	if err := row.Scan(&t.ID, &t.Name, &t.Label, &t.Seq); err != nil {
		return Track{}, fmt.Errorf("scan track: %w", err)
	}
	return t, nil
}
