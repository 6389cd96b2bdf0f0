package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm665371/czml-writer/czml"
)

func TestWriteTrack_AssignsUUIDv7(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.WriteTrack(ctx, Track{Name: "Vehicle"})
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestWriteTrack_KeepsSeqOnUpdate(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.WriteTrack(ctx, Track{ID: "a", Name: "first"})
	require.NoError(t, err)
	_, err = s.WriteTrack(ctx, Track{ID: "b"})
	require.NoError(t, err)
	_, err = s.WriteTrack(ctx, Track{ID: "a", Name: "renamed", Label: "A"})
	require.NoError(t, err)

	tracks, err := s.ReadTracks(ctx)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, Track{ID: "a", Name: "renamed", Label: "A", Seq: 1}, tracks[0])
	assert.Equal(t, "b", tracks[1].ID)
	assert.Equal(t, int64(2), tracks[1].Seq)
}

func TestReadTracks_EmptyStore(t *testing.T) {
	s := createTestStore(t)

	tracks, err := s.ReadTracks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
}

func TestReadTrack_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadTrack(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTrackNotFound)
}

func TestAppendSamples_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.WriteTrack(ctx, Track{ID: "t"})
	require.NoError(t, err)

	samples := createTestSamples(5)
	require.NoError(t, s.AppendSamples(ctx, id, samples[:2]))
	require.NoError(t, s.AppendSamples(ctx, id, samples[2:]))

	span, err := s.SampleSpan(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, span.Count)
	assert.True(t, samples[0].Time.Equal(span.First))
	assert.True(t, samples[4].Time.Equal(span.Last))

	got, err := s.ReadSamples(ctx, id, 0, -1)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := range samples {
		assert.True(t, samples[i].Time.Equal(got[i].Time), "sample %d time", i)
		assert.Equal(t, samples[i].Position, got[i].Position)
	}
}

func TestReadSamples_Window(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.WriteTrack(ctx, Track{ID: "t"})
	require.NoError(t, err)
	require.NoError(t, s.AppendSamples(ctx, id, createTestSamples(10)))

	got, err := s.ReadSamples(ctx, id, 4, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, czml.NewCartesian(4, 8, 12), got[0].Position)
	assert.Equal(t, czml.NewCartesian(6, 12, 18), got[2].Position)

	got, err = s.ReadSamples(ctx, id, 10, 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAppendSamples_UnknownTrack(t *testing.T) {
	s := createTestStore(t)

	err := s.AppendSamples(context.Background(), "missing", createTestSamples(1))
	assert.ErrorIs(t, err, ErrTrackNotFound)
}

func TestDeleteTrack_CascadesSamples(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.WriteTrack(ctx, Track{ID: "t"})
	require.NoError(t, err)
	require.NoError(t, s.AppendSamples(ctx, id, createTestSamples(3)))

	require.NoError(t, s.DeleteTrack(ctx, id))

	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM samples").Scan(&n))
	assert.Zero(t, n)

	assert.ErrorIs(t, s.DeleteTrack(ctx, id), ErrTrackNotFound)
}

func TestSampleSpan_NoSamples(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.WriteTrack(ctx, Track{ID: "t"})
	require.NoError(t, err)

	span, err := s.SampleSpan(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, Span{}, span)
}
