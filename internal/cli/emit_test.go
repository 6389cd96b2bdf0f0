package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm665371/czml-writer/czml"
	"github.com/sm665371/czml-writer/internal/store"
)

// createTestDB stores one track with two samples and returns the database
// path.
func createTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracks.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	id, err := st.WriteTrack(ctx, store.Track{ID: "sat", Name: "Satellite"})
	require.NoError(t, err)

	epoch := time.Date(2012, 8, 4, 16, 0, 0, 0, time.UTC)
	require.NoError(t, st.AppendSamples(ctx, id, []store.Sample{
		{Time: epoch, Position: czml.NewCartesian(1, 2, 3)},
		{Time: epoch.Add(time.Minute), Position: czml.NewCartesian(4, 5, 6)},
	}))
	return path
}

const satelliteDocument = `[{"id":"document","name":"orbit","version":"1.0"},` +
	`{"id":"sat","name":"Satellite","availability":"2012-08-04T16:00:00Z/2012-08-04T16:01:00Z",` +
	`"position":{"epoch":"2012-08-04T16:00:00Z","cartesian":[0,1,2,3,60,4,5,6]}}]`

func TestEmit_Stdout(t *testing.T) {
	db := createTestDB(t)

	out, err := execute(t, "emit", "--db", db, "--name", "orbit", "--chunk", "1")
	require.NoError(t, err)
	assert.Equal(t, satelliteDocument, out)
}

func TestEmit_File(t *testing.T) {
	db := createTestDB(t)
	path := filepath.Join(t.TempDir(), "orbit.czml")

	out, err := execute(t, "emit", "--db", db, "--name", "orbit", "-o", path)
	require.NoError(t, err)
	assert.Equal(t, "✓ Wrote "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, satelliteDocument, string(data))
}

func TestEmit_Interpolation(t *testing.T) {
	db := createTestDB(t)

	out, err := execute(t, "emit", "--db", db, "--interpolation", "Hermite", "--degree", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `"position":{"interpolationAlgorithm":"HERMITE","interpolationDegree":3,`)
}

func TestEmit_InvalidInterpolation(t *testing.T) {
	db := createTestDB(t)

	out, err := execute(t, "emit", "--db", db, "--interpolation", "cubic")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, `invalid interpolation "cubic"`)
}

func TestEmit_MissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	out, err := execute(t, "emit", "--db", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E005]")
	assert.NoFileExists(t, path)
}
