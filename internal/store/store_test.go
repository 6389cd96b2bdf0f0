package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "open %d", i)
		require.NoError(t, s.Close())
	}

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	for _, table := range []string{"tracks", "samples"} {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s", table)
	}
}

func TestOpen_KeepsDataAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.WriteTrack(t.Context(), Track{ID: "t", Name: "kept"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	track, err := s.ReadTrack(t.Context(), "t")
	require.NoError(t, err)
	assert.Equal(t, "kept", track.Name)
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/dir/test.db")
	assert.Error(t, err)
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.Close())
}

func TestOpen_ConnectionSettings(t *testing.T) {
	s := createTestStore(t)

	tests := map[string]string{
		"journal_mode": "wal",
		"synchronous":  "1", // NORMAL
		"busy_timeout": "5000",
		"foreign_keys": "1",
	}
	for name, want := range tests {
		assert.Equal(t, want, pragma(t, s.db, name), name)
	}
}

func TestSchema_Columns(t *testing.T) {
	s := createTestStore(t)

	assert.Subset(t, tableColumns(t, s.db, "tracks"), []string{"id", "name", "label", "seq"})
	assert.Subset(t, tableColumns(t, s.db, "samples"), []string{"track_id", "seq", "at", "x", "y", "z"})
}

func TestSchema_Indexes(t *testing.T) {
	s := createTestStore(t)

	assert.Contains(t, tableIndexes(t, s.db, "tracks"), "idx_tracks_seq")
	assert.Contains(t, tableIndexes(t, s.db, "samples"), "idx_samples_track_at")
}

func TestConstraint_SampleNeedsTrack(t *testing.T) {
	s := createTestStore(t)

	_, err := s.db.Exec(`
		INSERT INTO samples (track_id, seq, at, x, y, z)
		VALUES ('missing', 1, '2012-08-04T16:00:00Z', 0, 0, 0)
	`)
	assert.Error(t, err)
}

func TestConstraint_SamplesUniqueSeq(t *testing.T) {
	s := createTestStore(t)

	_, err := s.db.Exec(`INSERT INTO tracks (id, seq) VALUES ('t1', 1)`)
	require.NoError(t, err)
	insert := `INSERT INTO samples (track_id, seq, at, x, y, z) VALUES ('t1', 1, '2012-08-04T16:00:00Z', 0, 0, 0)`
	_, err = s.db.Exec(insert)
	require.NoError(t, err)

	_, err = s.db.Exec(insert)
	assert.Error(t, err)
}

func TestMigration_SchemaVersion(t *testing.T) {
	s := createTestStore(t)

	assert.Equal(t, fmt.Sprint(schemaVersion), pragma(t, s.db, "user_version"))
}

func TestMigration_UpgradeFromV0(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	// A database from before the indexes: the tables alone at version 0.
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE tracks (id TEXT PRIMARY KEY, name TEXT NOT NULL DEFAULT '', label TEXT NOT NULL DEFAULT '', seq INTEGER NOT NULL);
		CREATE TABLE samples (track_id TEXT NOT NULL REFERENCES tracks(id) ON DELETE CASCADE, seq INTEGER NOT NULL,
			at TEXT NOT NULL, x REAL NOT NULL, y REAL NOT NULL, z REAL NOT NULL, PRIMARY KEY (track_id, seq));
		PRAGMA user_version = 0;
	`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, fmt.Sprint(schemaVersion), pragma(t, s.db, "user_version"))
	assert.Contains(t, tableIndexes(t, s.db, "tracks"), "idx_tracks_seq")
	assert.Contains(t, tableIndexes(t, s.db, "samples"), "idx_samples_track_at")
}

func TestMigration_RejectsNewerDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion+1))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than")
}

func pragma(t *testing.T, db *sql.DB, name string) string {
	t.Helper()
	var value string
	require.NoError(t, db.QueryRow("PRAGMA "+name).Scan(&value))
	return value
}

func tableColumns(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", table)
	require.NoError(t, err)
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		columns = append(columns, name)
	}
	return columns
}

func tableIndexes(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='index' AND tbl_name=?", table)
	require.NoError(t, err)
	defer rows.Close()

	var indexes []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		indexes = append(indexes, name)
	}
	slices.Sort(indexes)
	return indexes
}
