package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sm665371/czml-writer/czml"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testEpoch = time.Date(2012, 8, 4, 16, 0, 0, 0, time.UTC)

// createTestSamples returns n samples one second apart starting at testEpoch.
func createTestSamples(n int) []Sample {
	samples := make([]Sample, n)
	for i := range samples {
		f := float64(i)
		samples[i] = Sample{
			Time:     testEpoch.Add(time.Duration(i) * time.Second),
			Position: czml.NewCartesian(f, f*2, f*3),
		}
	}
	return samples
}
