package czml

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2012, 8, 4, 16, 0, 0, 0, time.UTC)

// render runs fn against a fresh stream and returns everything written.
func render(t *testing.T, pretty bool, fn func(out *OutputStream)) string {
	t.Helper()
	var buf bytes.Buffer
	out := NewOutputStream(&buf, pretty)
	fn(out)
	require.NoError(t, out.Flush())
	return buf.String()
}

// packetJSON writes a single packet with fn and returns it.
func packetJSON(t *testing.T, fn func(p *PacketWriter)) string {
	t.Helper()
	return render(t, false, func(out *OutputStream) {
		p := NewPacketWriter()
		p.Open(out)
		fn(p)
		p.Close()
	})
}

// assertUsagePanic checks that fn panics with a *UsageError.
func assertUsagePanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if assert.NotNil(t, r, "expected a usage panic") {
			assert.True(t, IsUsageError(r), "unexpected panic value %v", r)
		}
	}()
	fn()
}

// seconds returns n dates one second apart from testEpoch.
func seconds(n int) []time.Time {
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = testEpoch.Add(time.Duration(i) * time.Second)
	}
	return dates
}
