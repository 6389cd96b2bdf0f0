package czml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_String(t *testing.T) {
	tests := []struct {
		name string
		ref  Reference
		want string
	}{
		{"single property", NewReference("vehicle", "position"), "vehicle#position"},
		{"path", NewReference("vehicle", "label", "text"), "vehicle#label.text"},
		{"escaped", NewReference(`a#b.c\d`, "e.f"), `a\#b\.c\\d#e\.f`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.String())

			parsed, err := ParseReference(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.ref, parsed)
		})
	}
}

func TestParseReference_Errors(t *testing.T) {
	for _, s := range []string{"vehicle", "vehicle#", "vehicle#a..b", `vehicle#a\`, "a#b#c"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseReference(s)
			assert.ErrorIs(t, err, ErrInvalidReference)
		})
	}
}

func TestWriteReference_RequiresPath(t *testing.T) {
	render(t, false, func(out *OutputStream) {
		assertUsagePanic(t, func() { WriteReference(out, Reference{Identifier: "vehicle"}) })
	})
}

func TestFormatISO8601(t *testing.T) {
	assert.Equal(t, "2012-08-04T16:00:00Z", FormatISO8601(testEpoch))
	assert.Equal(t, "2012-08-04T16:00:00.5Z", FormatISO8601(testEpoch.Add(500*time.Millisecond)))

	local := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, "2012-08-04T16:00:00Z", FormatISO8601(testEpoch.In(local)))
}

func TestTimeInterval(t *testing.T) {
	iv := TimeInterval{Start: testEpoch, Stop: testEpoch.Add(time.Hour)}

	assert.Equal(t, "2012-08-04T16:00:00Z/2012-08-04T17:00:00Z", iv.String())
	assert.True(t, iv.Contains(testEpoch))
	assert.True(t, iv.Contains(iv.Stop))
	assert.False(t, iv.Contains(iv.Stop.Add(time.Nanosecond)))

	parsed, err := ParseInterval(iv.String())
	require.NoError(t, err)
	assert.True(t, parsed.Start.Equal(iv.Start))
	assert.True(t, parsed.Stop.Equal(iv.Stop))

	_, err = ParseInterval("2012-08-04T16:00:00Z")
	assert.Error(t, err)
}

func TestURI_Resolvers(t *testing.T) {
	calls := 0
	resolver := &CachingURIResolver{Next: URIResolverFunc(func(uri string) string {
		calls++
		return "https://cdn.example.com/" + uri
	})}

	got := packetJSON(t, func(p *PacketWriter) {
		billboard := p.OpenBillboardProperty()
		billboard.WriteImagePropertyResolved("marker.png", resolver)
		billboard.Close()
	})

	assert.Equal(t, `{"billboard":{"image":"https://cdn.example.com/marker.png"}}`, got)
	assert.Equal(t, "https://cdn.example.com/marker.png", resolver.ResolveURI("marker.png"))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "a.png", PassThroughURIResolver.ResolveURI("a.png"))
}

func TestURI_Data(t *testing.T) {
	got := packetJSON(t, func(p *PacketWriter) {
		billboard := p.OpenBillboardProperty()
		billboard.WriteImagePropertyData("text/plain", []byte("hi"))
		billboard.Close()
	})

	assert.Equal(t, `{"billboard":{"image":"data:text/plain;base64,aGk="}}`, got)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "FILL_AND_OUTLINE", LabelStyleFillAndOutline.String())
	assert.Equal(t, "HERMITE", InterpolationHermite.String())
	assert.Equal(t, "EXTRAPOLATE", ExtrapolationExtrapolate.String())
	assert.Equal(t, "wrapped", OpenWrapped.String())
	assert.Panics(t, func() { _ = LabelStyle(99).String() })
}
