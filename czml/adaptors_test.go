package czml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdaptor_IsCachedPerWriter(t *testing.T) {
	w := NewBooleanWriter("show")

	assert.Same(t, w.AsBoolean(), w.AsBoolean())
	assert.Same(t, w.AsReference(), w.AsReference())
}

func TestAdaptor_SharesWriterScope(t *testing.T) {
	w := NewBooleanWriter("show")
	var a ValuePropertyWriter[bool] = w.AsBoolean()

	got := render(t, false, func(out *OutputStream) {
		out.WriteStartObject()
		a.Open(out)
		assert.True(t, w.IsOpen())
		a.WriteValue(true)
		a.Close()
		assert.False(t, w.IsOpen())

		assertUsagePanic(t, func() { w.WriteBoolean(false) })
		assertUsagePanic(t, func() { a.WriteValue(false) })
		assertUsagePanic(t, func() { w.Close() })
		assertUsagePanic(t, func() { a.Close() })
		out.WriteEndObject()
	})

	assert.Equal(t, `{"show":true}`, got)
}

func TestAdaptor_ReferenceRepresentation(t *testing.T) {
	w := NewStringWriter("text")

	got := render(t, false, func(out *OutputStream) {
		out.WriteStartObject()
		a := w.AsReference()
		a.Open(out)
		a.WriteValue(NewReference("other", "label", "text"))
		a.Close()
		out.WriteEndObject()
	})

	assert.Equal(t, `{"text":{"reference":"other#label.text"}}`, got)
}

func TestInterpolatableAdaptor_WritesSamples(t *testing.T) {
	w := NewPositionWriter("position")
	var a InterpolatableValuePropertyWriter[Cartesian] = w.AsCartesian()
	dates := seconds(3)
	values := []Cartesian{NewCartesian(1, 1, 1), NewCartesian(2, 2, 2), NewCartesian(3, 3, 3)}

	got := render(t, false, func(out *OutputStream) {
		out.WriteStartObject()
		a.Open(out)
		a.WriteSampleRange(dates, values, 0, 1)
		a.WriteSampleRange(dates, values, 1, 2)
		a.Close()
		out.WriteEndObject()
	})

	assert.Equal(t, `{"position":{"epoch":"2012-08-04T16:00:00Z","cartesian":[0,1,1,1,1,2,2,2,2,3,3,3]}}`, got)
}

func TestDeletablePropertyWriter(t *testing.T) {
	writers := []DeletablePropertyWriter{
		NewBooleanWriter("show"),
		NewDoubleWriter("scale"),
		NewPositionWriter("position"),
		NewURIWriter("image"),
	}
	for _, w := range writers {
		assert.NotNil(t, w)
	}

	var d DeletablePropertyWriter = NewDoubleWriter("scale")
	got := render(t, false, func(out *OutputStream) {
		out.WriteStartObject()
		w := d.(*DoubleWriter)
		w.Open(out)
		w.WriteInterval(testEpoch, testEpoch.Add(time.Second))
		d.WriteDelete(true)
		w.Close()
		out.WriteEndObject()
	})

	assert.Equal(t, `{"scale":{"interval":"2012-08-04T16:00:00Z/2012-08-04T16:00:01Z","delete":true}}`, got)
}
