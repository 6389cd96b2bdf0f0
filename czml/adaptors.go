package czml

import "time"

// ValuePropertyWriter accepts a single value of one representation.
type ValuePropertyWriter[V any] interface {
	Open(out *OutputStream)
	WriteValue(value V)
	Close()
}

// InterpolatableValuePropertyWriter additionally accepts time-tagged samples.
type InterpolatableValuePropertyWriter[V any] interface {
	ValuePropertyWriter[V]
	WriteSamples(dates []time.Time, values []V)
	WriteSampleRange(dates []time.Time, values []V, startIndex, length int)
}

// DeletablePropertyWriter is implemented by writers that can mark their
// property, or the current interval of it, as deleted.
type DeletablePropertyWriter interface {
	WriteDelete(value bool)
}

// ValuePropertyAdaptor exposes one representation of a writer. It shares
// the writer's scope: closing the adaptor closes the writer.
type ValuePropertyAdaptor[V any] struct {
	owner *PropertyWriter
	write func(V)
}

// NewValuePropertyAdaptor returns an adaptor that writes values through
// write, which must be a method of the writer embedding owner.
func NewValuePropertyAdaptor[V any](owner *PropertyWriter, write func(V)) *ValuePropertyAdaptor[V] {
	return &ValuePropertyAdaptor[V]{owner: owner, write: write}
}

// Open opens the underlying writer on out.
func (a *ValuePropertyAdaptor[V]) Open(out *OutputStream) { a.owner.Open(out) }

// WriteValue writes value through the underlying writer.
func (a *ValuePropertyAdaptor[V]) WriteValue(value V) { a.write(value) }

// Close closes the underlying writer.
func (a *ValuePropertyAdaptor[V]) Close() { a.owner.Close() }

// InterpolatableValuePropertyAdaptor is a ValuePropertyAdaptor that also
// writes samples.
type InterpolatableValuePropertyAdaptor[V any] struct {
	ValuePropertyAdaptor[V]
	writeRange func(dates []time.Time, values []V, startIndex, length int)
}

// NewInterpolatableValuePropertyAdaptor returns an adaptor writing single
// values through write and samples through writeRange.
func NewInterpolatableValuePropertyAdaptor[V any](owner *PropertyWriter, write func(V), writeRange func([]time.Time, []V, int, int)) *InterpolatableValuePropertyAdaptor[V] {
	return &InterpolatableValuePropertyAdaptor[V]{
		ValuePropertyAdaptor: ValuePropertyAdaptor[V]{owner: owner, write: write},
		writeRange:           writeRange,
	}
}

// WriteSamples writes every sample.
func (a *InterpolatableValuePropertyAdaptor[V]) WriteSamples(dates []time.Time, values []V) {
	a.writeRange(dates, values, 0, len(dates))
}

// WriteSampleRange writes the samples in [startIndex, startIndex+length).
func (a *InterpolatableValuePropertyAdaptor[V]) WriteSampleRange(dates []time.Time, values []V, startIndex, length int) {
	a.writeRange(dates, values, startIndex, length)
}

var (
	_ ValuePropertyWriter[bool]                    = (*ValuePropertyAdaptor[bool])(nil)
	_ InterpolatableValuePropertyWriter[Cartesian] = (*InterpolatableValuePropertyAdaptor[Cartesian])(nil)
)
