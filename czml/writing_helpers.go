package czml

import "time"

// WriteSamples writes values[startIndex:startIndex+length] as time-tagged
// samples of the representation name. Consecutive calls for the same
// representation extend one sample array whose epoch is the first date
// written, so a sample set written in ordered, adjacent chunks produces the
// same output as a single call. write emits the components of one value.
func WriteSamples[V any](p *PropertyWriter, name string, dates []time.Time, values []V, startIndex, length int, write func(*OutputStream, V)) {
	p.checkWritable("write " + name)
	if len(dates) != len(values) {
		usagePanic("write "+name, p.name, "%d dates but %d values", len(dates), len(values))
	}
	if startIndex < 0 || length < 0 || length > len(dates)-startIndex {
		usagePanic("write "+name, p.name, "range of %d from %d out of bounds for %d samples", length, startIndex, len(dates))
	}
	if length == 0 {
		return
	}
	p.OpenIntervalIfNecessary()
	epoch := p.beginSamples(name, dates[startIndex])
	out := p.out
	for i := startIndex; i < startIndex+length; i++ {
		out.WriteFloat(dates[i].Sub(epoch).Seconds())
		write(out, values[i])
		out.WriteLineBreak()
	}
}

// WriteCartesian2 writes v as [x, y].
func WriteCartesian2(out *OutputStream, v Rectangular) {
	out.WriteStartSequence()
	WriteCartesian2Sample(out, v)
	out.WriteEndSequence()
}

// WriteCartesian2Sample writes the components of v into an open sample array.
func WriteCartesian2Sample(out *OutputStream, v Rectangular) {
	out.WriteFloat(v.X)
	out.WriteFloat(v.Y)
}

// WriteCartesian3 writes v as [x, y, z].
func WriteCartesian3(out *OutputStream, v Cartesian) {
	out.WriteStartSequence()
	WriteCartesian3Sample(out, v)
	out.WriteEndSequence()
}

// WriteCartesian3Sample writes the components of v into an open sample array.
func WriteCartesian3Sample(out *OutputStream, v Cartesian) {
	out.WriteFloat(v.X)
	out.WriteFloat(v.Y)
	out.WriteFloat(v.Z)
}

// WriteReference writes r in its "id#a.b" string form.
func WriteReference(out *OutputStream, r Reference) {
	if len(r.PropertyNames) == 0 {
		usagePanic("write reference", r.Identifier, "reference has no property path")
	}
	out.WriteString(r.String())
}
