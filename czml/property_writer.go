package czml

import "time"

// IntervalState is the shape a property writer has committed to in its
// current scope.
type IntervalState uint8

const (
	// Unopened: only the property name has been written.
	Unopened IntervalState = iota
	// OpenDirect: a value was written in place of the property.
	OpenDirect
	// OpenWrapped: the property is an object keyed by representation.
	OpenWrapped
	// OpenList: the property is a sequence of interval objects.
	OpenList
)

func (s IntervalState) String() string {
	switch s {
	case Unopened:
		return "unopened"
	case OpenDirect:
		return "direct"
	case OpenWrapped:
		return "wrapped"
	case OpenList:
		return "list"
	default:
		return "unknown"
	}
}

const (
	intervalPropertyName = "interval"
	epochPropertyName    = "epoch"
)

// PropertyWriter is the interval state machine embedded by every generated
// property writer.
type PropertyWriter struct {
	ElementWriter

	// ForceInterval disables writing the first value property in place of
	// the property itself.
	ForceInterval bool

	name    string
	state   IntervalState
	inList  bool
	samples *sampleRun
}

type sampleRun struct {
	name  string
	epoch time.Time
}

// NewPropertyWriter returns an unopened writer for the named property.
func NewPropertyWriter(propertyName string) *PropertyWriter {
	p := &PropertyWriter{name: propertyName}
	p.ElementWriter = newElementWriter(propertyName, p)
	return p
}

func (p *PropertyWriter) propertyWriter() *PropertyWriter { return p }

// PropertyName returns the name the writer is written under.
func (p *PropertyWriter) PropertyName() string { return p.name }

// State returns the interval state of the current scope.
func (p *PropertyWriter) State() IntervalState { return p.state }

// IsInterval reports whether the property has been opened as an object.
func (p *PropertyWriter) IsInterval() bool { return p.state == OpenWrapped }

func (p *PropertyWriter) onOpen() {
	p.state = Unopened
	p.samples = nil
	if !p.inList {
		p.out.WritePropertyName(p.name)
	}
}

func (p *PropertyWriter) beforeChild() {
	p.endSamples()
}

func (p *PropertyWriter) onClose() {
	p.endSamples()
	switch p.state {
	case Unopened:
		p.out.WriteStartObject()
		p.out.WriteEndObject()
	case OpenWrapped:
		p.out.WriteEndObject()
	}
	p.inList = false
}

// OpenIntervalIfNecessary starts the property's object unless it has already
// been started.
func (p *PropertyWriter) OpenIntervalIfNecessary() {
	p.checkWritable("open interval")
	switch p.state {
	case Unopened:
		p.out.WriteStartObject()
		p.state = OpenWrapped
	case OpenDirect:
		usagePanic("open interval", p.name, "a value was already written in place of the property")
	case OpenList:
		usagePanic("open interval", p.name, "property was written as a list of intervals")
	}
}

// WriteMemberName writes the key of a representation inside the property's
// object, closing any open sample array first.
func (p *PropertyWriter) WriteMemberName(name string) {
	p.checkWritable("write " + name)
	if p.state != OpenWrapped {
		usagePanic("write "+name, p.name, "property is %s, not wrapped", p.state)
	}
	p.endSamples()
	p.out.WritePropertyName(name)
}

// OpenDirectValue prepares a write of the first value property. The value
// is written in place of the property when nothing has been written yet and
// ForceInterval is unset; otherwise it goes inside the property's object
// under name. An empty name writes no key.
func (p *PropertyWriter) OpenDirectValue(name string) {
	p.checkWritable("write " + name)
	if p.ForceInterval {
		p.OpenIntervalIfNecessary()
	}
	switch p.state {
	case Unopened:
		p.state = OpenDirect
	case OpenDirect:
		usagePanic("write "+name, p.name, "a value was already written in place of the property")
	case OpenList:
		usagePanic("write "+name, p.name, "property was written as a list of intervals")
	case OpenWrapped:
		p.endSamples()
		if name != "" {
			p.out.WritePropertyName(name)
		}
	}
}

// WriteInterval writes the interval the property's current object applies
// to.
func (p *PropertyWriter) WriteInterval(start, stop time.Time) {
	p.OpenIntervalIfNecessary()
	p.WriteMemberName(intervalPropertyName)
	p.out.WriteString(FormatInterval(start, stop))
}

// WriteTimeInterval writes iv as the property's interval.
func (p *PropertyWriter) WriteTimeInterval(iv TimeInterval) {
	p.WriteInterval(iv.Start, iv.Stop)
}

// beginSamples continues the open sample array for name or starts a new one
// whose epoch is first. It returns the epoch sample times are relative to.
func (p *PropertyWriter) beginSamples(name string, first time.Time) time.Time {
	if p.samples != nil && p.samples.name == name {
		return p.samples.epoch
	}
	p.WriteMemberName(epochPropertyName)
	p.out.WriteString(FormatISO8601(first))
	p.out.WritePropertyName(name)
	p.out.WriteStartSequence()
	p.samples = &sampleRun{name: name, epoch: first}
	return first
}

func (p *PropertyWriter) endSamples() {
	if p.samples == nil {
		return
	}
	p.out.WriteEndSequence()
	p.samples = nil
}
