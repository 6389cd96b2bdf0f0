package czml

import "time"

// intervalWriter is a writer that can be opened as one element of an
// interval list.
type intervalWriter interface {
	element
	propertyWriter() *PropertyWriter
}

// IntervalListWriter writes a property as a sequence of objects, each
// holding the property's value over one interval:
//
//	"show": [{"interval": "...", "boolean": true}, {"interval": "...", "boolean": false}]
type IntervalListWriter[W intervalWriter] struct {
	ElementWriter
	newItem func() W
	item    W
	created bool
}

// OpenIntervalList opens a list of intervals on owner, which must not have
// been written to in its current scope. newItem creates the writer used for
// each interval; it is called once and the writer is reopened for every
// interval.
func OpenIntervalList[W intervalWriter](owner *PropertyWriter, newItem func() W) *IntervalListWriter[W] {
	owner.checkWritable("open multiple intervals")
	if owner.state != Unopened {
		usagePanic("open multiple intervals", owner.name, "property is already %s", owner.state)
	}
	l := &IntervalListWriter[W]{newItem: newItem}
	l.ElementWriter = newElementWriter(owner.name+"[]", l)
	owner.state = OpenList
	return OpenAndReturn(owner, l)
}

func (l *IntervalListWriter[W]) onOpen()      { l.out.WriteStartSequence() }
func (l *IntervalListWriter[W]) onClose()     { l.out.WriteEndSequence() }
func (l *IntervalListWriter[W]) beforeChild() {}

// OpenInterval opens the writer for the interval [start, stop]. It must be
// closed before the next interval is opened.
func (l *IntervalListWriter[W]) OpenInterval(start, stop time.Time) W {
	if !l.created {
		l.item = l.newItem()
		l.created = true
	}
	pw := l.item.propertyWriter()
	pw.inList = true
	OpenAndReturn(l, l.item)
	pw.WriteInterval(start, stop)
	return l.item
}
