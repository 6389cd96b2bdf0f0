package czml

// element is implemented by every writer through its embedded ElementWriter.
type element interface {
	base() *ElementWriter
}

type elementHooks interface {
	onOpen()
	onClose()
	beforeChild()
}

type elementState uint8

const (
	elementCreated elementState = iota
	elementOpen
	elementClosed
)

// ElementWriter is the open/close lifecycle shared by all writers. It owns
// the output cursor and enforces stack discipline: while a child writer is
// open, its parent may neither write nor close.
type ElementWriter struct {
	out    *OutputStream
	hooks  elementHooks
	parent *ElementWriter
	child  *ElementWriter
	state  elementState
	label  string
}

func newElementWriter(label string, hooks elementHooks) ElementWriter {
	return ElementWriter{hooks: hooks, label: label}
}

func (e *ElementWriter) base() *ElementWriter { return e }

// Output returns the stream the writer appends to. It is nil until the
// writer is first opened.
func (e *ElementWriter) Output() *OutputStream { return e.out }

// IsOpen reports whether the writer has been opened and not yet closed.
func (e *ElementWriter) IsOpen() bool { return e.state == elementOpen }

// Open begins a new scope on out. Writers are normally opened by their
// parent's Open*Property methods; Open is for top-level writers.
func (e *ElementWriter) Open(out *OutputStream) {
	if out == nil {
		usagePanic("open", e.label, "nil output stream")
	}
	e.open(out)
}

func (e *ElementWriter) open(out *OutputStream) {
	if e.state == elementOpen {
		usagePanic("open", e.label, "writer is already open")
	}
	e.out = out
	e.state = elementOpen
	e.hooks.onOpen()
}

// openWithin opens e as the single open child of parent.
func (e *ElementWriter) openWithin(parent *ElementWriter) {
	parent.checkWritable("open " + e.label)
	parent.hooks.beforeChild()
	e.open(parent.out)
	e.parent = parent
	parent.child = e
}

// Close ends the current scope, writing whatever tokens balance it.
func (e *ElementWriter) Close() {
	switch e.state {
	case elementCreated:
		usagePanic("close", e.label, "writer was never opened")
	case elementClosed:
		usagePanic("close", e.label, "writer is already closed")
	}
	if e.child != nil {
		usagePanic("close", e.label, "child writer %q is still open", e.child.label)
	}
	e.hooks.onClose()
	e.state = elementClosed
	if e.parent != nil {
		e.parent.child = nil
		e.parent = nil
	}
}

// WriteMemberName checks that the writer accepts writes and writes a
// property name into its object.
func (e *ElementWriter) WriteMemberName(name string) {
	e.checkWritable("write " + name)
	e.out.WritePropertyName(name)
}

func (e *ElementWriter) checkWritable(op string) {
	switch e.state {
	case elementCreated:
		usagePanic(op, e.label, "writer is not open")
	case elementClosed:
		usagePanic(op, e.label, "writer is closed")
	}
	if e.child != nil {
		usagePanic(op, e.label, "child writer %q is still open", e.child.label)
	}
}

// OpenAndReturn opens child within parent and returns it.
func OpenAndReturn[T element](parent element, child T) T {
	child.base().openWithin(parent.base())
	return child
}

type packetHooks struct{ e *ElementWriter }

func (h packetHooks) onOpen()      { h.e.out.WriteStartObject() }
func (h packetHooks) beforeChild() {}

func (h packetHooks) onClose() {
	h.e.out.WriteEndObject()
	h.e.out.WriteLineBreak()
}

// NewPacketElement returns the lifecycle of a packet: an object written as
// one element of the document sequence.
func NewPacketElement() *ElementWriter {
	e := &ElementWriter{label: "packet"}
	e.hooks = packetHooks{e: e}
	return e
}
