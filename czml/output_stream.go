package czml

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// OutputStream is the forward-only JSON sink the writers append to.
//
// It tracks just enough structure to place separators: whether the next
// token follows a property name and whether the current container already
// has members. The first error returned by the underlying writer is kept and
// every later write is dropped; Flush and Err report it.
type OutputStream struct {
	w      *bufio.Writer
	pretty bool
	frames []frame

	afterName      bool
	lineBreakAfter bool
	err            error
}

type frame struct {
	sequence bool
	empty    bool
}

// NewOutputStream returns a stream writing to w. With pretty set, object
// members are written on their own indented lines and WriteLineBreak starts
// a new line inside sequences.
func NewOutputStream(w io.Writer, pretty bool) *OutputStream {
	return &OutputStream{w: bufio.NewWriter(w), pretty: pretty}
}

// PrettyFormatting reports whether the stream indents its output.
func (o *OutputStream) PrettyFormatting() bool { return o.pretty }

// Err returns the first write error, if any.
func (o *OutputStream) Err() error { return o.err }

// Flush writes any buffered data to the underlying writer.
func (o *OutputStream) Flush() error {
	if o.err != nil {
		return o.err
	}
	if err := o.w.Flush(); err != nil {
		o.err = err
	}
	return o.err
}

// WriteStartObject writes '{'.
func (o *OutputStream) WriteStartObject() {
	o.beginValue()
	o.raw("{")
	o.frames = append(o.frames, frame{empty: true})
}

// WriteEndObject writes '}'.
func (o *OutputStream) WriteEndObject() {
	f := o.pop("}")
	if o.pretty && !f.empty {
		o.newline()
	}
	o.raw("}")
}

// WriteStartSequence writes '['.
func (o *OutputStream) WriteStartSequence() {
	o.beginValue()
	o.raw("[")
	o.frames = append(o.frames, frame{sequence: true, empty: true})
}

// WriteEndSequence writes ']'.
func (o *OutputStream) WriteEndSequence() {
	o.pop("]")
	o.lineBreakAfter = false
	o.raw("]")
}

// WritePropertyName writes a quoted member name and the ':' separator.
func (o *OutputStream) WritePropertyName(name string) {
	if o.afterName {
		o.fail(fmt.Errorf("czml: property name %q follows another property name", name))
		return
	}
	o.separate()
	if o.pretty {
		o.newline()
	}
	o.quoted(name)
	if o.pretty {
		o.raw(": ")
	} else {
		o.raw(":")
	}
	o.afterName = true
}

// WriteString writes a JSON string value.
func (o *OutputStream) WriteString(value string) {
	o.beginValue()
	o.quoted(value)
}

// WriteFloat writes a JSON number. Non-finite values have no JSON encoding
// and fail the stream.
func (o *OutputStream) WriteFloat(value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		o.fail(fmt.Errorf("czml: cannot encode non-finite number %v", value))
		return
	}
	o.beginValue()
	o.encode(value)
}

// WriteInt writes a JSON integer.
func (o *OutputStream) WriteInt(value int) {
	o.beginValue()
	o.raw(strconv.Itoa(value))
}

// WriteBool writes true or false.
func (o *OutputStream) WriteBool(value bool) {
	o.beginValue()
	o.raw(strconv.FormatBool(value))
}

// WriteValue writes any JSON-encodable value.
func (o *OutputStream) WriteValue(value any) {
	o.beginValue()
	o.encode(value)
}

// WriteLineBreak starts a new line before the next sequence element when
// pretty formatting is enabled. It writes nothing itself.
func (o *OutputStream) WriteLineBreak() {
	if o.pretty {
		o.lineBreakAfter = true
	}
}

func (o *OutputStream) beginValue() {
	if o.afterName {
		o.afterName = false
		return
	}
	o.separate()
}

func (o *OutputStream) separate() {
	if len(o.frames) == 0 {
		return
	}
	top := &o.frames[len(o.frames)-1]
	if !top.empty {
		o.raw(",")
		if top.sequence && o.lineBreakAfter {
			o.newline()
		}
	}
	o.lineBreakAfter = false
	top.empty = false
}

func (o *OutputStream) pop(token string) frame {
	if len(o.frames) == 0 {
		o.fail(fmt.Errorf("czml: unbalanced %q", token))
		return frame{}
	}
	f := o.frames[len(o.frames)-1]
	o.frames = o.frames[:len(o.frames)-1]
	return f
}

func (o *OutputStream) newline() {
	o.raw("\n")
	for range o.frames {
		o.raw("  ")
	}
}

func (o *OutputStream) quoted(s string) {
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		o.fail(err)
		return
	}
	o.bytes(b)
}

func (o *OutputStream) encode(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		o.fail(fmt.Errorf("czml: encoding %T: %w", v, err))
		return
	}
	o.bytes(b)
}

func (o *OutputStream) raw(s string) {
	if o.err != nil {
		return
	}
	if _, err := o.w.WriteString(s); err != nil {
		o.err = err
	}
}

func (o *OutputStream) bytes(b []byte) {
	if o.err != nil {
		return
	}
	if _, err := o.w.Write(b); err != nil {
		o.err = err
	}
}

func (o *OutputStream) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
