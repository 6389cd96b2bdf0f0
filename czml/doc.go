// Package czml writes CZML documents: JSON arrays of packets whose
// properties carry constant values, time-tagged samples, references to other
// packets' properties, or deletion markers.
//
// Every property writer in this package embeds a PropertyWriter, the shared
// interval state machine. A writer starts unopened; its parent opens it, which
// writes the property name. The first value property of a writer may then be
// written in place of the property itself:
//
//	"labelStyle": "FILL"
//
// Any other write wraps the value in an object keyed by its representation:
//
//	"labelStyle": {"labelStyle": "FILL"}
//	"position": {"epoch": "2012-08-04T16:00:00Z", "cartesian": [0, 1, 2, 3]}
//	"show": {"reference": "someObject#billboard.show"}
//	"show": {"delete": true}
//
// Writers are scoped resources. Open them through the parent's Open*Property
// methods and close them when done, innermost first:
//
//	out := czml.NewOutputStream(w, false)
//	out.WriteStartSequence()
//	packet := czml.NewStreamWriter().OpenPacket(out)
//	packet.WriteID("vehicle")
//	label := packet.OpenLabelProperty()
//	label.WriteTextProperty("Vehicle")
//	label.Close()
//	packet.Close()
//	out.WriteEndSequence()
//	err := out.Flush()
//
// Misuse of the protocol (writing after close, closing twice, letting a
// parent write while a child is open) panics with a *UsageError. I/O errors
// from the underlying io.Writer are sticky and reported by Flush.
//
// The *_writer.go files are generated by czmlgen from schema/czml.cue and
// schema/czml.yaml.
package czml
