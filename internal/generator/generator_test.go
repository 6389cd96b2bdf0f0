package generator

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm665371/czml-writer/internal/overload"
	"github.com/sm665371/czml-writer/internal/schema"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadSet(t *testing.T, src string) *schema.Set {
	t.Helper()
	set, err := schema.LoadBytes("test.cue", []byte(src))
	require.NoError(t, err)
	return set
}

func lookup(t *testing.T, set *schema.Set, name string) *schema.Schema {
	t.Helper()
	s, ok := set.Lookup(name)
	require.True(t, ok, "schema %s", name)
	return s
}

func fileByName(t *testing.T, files []File, name string) File {
	t.Helper()
	for _, f := range files {
		if f.Name == name {
			return f
		}
	}
	require.Failf(t, "missing file", "%s not generated", name)
	return File{}
}

const labelSchema = `
schemas: {
	Packet: {
		properties: {
			id: {type: "string"}
			label: {ref: "Label"}
		}
	}
	Label: {
		properties: {
			text: {type: "string", value: true}
		}
	}
}
`

func TestGenerate_RepositorySchema(t *testing.T) {
	set, err := schema.Load("../../schema/czml.cue")
	require.NoError(t, err)
	cfg, err := overload.LoadConfig("../../schema/czml.yaml")
	require.NoError(t, err)

	files, err := New(cfg, WithLogger(discardLogger())).Generate(lookup(t, set, "Packet"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"billboard_writer.go",
		"boolean_writer.go",
		"custom_properties_writer.go",
		"custom_property_writer.go",
		"double_writer.go",
		"label_style_writer.go",
		"label_writer.go",
		"packet_writer.go",
		"pixel_offset_writer.go",
		"position_writer.go",
		"string_writer.go",
		"uri_writer.go",
	}, Names(files))

	// Dependencies come first.
	assert.Equal(t, "packet_writer.go", files[len(files)-1].Name)

	fset := token.NewFileSet()
	for _, f := range files {
		assert.True(t, bytes.HasPrefix(f.Content, []byte(Header+"\n")), f.Name)
		_, err := parser.ParseFile(fset, f.Name, f.Content, parser.AllErrors)
		assert.NoError(t, err, f.Name)
	}

	label := string(fileByName(t, files, "label_writer.go").Content)
	assert.Contains(t, label, "func NewLabelWriter(propertyName string) *LabelWriter {")
	assert.Contains(t, label, "func (w *LabelWriter) OpenShowProperty() *BooleanWriter {")
	assert.Contains(t, label, "func (w *LabelWriter) OpenMultipleIntervals() *IntervalListWriter[*LabelWriter] {")

	packet := string(fileByName(t, files, "packet_writer.go").Content)
	assert.Contains(t, packet, "func NewPacketWriter() *PacketWriter {")
	assert.NotContains(t, packet, "OpenMultipleIntervals")
}

func TestGenerate_MatchesCheckedInWriters(t *testing.T) {
	set, err := schema.Load("../../schema/czml.cue")
	require.NoError(t, err)
	cfg, err := overload.LoadConfig("../../schema/czml.yaml")
	require.NoError(t, err)

	files, err := New(cfg, WithLogger(discardLogger())).Generate(lookup(t, set, "Packet"))
	require.NoError(t, err)

	for _, f := range files {
		checkedIn, err := os.ReadFile(filepath.Join("../../czml", f.Name))
		require.NoError(t, err, f.Name)
		assert.Equal(t, string(checkedIn), string(f.Content), "%s is stale; run czmlgen generate", f.Name)
	}
}

func TestGenerate_Memoized(t *testing.T) {
	set := loadSet(t, labelSchema)
	g := New(&overload.Config{Package: "czml", Exported: true}, WithLogger(discardLogger()))
	packet := lookup(t, set, "Packet")
	label := lookup(t, set, "Label")

	assert.False(t, g.Emitted(packet))

	files, err := g.Generate(packet)
	require.NoError(t, err)
	assert.Equal(t, []string{"label_writer.go", "packet_writer.go"}, Names(files))
	assert.True(t, g.Emitted(packet))
	assert.True(t, g.Emitted(label))

	again, err := g.Generate(packet)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestGenerate_SharedSchemaEmittedOnce(t *testing.T) {
	set := loadSet(t, `
schemas: {
	Packet: {
		properties: {
			a: {ref: "Label"}
			b: {ref: "Label"}
		}
	}
	Label: {
		properties: {
			text: {type: "string", value: true}
		}
	}
}
`)
	files, err := New(&overload.Config{Package: "czml", Exported: true}, WithLogger(discardLogger())).
		Generate(lookup(t, set, "Packet"))
	require.NoError(t, err)
	assert.Equal(t, []string{"label_writer.go", "packet_writer.go"}, Names(files))
}

func TestGenerate_CycleLogsWarning(t *testing.T) {
	set := loadSet(t, `
schemas: {
	Packet: {
		properties: {
			node: {ref: "Node"}
		}
	}
	Node: {
		properties: {
			name: {type: "string", value: true}
			child: {ref: "Node"}
		}
	}
}
`)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	files, err := New(&overload.Config{Package: "czml", Exported: true}, WithLogger(logger)).
		Generate(lookup(t, set, "Packet"))
	require.NoError(t, err)

	assert.Equal(t, []string{"node_writer.go", "packet_writer.go"}, Names(files))
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "schema reference cycle")
	assert.Contains(t, logs.String(), "schema=Node")

	node := string(fileByName(t, files, "node_writer.go").Content)
	assert.Contains(t, node, "func (w *NodeWriter) ChildWriter() *NodeWriter {")
}

func TestGenerate_MethodShadowsRuntime(t *testing.T) {
	set := loadSet(t, `
schemas: {
	Packet: {
		properties: {
			memberName: {type: "string"}
		}
	}
}
`)
	_, err := New(&overload.Config{Package: "czml", Exported: true}, WithLogger(discardLogger())).
		Generate(lookup(t, set, "Packet"))
	require.Error(t, err)

	var se *overload.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Packet.memberName", se.Property)
	assert.Contains(t, err.Error(), "schema Packet: ")
	assert.Contains(t, se.Message, "WriteMemberName")
}

func TestGenerate_FailedCallIsForgotten(t *testing.T) {
	set := loadSet(t, `
schemas: {
	Bad: {
		properties: {
			memberName: {type: "string"}
			good: {ref: "Good"}
		}
	}
	Good: {
		properties: {
			text: {type: "string", value: true}
		}
	}
}
`)
	g := New(&overload.Config{Package: "czml", Exported: true}, WithLogger(discardLogger()))
	bad := lookup(t, set, "Bad")
	good := lookup(t, set, "Good")

	_, err := g.Generate(bad)
	require.Error(t, err)
	assert.False(t, g.Emitted(bad))
	assert.False(t, g.Emitted(good))

	_, again := g.Generate(bad)
	require.Error(t, again)
	assert.Equal(t, err.Error(), again.Error())

	files, err := g.Generate(good)
	require.NoError(t, err)
	assert.Equal(t, []string{"good_writer.go"}, Names(files))
}

func TestGenerate_UnwritableProperty(t *testing.T) {
	set := loadSet(t, `
schemas: {
	Packet: {
		properties: {
			tags: {type: "array"}
		}
	}
}
`)
	_, err := New(&overload.Config{Package: "czml", Exported: true}, WithLogger(discardLogger())).
		Generate(lookup(t, set, "Packet"))

	var se *overload.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Packet.tags", se.Property)
}

func TestGenerate_UnexportedWithRuntimeQualifier(t *testing.T) {
	set := loadSet(t, labelSchema)
	cfg := &overload.Config{
		Package:     "scene",
		RuntimePath: "example.com/czml",
		RuntimeName: "czml",
	}

	files, err := New(cfg, WithLogger(discardLogger())).Generate(lookup(t, set, "Packet"))
	require.NoError(t, err)

	label := string(fileByName(t, files, "label_writer.go").Content)
	assert.Contains(t, label, "package scene")
	assert.Contains(t, label, `"example.com/czml"`)
	assert.Contains(t, label, "type labelWriter struct {")
	assert.Contains(t, label, "*czml.PropertyWriter")
	assert.Contains(t, label, "func newLabelWriter(propertyName string) *labelWriter {")
	assert.Contains(t, label, "func (w *labelWriter) writeText(value string) {")
	assert.Contains(t, label, "func (w *labelWriter) asText() *czml.ValuePropertyAdaptor[string] {")

	packet := string(fileByName(t, files, "packet_writer.go").Content)
	assert.Contains(t, packet, "func newPacketWriter() *packetWriter {")
	assert.Contains(t, packet, "czml.NewPacketElement()")
	assert.Contains(t, packet, "func (w *packetWriter) openLabelProperty() *labelWriter {")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	files := []File{
		{Name: "a_writer.go", Content: []byte("package a\n")},
		{Name: "b_writer.go", Content: []byte("package a\n")},
	}

	require.NoError(t, WriteFiles(dir, files))

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err)
		assert.Equal(t, f.Content, got)
	}
}

func TestSnake(t *testing.T) {
	tests := map[string]string{
		"LabelStyle":       "label_style",
		"URI":              "uri",
		"Packet":           "packet",
		"CustomProperties": "custom_properties",
		"PixelOffset":      "pixel_offset",
	}
	for in, want := range tests {
		assert.Equal(t, want, snake(in), in)
	}
}

func TestLowerCamel(t *testing.T) {
	tests := map[string]string{
		"URIWriter":   "uriWriter",
		"ID":          "id",
		"WriteText":   "writeText",
		"labelWriter": "labelWriter",
		"X":           "x",
	}
	for in, want := range tests {
		assert.Equal(t, want, lowerCamel(in), in)
	}
}

func TestFieldName_Keyword(t *testing.T) {
	assert.Equal(t, "type_", fieldName("Type"))
	assert.Equal(t, "pixelOffset", fieldName("PixelOffset"))
}
