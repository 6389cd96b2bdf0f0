package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Success(GenerateResult{Dir: "out", Files: []string{"packet_writer.go"}}))

	var resp struct {
		Status string         `json:"status"`
		Data   GenerateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []string{"packet_writer.go"}, resp.Data.Files)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Error(ErrCodeGeneration, "property Packet.position: no overloads", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E103", resp.Error.Code)
	assert.Nil(t, resp.Error.Location)
}

func TestOutputFormatter_JSONErrorLocation(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Error(ErrCodeSchema, "duplicate schema", &Location{File: "czml.cue", Line: 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, &Location{File: "czml.cue", Line: 3}, resp.Error.Location)
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, formatter.Error(ErrCodeSchema, "duplicate schema", nil))
	assert.Equal(t, "Error [E101]: duplicate schema\n", buf.String())

	buf.Reset()
	require.NoError(t, formatter.Error(ErrCodeSchema, "duplicate schema", &Location{File: "czml.cue", Line: 3}))
	assert.Equal(t, "Error [E101]: czml.cue:3: duplicate schema\n", buf.String())
}

func TestOutputFormatter_Fail(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}
	cause := errors.New("disk full")

	err := formatter.Fail(ExitCommandError, ErrCodeWriteFailed, cause)

	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, buf.String(), "Error [E007]: disk full")
}

type brokenWriter struct{ err error }

func (w brokenWriter) Write([]byte) (int, error) { return 0, w.err }

func TestOutputFormatter_FailKeepsReportError(t *testing.T) {
	closed := errors.New("stdout closed")
	cause := errors.New("disk full")

	for _, format := range []string{"text", "json"} {
		formatter := &OutputFormatter{Format: format, Writer: brokenWriter{closed}}

		err := formatter.Fail(ExitCommandError, ErrCodeWriteFailed, cause)

		assert.Equal(t, ExitCommandError, GetExitCode(err), format)
		assert.ErrorIs(t, err, cause, format)
		assert.ErrorIs(t, err, closed, format)
	}
}

func TestOutputFormatter_SuccessReturnsWriteError(t *testing.T) {
	closed := errors.New("stdout closed")
	formatter := &OutputFormatter{Format: "text", Writer: brokenWriter{closed}}

	assert.ErrorIs(t, formatter.Success(EmitResult{Output: "out.czml"}), closed)
}

func TestLoadError_Location(t *testing.T) {
	assert.Nil(t, (&LoadError{Code: ErrCodeGeneric, Message: "boom"}).Location())
}

func TestOutputFormatter_VerboseLogGoesToErrWriter(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}

	formatter.VerboseLog("watching %s", "czml.cue")

	assert.Empty(t, out.String())
	assert.Equal(t, "watching czml.cue\n", errOut.String())

	formatter.Verbose = false
	errOut.Reset()
	formatter.VerboseLog("ignored")
	assert.Empty(t, errOut.String())
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitFailure},
		{"exit error", NewExitError(ExitCommandError, "missing"), ExitCommandError},
		{"wrapped", fmt.Errorf("run: %w", NewExitError(ExitFailure, "invalid")), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}
