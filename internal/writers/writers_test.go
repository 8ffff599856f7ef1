package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"dnalign-core/align"
	"dnalign/internal/engine"
	"dnalign/internal/output"
	"dnalign/internal/pretty"
	"dnalign/pkg/api"
)

func result(id, top, bottom string) engine.Result {
	a := align.Align([]byte(top), []byte(bottom))
	return engine.Result{ID: id, Alignment: a, Stats: a.Stats()}
}

func run(t *testing.T, w io.Writer, format string, sorted bool, o Options, list ...engine.Result) error {
	t.Helper()
	in, done := StartResultWriter(w, format, sorted, o, 1)
	for _, r := range list {
		in <- r
	}
	close(in)
	return <-done
}

func TestUnknownResultFormatError(t *testing.T) {
	var b bytes.Buffer
	err := run(t, &b, "nope-format", false, Options{}, result("a", "A", "A"), result("b", "C", "C"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown result format")
}

func TestFormats_Registered(t *testing.T) {
	require.Equal(t, []string{"json", "jsonl", "text", "tsv"}, Formats())
}

func TestStartResultWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	o := Options{Pretty: pretty.DefaultOptions}
	require.NoError(t, run(t, &buf, output.FormatText, false, o, result("x", "ACGT", "AGT")))
	require.Equal(t, pretty.Render(align.Align([]byte("ACGT"), []byte("AGT"))), buf.String())
}

func TestStartResultWriter_TSVSorted(t *testing.T) {
	var buf bytes.Buffer
	err := run(t, &buf, output.FormatTSV, true, Options{Header: true},
		result("b", "A", "A"), result("a", "A", "T"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, output.TSVHeader, lines[0])
	require.True(t, strings.HasPrefix(lines[1], "a\t"))
	require.True(t, strings.HasPrefix(lines[2], "b\t"))
}

func TestStartResultWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(t, &buf, output.FormatJSON, false, Options{},
		result("x", "ACGT", "AGT"), result("y", "A", "T")))
	var got []api.AlignmentV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "A GT", got[0].Bottom)
	require.Equal(t, -1, got[1].Score)
}

func TestStartResultWriter_JSONLStreamsValidV1(t *testing.T) {
	for _, sorted := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, run(t, &buf, output.FormatJSONL, sorted, Options{},
			result("y", "A", "T"), result("x", "ACGT", "AGT")))
		sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
		var ids []string
		for sc.Scan() {
			var v api.AlignmentV1
			require.NoError(t, json.Unmarshal(sc.Bytes(), &v), sc.Text())
			ids = append(ids, v.ID)
		}
		if sorted {
			require.Equal(t, []string{"x", "y"}, ids)
		} else {
			require.Equal(t, []string{"y", "x"}, ids)
		}
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestStartResultWriter_ErrorDrainsInput(t *testing.T) {
	boom := errors.New("disk full")
	err := run(t, failWriter{boom}, output.FormatTSV, false, Options{},
		result("a", "A", "A"), result("b", "A", "A"), result("c", "A", "A"))
	require.ErrorIs(t, err, boom)
}

func TestIsBrokenPipe(t *testing.T) {
	require.True(t, IsBrokenPipe(syscall.EPIPE))
	require.True(t, IsBrokenPipe(io.ErrClosedPipe))
	require.False(t, IsBrokenPipe(nil))
	require.False(t, IsBrokenPipe(errors.New("x")))
}
