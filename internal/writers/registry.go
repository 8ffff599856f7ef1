// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"dnalign/internal/engine"
	"dnalign/internal/pretty"
)

// Options shared by every result writer.
type Options struct {
	Header bool           // TSV header row
	Pretty pretty.Options // text blocks
}

// ResultWriter serializes results in one format. Batch is required; Stream
// is optional and used when the caller does not ask for sorted output.
type ResultWriter struct {
	Batch  func(w io.Writer, list []engine.Result, o Options) error
	Stream func(w io.Writer, in <-chan engine.Result, o Options) error
}

// Writer registry (format → handler). Register in init() blocks.
var ResultWriters = map[string]ResultWriter{}

// RegisterResult is idempotent, last wins.
func RegisterResult(format string, rw ResultWriter) { ResultWriters[format] = rw }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ResultWriters))
	for k := range ResultWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func lookup(format string) (ResultWriter, error) {
	rw, ok := ResultWriters[format]
	if !ok || rw.Batch == nil {
		return ResultWriter{}, fmt.Errorf("unknown result format %q (no writer registered)", format)
	}
	return rw, nil
}
