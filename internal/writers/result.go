package writers

import (
	"encoding/json"
	"io"

	"dnalign/internal/engine"
	"dnalign/internal/jsonlutil"
	"dnalign/internal/output"
	"dnalign/internal/pretty"
)

func init() {
	RegisterResult(output.FormatText, ResultWriter{Batch: writeTextBatch, Stream: writeTextStream})
	RegisterResult(output.FormatTSV, ResultWriter{Batch: writeTSVBatch, Stream: writeTSVStream})
	RegisterResult(output.FormatJSON, ResultWriter{Batch: writeJSONBatch})
	RegisterResult(output.FormatJSONL, ResultWriter{Batch: writeJSONLBatch, Stream: writeJSONLStream})
}

// StartResultWriter spins up a writer goroutine for engine.Result items.
// The returned error channel yields exactly one value after in is closed.
// After a write error the goroutine keeps draining in so senders never block.
func StartResultWriter(out io.Writer, format string, sorted bool, o Options, bufSize int) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		defer func() {
			for range in {
			}
		}()
		rw, err := lookup(format)
		if err != nil {
			errCh <- err
			return
		}
		if sorted || rw.Stream == nil {
			var buf []engine.Result
			for r := range in {
				buf = append(buf, r)
			}
			if sorted {
				output.SortResults(buf)
			}
			errCh <- rw.Batch(out, buf, o)
			return
		}
		errCh <- rw.Stream(out, in, o)
	}()

	return in, errCh
}

func renderText(r engine.Result, o Options) string {
	return pretty.RenderResult(r.ID, r.Alignment, o.Pretty)
}

func writeTextBatch(w io.Writer, list []engine.Result, o Options) error {
	for _, r := range list {
		if _, err := io.WriteString(w, renderText(r, o)); err != nil {
			return err
		}
	}
	return nil
}

func writeTextStream(w io.Writer, in <-chan engine.Result, o Options) error {
	for r := range in {
		if _, err := io.WriteString(w, renderText(r, o)); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVBatch(w io.Writer, list []engine.Result, o Options) error {
	return output.WriteTSV(w, list, o.Header)
}

func writeTSVStream(w io.Writer, in <-chan engine.Result, o Options) error {
	if o.Header {
		if _, err := io.WriteString(w, output.TSVHeader+"\n"); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := io.WriteString(w, output.FormatRowTSV(r)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONBatch(w io.Writer, list []engine.Result, _ Options) error {
	return output.WriteJSON(w, list)
}

func encodeJSONL(enc *json.Encoder, r engine.Result) error {
	return enc.Encode(output.ToAPIAlignment(r))
}

// writeJSONLStream writes each result as one JSON line (v1).
func writeJSONLStream(w io.Writer, in <-chan engine.Result, _ Options) error {
	return jsonlutil.Write[engine.Result](w, in, encodeJSONL, IsBrokenPipe)
}

func writeJSONLBatch(w io.Writer, list []engine.Result, _ Options) error {
	return jsonlutil.Write[engine.Result](w, jsonlutil.FromSlice(list), encodeJSONL, IsBrokenPipe)
}
