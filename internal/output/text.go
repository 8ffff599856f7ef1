// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"dnalign/internal/engine"
)

// WriteTSV prints one row per result, with TSVHeader first when header is set.
func WriteTSV(w io.Writer, list []engine.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
