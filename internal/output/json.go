// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"dnalign/internal/engine"
	"dnalign/pkg/api"
)

// ToAPIAlignment converts a domain Result to the stable wire schema (v1).
func ToAPIAlignment(r engine.Result) api.AlignmentV1 {
	return api.AlignmentV1{
		ID:         r.ID,
		Top:        string(r.Alignment.Top),
		Bottom:     string(r.Alignment.Bottom),
		Score:      r.Alignment.Score,
		Length:     r.Stats.Length,
		Matches:    r.Stats.Matches,
		Mismatches: r.Stats.Mismatches,
		Gaps:       r.Stats.Gaps,
		Identity:   r.Stats.Identity(),
	}
}

func toAPIAlignments(list []engine.Result) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIAlignment(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Result) error {
	return EncodePretty(w, toAPIAlignments(list))
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
