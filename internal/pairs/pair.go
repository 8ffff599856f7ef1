// internal/pairs/pair.go
package pairs

import (
	"fmt"
	"math/rand/v2"

	"dnalign-core/strand"
	"dnalign/internal/fasta"
)

// Pair is one alignment job: two strands and a label for the output.
type Pair struct {
	ID     string
	Top    string
	Bottom string
}

// Inline wraps the strands given on the command line.
func Inline(top, bottom string) []Pair {
	return []Pair{{ID: "manual", Top: top, Bottom: bottom}}
}

// FromRecords pairs FASTA records in file order: 1 with 2, 3 with 4, ...
func FromRecords(recs []fasta.Record) ([]Pair, error) {
	if len(recs)%2 != 0 {
		return nil, fmt.Errorf("odd number of FASTA records (%d); records are aligned in consecutive pairs", len(recs))
	}
	out := make([]Pair, 0, len(recs)/2)
	for i := 0; i < len(recs); i += 2 {
		a, b := recs[i], recs[i+1]
		out = append(out, Pair{ID: a.ID + "~" + b.ID, Top: string(a.Seq), Bottom: string(b.Seq)})
	}
	return out, nil
}

// Random draws n pairs of strands with lengths in [minLen, maxLen].
func Random(r *rand.Rand, n, minLen, maxLen int) ([]Pair, error) {
	out := make([]Pair, 0, n)
	for i := 1; i <= n; i++ {
		a, err := strand.Random(r, minLen, maxLen)
		if err != nil {
			return nil, err
		}
		b, err := strand.Random(r, minLen, maxLen)
		if err != nil {
			return nil, err
		}
		out = append(out, Pair{ID: fmt.Sprintf("random%d", i), Top: string(a), Bottom: string(b)})
	}
	return out, nil
}

// Prepare normalizes both strands of every pair (whitespace and quotes
// removed, upper-cased). With strict set, any symbol outside the DNA
// alphabet is an error naming the pair.
func Prepare(list []Pair, strict bool) ([]Pair, error) {
	out := make([]Pair, len(list))
	for i, p := range list {
		if !strict {
			out[i] = Pair{ID: p.ID, Top: strand.Normalize(p.Top), Bottom: strand.Normalize(p.Bottom)}
			continue
		}
		top, err := strand.Validate(p.Top, strand.DNA)
		if err != nil {
			return nil, fmt.Errorf("pair %s top: %w", p.ID, err)
		}
		bottom, err := strand.Validate(p.Bottom, strand.DNA)
		if err != nil {
			return nil, fmt.Errorf("pair %s bottom: %w", p.ID, err)
		}
		out[i] = Pair{ID: p.ID, Top: top, Bottom: bottom}
	}
	return out, nil
}
