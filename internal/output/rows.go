package output

import (
	"fmt"
	"sort"

	"dnalign/internal/engine"
)

// FormatRowTSV returns the TSV columns for r (no trailing newline).
func FormatRowTSV(r engine.Result) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%d\t%d\t%.4f\t%s\t%s",
		r.ID, r.Alignment.Score,
		r.Stats.Length, r.Stats.Matches, r.Stats.Mismatches, r.Stats.Gaps,
		r.Stats.Identity(),
		r.Alignment.Top, r.Alignment.Bottom,
	)
}

// SortResults orders list by id, keeping input order among equal ids.
func SortResults(list []engine.Result) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].ID < list[j].ID })
}
