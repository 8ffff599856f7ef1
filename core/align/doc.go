// Package align computes optimal pairwise alignments of two symbol
// sequences under a linear scoring scheme.
//
// The optimum is defined by a recurrence over suffixes of both inputs:
// the leading symbols are either paired (match or mismatch), or one of
// them is set against a gap. Trace and AlignWith evaluate it bottom-up
// over a table indexed by suffix offsets; TraceMemo and AlignMemo evaluate
// the same recurrence top-down with a per-call memo keyed by offset pairs.
// Both report the same alignment: candidates are compared in the order
// pair, gap-in-top, gap-in-bottom and only a strictly better score
// replaces the current choice.
//
// The package never validates the alphabet and never fails; callers that
// need to bound work check inputs with CheckLength first.
package align
