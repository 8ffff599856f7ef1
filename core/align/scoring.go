package align

import "fmt"

// Scheme is a linear scoring model. Every paired column scores Match or
// Mismatch, every gap column scores Gap.
type Scheme struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScheme scores +1 per match, -1 per mismatch and -2 per gap.
var DefaultScheme = Scheme{Match: 1, Mismatch: -1, Gap: -2}

// Validate rejects schemes under which "optimal" stops meaning anything
// useful: non-negative gaps, or mismatches worth as much as matches.
func (s Scheme) Validate() error {
	if s.Gap >= 0 {
		return fmt.Errorf("gap score must be negative, got %d", s.Gap)
	}
	if s.Match <= s.Mismatch {
		return fmt.Errorf("match score (%d) must exceed mismatch score (%d)", s.Match, s.Mismatch)
	}
	return nil
}

// PruneSafe reports whether pairing two equal leading symbols is always
// at least as good as either gap alternative. When it holds the gap
// candidates are skipped for equal symbols; the reported alignment is the
// same either way because gaps only replace the pairing on a strictly
// better score.
func (s Scheme) PruneSafe() bool {
	return s.Match >= s.Mismatch && s.Match >= 2*s.Gap
}

func (s Scheme) String() string {
	return fmt.Sprintf("match=%d mismatch=%d gap=%d", s.Match, s.Mismatch, s.Gap)
}

type candidate struct {
	score int
	kind  Kind
}

// step chooses the best move for one cell given the optimal scores of the
// three successor subproblems.
func (s Scheme) step(prune, equal bool, diag, right, down int) candidate {
	paired := candidate{diag + s.Mismatch, Mismatch}
	if equal {
		paired = candidate{diag + s.Match, Match}
		if prune {
			return paired
		}
	}
	return best(paired,
		candidate{right + s.Gap, GapTop},
		candidate{down + s.Gap, GapBottom},
	)
}

// best folds candidates left to right; later ones win only when strictly
// better.
func best(first candidate, rest ...candidate) candidate {
	b := first
	for _, c := range rest {
		if c.score > b.score {
			b = c
		}
	}
	return b
}
