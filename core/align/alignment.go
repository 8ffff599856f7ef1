package align

// Gap is the marker placed in a row where that side has no symbol.
const Gap byte = ' '

// Kind classifies one column of an alignment.
type Kind uint8

const (
	Match     Kind = iota // both symbols present and equal
	Mismatch              // both symbols present and different
	GapTop                // top row holds a gap
	GapBottom             // bottom row holds a gap
)

func (k Kind) String() string {
	switch k {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case GapTop:
		return "gap-top"
	case GapBottom:
		return "gap-bottom"
	}
	return "unknown"
}

// Path lists the column kinds of an alignment from left to right.
type Path []Kind

// Alignment is one way of lining up two sequences. Top and Bottom always
// have the same length and a column never holds two gaps.
type Alignment struct {
	Top    []byte
	Bottom []byte
	Score  int
}

// Len returns the number of columns.
func (a Alignment) Len() int { return len(a.Top) }

// KindOf classifies a single column.
func KindOf(top, bottom byte) Kind {
	switch {
	case top == Gap:
		return GapTop
	case bottom == Gap:
		return GapBottom
	case top == bottom:
		return Match
	}
	return Mismatch
}

// Kinds classifies every column.
func (a Alignment) Kinds() Path {
	out := make(Path, len(a.Top))
	for i := range a.Top {
		out[i] = KindOf(a.Top[i], a.Bottom[i])
	}
	return out
}

// Valid reports whether the rows have equal length and no column holds a
// gap on both sides.
func (a Alignment) Valid() bool {
	if len(a.Top) != len(a.Bottom) {
		return false
	}
	for i := range a.Top {
		if a.Top[i] == Gap && a.Bottom[i] == Gap {
			return false
		}
	}
	return true
}

// Swap exchanges the rows. The score is unchanged.
func (a Alignment) Swap() Alignment {
	return Alignment{Top: a.Bottom, Bottom: a.Top, Score: a.Score}
}

// Stats counts column kinds.
type Stats struct {
	Length     int
	Matches    int
	Mismatches int
	Gaps       int
}

func (a Alignment) Stats() Stats {
	st := Stats{Length: len(a.Top)}
	for i := range a.Top {
		switch KindOf(a.Top[i], a.Bottom[i]) {
		case Match:
			st.Matches++
		case Mismatch:
			st.Mismatches++
		default:
			st.Gaps++
		}
	}
	return st
}

// Identity is the fraction of columns that are matches (0 for an empty
// alignment).
func (s Stats) Identity() float64 {
	if s.Length == 0 {
		return 0
	}
	return float64(s.Matches) / float64(s.Length)
}

// Score recomputes the score of a path under s.
func (p Path) Score(s Scheme) int {
	total := 0
	for _, k := range p {
		switch k {
		case Match:
			total += s.Match
		case Mismatch:
			total += s.Mismatch
		default:
			total += s.Gap
		}
	}
	return total
}

// build lays a and b out along p.
func build(p Path, score int, a, b []byte) Alignment {
	top := make([]byte, len(p))
	bottom := make([]byte, len(p))
	i, j := 0, 0
	for c, k := range p {
		switch k {
		case Match, Mismatch:
			top[c], bottom[c] = a[i], b[j]
			i++
			j++
		case GapTop:
			top[c], bottom[c] = Gap, b[j]
			j++
		case GapBottom:
			top[c], bottom[c] = a[i], Gap
			i++
		}
	}
	return Alignment{Top: top, Bottom: bottom, Score: score}
}
