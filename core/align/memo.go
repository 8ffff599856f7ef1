package align

// AlignMemo returns the same alignment as AlignWith, computed top-down.
// Recursion depth grows with len(a)+len(b).
func AlignMemo(s Scheme, a, b []byte) Alignment {
	p, score := TraceMemo(s, a, b)
	return build(p, score, a, b)
}

type cell struct{ i, j int }

type memo[T comparable] struct {
	s     Scheme
	a, b  []T
	prune bool
	cells map[cell]candidate
}

// TraceMemo evaluates the suffix recurrence recursively from (0, 0),
// caching every solved (i, j) subproblem. The cache lives for this call
// only.
func TraceMemo[T comparable](s Scheme, a, b []T) (Path, int) {
	m := &memo[T]{s: s, a: a, b: b, prune: s.PruneSafe(), cells: make(map[cell]candidate)}
	score := m.solve(0, 0)

	path := make(Path, 0, len(a)+len(b))
	for i, j := 0, 0; i < len(a) || j < len(b); {
		var k Kind
		switch {
		case i == len(a):
			k = GapTop
		case j == len(b):
			k = GapBottom
		default:
			k = m.cells[cell{i, j}].kind
		}
		path = append(path, k)
		switch k {
		case Match, Mismatch:
			i++
			j++
		case GapTop:
			j++
		default:
			i++
		}
	}
	return path, score
}

func (m *memo[T]) solve(i, j int) int {
	if i == len(m.a) {
		return m.s.Gap * (len(m.b) - j)
	}
	if j == len(m.b) {
		return m.s.Gap * (len(m.a) - i)
	}
	key := cell{i, j}
	if c, ok := m.cells[key]; ok {
		return c.score
	}
	equal := m.a[i] == m.b[j]
	diag := m.solve(i+1, j+1)
	var c candidate
	if equal && m.prune {
		c = candidate{diag + m.s.Match, Match}
	} else {
		c = m.s.step(false, equal, diag, m.solve(i, j+1), m.solve(i+1, j))
	}
	m.cells[key] = c
	return c.score
}
