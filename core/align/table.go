// core/align/table.go
package align

// Align returns the optimal alignment of a and b under DefaultScheme.
func Align(a, b []byte) Alignment {
	return AlignWith(DefaultScheme, a, b)
}

// AlignWith returns the optimal alignment of a and b under s.
func AlignWith(s Scheme, a, b []byte) Alignment {
	p, score := Trace(s, a, b)
	return build(p, score, a, b)
}

// Trace evaluates the suffix recurrence bottom-up and returns the chosen
// path and its score. Cell (i, j) holds the optimum for a[i:] against b[j:];
// rows are filled from i = len(a) down to 0 so every successor is ready
// before it is read. Only two score rows are live at a time; the direction
// table keeps one byte per cell for the walk back out.
func Trace[T comparable](s Scheme, a, b []T) (Path, int) {
	return trace(s, a, b, s.PruneSafe())
}

func trace[T comparable](s Scheme, a, b []T, prune bool) (Path, int) {
	n, m := len(a), len(b)
	cols := m + 1
	dirs := make([]Kind, (n+1)*cols)
	next := make([]int, cols) // row i+1
	cur := make([]int, cols)  // row i

	// a exhausted: every remaining symbol of b sits under a gap.
	for j := 0; j <= m; j++ {
		next[j] = s.Gap * (m - j)
		dirs[n*cols+j] = GapTop
	}
	for i := n - 1; i >= 0; i-- {
		row := dirs[i*cols : (i+1)*cols]
		cur[m] = s.Gap * (n - i)
		row[m] = GapBottom
		for j := m - 1; j >= 0; j-- {
			c := s.step(prune, a[i] == b[j], next[j+1], cur[j+1], next[j])
			cur[j], row[j] = c.score, c.kind
		}
		cur, next = next, cur
	}

	path := make(Path, 0, n+m)
	for i, j := 0, 0; i < n || j < m; {
		k := dirs[i*cols+j]
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
	return path, next[0]
}
