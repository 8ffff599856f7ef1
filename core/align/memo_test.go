package align

import (
	"math/rand"
	"strings"
	"testing"
)

// naive evaluates the recurrence with no cache, building rows by string
// concatenation. It is the behavioural reference for rows and tie-breaks.
func naive(a, b string) (string, string, int) {
	if len(a) == 0 {
		return strings.Repeat(" ", len(b)), b, -2 * len(b)
	}
	if len(b) == 0 {
		return a, strings.Repeat(" ", len(a)), -2 * len(a)
	}
	t, u, sc := naive(a[1:], b[1:])
	top, bottom := a[:1]+t, b[:1]+u
	if a[0] == b[0] {
		return top, bottom, sc + 1
	}
	score := sc - 1
	if t, u, sc := naive(a, b[1:]); sc-2 > score {
		top, bottom, score = " "+t, b[:1]+u, sc-2
	}
	if t, u, sc := naive(a[1:], b); sc-2 > score {
		top, bottom, score = a[:1]+t, " "+u, sc-2
	}
	return top, bottom, score
}

func allStrings(alphabet string, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for n := 1; n <= maxLen; n++ {
		var nextLevel []string
		for _, s := range level {
			for i := 0; i < len(alphabet); i++ {
				nextLevel = append(nextLevel, s+alphabet[i:i+1])
			}
		}
		out = append(out, nextLevel...)
		level = nextLevel
	}
	return out
}

func checkAgainstNaive(t *testing.T, a, b string) {
	t.Helper()
	wt, wb, ws := naive(a, b)
	tab := AlignWith(DefaultScheme, []byte(a), []byte(b))
	mem := AlignMemo(DefaultScheme, []byte(a), []byte(b))
	for name, got := range map[string]Alignment{"table": tab, "memo": mem} {
		if string(got.Top) != wt || string(got.Bottom) != wb || got.Score != ws {
			t.Fatalf("%s(%q,%q) = (%q,%q,%d), naive = (%q,%q,%d)",
				name, a, b, got.Top, got.Bottom, got.Score, wt, wb, ws)
		}
	}
}

func TestExhaustiveSmallInputs(t *testing.T) {
	words := allStrings("AT", 5)
	for _, a := range words {
		for _, b := range words {
			checkAgainstNaive(t, a, b)
		}
	}
}

func TestRandomInputsUpToEight(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 150; n++ {
		a := string(randomDNA(r, r.Intn(9)))
		b := string(randomDNA(r, r.Intn(9)))
		checkAgainstNaive(t, a, b)
	}
}

func TestPruneDoesNotChangeOutput(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for n := 0; n < 200; n++ {
		a := randomDNA(r, r.Intn(30))
		b := randomDNA(r, r.Intn(30))
		p1, s1 := trace(DefaultScheme, a, b, true)
		p2, s2 := trace(DefaultScheme, a, b, false)
		if s1 != s2 || len(p1) != len(p2) {
			t.Fatalf("prune changed result for %s/%s: %d vs %d", a, b, s1, s2)
		}
		for i := range p1 {
			if p1[i] != p2[i] {
				t.Fatalf("prune changed path for %s/%s at column %d", a, b, i)
			}
		}
	}
}

func TestUnsafeSchemeRunsFullComparison(t *testing.T) {
	s := Scheme{Match: -5, Mismatch: -6, Gap: -2}
	if s.PruneSafe() {
		t.Fatalf("scheme should not be prune-safe")
	}
	for name, got := range map[string]Alignment{
		"table": AlignWith(s, []byte("A"), []byte("A")),
		"memo":  AlignMemo(s, []byte("A"), []byte("A")),
	} {
		if got.Score != -4 || string(got.Top) != " A" || string(got.Bottom) != "A " {
			t.Fatalf("%s: got %q/%q %d, want \" A\"/\"A \" -4", name, got.Top, got.Bottom, got.Score)
		}
	}
	if _, pruned := trace(s, []byte("A"), []byte("A"), true); pruned != -5 {
		t.Fatalf("forced prune should settle for -5, got %d", pruned)
	}
}

func TestCustomSchemeAgreement(t *testing.T) {
	s := Scheme{Match: 2, Mismatch: -3, Gap: -1}
	r := rand.New(rand.NewSource(9))
	for n := 0; n < 100; n++ {
		a := randomDNA(r, r.Intn(25))
		b := randomDNA(r, r.Intn(25))
		tab := AlignWith(s, a, b)
		mem := AlignMemo(s, a, b)
		if string(tab.Top) != string(mem.Top) || string(tab.Bottom) != string(mem.Bottom) || tab.Score != mem.Score {
			t.Fatalf("table and memo disagree for %s/%s", a, b)
		}
		if got := tab.Kinds().Score(s); got != tab.Score {
			t.Fatalf("score %d does not match columns %d", tab.Score, got)
		}
	}
}
