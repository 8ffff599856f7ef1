// core/strand/strand.go
package strand

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
)

// Alphabet is the ordered set of symbols a strand may contain.
type Alphabet string

// DNA is the four-base alphabet, in the order random strands draw from.
const DNA Alphabet = "ATGC"

// IUPAC accepts the DNA bases plus the ambiguity codes.
const IUPAC Alphabet = "ACGTRYSWKMBDHVN"

// Contains reports whether r is a symbol of a.
func (a Alphabet) Contains(r rune) bool { return strings.ContainsRune(string(a), r) }

// Normalize removes whitespace and quotes and uppercases the rest.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate returns the normalized strand, or an error naming the first
// symbol outside alpha (1-based position). Empty strands are valid.
func Validate(raw string, alpha Alphabet) (string, error) {
	s := Normalize(raw)
	for i, r := range []rune(s) {
		if !alpha.Contains(r) {
			return "", fmt.Errorf("invalid base %q at %d; allowed: %s", r, i+1, spaced(alpha))
		}
	}
	return s, nil
}

func spaced(a Alphabet) string {
	return strings.Join(strings.Split(string(a), ""), " ")
}

var (
	ErrMinLength = errors.New("minimum strand length must be positive")
	ErrMaxLength = errors.New("maximum strand length must be at least the minimum")
)

// Random returns a strand whose length is drawn uniformly from
// [minLen, maxLen] and whose symbols are drawn uniformly from DNA.
func Random(r *rand.Rand, minLen, maxLen int) ([]byte, error) {
	return RandomFrom(r, DNA, minLen, maxLen)
}

// RandomFrom is Random over an arbitrary alphabet.
func RandomFrom(r *rand.Rand, alpha Alphabet, minLen, maxLen int) ([]byte, error) {
	if minLen <= 0 {
		return nil, ErrMinLength
	}
	if maxLen < minLen {
		return nil, ErrMaxLength
	}
	if len(alpha) == 0 {
		return nil, errors.New("empty alphabet")
	}
	n := minLen + r.IntN(maxLen-minLen+1)
	out := make([]byte, n)
	for i := range out {
		out[i] = alpha[r.IntN(len(alpha))]
	}
	return out, nil
}

// NewRand returns a generator seeded with seed, or from the runtime's
// entropy when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
