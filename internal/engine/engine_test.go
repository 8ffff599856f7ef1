package engine

import (
	"errors"
	"testing"

	"dnalign-core/align"
	"dnalign/internal/pairs"
)

func TestEngineMethodsAgree(t *testing.T) {
	p := pairs.Pair{ID: "x", Top: "GATTACA", Bottom: "GCATGCT"}
	var got []Result
	for _, m := range []string{"", MethodTable, MethodMemo} {
		e, err := New(Config{Scheme: align.DefaultScheme, Method: m})
		if err != nil {
			t.Fatalf("new %q: %v", m, err)
		}
		r, err := e.Align(p)
		if err != nil {
			t.Fatalf("align %q: %v", m, err)
		}
		got = append(got, r)
	}
	for _, r := range got[1:] {
		if string(r.Alignment.Top) != string(got[0].Alignment.Top) ||
			string(r.Alignment.Bottom) != string(got[0].Alignment.Bottom) ||
			r.Alignment.Score != got[0].Alignment.Score {
			t.Fatalf("methods disagree: %+v vs %+v", r, got[0])
		}
	}
	if got[0].ID != "x" || got[0].Stats.Length != got[0].Alignment.Len() {
		t.Fatalf("result metadata: %+v", got[0])
	}
}

func TestEngineRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{Scheme: align.Scheme{Match: 1, Mismatch: -1, Gap: 0}}); err == nil {
		t.Fatalf("zero gap must be rejected")
	}
	if _, err := New(Config{Scheme: align.DefaultScheme, Method: "bogus"}); err == nil {
		t.Fatalf("unknown method must be rejected")
	}
	if _, err := New(Config{Scheme: align.DefaultScheme, MaxLength: -1}); err == nil {
		t.Fatalf("negative max length must be rejected")
	}
}

func TestEngineLengthGuard(t *testing.T) {
	e, err := New(Config{Scheme: align.DefaultScheme, MaxLength: 3})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = e.Align(pairs.Pair{ID: "long", Top: "ACGT", Bottom: "A"})
	if !errors.Is(err, align.ErrTooLong) {
		t.Fatalf("want ErrTooLong, got %v", err)
	}
}
