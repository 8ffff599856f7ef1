package engine

import (
	"fmt"

	"dnalign-core/align"
	"dnalign/internal/pairs"
)

// Alignment methods.
const (
	MethodTable = "table" // bottom-up table, no recursion
	MethodMemo  = "memo"  // top-down recursion with a per-call memo
)

// Config fixes how every job of a run is aligned.
type Config struct {
	Scheme    align.Scheme
	Method    string
	MaxLength int // per strand; 0 = unlimited
}

// Result is one aligned pair.
type Result struct {
	ID        string
	Alignment align.Alignment
	Stats     align.Stats
}

type Engine struct {
	cfg   Config
	align func(align.Scheme, []byte, []byte) align.Alignment
}

// New validates cfg and returns an Engine. An empty Method selects the
// table implementation.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Scheme.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxLength < 0 {
		return nil, fmt.Errorf("max length must be >= 0, got %d", cfg.MaxLength)
	}
	e := &Engine{cfg: cfg}
	switch cfg.Method {
	case "", MethodTable:
		e.align = align.AlignWith
	case MethodMemo:
		e.align = align.AlignMemo
	default:
		return nil, fmt.Errorf("unknown alignment method %q (want %s or %s)", cfg.Method, MethodTable, MethodMemo)
	}
	return e, nil
}

// Config returns the settings the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Align aligns one pair. The only failure is a strand over MaxLength,
// reported as a wrapped align.ErrTooLong.
func (e *Engine) Align(p pairs.Pair) (Result, error) {
	a, b := []byte(p.Top), []byte(p.Bottom)
	if err := align.CheckLength(a, b, e.cfg.MaxLength); err != nil {
		return Result{}, fmt.Errorf("pair %s: %w", p.ID, err)
	}
	al := e.align(e.cfg.Scheme, a, b)
	return Result{ID: p.ID, Alignment: al, Stats: al.Stats()}, nil
}
