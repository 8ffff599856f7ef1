// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"dnalign/internal/engine"
	"dnalign/internal/pairs"
)

// Config controls the alignment pipeline.
type Config struct {
	Threads int    // number of concurrent alignments (>=1)
	OnDone  func() // optional; called once per finished alignment, from worker goroutines
}

// Aligner is the engine surface the pipeline needs.
type Aligner interface {
	Align(pairs.Pair) (engine.Result, error)
}

// ForEachResult aligns every pair in list and calls visit with the results
// in list order, regardless of which worker finished first. visit runs on a
// single goroutine. It returns the first error encountered: an alignment
// error, a visit error, or the context's error.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	list []pairs.Pair,
	eng Aligner,
	visit func(engine.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(cfg.Threads)

	type slot struct {
		idx int
		res engine.Result
	}
	results := make(chan slot, cfg.Threads*2)

	// Collector: reorders and visits. Keeps draining after a visit error so
	// workers never block on send.
	collected := make(chan error, 1)
	go func() {
		pending := make(map[int]engine.Result)
		next := 0
		var vErr error
		for s := range results {
			if vErr != nil {
				continue
			}
			pending[s.idx] = s.res
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(r); err != nil {
					vErr = err
					cancel()
					break
				}
			}
		}
		collected <- vErr
	}()

	for i, p := range list {
		if gctx.Err() != nil {
			break
		}
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := eng.Align(p)
			if err != nil {
				return err
			}
			if cfg.OnDone != nil {
				cfg.OnDone()
			}
			select {
			case results <- slot{idx: i, res: res}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	wErr := g.Wait()
	close(results)
	vErr := <-collected

	switch {
	case vErr != nil:
		return vErr
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return wErr
	}
}
