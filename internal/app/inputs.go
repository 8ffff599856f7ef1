package app

import (
	"context"
	"fmt"

	"dnalign-core/align"
	"dnalign-core/strand"
	"dnalign/internal/cli"
	"dnalign/internal/fasta"
	"dnalign/internal/pairs"
)

// loadPairs builds the job list from whichever input source opts selects.
func loadPairs(ctx context.Context, opts cli.Options) ([]pairs.Pair, error) {
	switch {
	case opts.Inline():
		return pairs.Inline(opts.Top, opts.Bottom), nil
	case opts.PairsFile != "":
		return pairs.LoadTSV(opts.PairsFile)
	case len(opts.SeqFiles) > 0:
		recs, err := fasta.ReadAll(ctx, opts.SeqFiles)
		if err != nil {
			return nil, err
		}
		return pairs.FromRecords(recs)
	case opts.Random > 0:
		return pairs.Random(strand.NewRand(opts.Seed), opts.Random, opts.MinLen, opts.MaxLenRand)
	}
	return nil, nil
}

// checkLengths fails fast, before any output, when a strand is over limit.
func checkLengths(list []pairs.Pair, limit int) error {
	for _, p := range list {
		if err := align.CheckLength([]byte(p.Top), []byte(p.Bottom), limit); err != nil {
			return fmt.Errorf("pair %s: %w", p.ID, err)
		}
	}
	return nil
}
