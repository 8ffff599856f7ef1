// internal/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
)

// StreamPathCtx opens path and streams its records to emit.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := StreamCtx(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}
	return nil
}

// ReadAll loads every record of every path, in order.
func ReadAll(ctx context.Context, paths []string) ([]Record, error) {
	var recs []Record
	for _, p := range paths {
		err := StreamPathCtx(ctx, p, func(r Record) error {
			recs = append(recs, r)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
