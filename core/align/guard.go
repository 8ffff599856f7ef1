package align

import (
	"errors"
	"fmt"
)

// ErrTooLong is returned by CheckLength when an input is over the limit.
var ErrTooLong = errors.New("sequence too long")

// CheckLength bounds the work of one alignment, which grows with
// len(a)*len(b). limit <= 0 means no limit.
func CheckLength[T any](a, b []T, limit int) error {
	if limit <= 0 {
		return nil
	}
	if len(a) > limit {
		return fmt.Errorf("%w: top has %d symbols, limit is %d", ErrTooLong, len(a), limit)
	}
	if len(b) > limit {
		return fmt.Errorf("%w: bottom has %d symbols, limit is %d", ErrTooLong, len(b), limit)
	}
	return nil
}
