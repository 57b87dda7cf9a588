package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned for a dimension that is not a positive power of two.
	ErrInvalidDimension = errors.New("matrix: dimension must be a positive power of two")

	// ErrAllocation is returned when the backing buffer cannot be allocated.
	ErrAllocation = errors.New("matrix: memory allocation failed")

	// ErrNotSquare is returned by FromRows for ragged or non-square input.
	ErrNotSquare = errors.New("matrix: rows do not form a square matrix")

	// ErrClosed is returned when a released matrix is used to allocate a sibling.
	ErrClosed = errors.New("matrix: matrix is closed")
)

func validateDimension(n int) error {
	if !ValidDimension(n) {
		return fmt.Errorf("%w: %d", ErrInvalidDimension, n)
	}
	return nil
}
