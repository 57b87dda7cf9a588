package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix is returned when a nil matrix is passed in.
	ErrNilMatrix = errors.New("bench: nil matrix")

	// ErrUnknownStrategy is returned for a Strategy value outside the defined set.
	ErrUnknownStrategy = errors.New("bench: unknown strategy")

	// ErrUnknownKernel is returned when WithKernel names no registered kernel.
	ErrUnknownKernel = errors.New("bench: unknown kernel")

	// ErrTransposeMismatch is returned by Run when a strategy's transpose
	// differs from the sequential transpose.
	ErrTransposeMismatch = errors.New("bench: transposition failed")
)

func validateStrategy(s Strategy) error {
	if !s.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return nil
}
