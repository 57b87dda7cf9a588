package bench

import (
	"slices"
	"time"

	"github.com/cwbudde/algo-matbench/matrix"
)

// CheckSymmetric reports whether m equals its transpose, using strategy s,
// together with the wall-clock time the check took. Kernel selection
// happens before the stopwatch starts.
func CheckSymmetric(m *matrix.Matrix, s Strategy, opts ...Option) (bool, time.Duration, error) {
	if err := validateInput(m, s); err != nil {
		return false, 0, err
	}

	check, err := applyOptions(opts).symmetricFn(s)
	if err != nil {
		return false, 0, err
	}

	sw := StartStopwatch()
	sym := check(m.Data(), m.N())
	return sym, sw.Elapsed(), nil
}

// Transpose returns a new matrix T with T[i][j] = M[j][i], computed with
// strategy s, together with the wall-clock time of the transposition
// itself. T uses the same storage kind as m; the caller must Close it.
func Transpose(m *matrix.Matrix, s Strategy, opts ...Option) (*matrix.Matrix, time.Duration, error) {
	if err := validateInput(m, s); err != nil {
		return nil, 0, err
	}

	transpose, err := applyOptions(opts).transposeFn(s)
	if err != nil {
		return nil, 0, err
	}

	out, err := m.NewLike()
	if err != nil {
		return nil, 0, err
	}

	sw := StartStopwatch()
	transpose(out.Data(), m.Data(), m.N())
	return out, sw.Elapsed(), nil
}

// Compare is a mismatch indicator: it returns true if a and b differ in
// dimension or in any element, and false if they are identical.
func Compare(a, b *matrix.Matrix) bool {
	if a == nil || b == nil {
		return a != b
	}
	if a.N() != b.N() {
		return true
	}
	return !slices.Equal(a.Data(), b.Data())
}

func validateInput(m *matrix.Matrix, s Strategy) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Data() == nil {
		return matrix.ErrClosed
	}
	return validateStrategy(s)
}
