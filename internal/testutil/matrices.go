package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-matbench/matrix"
	"github.com/stretchr/testify/require"
)

// MustFromRows builds a matrix from rows or fails t. The matrix is closed
// when the test ends.
func MustFromRows(t testing.TB, rows [][]float32, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

// DeterministicRandom returns an n×n matrix filled by FillRandom from a
// fixed seed. The matrix is closed when the test ends.
func DeterministicRandom(t testing.TB, n int, seed uint64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(n, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	m.FillRandom(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	return m
}

// DeterministicSymmetric returns DeterministicRandom mirrored across the
// diagonal.
func DeterministicSymmetric(t testing.TB, n int, seed uint64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m := DeterministicRandom(t, n, seed, opts...)
	m.Symmetrize()
	return m
}

// Sequence returns an n×n matrix with M[i][j] = i*n + j, which is
// asymmetric for every n > 1.
func Sequence(t testing.TB, n int, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(n, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	data := m.Data()
	for i := range data {
		data[i] = float32(i)
	}
	return m
}
