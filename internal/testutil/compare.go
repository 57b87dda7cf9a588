package testutil

import (
	"testing"

	"github.com/cwbudde/algo-matbench/matrix"
	"github.com/stretchr/testify/require"
)

// RequireTransposeOf fails t unless got[i][j] == src[j][i] for all i, j.
func RequireTransposeOf(t testing.TB, got, src *matrix.Matrix) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, src.N(), got.N(), "dimension mismatch")

	n := src.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if got.At(i, j) != src.At(j, i) {
				t.Fatalf("T[%d][%d] = %v, want M[%d][%d] = %v", i, j, got.At(i, j), j, i, src.At(j, i))
			}
		}
	}
}

// RequireSameElements fails t if a and b differ in dimension or in any
// element.
func RequireSameElements(t testing.TB, a, b *matrix.Matrix) {
	t.Helper()
	require.Equal(t, a.N(), b.N(), "dimension mismatch")
	require.Equal(t, a.Data(), b.Data())
}
