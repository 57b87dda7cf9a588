// Package matrix provides the square float32 matrix used by the benchmark.
//
// A [Matrix] is n×n with n a positive power of two, stored as one contiguous
// row-major buffer. The buffer lives either on the Go heap (the default) or
// in an anonymous memory mapping:
//
//	m, err := matrix.New(1024)                      // heap
//	m, err := matrix.New(1024, matrix.WithMapped()) // mmap-backed
//	defer m.Close()
//
// Mapped storage is released by [Matrix.Close]; heap storage is left to the
// garbage collector, but Close is still safe and idempotent for both kinds.
//
// # Dimensions
//
// [ValidDimension] reports whether n is acceptable. [New] and [FromRows]
// reject anything else with [ErrInvalidDimension].
//
// # Asymmetry
//
// [Matrix.MaxAsymmetry] measures max|M[i][j]-M[j][i]| using the vecmath
// block kernels. It is a diagnostic, not a symmetry test: symmetry is an
// exact element comparison and lives in the bench package.
package matrix
