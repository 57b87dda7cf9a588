// Package bench times three interchangeable execution strategies for a
// square-matrix symmetry check and transpose, and cross-validates their
// results.
//
// # Strategies
//
//   - [Sequential]: plain nested loops.
//   - [AutoVectorized]: cache-blocked kernels with unrolled 4×4 blocks,
//     picked from a registry by the SIMD level of the running CPU.
//   - [Parallel]: rows split into strips and processed on a fixed set of
//     goroutines; each output cell is written by exactly one goroutine.
//
// All strategies return identical results for the same input. Each call
// measures its own wall-clock time with a local [Stopwatch]:
//
//	sym, elapsed, err := bench.CheckSymmetric(m, bench.Parallel)
//	t, elapsed, err := bench.Transpose(m, bench.AutoVectorized)
//	defer t.Close()
//
// # Pipeline
//
// [Run] repeats check-then-transpose for each strategy in order, stops
// early when the matrix is symmetric, and fails with
// [ErrTransposeMismatch] when a strategy's transpose disagrees with the
// sequential one. The returned [Report] renders as plain text.
package bench
