// Package blocked provides cache-blocked symmetry and transpose kernels.
//
// The matrix is walked in square tiles; each tile is processed as 4×4
// blocks whose sixteen loads and stores are written out by hand. Re-slicing
// every block row to an exact length of four lets the compiler drop the
// per-element bounds checks, which is as close to auto-vectorization hints
// as Go gets.
//
// Tile widths: 4 for SSE2/NEON registers, 8 for AVX2 registers. Matrices
// smaller than a 4×4 block fall back to a scalar loop.
package blocked

const block = 4

// Symmetric4 is the symmetry kernel with 4-wide tiles.
func Symmetric4(data []float32, n int) bool { return symmetricTiled(data, n, 4) }

// Symmetric8 is the symmetry kernel with 8-wide tiles.
func Symmetric8(data []float32, n int) bool { return symmetricTiled(data, n, 8) }

// Transpose4 is the transpose kernel with 4-wide tiles.
func Transpose4(dst, src []float32, n int) { transposeTiled(dst, src, n, 4) }

// Transpose8 is the transpose kernel with 8-wide tiles.
func Transpose8(dst, src []float32, n int) { transposeTiled(dst, src, n, 8) }

// symmetricTiled compares the upper block triangle against its mirror. n
// must be a power of two so that tiles divide it evenly.
func symmetricTiled(data []float32, n, tile int) bool {
	checkLen("Symmetric", data, n)

	if n < block {
		return symmetricScalar(data, n)
	}
	tile = min(tile, n)

	sym := true
	for ib := 0; ib < n; ib += tile {
		for jb := ib; jb < n; jb += tile {
			for i := ib; i < ib+tile; i += block {
				for j := jb; j < jb+tile; j += block {
					if !blockSymmetric(data, i, j, n) {
						sym = false
					}
				}
			}
		}
	}
	return sym
}

// blockSymmetric reports whether the 4×4 block at (i,j) is the transpose
// of the block at (j,i).
func blockSymmetric(data []float32, i, j, n int) bool {
	a0 := data[i*n+j : i*n+j+4 : i*n+j+4]
	a1 := data[(i+1)*n+j : (i+1)*n+j+4 : (i+1)*n+j+4]
	a2 := data[(i+2)*n+j : (i+2)*n+j+4 : (i+2)*n+j+4]
	a3 := data[(i+3)*n+j : (i+3)*n+j+4 : (i+3)*n+j+4]

	b0 := data[j*n+i : j*n+i+4 : j*n+i+4]
	b1 := data[(j+1)*n+i : (j+1)*n+i+4 : (j+1)*n+i+4]
	b2 := data[(j+2)*n+i : (j+2)*n+i+4 : (j+2)*n+i+4]
	b3 := data[(j+3)*n+i : (j+3)*n+i+4 : (j+3)*n+i+4]

	return a0[0] == b0[0] && a0[1] == b1[0] && a0[2] == b2[0] && a0[3] == b3[0] &&
		a1[0] == b0[1] && a1[1] == b1[1] && a1[2] == b2[1] && a1[3] == b3[1] &&
		a2[0] == b0[2] && a2[1] == b1[2] && a2[2] == b2[2] && a2[3] == b3[2] &&
		a3[0] == b0[3] && a3[1] == b1[3] && a3[2] == b2[3] && a3[3] == b3[3]
}

func transposeTiled(dst, src []float32, n, tile int) {
	checkLen("Transpose", dst, n)
	checkLen("Transpose", src, n)

	if n < block {
		transposeScalar(dst, src, n)
		return
	}
	tile = min(tile, n)

	for ib := 0; ib < n; ib += tile {
		for jb := 0; jb < n; jb += tile {
			for i := ib; i < ib+tile; i += block {
				for j := jb; j < jb+tile; j += block {
					transposeBlock(dst, src, i, j, n)
				}
			}
		}
	}
}

// transposeBlock stores the transpose of the 4×4 source block at (i,j)
// into the destination block at (j,i).
func transposeBlock(dst, src []float32, i, j, n int) {
	s0 := src[i*n+j : i*n+j+4 : i*n+j+4]
	s1 := src[(i+1)*n+j : (i+1)*n+j+4 : (i+1)*n+j+4]
	s2 := src[(i+2)*n+j : (i+2)*n+j+4 : (i+2)*n+j+4]
	s3 := src[(i+3)*n+j : (i+3)*n+j+4 : (i+3)*n+j+4]

	d0 := dst[j*n+i : j*n+i+4 : j*n+i+4]
	d1 := dst[(j+1)*n+i : (j+1)*n+i+4 : (j+1)*n+i+4]
	d2 := dst[(j+2)*n+i : (j+2)*n+i+4 : (j+2)*n+i+4]
	d3 := dst[(j+3)*n+i : (j+3)*n+i+4 : (j+3)*n+i+4]

	d0[0], d0[1], d0[2], d0[3] = s0[0], s1[0], s2[0], s3[0]
	d1[0], d1[1], d1[2], d1[3] = s0[1], s1[1], s2[1], s3[1]
	d2[0], d2[1], d2[2], d2[3] = s0[2], s1[2], s2[2], s3[2]
	d3[0], d3[1], d3[2], d3[3] = s0[3], s1[3], s2[3], s3[3]
}

func symmetricScalar(data []float32, n int) bool {
	sym := true
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if data[i*n+j] != data[j*n+i] {
				sym = false
			}
		}
	}
	return sym
}

func transposeScalar(dst, src []float32, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[j*n+i] = src[i*n+j]
		}
	}
}

func checkLen(op string, data []float32, n int) {
	if len(data) != n*n {
		panic("kernel: " + op + ": buffer length does not match n*n")
	}
}
