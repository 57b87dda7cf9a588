// Package generic provides the scalar reference kernels for symmetry checks
// and transposition.
package generic

// Symmetric reports whether data[i*n+j] == data[j*n+i] for all i, j.
// Every pair is visited; there is no early exit.
// Panics if len(data) != n*n.
func Symmetric(data []float32, n int) bool {
	checkLen("Symmetric", data, n)

	sym := true
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if data[i*n+j] != data[j*n+i] {
				sym = false
			}
		}
	}
	return sym
}

// Transpose writes dst[i*n+j] = src[j*n+i] for all i, j.
// Panics if either slice is not n*n long.
func Transpose(dst, src []float32, n int) {
	checkLen("Transpose", dst, n)
	checkLen("Transpose", src, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[i*n+j] = src[j*n+i]
		}
	}
}

func checkLen(op string, data []float32, n int) {
	if len(data) != n*n {
		panic("kernel: " + op + ": buffer length does not match n*n")
	}
}
