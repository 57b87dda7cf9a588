package matrix

import "github.com/cwbudde/algo-vecmath"

// MaxAsymmetry returns max|M[i][j]-M[j][i]| over all i, j, computed in
// float64. It returns 0 for a symmetric matrix of finite values.
func (m *Matrix) MaxAsymmetry() float64 {
	n := m.n
	if n < 2 {
		return 0
	}

	row := make([]float64, n)
	col := make([]float64, n)
	diff := make([]float64, n)

	worst := 0.0
	for i := 0; i < n; i++ {
		src := m.data[i*n : (i+1)*n]
		for j, v := range src {
			row[j] = float64(v)
			col[j] = -float64(m.data[j*n+i])
		}

		vecmath.AddBlock(diff, row, col)

		if d := vecmath.MaxAbs(diff); d > worst {
			worst = d
		}
	}
	return worst
}
