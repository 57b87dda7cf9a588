package matrix

import "math/rand/v2"

// Range of the values drawn by FillRandom.
const (
	MinValue float32 = 0.0
	MaxValue float32 = 10.0
)

// FillRandom overwrites every element with a uniform value in
// [MinValue, MaxValue) drawn from rng.
func (m *Matrix) FillRandom(rng *rand.Rand) {
	span := MaxValue - MinValue
	for i := range m.data {
		m.data[i] = MinValue + rng.Float32()*span
	}
}

// Symmetrize mirrors the upper triangle into the lower one so that
// M[j][i] = M[i][j] for all i < j.
func (m *Matrix) Symmetrize() {
	n := m.n
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.data[j*n+i] = m.data[i*n+j]
		}
	}
}
