package generic

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetric_Generic(t *testing.T) {
	nan := float32(math.NaN())

	tests := []struct {
		name string
		data []float32
		n    int
		want bool
	}{
		{"empty", nil, 0, true},
		{"single", []float32{7}, 1, true},
		{"symmetric 2x2", []float32{1, 2, 2, 1}, 2, true},
		{"asymmetric 2x2", []float32{1, 2, 3, 4}, 2, false},
		{"asymmetric corner", []float32{
			1, 0, 0, 9,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}, 4, false},
		{"nan on diagonal", []float32{nan, 2, 2, 1}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Symmetric(tt.data, tt.n))
		})
	}
}

func TestTranspose_Generic(t *testing.T) {
	src := []float32{1, 2, 3, 4}
	dst := make([]float32, 4)

	Transpose(dst, src, 2)
	assert.Equal(t, []float32{1, 3, 2, 4}, dst)
}

func TestTranspose_Involution(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			src := make([]float32, n*n)
			for i := range src {
				src[i] = float32(i) + 0.25
			}
			once := make([]float32, n*n)
			twice := make([]float32, n*n)

			Transpose(once, src, n)
			Transpose(twice, once, n)
			require.Equal(t, src, twice)

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					require.Equal(t, src[j*n+i], once[i*n+j])
				}
			}
		})
	}
}

func TestGeneric_LengthPanics(t *testing.T) {
	assert.Panics(t, func() { Symmetric(make([]float32, 3), 2) })
	assert.Panics(t, func() { Transpose(make([]float32, 4), make([]float32, 3), 2) })
	assert.Panics(t, func() { Transpose(make([]float32, 3), make([]float32, 4), 2) })
}

func BenchmarkTranspose_Generic(b *testing.B) {
	for _, n := range []int{64, 256, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := make([]float32, n*n)
			dst := make([]float32, n*n)
			for i := range src {
				src[i] = float32(i)
			}
			b.SetBytes(int64(n * n * 4))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Transpose(dst, src, n)
			}
		})
	}
}
