package kernel

import (
	"runtime"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_ForceGeneric(t *testing.T) {
	entry := Lookup(cpu.Features{HasSSE2: true, HasAVX2: true, HasNEON: true, ForceGeneric: true})
	assert.Equal(t, "generic", entry.Name)
	assert.Equal(t, cpu.SIMDNone, entry.SIMDLevel)
}

func TestLookup_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		arch     string
		features cpu.Features
		want     string
	}{
		{"amd64 AVX2", "amd64", cpu.Features{Architecture: "amd64", HasSSE2: true, HasAVX2: true}, "blocked8"},
		{"amd64 SSE2", "amd64", cpu.Features{Architecture: "amd64", HasSSE2: true}, "blocked4"},
		{"amd64 none", "amd64", cpu.Features{Architecture: "amd64"}, "generic"},
		{"arm64 NEON", "arm64", cpu.Features{Architecture: "arm64", HasNEON: true}, "blocked4"},
		{"arm64 none", "arm64", cpu.Features{Architecture: "arm64"}, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if runtime.GOARCH != tt.arch {
				t.Skipf("dispatch case is %s-only", tt.arch)
			}
			assert.Equal(t, tt.want, Lookup(tt.features).Name)
		})
	}
}

func TestDetect_ForcedFeatures(t *testing.T) {
	defer cpu.ResetDetection()

	cpu.SetForcedFeatures(cpu.Features{Architecture: runtime.GOARCH, ForceGeneric: true})
	assert.Equal(t, "generic", Detect().Name)
}

func TestKernelParity(t *testing.T) {
	const n = 64

	src := make([]float32, n*n)
	for i := range src {
		src[i] = float32((i*53)%97) - 40
	}

	generic := Lookup(cpu.Features{ForceGeneric: true})
	best := Detect()

	want := make([]float32, n*n)
	got := make([]float32, n*n)
	generic.Transpose(want, src, n)
	best.Transpose(got, src, n)
	require.Equal(t, want, got, "kernel %s disagrees with generic", best.Name)

	assert.Equal(t, generic.Symmetric(src, n), best.Symmetric(src, n))
	assert.True(t, best.Symmetric(make([]float32, n*n), n))
}
