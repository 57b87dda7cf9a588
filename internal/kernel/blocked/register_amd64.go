//go:build amd64

package blocked

import (
	"github.com/cwbudde/algo-matbench/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers 4-wide tiles for SSE2 (priority 10) and 8-wide tiles for
// AVX2 (priority 20). An AVX2 register holds eight float32 lanes, so an 8×8
// tile keeps a full register row per block row.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "blocked4",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Symmetric: Symmetric4,
		Transpose: Transpose4,
	})
	registry.Global.Register(registry.OpEntry{
		Name:      "blocked8",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Symmetric: Symmetric8,
		Transpose: Transpose8,
	})
}
