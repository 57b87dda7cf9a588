//go:build arm64

package blocked

import (
	"github.com/cwbudde/algo-matbench/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers 4-wide tiles for NEON, which holds four float32 lanes per
// register.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "blocked4",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  10,
		Symmetric: Symmetric4,
		Transpose: Transpose4,
	})
}
