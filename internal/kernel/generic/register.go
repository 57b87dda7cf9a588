package generic

import (
	"github.com/cwbudde/algo-matbench/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Name is the registry name of the scalar kernels.
const Name = "generic"

// init registers the scalar kernels as the lowest-priority fallback. They
// are also what ForceGeneric selects.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      Name,
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Symmetric: Symmetric,
		Transpose: Transpose,
	})
}
