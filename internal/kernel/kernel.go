// Package kernel selects the symmetry and transpose kernels used by the
// vectorized strategy.
//
// Importing this package registers every kernel built for the current
// architecture: the generic scalar fallback everywhere, plus blocked
// variants on amd64 and arm64.
package kernel

import (
	"fmt"

	"github.com/cwbudde/algo-matbench/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"

	_ "github.com/cwbudde/algo-matbench/internal/kernel/blocked"
	_ "github.com/cwbudde/algo-matbench/internal/kernel/generic"
)

// Lookup returns the best registered kernel for features. It panics if the
// registry has no compatible entry, which means the generic fallback was
// not linked in.
func Lookup(features cpu.Features) *registry.OpEntry {
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("kernel: no kernel registered (missing generic fallback?)")
	}
	if entry.Symmetric == nil || entry.Transpose == nil {
		panic(fmt.Sprintf("kernel: selected kernel %q is incomplete", entry.Name))
	}
	return entry
}

// Detect returns the kernel for the features of the running CPU.
func Detect() *registry.OpEntry {
	return Lookup(cpu.DetectFeatures())
}
