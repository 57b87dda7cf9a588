// Package registry provides the implementation registry for matrix kernels.
//
// Kernel packages (generic, blocked) register their variants from init()
// functions. Callers pass the detected CPU features to Lookup, which returns
// the highest-priority variant the CPU supports.
package registry

import (
	"cmp"
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// SymmetricFn reports whether the n×n row-major matrix in data equals its
// transpose. Implementations compare elements exactly.
type SymmetricFn func(data []float32, n int) bool

// TransposeFn writes the transpose of the n×n row-major matrix src into dst.
// dst and src must not overlap.
type TransposeFn func(dst, src []float32, n int)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	// Name is a short identifier such as "generic" or "blocked8".
	Name string

	// SIMDLevel is the instruction set the variant is tuned for.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins. Suggested values:
	//   - generic: 0
	//   - 4-wide tiles (SSE2/NEON): 10
	//   - 8-wide tiles (AVX2): 20
	Priority int

	Symmetric SymmetricFn
	Transpose TransposeFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil when nothing compatible is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	i := slices.IndexFunc(r.entries, func(e OpEntry) bool {
		return cpu.Supports(features, e.SIMDLevel)
	})
	if i < 0 {
		return nil
	}
	return &r.entries[i]
}

// ByName returns the entry registered under name, or nil.
func (r *OpRegistry) ByName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.entries, func(e OpEntry) bool { return e.Name == name })
	if i < 0 {
		return nil
	}
	return &r.entries[i]
}

// sortByPriority orders entries from highest to lowest priority, keeping
// registration order among equals. r.mu must be held for writing.
func (r *OpRegistry) sortByPriority() {
	slices.SortStableFunc(r.entries, func(a, b OpEntry) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
}

// ListEntries returns a copy of all registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
