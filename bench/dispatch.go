package bench

import (
	"fmt"

	"github.com/cwbudde/algo-matbench/internal/kernel"
	"github.com/cwbudde/algo-matbench/internal/kernel/generic"
	"github.com/cwbudde/algo-matbench/internal/kernel/registry"
	"github.com/cwbudde/algo-matbench/internal/parallel"
)

// kernel returns the AutoVectorized kernel: the one pinned by name if any,
// otherwise the best match for the configured or detected CPU features.
func (c config) kernel() (*registry.OpEntry, error) {
	if c.kernelName != "" {
		entry := registry.Global.ByName(c.kernelName)
		if entry == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, c.kernelName)
		}
		return entry, nil
	}
	if c.features != nil {
		return kernel.Lookup(*c.features), nil
	}
	return kernel.Detect(), nil
}

func (c config) symmetricFn(s Strategy) (registry.SymmetricFn, error) {
	switch s {
	case AutoVectorized:
		entry, err := c.kernel()
		if err != nil {
			return nil, err
		}
		return entry.Symmetric, nil
	case Parallel:
		return func(data []float32, n int) bool {
			return symmetricParallel(data, n, c.stripRows, c.workers)
		}, nil
	default:
		return generic.Symmetric, nil
	}
}

func (c config) transposeFn(s Strategy) (registry.TransposeFn, error) {
	switch s {
	case AutoVectorized:
		entry, err := c.kernel()
		if err != nil {
			return nil, err
		}
		return entry.Transpose, nil
	case Parallel:
		return func(dst, src []float32, n int) {
			transposeParallel(dst, src, n, c.stripRows, c.workers)
		}, nil
	default:
		return generic.Transpose, nil
	}
}

func symmetricParallel(data []float32, n, stripRows, workers int) bool {
	flags := parallel.NewFlags(parallel.Workers(n, stripRows, workers))

	parallel.Strips(n, stripRows, workers, func(w, lo, hi int) {
		mismatch := false
		for i := lo; i < hi; i++ {
			row := data[i*n : (i+1)*n]
			for j, v := range row {
				if v != data[j*n+i] {
					mismatch = true
				}
			}
		}
		if mismatch {
			flags.Set(w)
		}
	})

	return !flags.Any()
}

// transposeParallel gives each worker ownership of whole destination rows.
func transposeParallel(dst, src []float32, n, stripRows, workers int) {
	parallel.Strips(n, stripRows, workers, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			row := dst[i*n : (i+1)*n]
			for j := range row {
				row[j] = src[j*n+i]
			}
		}
	})
}
