package bench

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-matbench/internal/parallel"
	"github.com/cwbudde/algo-matbench/matrix"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// StrategyResult holds what one strategy produced during Run.
type StrategyResult struct {
	Strategy      Strategy
	Symmetric     bool
	SymmetryTime  time.Duration
	Transposed    bool
	TransposeTime time.Duration

	// Mismatch is set when this strategy's transpose differs from the
	// sequential one.
	Mismatch bool
}

// Report summarizes a Run.
type Report struct {
	N            int
	Kernel       string
	SIMDLevel    cpu.SIMDLevel
	Workers      int
	MaxAsymmetry float64

	// Symmetric is true when the run stopped early because the matrix is
	// symmetric.
	Symmetric bool

	Results []StrategyResult
}

// Run checks symmetry and transposes m with every strategy in order. It
// stops at the first strategy that finds m symmetric and returns the report
// so far with Symmetric set. A transpose that disagrees with the sequential
// transpose ends the run with ErrTransposeMismatch; the partial report is
// returned alongside the error. Every transpose buffer is closed before Run
// returns.
func Run(m *matrix.Matrix, opts ...Option) (*Report, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.Data() == nil {
		return nil, matrix.ErrClosed
	}

	cfg := applyOptions(opts)
	entry, err := cfg.kernel()
	if err != nil {
		return nil, err
	}

	rep := &Report{
		N:            m.N(),
		Kernel:       entry.Name,
		SIMDLevel:    entry.SIMDLevel,
		Workers:      parallel.Workers(m.N(), cfg.stripRows, cfg.workers),
		MaxAsymmetry: m.MaxAsymmetry(),
	}

	var reference *matrix.Matrix
	defer func() {
		if reference != nil {
			_ = reference.Close()
		}
	}()

	for _, s := range Strategies() {
		res := StrategyResult{Strategy: s}

		sym, elapsed, err := CheckSymmetric(m, s, opts...)
		if err != nil {
			return rep, fmt.Errorf("%s: symmetry check: %w", s, err)
		}
		res.Symmetric = sym
		res.SymmetryTime = elapsed

		if sym {
			rep.Results = append(rep.Results, res)
			rep.Symmetric = true
			return rep, nil
		}

		t, elapsed, err := Transpose(m, s, opts...)
		if err != nil {
			return rep, fmt.Errorf("%s: transpose: %w", s, err)
		}
		res.Transposed = true
		res.TransposeTime = elapsed

		if reference == nil {
			reference = t
		} else {
			res.Mismatch = Compare(reference, t)
			if err := t.Close(); err != nil {
				return rep, fmt.Errorf("%s: release transpose: %w", s, err)
			}
		}

		rep.Results = append(rep.Results, res)
		if res.Mismatch {
			return rep, fmt.Errorf("%s: %w", s, ErrTransposeMismatch)
		}
	}

	return rep, nil
}
