package bench

import (
	"github.com/cwbudde/algo-matbench/internal/parallel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Option configures strategy execution.
type Option func(*config)

type config struct {
	workers    int
	stripRows  int
	features   *cpu.Features
	kernelName string
}

func defaultConfig() config {
	return config{
		stripRows: parallel.DefaultStripRows,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWorkers sets the goroutine count for the Parallel strategy. Values
// <= 0 keep the default of runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithStripRows sets how many rows a Parallel worker claims at a time.
// Values <= 0 keep the default.
func WithStripRows(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.stripRows = n
		}
	}
}

// WithFeatures pins the CPU features used to select the AutoVectorized
// kernel instead of detecting them.
func WithFeatures(f cpu.Features) Option {
	return func(c *config) {
		c.features = &f
	}
}

// WithKernel pins the AutoVectorized kernel to the registered entry called
// name, bypassing CPU feature selection. Every registered kernel is plain
// Go, so any of them runs on any CPU of its architecture. An unregistered
// name makes the operations fail with ErrUnknownKernel.
func WithKernel(name string) Option {
	return func(c *config) {
		c.kernelName = name
	}
}
