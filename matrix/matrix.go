package matrix

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

const float32Size = int(unsafe.Sizeof(float32(0)))

// Matrix is an n×n float32 matrix stored row-major in a single buffer.
type Matrix struct {
	n      int
	data   []float32
	mapped mmap.MMap
}

// Option configures matrix allocation.
type Option func(*config)

type config struct {
	mapped bool
}

func defaultConfig() config {
	return config{}
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

// WithMapped backs the matrix with an anonymous memory mapping instead of
// the Go heap. The mapping is released by Close.
func WithMapped() Option {
	return func(c *config) {
		c.mapped = true
	}
}

// ValidDimension reports whether n is a positive power of two.
func ValidDimension(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// New allocates a zeroed n×n matrix.
func New(n int, opts ...Option) (*Matrix, error) {
	if err := validateDimension(n); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	// Divide rather than multiply: n*n itself wraps for n >= 2^32.
	if n > math.MaxInt/float32Size/n {
		return nil, fmt.Errorf("%w: %d×%d elements overflow the address space", ErrAllocation, n, n)
	}
	size := n * n

	if cfg.mapped {
		return newMapped(n, size)
	}

	data, err := allocHeap(size)
	if err != nil {
		return nil, err
	}
	return &Matrix{n: n, data: data}, nil
}

func allocHeap(size int) (buf []float32, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	return make([]float32, size), nil
}

func newMapped(n, size int) (*Matrix, error) {
	region, err := mmap.MapRegion(nil, size*float32Size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	data := unsafe.Slice((*float32)(unsafe.Pointer(&region[0])), size)
	return &Matrix{n: n, data: data, mapped: region}, nil
}

// FromRows copies rows into a new matrix. rows must be square with a
// power-of-two side.
func FromRows(rows [][]float32, opts ...Option) (*Matrix, error) {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
	}

	m, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.Row(i), row)
	}
	return m, nil
}

// NewLike allocates a zeroed matrix with the same dimension and storage
// kind as m.
func (m *Matrix) NewLike() (*Matrix, error) {
	if m.data == nil {
		return nil, ErrClosed
	}
	if m.mapped != nil {
		return New(m.n, WithMapped())
	}
	return New(m.n)
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// Mapped reports whether the matrix is backed by a memory mapping.
func (m *Matrix) Mapped() bool { return m.mapped != nil }

// At returns M[i][j].
func (m *Matrix) At(i, j int) float32 {
	m.checkIndex(i, j)
	return m.data[i*m.n+j]
}

// Set assigns M[i][j] = v.
func (m *Matrix) Set(i, j int, v float32) {
	m.checkIndex(i, j)
	m.data[i*m.n+j] = v
}

// Row returns row i as a slice aliasing the matrix storage.
func (m *Matrix) Row(i int) []float32 {
	if i < 0 || i >= m.n {
		panic(fmt.Sprintf("matrix: row %d out of range [0,%d)", i, m.n))
	}
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// Data returns the row-major backing buffer. It aliases the matrix and is
// invalid after Close.
func (m *Matrix) Data() []float32 { return m.data }

// Rows returns a copy of the matrix as a slice of rows.
func (m *Matrix) Rows() [][]float32 {
	out := make([][]float32, m.n)
	for i := range out {
		out[i] = append([]float32(nil), m.Row(i)...)
	}
	return out
}

// Close releases the backing buffer. It is safe to call more than once.
func (m *Matrix) Close() error {
	m.data = nil
	if m.mapped == nil {
		return nil
	}

	region := m.mapped
	m.mapped = nil
	if err := region.Unmap(); err != nil {
		return fmt.Errorf("matrix: unmap: %w", err)
	}
	return nil
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %d×%d", i, j, m.n, m.n))
	}
}
