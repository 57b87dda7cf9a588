package bench

import (
	"fmt"
	"io"
	"strings"
)

const sectionRule = "________________________________________"

// WriteTo renders the report as human-readable text.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "matrix dimension: %d x %d\n", r.N, r.N)
	fmt.Fprintf(&b, "vectorized kernel: %s (%s)\n", r.Kernel, r.SIMDLevel)
	fmt.Fprintf(&b, "parallel workers: %d\n", r.Workers)
	fmt.Fprintf(&b, "max asymmetry: %g\n", r.MaxAsymmetry)

	for _, res := range r.Results {
		fmt.Fprintf(&b, "\n%s %s\n", res.Strategy.Title(), sectionRule)
		fmt.Fprintf(&b, "    wall-clock time for the symmetric check: %.8f milliseconds\n",
			Milliseconds(res.SymmetryTime))

		if res.Symmetric {
			b.WriteString("the matrix is symmetric\n")
			continue
		}
		if res.Transposed {
			fmt.Fprintf(&b, "    wall-clock time for the matrix transposition: %.8f milliseconds\n",
				Milliseconds(res.TransposeTime))
		}
		if res.Mismatch {
			b.WriteString("transposition failed!\n")
		}
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
