package bench_test

import (
	"fmt"

	"github.com/cwbudde/algo-matbench/bench"
	"github.com/cwbudde/algo-matbench/matrix"
)

func ExampleTranspose() {
	m, _ := matrix.FromRows([][]float32{{1, 2}, {3, 4}})
	defer m.Close()

	t, _, _ := bench.Transpose(m, bench.Parallel)
	defer t.Close()

	fmt.Println(t.Rows())
	// Output:
	// [[1 3] [2 4]]
}

func ExampleCheckSymmetric() {
	m, _ := matrix.FromRows([][]float32{{1, 2}, {2, 1}})
	defer m.Close()

	for _, s := range bench.Strategies() {
		sym, _, _ := bench.CheckSymmetric(m, s)
		fmt.Println(s, sym)
	}
	// Output:
	// sequential true
	// auto-vectorized true
	// parallel true
}

func ExampleCompare() {
	a, _ := matrix.FromRows([][]float32{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float32{{1, 3}, {2, 4}})

	fmt.Println(bench.Compare(a, a), bench.Compare(a, b))
	// Output:
	// false true
}
