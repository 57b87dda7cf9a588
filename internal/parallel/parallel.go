// Package parallel runs a loop body over disjoint row strips on a fixed
// number of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// DefaultStripRows is the number of rows in one unit of work.
const DefaultStripRows = 64

// Workers returns the number of goroutines Strips will start for the given
// row count, strip height and requested worker count. A request of zero or
// less means runtime.GOMAXPROCS(0).
func Workers(rows, stripRows, requested int) int {
	if rows <= 0 {
		return 0
	}
	if stripRows <= 0 {
		stripRows = DefaultStripRows
	}
	if requested <= 0 {
		requested = runtime.GOMAXPROCS(0)
	}
	return min(requested, numStrips(rows, stripRows))
}

func numStrips(rows, stripRows int) int {
	return (rows + stripRows - 1) / stripRows
}

// Strips splits [0, rows) into strips of stripRows rows and calls body for
// each strip as body(worker, lo, hi). Strips are claimed through an atomic
// counter, so every row is handed to exactly one call. worker is in
// [0, Workers(rows, stripRows, workers)) and identifies the goroutine making
// the call. Strips returns after every call has returned.
func Strips(rows, stripRows, workers int, body func(worker, lo, hi int)) {
	if stripRows <= 0 {
		stripRows = DefaultStripRows
	}
	n := Workers(rows, stripRows, workers)
	if n == 0 {
		return
	}
	strips := numStrips(rows, stripRows)

	var next atomic.Int32
	var wg sync.WaitGroup
	for w := range n {
		wg.Go(func() {
			for {
				strip := int(next.Add(1)) - 1
				if strip >= strips {
					return
				}
				lo := strip * stripRows
				hi := min(lo+stripRows, rows)
				body(w, lo, hi)
			}
		})
	}
	wg.Wait()
}

// Flags holds one boolean per worker, each padded to its own cache line so
// that workers setting their flag do not contend.
type Flags struct {
	slots []flagSlot
}

type flagSlot struct {
	set bool
	_   cpu.CacheLinePad
}

// NewFlags returns cleared flags for n workers.
func NewFlags(n int) *Flags {
	return &Flags{slots: make([]flagSlot, n)}
}

// Set raises the flag of worker w. Only worker w may call it.
func (f *Flags) Set(w int) {
	f.slots[w].set = true
}

// Any reports whether any flag is raised. Call it after the parallel region
// has joined.
func (f *Flags) Any() bool {
	for i := range f.slots {
		if f.slots[i].set {
			return true
		}
	}
	return false
}
