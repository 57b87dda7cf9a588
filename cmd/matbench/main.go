// Command matbench benchmarks sequential, auto-vectorized and parallel
// symmetry checks and transposes of a random square matrix.
//
// Usage:
//
//	matbench
//
// The dimension is read from standard input and must be a power of two;
// matbench asks again until it gets one. The prompt is printed only when
// standard input is a terminal, so piped input produces just the report.
// The matrix is filled with uniform values in [0, 10).
//
// Exit status is 0 when every strategy agrees or the matrix turns out to be
// symmetric, and 1 on invalid input, allocation failure, or when a
// strategy's transpose differs from the sequential one.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/cwbudde/algo-matbench/bench"
	"github.com/cwbudde/algo-matbench/matrix"
	"github.com/mattn/go-isatty"
	"github.com/tebeka/atexit"
)

const prompt = "Enter the dimension of the matrix (must be a power of 2)"

var errNoDimension = errors.New("no valid dimension on input")

func main() {
	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { _ = out.Flush() })

	logger := log.New(os.Stderr, "matbench: ", 0)
	fd := os.Stdin.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	seed := uint64(time.Now().UnixNano())
	atexit.Exit(run(os.Stdin, out, logger, interactive, seed))
}

// run drives one benchmark and returns the process exit status.
func run(in io.Reader, out *bufio.Writer, logger *log.Logger, interactive bool, seed uint64) int {
	n, err := readDimension(in, out, interactive)
	if err != nil {
		logger.Print(err)
		return 1
	}

	m, err := matrix.New(n, matrix.WithMapped())
	if err != nil {
		fmt.Fprintln(out, "memory allocation failed")
		logger.Print(err)
		return 1
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Print(err)
		}
	}()

	m.FillRandom(rand.New(rand.NewPCG(seed, seed>>1|1)))

	rep, err := bench.Run(m)
	if rep != nil {
		if _, werr := rep.WriteTo(out); werr != nil {
			logger.Print(werr)
		}
	}
	if err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

// readDimension reads whitespace-separated tokens until one is a valid
// dimension. Tokens that are not integers count as invalid dimensions.
func readDimension(in io.Reader, out *bufio.Writer, interactive bool) (int, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	for {
		if interactive {
			fmt.Fprintln(out, prompt)
			if err := out.Flush(); err != nil {
				return 0, err
			}
		}

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("read dimension: %w", err)
			}
			return 0, errNoDimension
		}

		n, err := strconv.Atoi(sc.Text())
		if err == nil && matrix.ValidDimension(n) {
			return n, nil
		}
	}
}
