package bench

// Strategy identifies an execution model.
type Strategy int

const (
	Sequential Strategy = iota
	AutoVectorized
	Parallel
)

var strategyNames = [...]string{
	Sequential:     "sequential",
	AutoVectorized: "auto-vectorized",
	Parallel:       "parallel",
}

var strategyTitles = [...]string{
	Sequential:     "SEQUENTIAL EXECUTION",
	AutoVectorized: "IMPLICIT PARALLELISM EXECUTION",
	Parallel:       "EXPLICIT PARALLELISM EXECUTION",
}

// Strategies returns all strategies in run order.
func Strategies() []Strategy {
	return []Strategy{Sequential, AutoVectorized, Parallel}
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if !s.valid() {
		return "unknown"
	}
	return strategyNames[s]
}

// Title returns the report section heading for s.
func (s Strategy) Title() string {
	if !s.valid() {
		return "UNKNOWN EXECUTION"
	}
	return strategyTitles[s]
}

func (s Strategy) valid() bool {
	return s >= Sequential && s <= Parallel
}
