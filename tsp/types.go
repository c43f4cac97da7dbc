package tsp

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentinel errors. Solvers wrap them with call-site context; match with errors.Is.
var (
	// ErrInvalidConfiguration covers unusable inputs: nil or zero-node graphs,
	// non-square matrices, a non-positive frontier cap, negative workers or
	// time limit, and graphs larger than a solver supports.
	ErrInvalidConfiguration = errors.New("tsp: invalid configuration")

	// ErrMissingEdge is returned when a solver needs an edge the graph does
	// not define (provider error or +Inf weight). It signals a malformed
	// graph provider; complete graphs never trigger it.
	ErrMissingEdge = errors.New("tsp: missing edge")

	// ErrNegativeWeight is returned for negative or NaN edge weights.
	ErrNegativeWeight = errors.New("tsp: negative or NaN edge weight")

	// ErrSearchExhausted is returned when a capped branch-and-bound frontier
	// empties before any state reaches a complete tour.
	ErrSearchExhausted = errors.New("tsp: search frontier exhausted")

	// ErrTimeLimit is returned when Options.TimeLimit elapses mid-search.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidTour is returned by ValidateTour for sequences that are not
	// a closed Hamiltonian cycle from vertex 0.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// tspErrorf attaches method context to a sentinel.
func tspErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at 0.
	// For n ≥ 2 vertices len(Tour) == n+1; the single-vertex tour is [0].
	Tour []int

	// Cost is the total weight of the cycle, stabilised to 1e-9.
	Cost float64
}

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// ExactHeldKarp is the Held–Karp subset dynamic program.
	ExactHeldKarp Algorithm = iota
	// BranchAndBound is the reduced-matrix best-first search.
	BranchAndBound
	// NearestNeighbor is the greedy heuristic.
	NearestNeighbor
	// BruteForce enumerates every permutation.
	BruteForce
	// Christofides builds a tour from a spanning tree and a greedy matching.
	Christofides
)

var algorithmNames = map[Algorithm]string{
	ExactHeldKarp:   "held-karp",
	BranchAndBound:  "branch-and-bound",
	NearestNeighbor: "nearest-neighbor",
	BruteForce:      "brute-force",
	Christofides:    "christofides",
}

// String returns the kebab-case name of a, as accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name produced by Algorithm.String back to its value.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, s := range algorithmNames {
		if s == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnsupportedAlgorithm)
}

// Algorithms lists every known algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{ExactHeldKarp, BranchAndBound, NearestNeighbor, BruteForce, Christofides}
}

const (
	// DefaultFrontierCap is the default branch-and-bound frontier width.
	// It is a speed/accuracy knob, not a value known to preserve optimality.
	DefaultFrontierCap = 20

	// NoFrontierCap disables frontier truncation, making branch-and-bound exact.
	NoFrontierCap = math.MaxInt

	// MaxHeldKarpNodes bounds the Held–Karp table (≈ n·2ⁿ entries).
	MaxHeldKarpNodes = 32

	// MaxBranchAndBoundNodes is bounded by the BitSet used for remaining vertices.
	MaxBranchAndBoundNodes = 64

	// MaxBruteForceNodes bounds the (n-1)! enumeration.
	MaxBruteForceNodes = 12
)

// Options configures the solvers. The zero value is not valid; start from
// DefaultOptions.
type Options struct {
	// Algo selects the solver used by Solve.
	Algo Algorithm

	// FrontierCap is the branch-and-bound frontier width (> 0).
	// Use NoFrontierCap for an exhaustive, exact search.
	FrontierCap int

	// Workers > 1 enables parallel filling of Held–Karp layers and parallel
	// construction of branch-and-bound children. 0 and 1 mean sequential.
	Workers int

	// TimeLimit bounds branch-and-bound wall time; checked once per popped
	// state. 0 means unlimited.
	TimeLimit time.Duration

	// TwoOpt polishes nearest-neighbour and Christofides tours with TwoOpt.
	TwoOpt bool

	// ThreeOpt polishes nearest-neighbour and Christofides tours with
	// ThreeOpt, after TwoOpt when both are set.
	ThreeOpt bool

	// Logger receives debug traces. nil disables logging.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Held–Karp with the default frontier cap, one worker
// and no time limit.
func DefaultOptions() Options {
	return Options{
		Algo:        ExactHeldKarp,
		FrontierCap: DefaultFrontierCap,
		Workers:     1,
	}
}

// logger returns opts.Logger, or a logger that discards everything.
func (opts Options) logger() logrus.FieldLogger {
	if opts.Logger != nil {
		return opts.Logger
	}

	return discardLogger
}

// workers normalises Workers to ≥ 1.
func (opts Options) workers() int {
	if opts.Workers < 1 {
		return 1
	}

	return opts.Workers
}
