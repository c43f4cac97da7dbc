package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/hamilton/bench"
	"github.com/katalvlaran/hamilton/tsp"
)

// algoValue is a pflag.Value accepting the names of tsp.Algorithms.
type algoValue struct {
	a *tsp.Algorithm
}

var _ pflag.Value = algoValue{}

func newAlgoValue(def tsp.Algorithm, p *tsp.Algorithm) algoValue {
	*p = def

	return algoValue{a: p}
}

func (v algoValue) String() string {
	if v.a == nil {
		return ""
	}

	return v.a.String()
}

func (v algoValue) Set(s string) error {
	a, err := tsp.ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*v.a = a

	return nil
}

func (v algoValue) Type() string { return "algorithm" }

// algoUsage lists the accepted algorithm names.
func algoUsage() string {
	names := make([]string, 0, len(tsp.Algorithms()))
	for _, a := range tsp.Algorithms() {
		names = append(names, a.String())
	}

	return "solver: " + strings.Join(names, "|")
}

// caseFlags are the graph and solver knobs shared by solve and bench.
type caseFlags struct {
	graph     string
	cols      int
	seed      int64
	cap       int
	workers   int
	twoOpt    bool
	threeOpt  bool
	timeLimit time.Duration
}

func (c *caseFlags) register(f *pflag.FlagSet, graph string) {
	f.StringVar(&c.graph, "graph", graph, "graph kind: random|circle|grid|barbell|weights")
	f.IntVar(&c.cols, "cols", 0, "grid columns")
	f.Int64Var(&c.seed, "seed", 1, "seed for random graphs")
	f.IntVar(&c.cap, "cap", tsp.DefaultFrontierCap, "branch-and-bound frontier cap (0 for unlimited)")
	f.IntVar(&c.workers, "workers", 1, "parallel workers")
	f.BoolVar(&c.twoOpt, "two-opt", false, "polish nearest-neighbour tours with 2-opt")
	f.BoolVar(&c.threeOpt, "three-opt", false, "polish nearest-neighbour tours with 3-opt")
	f.DurationVar(&c.timeLimit, "time-limit", 0, "branch-and-bound time limit (0 for none)")
}

// toCase returns the validated single-case suite described by the flags.
func (c *caseFlags) toCase(name string, sizes []int, algos []string) (*bench.Suite, error) {
	if c.cap < 0 {
		return nil, fmt.Errorf("--cap %d: must be ≥ 0", c.cap)
	}
	frontier := c.cap
	if frontier == 0 {
		frontier = bench.UnboundedFrontier
	}
	s := &bench.Suite{Cases: []bench.Case{{
		Name:        name,
		Graph:       c.graph,
		Sizes:       sizes,
		Cols:        c.cols,
		Seed:        c.seed,
		Algorithms:  algos,
		FrontierCap: frontier,
		Workers:     c.workers,
		TwoOpt:      c.twoOpt,
		ThreeOpt:    c.threeOpt,
		TimeLimit:   c.timeLimit,
	}}}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
