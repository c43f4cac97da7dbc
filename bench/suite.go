package bench

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamilton/builder"
	"github.com/katalvlaran/hamilton/matrix"
	"github.com/katalvlaran/hamilton/tsp"
)

// ErrInvalidSuite is returned for malformed or inconsistent suites.
var ErrInvalidSuite = errors.New("bench: invalid suite")

// Graph kinds understood by Case.Graph.
const (
	GraphRandom  = "random"
	GraphCircle  = "circle"
	GraphGrid    = "grid"
	GraphBarbell = "barbell"
	GraphWeights = "weights"
)

// UnboundedFrontier as Case.FrontierCap runs branch-and-bound without a
// frontier cap (tsp.NoFrontierCap).
const UnboundedFrontier = -1

// Suite is a list of benchmark cases.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// Case runs every algorithm on one generated graph per size.
//
// For grid graphs each size is the row count and Cols the column count
// (default: square grids). For barbell graphs each size is the number of
// points per bell. FrontierCap 0 keeps tsp.DefaultFrontierCap and
// UnboundedFrontier disables the cap.
type Case struct {
	Name        string        `yaml:"name"`
	Graph       string        `yaml:"graph"`
	Sizes       []int         `yaml:"sizes"`
	Cols        int           `yaml:"cols,omitempty"`
	Seed        int64         `yaml:"seed,omitempty"`
	Algorithms  []string      `yaml:"algorithms"`
	FrontierCap int           `yaml:"frontier_cap,omitempty"`
	Workers     int           `yaml:"workers,omitempty"`
	TwoOpt      bool          `yaml:"two_opt,omitempty"`
	ThreeOpt    bool          `yaml:"three_opt,omitempty"`
	TimeLimit   time.Duration `yaml:"time_limit,omitempty"`
}

// LoadSuite decodes and validates a YAML suite. Unknown fields are rejected.
func LoadSuite(r io.Reader) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("LoadSuite: %w: %w", ErrInvalidSuite, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks every case.
func (s *Suite) Validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("Suite.Validate: no cases: %w", ErrInvalidSuite)
	}
	for i, c := range s.Cases {
		if err := c.validate(); err != nil {
			return fmt.Errorf("Suite.Validate: case %d (%q): %w", i, c.Name, err)
		}
	}

	return nil
}

func (c Case) validate() error {
	switch c.Graph {
	case GraphRandom, GraphCircle, GraphGrid, GraphBarbell, GraphWeights:
	default:
		return fmt.Errorf("graph %q: %w", c.Graph, ErrInvalidSuite)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no sizes: %w", ErrInvalidSuite)
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("size %d: %w", n, ErrInvalidSuite)
		}
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("no algorithms: %w", ErrInvalidSuite)
	}
	if _, err := c.algorithms(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSuite, err)
	}
	if c.FrontierCap < UnboundedFrontier || c.Workers < 0 || c.Cols < 0 || c.TimeLimit < 0 {
		return fmt.Errorf("negative knob: %w", ErrInvalidSuite)
	}

	return nil
}

func (c Case) algorithms() ([]tsp.Algorithm, error) {
	out := make([]tsp.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, err := tsp.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// Options returns the solver options of c.
func (c Case) Options() tsp.Options {
	opts := tsp.DefaultOptions()
	switch {
	case c.FrontierCap == UnboundedFrontier:
		opts.FrontierCap = tsp.NoFrontierCap
	case c.FrontierCap > 0:
		opts.FrontierCap = c.FrontierCap
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	opts.TwoOpt = c.TwoOpt
	opts.ThreeOpt = c.ThreeOpt
	opts.TimeLimit = c.TimeLimit

	return opts
}

// Instance is one generated graph of a case.
type Instance struct {
	Label string
	Dense *matrix.Dense

	// Optimum is the closed-form optimum, or 0 when none is known.
	Optimum float64
}

// Generate builds the graph of c for one size. Every generated matrix is
// checked to be square with a zero diagonal.
func (c Case) Generate(size int) (Instance, error) {
	var (
		inst = Instance{Label: fmt.Sprintf("%s-%d", c.Graph, size)}
		err  error
	)
	switch c.Graph {
	case GraphRandom:
		inst.Dense, err = builder.Random(size, builder.WithSeed(c.Seed))
	case GraphCircle:
		inst.Dense, err = builder.Circle(size)
		inst.Optimum = builder.CircleOptimum(size, 1)
	case GraphGrid:
		cols := c.Cols
		if cols == 0 {
			cols = size
		}
		inst.Label = fmt.Sprintf("grid-%dx%d", size, cols)
		inst.Dense, err = builder.Grid(size, cols)
		inst.Optimum = builder.GridOptimum(size, cols)
	case GraphBarbell:
		inst.Dense, err = builder.Barbell(size)
	case GraphWeights:
		inst.Dense, err = builder.RandomWeights(size, builder.WithSeed(c.Seed))
	default:
		err = fmt.Errorf("graph %q: %w", c.Graph, ErrInvalidSuite)
	}
	if err == nil {
		err = matrix.ValidateZeroDiagonal(inst.Dense, 0)
	}
	if err != nil {
		return Instance{}, fmt.Errorf("Case.Generate(%s): %w", inst.Label, err)
	}

	return inst, nil
}
