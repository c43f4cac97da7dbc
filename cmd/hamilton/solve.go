package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamilton/bench"
	"github.com/katalvlaran/hamilton/tsp"
)

type solveOptions struct {
	caseFlags
	n    int
	rows int
	algo tsp.Algorithm
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	o := solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a graph and solve it once",
		Long: `Generate a complete graph and print the tour found by one solver.

    $ hamilton solve --graph grid --rows 3 --cols 4 --algo held-karp
    $ hamilton solve --graph random --n 30 --seed 7 --algo branch-and-bound --cap 200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root.logger)
		},
	}

	f := cmd.Flags()
	o.register(f, bench.GraphRandom)
	f.IntVar(&o.n, "n", 8, "number of vertices (points per bell for barbell)")
	f.IntVar(&o.rows, "rows", 0, "grid rows")
	f.Var(newAlgoValue(tsp.ExactHeldKarp, &o.algo), "algo", algoUsage())

	return cmd
}

func (o *solveOptions) run(cmd *cobra.Command, logger *logrus.Logger) error {
	size := o.n
	if o.graph == bench.GraphGrid {
		if o.rows <= 0 || o.cols <= 0 {
			return errors.New("grid graphs need --rows and --cols")
		}
		size = o.rows
	}
	suite, err := o.toCase("solve", []int{size}, []string{o.algo.String()})
	if err != nil {
		return err
	}
	c := suite.Cases[0]
	inst, err := c.Generate(size)
	if err != nil {
		return err
	}

	opts := c.Options()
	opts.Algo = o.algo
	opts.Logger = logger

	logger.WithFields(logrus.Fields{"graph": inst.Label, "algo": o.algo}).Info("solving")
	g, err := tsp.NewMatrixGraph(inst.Dense)
	if err != nil {
		return err
	}
	m, err := bench.Measure(g, o.algo.String(), bench.Solver(o.algo, opts), inst.Optimum)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "graph:   %s\n", inst.Label)
	fmt.Fprintf(out, "solver:  %s\n", m.Solver)
	fmt.Fprintf(out, "cost:    %.6f\n", m.Cost)
	if m.Optimum > 0 {
		fmt.Fprintf(out, "optimum: %.6f\n", m.Optimum)
	}
	fmt.Fprintf(out, "tour:    %v\n", m.Tour)
	fmt.Fprintf(out, "elapsed: %s\n", m.Duration)

	return nil
}
