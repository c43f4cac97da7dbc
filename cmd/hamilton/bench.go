package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamilton/bench"
)

type benchOptions struct {
	caseFlags
	suite   string
	metrics bool
	sizes   []int
	algos   []string
}

func newBenchCmd(root *rootOptions) *cobra.Command {
	o := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a YAML benchmark suite or a single case",
		Long: `Run every case of a benchmark suite, or one case described by flags,
and print one row per solve.

    $ hamilton bench --suite suite.yaml --metrics
    $ hamilton bench --graph random --sizes 10,12 --algos held-karp,nearest-neighbor --two-opt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.suite, "suite", "s", "", "path to the suite file")
	f.BoolVar(&o.metrics, "metrics", false, "print collected metrics after the run")
	o.register(f, "")
	f.IntSliceVar(&o.sizes, "sizes", []int{8}, "graph sizes of a single case")
	f.StringSliceVar(&o.algos, "algos", []string{"held-karp", "nearest-neighbor"}, "solvers of a single case")
	cmd.MarkFlagsOneRequired("suite", "graph")
	cmd.MarkFlagsMutuallyExclusive("suite", "graph")

	return cmd
}

func (o *benchOptions) load() (*bench.Suite, error) {
	if o.suite == "" {
		return o.toCase("cli", o.sizes, o.algos)
	}
	f, err := os.Open(o.suite)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return bench.LoadSuite(f)
}

func (o *benchOptions) run(cmd *cobra.Command, root *rootOptions) error {
	suite, err := o.load()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := bench.NewRecorder(reg)
	if err != nil {
		return err
	}
	rows, err := bench.NewRunner(root.logger, rec).Run(cmd.Context(), suite)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeRows(out, rows)
	if o.metrics {
		fmt.Fprintln(out)
		return writeMetrics(out, reg)
	}

	return nil
}

// writeRows prints the report table. Correctness ratios taken against a
// lower bound are prefixed with ≥.
func writeRows(w io.Writer, rows []bench.Row) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tGRAPH\tSOLVER\tCOST\tCORRECTNESS\tTIME\tERROR")
	for _, r := range rows {
		var (
			cost = fmt.Sprintf("%.4f", r.Cost)
			corr = "-"
			msg  = ""
		)
		if r.Correctness > 0 {
			corr = fmt.Sprintf("%.4f", r.Correctness)
			if r.LowerBound {
				corr = "≥" + corr
			}
		}
		if r.Err != nil {
			cost, msg = "-", r.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", r.Case, r.Graph, r.Solver, cost, corr, r.Duration, msg)
	}
	tw.Flush()
}

// writeMetrics prints every gathered family in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
