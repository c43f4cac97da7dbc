// Command hamilton solves and benchmarks travelling salesman instances on
// generated graphs.
//
//	hamilton solve --graph circle --n 10 --algo branch-and-bound --cap 50
//	hamilton bench --suite suite.yaml --metrics
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// rootOptions are shared by every subcommand.
type rootOptions struct {
	debug  bool
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{logger: logrus.New()}

	cmd := &cobra.Command{
		Use:          "hamilton",
		Short:        "Exact and heuristic TSP solvers",
		Long:         `Solve minimum-cost Hamiltonian cycles with Held–Karp, branch-and-bound, nearest neighbour, Christofides or brute force.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.logger.SetOutput(cmd.ErrOrStderr())
			if o.debug {
				o.logger.SetLevel(logrus.DebugLevel)
			}
			o.logger.Debugf("log level %s", o.logger.Level)
		},
	}
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")

	cmd.AddCommand(newSolveCmd(o), newBenchCmd(o))

	return cmd
}
