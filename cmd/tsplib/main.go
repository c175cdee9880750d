// SPDX-License-Identifier: MIT

// Command tsplib inspects, converts and benchmarks TSPLIB instances.
//
//	tsplib info <file>
//	tsplib convert <in> <out> [--symmetric]
//	tsplib neighbours <file> [--node N]
//	tsplib bench --config bench.yaml [--workers N]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/tsplib/bench"
	"github.com/katalvlaran/tsplib/tsplib"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:          "tsplib",
		Short:        "Inspect, convert and benchmark TSPLIB instances",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: lvl})))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")

	infoCmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print the header of an instance",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	convertCmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrite an instance as EXPLICIT / FULL_MATRIX",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}
	convertCmd.Flags().Bool("symmetric", false, "Double asymmetric instances into symmetric ones")

	neighboursCmd := &cobra.Command{
		Use:   "neighbours <file>",
		Short: "Print the candidate lists of the ten closest nodes",
		Args:  cobra.ExactArgs(1),
		RunE:  runNeighbours,
	}
	neighboursCmd.Flags().Int("node", -1, "Only print the list of this node (default: all nodes)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the solvers of a benchmark config and print a summary table",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().String("config", "bench.yaml", "Benchmark config (.yaml, .yml or .toml)")
	benchCmd.Flags().Int("workers", 0, "Override the configured worker pool size")

	rootCmd.AddCommand(infoCmd, convertCmd, neighboursCmd, benchCmd)

	return rootCmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := tsplib.ParseFile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "NAME: %s\n", p.Name())
	fmt.Fprintf(out, "TYPE: %s\n", p.Type())
	fmt.Fprintf(out, "COMMENT: %s\n", p.Comment())
	fmt.Fprintf(out, "DIMENSION: %d\n", p.Size())
	fmt.Fprintf(out, "EDGE_WEIGHT_TYPE: %s\n", p.WeightType())

	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	symmetric, _ := cmd.Flags().GetBool("symmetric")

	p, err := tsplib.ParseFile(args[0])
	if err != nil {
		return err
	}
	if symmetric {
		if p, err = tsplib.ToSymmetric(p); err != nil {
			return err
		}
	}
	if err = tsplib.WriteFile(args[1], p); err != nil {
		return err
	}
	slog.Info("converted", slog.String("in", args[0]), slog.String("out", args[1]), slog.String("problem", p.String()))

	return nil
}

func runNeighbours(cmd *cobra.Command, args []string) error {
	node, _ := cmd.Flags().GetInt("node")

	p, err := tsplib.ParseFile(args[0])
	if err != nil {
		return err
	}

	from, to := 0, p.Size()
	if node >= 0 {
		if node >= p.Size() {
			return fmt.Errorf("node %d out of range [0, %d)", node, p.Size())
		}
		from, to = node, node+1
	}

	out := cmd.OutOrStdout()
	for v := from; v < to; v++ {
		nb := p.Neighbours(v)
		fmt.Fprintf(out, "%d: %v max=%g\n", v, nb.Nodes, nb.Max)
	}

	return nil
}

func runBench(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	workers, _ := cmd.Flags().GetInt("workers")

	cfg, err := bench.LoadConfig(path)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	solvers, err := bench.SolversByName(cfg.Solvers)
	if err != nil {
		return err
	}
	cases, err := bench.LoadCases(cfg)
	if err != nil {
		return err
	}

	runner := &bench.Runner{Workers: cfg.Workers, Logger: slog.Default()}
	report, err := runner.Run(cmd.Context(), cases, solvers, cfg.Runs)
	if report != nil {
		if werr := bench.WriteReport(cmd.OutOrStdout(), report); werr != nil && err == nil {
			err = werr
		}
	}

	return err
}
