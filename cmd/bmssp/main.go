// Command bmssp reads a directed weighted graph on stdin and prints the
// single-source shortest-path distances computed by the BMSSP solver.
//
// Input format: "n m" on the first line, m lines of "u v w", then the
// source node id. Output: a timing line, a separator, and one
// "Node i: <distance>" line per node (INF for unreachable nodes).
//
// With --trace, every solver event is appended as one JSON line to the
// given file, tagged with a fresh run id.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/internal/cli"
)

func main() {
	var traceFile string

	rootCmd := &cobra.Command{
		Use:           "bmssp",
		Short:         "single-source shortest paths via the BMSSP algorithm",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, adj, source, err := cli.ReadGraph(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var opts []bmssp.Option
			closeTrace := func() error { return nil }
			if traceFile != "" {
				tracer, closeFn, err := cli.NewTracer(traceFile)
				if err != nil {
					return fmt.Errorf("open trace file: %w", err)
				}
				closeTrace = closeFn
				opts = append(opts, bmssp.WithTracer(tracer))
			}

			start := time.Now()
			dist, err := bmssp.Solve(n, adj, source, opts...)
			elapsed := time.Since(start)
			if err != nil {
				_ = closeTrace()

				return err
			}
			if err := closeTrace(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMSSP Time: %g ms\n", float64(elapsed.Microseconds())/1000.0)
			fmt.Fprintln(out, cli.Separator)

			return cli.WriteDistances(out, dist)
		},
	}
	rootCmd.Flags().StringVar(&traceFile, "trace", "", "append solver events as JSONL to this file")

	if err := rootCmd.Execute(); err != nil {
		logger, _ := zap.NewProduction()
		if logger != nil {
			logger.Error("bmssp failed", zap.Error(err))
			logger.Sync()
		}
		os.Exit(1)
	}
}
