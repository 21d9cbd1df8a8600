// Command dijkstra-baseline is the comparator for cmd/bmssp: it consumes
// the exact same stdin graph format and emits the same output shape, but
// computes distances with the classic binary-heap Dijkstra. Diffing the
// two outputs (below the timing line) checks the BMSSP solver; comparing
// the timing lines measures it.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bmssp/dijkstra"
	"github.com/katalvlaran/bmssp/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "dijkstra-baseline",
		Short:         "single-source shortest paths via classic Dijkstra",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, adj, source, err := cli.ReadGraph(cmd.InOrStdin())
			if err != nil {
				return err
			}

			start := time.Now()
			dist, err := dijkstra.Solve(n, adj, source)
			elapsed := time.Since(start)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dijkstra Time: %g ms\n", float64(elapsed.Microseconds())/1000.0)
			fmt.Fprintln(out, cli.Separator)

			return cli.WriteDistances(out, dist)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		logger, _ := zap.NewProduction()
		if logger != nil {
			logger.Error("dijkstra-baseline failed", zap.Error(err))
			logger.Sync()
		}
		os.Exit(1)
	}
}
