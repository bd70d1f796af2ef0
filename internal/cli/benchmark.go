package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolbox-search/internal/benchmark"
)

// NewBenchmarkCmd creates the 'benchmark' command for search latency.
func NewBenchmarkCmd(opts *Options) *cobra.Command {
	var iterations int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "benchmark [query...]",
		Short: "Measure search latency",
		Long: `Run each query repeatedly against the configured catalog and report
latency statistics. Without arguments a built-in query mix is used.`,
		Example: `  toolbox-search benchmark
  toolbox-search benchmark "image" "unit convertr" --iterations 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}
			defer env.close()

			result := benchmark.Run(env.engine, env.catalog, args, iterations)

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, result)
			}
			fmt.Fprint(out, benchmark.FormatResult(result))
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "i", benchmark.DefaultIterations, "Runs per query")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}
