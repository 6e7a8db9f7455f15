package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/report"
	"github.com/katalvlaran/graphsim/similarity"
)

func newTrialsCmd(a *app) *cobra.Command {
	var (
		trials     int
		isomorphic bool
		summary    string
	)

	cmd := &cobra.Command{
		Use:   "trials",
		Short: "Compare many random graph pairs concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("trials") {
				a.cfg.Run.Trials = trials
			}
			if cmd.Flags().Changed("summary") {
				a.cfg.Output.SummaryCSV = summary
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			seed := a.cfg.Graph.Seed
			gen := func(trial int) (*core.Graph, *core.Graph, error) {
				return a.randomPair(seed+int64(trial), isomorphic)
			}
			opts, err := a.similarityOptions()
			if err != nil {
				return err
			}
			reports, err := similarity.RunTrials(cmd.Context(), a.cfg.Run.Trials, gen, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if p := a.cfg.Output.SummaryCSV; p != "" {
				return writeFile(p, func(w io.Writer) error { return report.WriteSummaryCSV(w, reports) })
			}

			return report.WriteSummaryCSV(out, reports)
		},
	}

	addGraphFlags(cmd)
	cmd.Flags().IntVarP(&trials, "trials", "t", 1, "Number of graph pairs")
	cmd.Flags().BoolVar(&isomorphic, "isomorphic", false, "Pair each graph with a shuffled copy of itself")
	cmd.Flags().StringVar(&summary, "summary", "", "Summary CSV path (default stdout)")

	return cmd
}
