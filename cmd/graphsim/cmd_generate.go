package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsim/graphio"
)

func newGenerateCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random G(n,m) capacity graph as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := a.cfg.Graph.Seed
			if seed == 0 {
				seed = 1
			}
			g, err := a.randomGraph(rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return graphio.EncodeGraph(cmd.OutOrStdout(), g)
			}

			return graphio.SaveGraph(output, g)
		},
	}

	addGraphFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file (- for stdout)")

	return cmd
}
