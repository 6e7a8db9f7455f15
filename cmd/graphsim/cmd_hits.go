package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsim/graphio"
	"github.com/katalvlaran/graphsim/hits"
)

func newHitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hits matrixA.yaml [matrixB.yaml]",
		Short: "Score one adjacency matrix or compare the spectra of two",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.hitsOptions()
			ma, err := graphio.LoadMatrix(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				s, err := hits.Score(ma, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "authority: %v\n", s.Authority)
				fmt.Fprintf(out, "hub:       %v\n", s.Hub)
				fmt.Fprintf(out, "steps:     %d\n", s.Steps)
				return nil
			}

			mb, err := graphio.LoadMatrix(args[1])
			if err != nil {
				return err
			}
			c, err := hits.Compare(ma, mb, opts...)
			if err != nil {
				return err
			}
			printSpectrum(out, c)

			return nil
		},
	}
}
