package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/graphsim/hits"
	"github.com/katalvlaran/graphsim/profile"
	"github.com/katalvlaran/graphsim/similarity"
)

func printReport(w io.Writer, r *similarity.Report) {
	fmt.Fprintf(w, "run %s\n", r.RunID)
	fmt.Fprintf(w, "graph A: %d vertices, %d edges\n", r.GraphA.VertexCount, r.GraphA.EdgeCount)
	fmt.Fprintf(w, "graph B: %d vertices, %d edges\n", r.GraphB.VertexCount, r.GraphB.EdgeCount)
	printStructure(w, "A", r.StructureA)
	printStructure(w, "B", r.StructureB)
	fmt.Fprintf(w, "A->B closest:  %s\n", pairs(r.GreedyAB))
	fmt.Fprintf(w, "B->A closest:  %s\n", pairs(r.GreedyBA))
	fmt.Fprintf(w, "mutual:        %s\n", pairs(r.Mutual))
	fmt.Fprintf(w, "best matching: %s (weight %.4g)\n", pairs(r.OptimalCorrespondences), r.OptimalWeight)

	if r.Path != nil {
		p := r.Path
		fmt.Fprintf(w, "path distance: %.4g after %d/%d rounds, exhausted: %s\n",
			p.Distance, p.Iterations, p.Bound, p.Exhausted)
	} else {
		fmt.Fprintln(w, "path distance: skipped")
	}

	if f := r.Flow; f != nil {
		fmt.Fprintf(w, "max flow (%s): A=%d B=%d, cut edges A=%d B=%d\n", f.Algorithm, f.A, f.B, f.CutA, f.CutB)
	}

	if r.Spectrum != nil {
		printSpectrum(w, r.Spectrum)
	} else {
		fmt.Fprintln(w, "spectrum: skipped")
	}
}

func printStructure(w io.Writer, name string, s *similarity.Structure) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "structure %s: %d components (largest %d), circuit rank %d\n",
		name, s.Components, s.Largest, s.CircuitRank)
}

func printSpectrum(w io.Writer, c *hits.Comparison) {
	fmt.Fprintf(w, "authority equal: %t, hub equal: %t, similar: %t\n",
		c.AuthorityEqual, c.HubEqual, c.Similar)
}

func pairs(cs []profile.Correspondence) string {
	out := make([][2]int, len(cs))
	for i, c := range cs {
		out[i] = [2]int{c.Node, c.Match}
	}

	return fmt.Sprint(out)
}
