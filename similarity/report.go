package similarity

import (
	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/hits"
	"github.com/katalvlaran/graphsim/matching"
	"github.com/katalvlaran/graphsim/pathdist"
	"github.com/katalvlaran/graphsim/profile"
)

// Report collects the output of every stage for one pair of graphs.
// Correspondences index graph A nodes in Node and graph B nodes in Match.
type Report struct {
	RunID string `json:"run_id"`
	Trial int    `json:"trial"`

	GraphA *core.GraphStats `json:"graph_a"`
	GraphB *core.GraphStats `json:"graph_b"`

	StructureA *Structure `json:"structure_a"`
	StructureB *Structure `json:"structure_b"`

	ProfilesA profile.Profiles `json:"profiles_a"`
	ProfilesB profile.Profiles `json:"profiles_b"`

	GreedyAB []profile.Correspondence `json:"greedy_ab"`
	// GreedyBA has Node in graph B and Match in graph A.
	GreedyBA []profile.Correspondence `json:"greedy_ba"`
	Mutual   []profile.Correspondence `json:"mutual"`

	Optimal                matching.Matching        `json:"optimal"`
	OptimalCorrespondences []profile.Correspondence `json:"optimal_correspondences"`
	OptimalWeight          float64                  `json:"optimal_weight"`

	Path        *pathdist.Result `json:"path,omitempty"`
	PathSkipped bool             `json:"path_skipped"`

	// Flow is absent whenever Path is.
	Flow *FlowComparison `json:"flow,omitempty"`

	Spectrum        *hits.Comparison `json:"spectrum,omitempty"`
	SpectrumSkipped bool             `json:"spectrum_skipped"`
}

// Structure summarizes the connectivity of one graph.
type Structure struct {
	Components int `json:"components"`
	// Largest is the vertex count of the biggest component.
	Largest int `json:"largest"`
	// CircuitRank is |E| - |V| + Components.
	CircuitRank int  `json:"circuit_rank"`
	Acyclic     bool `json:"acyclic"`
	// Cycle is one cycle as a closed walk, when the graph has any.
	Cycle []int `json:"cycle,omitempty"`
}

// FlowComparison holds the max flow between the path endpoints in each graph.
type FlowComparison struct {
	Algorithm string `json:"algorithm"`
	A         int64  `json:"a"`
	B         int64  `json:"b"`
	// CutA and CutB are the minimum cut sizes in edges.
	CutA  int  `json:"cut_a"`
	CutB  int  `json:"cut_b"`
	Equal bool `json:"equal"`
}
