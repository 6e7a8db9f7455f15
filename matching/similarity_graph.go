package matching

import (
	"fmt"

	"github.com/katalvlaran/graphsim/profile"
)

// Epsilon keeps the inverse distance finite for identical profiles.
const Epsilon = 0.001

// SimilarityGraph is the complete bipartite graph between the nodes of A and
// B. W[i][j] is the weight of the edge LabelA(i)–LabelB(j).
type SimilarityGraph struct {
	NA, NB int
	W      [][]float64
}

// NewSimilarityGraph weighs every (i, j) pair by 1/(Distance(nl1[i], nl2[j]) + Epsilon).
func NewSimilarityGraph(nl1, nl2 profile.Profiles) *SimilarityGraph {
	d := profile.DistanceMatrix(nl1, nl2)
	for i := range d {
		for j := range d[i] {
			d[i][j] = 1 / (d[i][j] + Epsilon)
		}
	}

	return &SimilarityGraph{NA: len(nl1), NB: len(nl2), W: d}
}

// Nodes returns all labels, A side first in index order, then B side.
func (sg *SimilarityGraph) Nodes() []int {
	out := make([]int, 0, sg.NA+sg.NB)
	for i := 0; i < sg.NA; i++ {
		out = append(out, LabelA(i))
	}
	for j := 0; j < sg.NB; j++ {
		out = append(out, LabelB(j))
	}

	return out
}

// EdgeCount is |A|·|B|.
func (sg *SimilarityGraph) EdgeCount() int { return sg.NA * sg.NB }

// Weight returns the weight between two labels given in either order.
func (sg *SimilarityGraph) Weight(u, v int) (float64, error) {
	a, b, err := Pair{U: u, V: v}.Decode()
	if err != nil {
		return 0, err
	}
	if a >= sg.NA || b >= sg.NB {
		return 0, fmt.Errorf("Weight(%d,%d): %w", u, v, ErrLabelRange)
	}

	return sg.W[a][b], nil
}
