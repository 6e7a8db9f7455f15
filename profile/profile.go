package profile

import (
	"sort"

	"github.com/katalvlaran/graphsim/core"
)

// Vector is one node's incident capacities, sorted descending.
type Vector []float64

// Profiles maps node index to its Vector.
type Profiles []Vector

// Build returns the profile of every vertex of g. Each edge contributes its
// capacity to both endpoints; an unweighted edge contributes core.DefaultWeight.
// Isolated vertices get an empty, non-nil Vector.
func Build(g *core.Graph) (Profiles, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := make(Profiles, g.VertexCount())
	for i := range out {
		out[i] = Vector{}
	}
	for _, e := range g.Edges() {
		c := float64(e.Capacity())
		out[e.From] = append(out[e.From], c)
		out[e.To] = append(out[e.To], c)
	}
	for _, v := range out {
		sort.SliceStable(v, func(i, j int) bool { return v[i] > v[j] })
	}

	return out, nil
}

// Clone returns a deep copy.
func (p Profiles) Clone() Profiles {
	out := make(Profiles, len(p))
	for i, v := range p {
		out[i] = append(Vector{}, v...)
	}

	return out
}
