package matching

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphsim/profile"
)

// Pair is one matched edge in signed-label form. Orientation is not
// significant: (LabelA(i), LabelB(j)) and (LabelB(j), LabelA(i)) are the same pair.
type Pair struct {
	U, V int
}

// Decode returns the A-side and B-side node indices of p.
func (p Pair) Decode() (a, b int, err error) {
	su, sv := SideOf(p.U), SideOf(p.V)
	switch {
	case su == SideA && sv == SideB:
		return Index(p.U), Index(p.V), nil
	case su == SideB && sv == SideA:
		return Index(p.V), Index(p.U), nil
	default:
		return 0, 0, fmt.Errorf("Decode(%d,%d): %w", p.U, p.V, ErrBadLabel)
	}
}

// Equal reports whether p and q are the same pair, ignoring orientation.
func (p Pair) Equal(q Pair) bool {
	return (p.U == q.U && p.V == q.V) || (p.U == q.V && p.V == q.U)
}

// Matching is a set of disjoint pairs.
type Matching []Pair

// Correspondences decodes m into (A node, B node) pairs sorted by A node.
func (m Matching) Correspondences() ([]profile.Correspondence, error) {
	out := make([]profile.Correspondence, 0, len(m))
	for _, p := range m {
		a, b, err := p.Decode()
		if err != nil {
			return nil, err
		}
		out = append(out, profile.Correspondence{Node: a, Match: b})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node < out[j].Node })

	return out, nil
}

// Weight sums the similarity weight of every pair in m and checks that no
// node appears twice.
func Weight(sg *SimilarityGraph, m Matching) (float64, error) {
	if sg == nil {
		return 0, ErrNilGraph
	}
	usedA := make(map[int]bool, len(m))
	usedB := make(map[int]bool, len(m))
	var total float64
	for _, p := range m {
		a, b, err := p.Decode()
		if err != nil {
			return 0, err
		}
		if usedA[a] || usedB[b] {
			return 0, fmt.Errorf("Weight: pair (%d,%d): %w", p.U, p.V, ErrNodeReused)
		}
		usedA[a], usedB[b] = true, true
		w, err := sg.Weight(p.U, p.V)
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}
