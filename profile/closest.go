package profile

import "fmt"

// Correspondence pairs Node of the subject graph with Match in the other one.
type Correspondence struct {
	Node  int
	Match int
}

// Closest returns, for every node i of nl1 in order, the index of the
// profile in nl2 nearest to nl1[i]. Ties go to the lowest index in nl2.
//
// Closest(nl1, nl2) and Closest(nl2, nl1) are independent searches; see Mutual.
func Closest(nl1, nl2 Profiles) ([]Correspondence, error) {
	if len(nl2) == 0 && len(nl1) > 0 {
		return nil, fmt.Errorf("Closest: %w", ErrEmptyProfiles)
	}
	out := make([]Correspondence, 0, len(nl1))
	for i, u := range nl1 {
		best, bestDist := 0, Distance(u, nl2[0])
		for j := 1; j < len(nl2); j++ {
			if d := Distance(u, nl2[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		out = append(out, Correspondence{Node: i, Match: best})
	}

	return out, nil
}

// Mutual keeps the pairs of ab whose match points straight back:
// ab[i] = (a, b) survives iff ba[b].Match == a. ba must be indexed by node,
// as Closest returns it. Order follows ab.
func Mutual(ab, ba []Correspondence) []Correspondence {
	out := make([]Correspondence, 0)
	for _, c := range ab {
		if c.Match < 0 || c.Match >= len(ba) {
			continue
		}
		if back := ba[c.Match]; back.Node == c.Match && back.Match == c.Node {
			out = append(out, c)
		}
	}

	return out
}
