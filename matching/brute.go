package matching

import "fmt"

// BruteForceLimit bounds the larger side for BruteForce.
const BruteForceLimit = 8

// BruteForce enumerates every matching of size min(|A|,|B|) and returns the
// heaviest together with its weight. It is a reference for small inputs.
func BruteForce(sg *SimilarityGraph) (Matching, float64, error) {
	if sg == nil {
		return nil, 0, ErrNilGraph
	}
	if sg.NA > BruteForceLimit || sg.NB > BruteForceLimit {
		return nil, 0, fmt.Errorf("BruteForce(%d,%d): %w", sg.NA, sg.NB, ErrTooLarge)
	}
	if sg.NA == 0 || sg.NB == 0 {
		return Matching{}, 0, nil
	}

	k := min(sg.NA, sg.NB)
	cur := make([]int, sg.NA) // cur[i]: B index for A node i, -1 when skipped
	usedB := make([]bool, sg.NB)
	var best Matching
	bestW := -1.0

	var walk func(i, matched int, w float64)
	walk = func(i, matched int, w float64) {
		if i == sg.NA {
			if matched == k && w > bestW {
				bestW = w
				best = best[:0]
				for a, b := range cur {
					if b >= 0 {
						best = append(best, Pair{U: LabelA(a), V: LabelB(b)})
					}
				}
			}
			return
		}
		// leave A node i unmatched only while enough A nodes remain
		if sg.NA-i-1 >= k-matched {
			cur[i] = -1
			walk(i+1, matched, w)
		}
		for b := 0; b < sg.NB; b++ {
			if usedB[b] {
				continue
			}
			usedB[b], cur[i] = true, b
			walk(i+1, matched+1, w+sg.W[i][b])
			usedB[b] = false
		}
	}
	walk(0, 0, 0)

	return append(Matching(nil), best...), bestW, nil
}
