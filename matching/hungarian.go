package matching

import "math"

// MaxWeight returns a maximum-weight matching of sg with every pair oriented
// (LabelA, LabelB) and sorted by A index. An empty side yields an empty matching.
func MaxWeight(sg *SimilarityGraph) (Matching, error) {
	if sg == nil {
		return nil, ErrNilGraph
	}
	if sg.NA == 0 || sg.NB == 0 {
		return Matching{}, nil
	}

	// rows must not outnumber columns
	transposed := sg.NA > sg.NB
	rows, cols := sg.NA, sg.NB
	if transposed {
		rows, cols = cols, rows
	}
	cost := make([][]float64, rows)
	for i := range cost {
		cost[i] = make([]float64, cols)
		for j := range cost[i] {
			if transposed {
				cost[i][j] = -sg.W[j][i]
			} else {
				cost[i][j] = -sg.W[i][j]
			}
		}
	}

	assign := hungarian(cost)
	out := make(Matching, 0, rows)
	if !transposed {
		for i, j := range assign {
			out = append(out, Pair{U: LabelA(i), V: LabelB(j)})
		}

		return out, nil
	}
	// assign maps B→A; re-key by A to keep the A-ascending order
	byA := make([]int, sg.NA)
	for i := range byA {
		byA[i] = -1
	}
	for j, i := range assign {
		byA[i] = j
	}
	for i, j := range byA {
		if j >= 0 {
			out = append(out, Pair{U: LabelA(i), V: LabelB(j)})
		}
	}

	return out, nil
}

// hungarian solves the rectangular assignment problem min Σ cost[i][assign[i]]
// for len(cost) ≤ len(cost[0]) using row/column potentials. Indices 1..n and
// 1..m are the real rows and columns; column 0 is the virtual start.
func hungarian(cost [][]float64) []int {
	n, m := len(cost), len(cost[0])
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1)   // p[j]: row matched to column j
	way := make([]int, m+1) // way[j]: previous column on the augmenting path
	minv := make([]float64, m+1)
	used := make([]bool, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], math.Inf(1), 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				if cur := cost[i0-1][j-1] - u[i0] - v[j]; cur < minv[j] {
					minv[j], way[j] = cur, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		// flip the augmenting path
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assign := make([]int, n)
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			assign[p[j]-1] = j - 1
		}
	}

	return assign
}
