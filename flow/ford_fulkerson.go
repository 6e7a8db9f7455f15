package flow

import (
	"github.com/katalvlaran/graphsim/core"
)

// RunFordFulkerson computes the maximum flow by augmenting along any residual
// path found with an iterative depth-first search.
//
// Capacities are integral, so the loop terminates after at most Value
// augmentations.
//
// Complexity:
//
//	Time:   O(E · F), F = max flow value.
//	Memory: O(V + E).
func RunFordFulkerson(g *core.Graph, source, sink int, opts FlowOptions) (*Result, error) {
	opts.Algorithm = FordFulkerson
	nw, err := prepare(g, source, sink, &opts)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for {
		if err = opts.Ctx.Err(); err != nil {
			return nil, err
		}
		via := nw.dfsPath(source, sink)
		if via == nil {
			break
		}
		pushed := nw.augment(via, source, sink)
		res.Value += pushed
		res.Augmentations++
		opts.logPush(pushed, res.Value)
	}
	nw.finish(source, res)

	return res, nil
}

// dfsPath is bfsPath with a stack: any residual path, not a shortest one.
func (nw *network) dfsPath(s, t int) []int {
	via := make([]int, len(nw.head))
	for i := range via {
		via[i] = -1
	}
	visited := make([]bool, len(nw.head))
	visited[s] = true
	stack := []int{s}
	for len(stack) > 0 && !visited[t] {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range nw.head[u] {
			if v := nw.to[a]; nw.cap[a] > 0 && !visited[v] {
				visited[v] = true
				via[v] = a
				stack = append(stack, v)
			}
		}
	}
	if !visited[t] {
		return nil
	}

	return via
}
