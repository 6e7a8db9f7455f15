package flow

import (
	"math"

	"github.com/katalvlaran/graphsim/core"
)

// RunEdmondsKarp computes the maximum flow by repeatedly augmenting along a
// fewest-edge residual path found with BFS.
//
// Complexity:
//
//	Time:   O(V · E²).
//	Memory: O(V + E).
func RunEdmondsKarp(g *core.Graph, source, sink int, opts FlowOptions) (*Result, error) {
	opts.Algorithm = EdmondsKarp
	nw, err := prepare(g, source, sink, &opts)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for {
		if err = opts.Ctx.Err(); err != nil {
			return nil, err
		}
		via := nw.bfsPath(source, sink)
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

// bfsPath returns, per vertex, the arc it was reached by on a fewest-edge
// residual path from s, or nil when t is unreachable.
func (nw *network) bfsPath(s, t int) []int {
	via := make([]int, len(nw.head))
	for i := range via {
		via[i] = -1
	}
	visited := make([]bool, len(nw.head))
	visited[s] = true
	queue := []int{s}
	for i := 0; i < len(queue) && !visited[t]; i++ {
		u := queue[i]
		for _, a := range nw.head[u] {
			if v := nw.to[a]; nw.cap[a] > 0 && !visited[v] {
				visited[v] = true
				via[v] = a
				queue = append(queue, v)
			}
		}
	}
	if !visited[t] {
		return nil
	}

	return via
}

// augment pushes the bottleneck along the arcs recorded in via from t back
// to s and returns it.
func (nw *network) augment(via []int, s, t int) int64 {
	bottleneck := int64(math.MaxInt64)
	for v := t; v != s; v = nw.to[via[v]^1] {
		bottleneck = min(bottleneck, nw.cap[via[v]])
	}
	for v := t; v != s; v = nw.to[via[v]^1] {
		nw.push(via[v], bottleneck)
	}

	return bottleneck
}
