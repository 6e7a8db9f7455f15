package flow

import (
	"sort"

	"github.com/katalvlaran/graphsim/core"
)

// network is a residual network. Each undirected edge becomes arcs 2i and
// 2i+1, one per direction, each starting at the edge capacity; arc a^1 is
// the reverse of arc a.
type network struct {
	head [][]int  // arc indices leaving each vertex
	to   []int    // arc target
	cap  []int64  // residual capacity
	edge []uint64 // originating core edge ID
}

// buildNetwork converts g, with edges in ID order so that the search order
// is reproducible. Capacities come from core.Edge.Capacity.
func buildNetwork(g *core.Graph) *network {
	edges := g.Edges()
	nw := &network{
		head: make([][]int, g.VertexCount()),
		to:   make([]int, 0, 2*len(edges)),
		cap:  make([]int64, 0, 2*len(edges)),
		edge: make([]uint64, 0, 2*len(edges)),
	}
	for _, e := range edges {
		c := e.Capacity()
		nw.addArc(e.From, e.To, c, e.ID)
		nw.addArc(e.To, e.From, c, e.ID)
	}

	return nw
}

func (nw *network) addArc(u, v int, c int64, id uint64) {
	nw.head[u] = append(nw.head[u], len(nw.to))
	nw.to = append(nw.to, v)
	nw.cap = append(nw.cap, c)
	nw.edge = append(nw.edge, id)
}

func (nw *network) push(arc int, f int64) {
	nw.cap[arc] -= f
	nw.cap[arc^1] += f
}

// bfsLevels returns hop distances from s over arcs with residual capacity,
// -1 for unreachable vertices.
func (nw *network) bfsLevels(s int) []int {
	level := make([]int, len(nw.head))
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range nw.head[u] {
			if v := nw.to[a]; nw.cap[a] > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level
}

// finish fills the cut fields of res from the final residual network.
func (nw *network) finish(s int, res *Result) {
	level := nw.bfsLevels(s)
	seen := make(map[uint64]bool)
	for u, l := range level {
		if l < 0 {
			continue
		}
		res.SourceSide = append(res.SourceSide, u)
		for _, a := range nw.head[u] {
			if level[nw.to[a]] < 0 && !seen[nw.edge[a]] {
				seen[nw.edge[a]] = true
				res.CutEdges = append(res.CutEdges, nw.edge[a])
			}
		}
	}
	sort.Slice(res.CutEdges, func(i, j int) bool { return res.CutEdges[i] < res.CutEdges[j] })
}
