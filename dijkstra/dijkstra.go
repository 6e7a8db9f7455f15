package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphsim/core"
)

// Dijkstra computes least-capacity distances from source to every vertex of
// g. An edge's length is Edge.Capacity(), so unweighted edges count as 1.
//
// Ties between equal distances are settled in push order, and a vertex keeps
// the first predecessor that reached it, so results follow core.Graph's
// insertion-ordered incidence lists.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source: source,
			Dist:   make([]int64, n),
			Prev:   make([]int, n),
		},
		visited: make([]bool, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// ShortestPath returns a least-capacity s→t path and its length.
func ShortestPath(g *core.Graph, s, t int) ([]int, int64, error) {
	res, err := Dijkstra(g, s, WithTarget(t))
	if err != nil {
		return nil, 0, err
	}
	path, err := res.PathTo(t)
	if err != nil {
		return nil, 0, err
	}

	return path, res.Dist[t], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	visited []bool
	pq      nodePQ
	seq     uint64
}

func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = Unreachable
		r.res.Prev[v] = -1
	}
	r.res.Dist[r.res.Source] = 0
	heap.Init(&r.pq)
	r.push(r.res.Source, 0)
}

func (r *runner) push(v int, d int64) {
	heap.Push(&r.pq, &nodeItem{id: v, dist: d, seq: r.seq})
	r.seq++
}

// process pops vertices in distance order until the heap is empty, the
// cap is exceeded or the target is final.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.options.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) relax(u int) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	dist := r.res.Dist
	for _, e := range edges {
		w := e.Capacity()
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.Other(u)
		nd := dist[u] + w
		if nd > r.options.MaxDistance || nd >= dist[v] {
			continue
		}
		dist[v] = nd
		r.res.Prev[v] = u
		r.push(v, nd)
	}

	return nil
}

// nodeItem is a heap entry; seq orders entries of equal distance.
type nodeItem struct {
	id   int
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem with lazy decrease-key.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
