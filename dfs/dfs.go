package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphsim/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	root  int
}

// DFS performs depth-first search on g starting at start, or over the whole
// forest with WithFullTraversal. Neighbors are explored in core.Graph
// incidence order.
//
// On a hook error or cancellation the partial result is returned with the
// error; Order is cleared on hook errors.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
			Root:   make(map[int]int, n),
		},
	}

	roots := []int{start}
	if o.FullTraversal {
		roots = g.Vertices()
	}
	for _, v := range roots {
		if w.res.Visited(v) {
			continue
		}
		w.root = v
		w.res.Roots = append(w.res.Roots, v)
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at the given depth and recurses into unvisited neighbors.
func (w *walker) traverse(id, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[id] = depth
	w.res.Root[id] = w.root

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.NeighborIDs(id)
		if err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: NeighborIDs(%d): %w", id, err)
		}
		for _, nid := range nbs {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Visited(nid) {
				continue
			}
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
