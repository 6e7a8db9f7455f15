package flow

import (
	"math"

	"github.com/katalvlaran/graphsim/core"
)

// RunDinic computes the maximum flow using Dinic's algorithm (level graph +
// blocking flows).
//
// Steps:
//  1. BFS from source over residual arcs to assign levels.
//  2. If sink is unreachable, stop.
//  3. Push blocking flow along arcs going exactly one level up, keeping a
//     per-vertex arc cursor so dead ends are never retried in this phase.
//     With LevelRebuildInterval > 0 the phase ends early after that many pushes.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E).
func RunDinic(g *core.Graph, source, sink int, opts FlowOptions) (*Result, error) {
	opts.Algorithm = Dinic
	nw, err := prepare(g, source, sink, &opts)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for {
		if err = opts.Ctx.Err(); err != nil {
			return nil, err
		}
		level := nw.bfsLevels(source)
		if level[sink] < 0 {
			break
		}

		iter := make([]int, len(nw.head))
		phase := 0
		for {
			if err = opts.Ctx.Err(); err != nil {
				return nil, err
			}
			pushed := nw.dinicPush(level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			res.Value += pushed
			res.Augmentations++
			phase++
			opts.logPush(pushed, res.Value)
			if opts.LevelRebuildInterval > 0 && phase%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}
	nw.finish(source, res)

	return res, nil
}

// dinicPush sends up to available units from u to sink along the level graph
// and returns the amount actually sent.
func (nw *network) dinicPush(level, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(nw.head[u]); iter[u]++ {
		a := nw.head[u][iter[u]]
		v := nw.to[a]
		if nw.cap[a] <= 0 || level[v] != level[u]+1 {
			continue
		}
		if sent := nw.dinicPush(level, iter, v, sink, min(available, nw.cap[a])); sent > 0 {
			nw.push(a, sent)
			return sent
		}
	}

	return 0
}
