package similarity

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphsim/core"
)

// Generator builds the graph pair for one trial. It is called concurrently
// and must return graphs no other trial touches.
type Generator func(trial int) (g1, g2 *core.Graph, err error)

// RunTrials compares n generated graph pairs, at most WithParallelism at a
// time, and returns their reports in trial order. The first failure cancels
// the remaining trials.
//
// Trial i seeds its path stage with seed+i (seed 0 counts as 1). Do not pass
// pathdist.WithRand through WithPathOptions here: a *rand.Rand would be
// shared by every trial.
func RunTrials(ctx context.Context, n int, gen Generator, opts ...Option) ([]*Report, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: trials must be ≥ 1 (%d)", ErrOptionViolation, n)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	base := o.seed
	if base == 0 {
		base = 1
	}

	reports := make([]*Report, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g1, g2, err := gen(i)
			if err != nil {
				return fmt.Errorf("RunTrials: trial %d: generate: %w", i, err)
			}
			to := o
			to.seed = base + int64(i)
			r, err := compare(ctx, g1, g2, to, i)
			if err != nil {
				return fmt.Errorf("RunTrials: trial %d: %w", i, err)
			}
			reports[i] = r

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
