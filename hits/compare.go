package hits

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphsim/matrix"
)

// Compare scores a and b with the same options, sorts each authority and hub
// vector ascending, and tests the sorted vectors for closeness
// (|x-y| ≤ atol + rtol·|y|). Matrices of different size are never similar.
func Compare(a, b matrix.Matrix, opts ...Option) (*Comparison, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	sa, err := score(a, o)
	if err != nil {
		return nil, fmt.Errorf("Compare: A: %w", err)
	}
	sb, err := score(b, o)
	if err != nil {
		return nil, fmt.Errorf("Compare: B: %w", err)
	}

	c := &Comparison{
		AuthorityA: sorted(sa.Authority),
		HubA:       sorted(sa.Hub),
		AuthorityB: sorted(sb.Authority),
		HubB:       sorted(sb.Hub),
	}
	if len(c.AuthorityA) == len(c.AuthorityB) {
		// lengths already match, so AllClose cannot fail
		c.AuthorityEqual, _ = matrix.AllClose(c.AuthorityA, c.AuthorityB, o.rtol, o.atol)
		c.HubEqual, _ = matrix.AllClose(c.HubA, c.HubB, o.rtol, o.atol)
	}
	c.Similar = c.AuthorityEqual && c.HubEqual

	return c, nil
}

func sorted(v []float64) []float64 {
	out := append([]float64(nil), v...)
	sort.Float64s(out)

	return out
}
