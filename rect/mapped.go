package rect

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pxtrace/edges"
)

// Trivial optimisers that finish immediately: the output is a fixed
// monochrome view of the source grid.
var (
	// Minimal performs no rewriting: a cell is solid iff its colour is
	// the current colour.
	Minimal edges.Optimizer[Grid] = reducedOptimizer{}

	// Mapped treats every cell of the current or a future colour as
	// solid.
	Mapped edges.Optimizer[Grid] = reducedOptimizer{includeFuture: true}
)

type reducedOptimizer struct {
	includeFuture bool
}

func (o reducedOptimizer) Optimize(grid Grid, current int, future *bitset.BitSet) (edges.Optimization[Grid], error) {
	if err := edges.ValidateColors(current, future); err != nil {
		return nil, err
	}
	solid := func(c int) bool { return c == current }
	if o.includeFuture {
		solid = func(c int) bool { return c == current || future.Test(uint(c)) }
	}
	return fixedOptimization{grid: &reducedGrid{g: grid, solid: solid}}, nil
}

// fixedOptimization is an optimisation with no work to do.
type fixedOptimization struct {
	grid Grid
}

func (o fixedOptimization) Process() bool { return false }

func (o fixedOptimization) OptimizedGrid() Grid { return o.grid }
