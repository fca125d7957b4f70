package rect

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pxtrace/edges"
)

// An AccretingOptimizer starts from the current colour alone and adds
// cells of future colours whose inclusion simplifies the trace. Cells of
// the current colour are never removed; the working grid only grows.
type AccretingOptimizer struct {
	scorer edges.Scorer
	accept func(int) bool
}

// NewAccreting creates an accreting optimiser. A candidate cell is added
// when scorer applied to its 3×3 saving is positive, or non-negative if
// eager.
func NewAccreting(scorer edges.Scorer, eager bool) *AccretingOptimizer {
	return &AccretingOptimizer{scorer: scorer, accept: acceptScore(eager)}
}

// Optimize prepares an accretion of current against grid.
func (o *AccretingOptimizer) Optimize(grid Grid, current int, future *bitset.BitSet) (edges.Optimization[Grid], error) {
	if err := edges.ValidateColors(current, future); err != nil {
		return nil, err
	}
	return &accreteJob{
		layerWork: newLayerWork(grid, future, func(c int) bool { return c == current }),
		scorer:    o.scorer,
		accept:    o.accept,
	}, nil
}

type accreteJob struct {
	*layerWork
	scorer edges.Scorer
	accept func(int) bool
}

// Process evaluates one queued cell, returning false once the queue is
// empty.
func (j *accreteJob) Process() bool {
	idx, ok := j.pop()
	if !ok {
		return false
	}
	x := int(idx) % j.width
	y := int(idx) / j.width

	// Only cells of future colours may be claimed.
	if !j.future.Test(uint(j.grid.Color(x, y))) {
		return true
	}
	if j.result.Test(idx) {
		return true
	}

	if j.accept(j.scorer(savings[j.pattern(x, y)])) {
		j.result.Set(idx)
		j.requeueAround(x, y, false)
	}
	return true
}

// OptimizedGrid finishes any remaining accretion and returns the working
// grid.
func (j *accreteJob) OptimizedGrid() Grid {
	for j.Process() {
	}
	return j.resultGrid
}
