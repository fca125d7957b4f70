package rect

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pxtrace/edges"
)

// An ErodingOptimizer starts from all cells of the current and future
// colours and removes future cells whose exclusion simplifies the trace.
// Cells of the current colour are never removed; the working grid only
// shrinks.
type ErodingOptimizer struct {
	scorer edges.Scorer
	accept func(int) bool
}

// NewEroding creates an eroding optimiser. A candidate cell is removed
// when scorer applied to its 3×3 saving is positive, or non-negative if
// eager.
func NewEroding(scorer edges.Scorer, eager bool) *ErodingOptimizer {
	return &ErodingOptimizer{scorer: scorer, accept: acceptScore(eager)}
}

// Optimize prepares an erosion of current against grid.
func (o *ErodingOptimizer) Optimize(grid Grid, current int, future *bitset.BitSet) (edges.Optimization[Grid], error) {
	if err := edges.ValidateColors(current, future); err != nil {
		return nil, err
	}
	solid := func(c int) bool { return c == current || future.Test(uint(c)) }
	return &erodeJob{
		layerWork: newLayerWork(grid, future, solid),
		scorer:    o.scorer,
		accept:    o.accept,
	}, nil
}

type erodeJob struct {
	*layerWork
	scorer edges.Scorer
	accept func(int) bool
}

// Process evaluates one queued cell, returning false once the queue is
// empty.
func (j *erodeJob) Process() bool {
	idx, ok := j.pop()
	if !ok {
		return false
	}
	x := int(idx) % j.width
	y := int(idx) / j.width

	// Only cells of future colours may be surrendered.
	if !j.future.Test(uint(j.grid.Color(x, y))) {
		return true
	}
	if !j.result.Test(idx) {
		return true
	}

	if j.accept(j.scorer(savings[j.pattern(x, y)])) {
		j.result.Clear(idx)
		j.requeueAround(x, y, true)
	}
	return true
}

// OptimizedGrid finishes any remaining erosion and returns the working
// grid.
func (j *erodeJob) OptimizedGrid() Grid {
	for j.Process() {
	}
	return j.resultGrid
}
