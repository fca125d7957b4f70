package rect

import "github.com/bits-and-blooms/bitset"

// layerWork is the mutable state shared by the iterative optimisers: a
// working occupancy bitset over the source grid, and a queue of cells
// whose evaluation may have been invalidated by a neighbouring flip.
type layerWork struct {
	grid          Grid
	future        *bitset.BitSet
	width, height int

	result    *bitset.BitSet
	resultGrid *BitGrid
	remaining  *bitset.BitSet
}

// newLayerWork seeds the working bitset from the cells satisfying solid,
// and queues every cell for processing.
func newLayerWork(grid Grid, future *bitset.BitSet, solid func(color int) bool) *layerWork {
	width := grid.Width()
	height := grid.Height()
	count := uint(width * height)
	w := &layerWork{
		grid:      grid,
		future:    future,
		width:     width,
		height:    height,
		result:    Reduce(grid, solid),
		remaining: bitset.New(count).SetAll(),
	}
	w.resultGrid, _ = NewBitGrid(width, height, w.result)
	return w
}

// pop removes and returns the index of a queued cell.
func (w *layerWork) pop() (idx uint, ok bool) {
	idx, ok = w.remaining.NextSet(0)
	if ok {
		w.remaining.Clear(idx)
	}
	return idx, ok
}

// solidAt reports whether the working cell at (x, y) is solid; cells
// outside the grid are not.
func (w *layerWork) solidAt(x, y int) bool {
	if x < 0 || y < 0 || x >= w.width || y >= w.height {
		return false
	}
	return w.result.Test(uint(x + y*w.width))
}

// pattern returns the 3×3 working occupancy around (x, y).
func (w *layerWork) pattern(x, y int) int {
	pattern := 0
	bit := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if w.solidAt(x+dx, y+dy) {
				pattern |= 1 << bit
			}
			bit++
		}
	}
	return pattern
}

// requeueAround queues the cells of the 3×3 neighbourhood of (x, y) whose
// working state equals on. A flip at (x, y) can only change the value of
// flipping a neighbour in the opposite state to the flip's outcome.
func (w *layerWork) requeueAround(x, y int, on bool) {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= w.height {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= w.width {
				continue
			}
			nidx := uint(nx + ny*w.width)
			if w.result.Test(nidx) == on {
				w.remaining.Set(nidx)
			}
		}
	}
}

// requeueClear queues (x, y) if it is inside the grid and clear.
func (w *layerWork) requeueClear(x, y int) {
	if x < 0 || y < 0 || x >= w.width || y >= w.height {
		return
	}
	idx := uint(x + y*w.width)
	if !w.result.Test(idx) {
		w.remaining.Set(idx)
	}
}

// resolve removes (x, y) from the queue if it is inside the grid.
func (w *layerWork) resolve(x, y int) {
	if x < 0 || y < 0 || x >= w.width || y >= w.height {
		return
	}
	w.remaining.Clear(uint(x + y*w.width))
}

// acceptScore returns the flip test for an eagerness setting: eager
// optimisers also apply flips that make no difference to the score.
func acceptScore(eager bool) func(int) bool {
	if eager {
		return func(v int) bool { return v >= 0 }
	}
	return func(v int) bool { return v > 0 }
}
