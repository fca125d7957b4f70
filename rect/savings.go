package rect

import (
	"fmt"
	"image"

	"github.com/bits-and-blooms/bitset"
	"github.com/pxtrace/edges"
)

// savings maps each 3×3 occupancy pattern to the change in (moves, draws)
// caused by flipping the pattern's centre cell. Bit 0 of a pattern is the
// top-left cell, bit 1 the top-centre, and so on in row-major order; bit 4
// is the centre. A positive component means flipping the centre makes the
// trace that much smaller.
//
// The table is filled during package initialisation, before any worker
// can observe it, and is read-only thereafter.
var savings [512]edges.Score

func init() {
	for pattern := range savings {
		savings[pattern] = trace3x3(pattern).Sub(trace3x3(pattern ^ 1 << 4))
	}
}

// trace3x3 traces the given occupancy pattern and counts the output.
func trace3x3(pattern int) edges.Score {
	data := bitset.New(9)
	for i := 0; i < 9; i++ {
		data.SetTo(uint(i), pattern&(1<<i) != 0)
	}
	grid, _ := NewBitGrid(3, 3, data)
	var counter edges.Counter[image.Point]
	edges.Drain(edges.NewTracer[image.Point](NewLayout(grid), &counter))
	return counter.Score()
}

// Saving returns the change in (moves, draws) from flipping the centre
// cell of a 3×3 occupancy pattern. It panics if pattern is not in
// [0, 512).
func Saving(pattern int) edges.Score {
	if pattern < 0 || pattern >= 512 {
		panic(fmt.Sprintf("rect: pattern %d not in range 0-511", pattern))
	}
	return savings[pattern]
}

// Pattern returns the 3×3 occupancy around (x, y) in g, under a solidity
// predicate. Cells outside the grid are never solid.
func Pattern(g Grid, x, y int, solid func(color int) bool) int {
	pattern := 0
	bit := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if solid(g.Color(x+dx, y+dy)) {
				pattern |= 1 << bit
			}
			bit++
		}
	}
	return pattern
}

// SavingAt returns the saving for flipping the cell at (x, y) in g, under
// a solidity predicate.
func SavingAt(g Grid, x, y int, solid func(color int) bool) edges.Score {
	return savings[Pattern(g, x, y, solid)]
}
