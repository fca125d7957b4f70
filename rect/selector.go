package rect

import "github.com/bits-and-blooms/bitset"

// Default perimeter weights.
const (
	DefaultOrthogonalScore = 1.0
	DefaultDiagonalScore   = 0.7
)

// A PerimeterSelector picks the candidate colour most exposed along the
// boundary with cells that are transparent or already traced. Tracing the
// most exposed colour first lets later colours overpaint it, so their
// optimisers have the most room to simplify.
//
// Every lattice point of the grid is examined once. A candidate cell
// touching a non-candidate cell scores Orthogonal per shared edge, and
// Diagonal per non-candidate neighbour across its top-left or
// bottom-right corner; neighbours across the top-right and bottom-left
// corners are not counted. Ties go to the lowest colour index, making
// selection order deterministic.
type PerimeterSelector struct {
	// Orthogonal is the weight of an edge-adjacent exposure.
	Orthogonal float64

	// Diagonal is the weight of a corner-adjacent exposure.
	Diagonal float64
}

// NewPerimeterSelector creates a selector with the default weights.
func NewPerimeterSelector() *PerimeterSelector {
	return &PerimeterSelector{
		Orthogonal: DefaultOrthogonalScore,
		Diagonal:   DefaultDiagonalScore,
	}
}

// SelectColor returns the candidate colour with the highest accumulated
// exposure, or -1 if no candidate scores above zero. An empty candidate
// set always returns -1.
func (s *PerimeterSelector) SelectColor(grid Grid, colors *bitset.BitSet) int {
	counters := make(map[int]float64)
	width := grid.Width()
	height := grid.Height()
	for y := 0; y <= height; y++ {
		for x := 0; x <= width; x++ {
			// The four cells around the lattice point (x, y).
			c0 := grid.Color(x-1, y-1)
			c1 := grid.Color(x-1, y)
			c2 := grid.Color(x, y-1)
			c3 := grid.Color(x, y)
			if colors.Test(uint(c3)) {
				// The bottom-right cell is a candidate; count it
				// against each of its non-candidate neighbours.
				inc := 0.0
				if !colors.Test(uint(c0)) {
					inc += s.Diagonal
				}
				if !colors.Test(uint(c1)) {
					inc += s.Orthogonal
				}
				if !colors.Test(uint(c2)) {
					inc += s.Orthogonal
				}
				counters[c3] += inc
			} else {
				// The bottom-right cell is not a candidate; count
				// each candidate neighbour against it.
				if colors.Test(uint(c0)) {
					counters[c0] += s.Diagonal
				}
				if colors.Test(uint(c1)) {
					counters[c1] += s.Orthogonal
				}
				if colors.Test(uint(c2)) {
					counters[c2] += s.Orthogonal
				}
			}
		}
	}

	best := -1
	bestCount := 0.0
	for c, ok := colors.NextSet(0); ok; c, ok = colors.NextSet(c + 1) {
		if count := counters[int(c)]; count > bestCount {
			bestCount = count
			best = int(c)
		}
	}
	return best
}
