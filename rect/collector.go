package rect

import "github.com/bits-and-blooms/bitset"

// Colors collects the set of colours used in a grid. It is a Collector
// over rectangular grids.
func Colors(g Grid) *bitset.BitSet {
	colors := bitset.New(8)
	width := g.Width()
	height := g.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colors.Set(uint(g.Color(x, y)))
		}
	}
	return colors
}
