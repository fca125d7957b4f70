package rect

import "github.com/bits-and-blooms/bitset"

// A BitGrid is a two-colour grid backed by a bitset, one bit per cell in
// row-major order. Set bits read as the true colour, clear bits as the
// false colour. The backing bitset is not copied.
type BitGrid struct {
	width, height        int
	data                 *bitset.BitSet
	trueColor, falseColor int
}

// NewBitGrid creates a grid over data with 1 as the true colour and 0 as
// the false colour.
func NewBitGrid(width, height int, data *bitset.BitSet) (*BitGrid, error) {
	return NewColoredBitGrid(width, height, data, 1, 0)
}

// NewColoredBitGrid creates a grid over data with the given colours for
// set and clear bits. Cells outside the grid still read as 0 regardless of
// falseColor.
func NewColoredBitGrid(width, height int, data *bitset.BitSet, trueColor, falseColor int) (*BitGrid, error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeSize
	}
	return &BitGrid{
		width:      width,
		height:     height,
		data:       data,
		trueColor:  trueColor,
		falseColor: falseColor,
	}, nil
}

// Width returns the grid width in cells.
func (g *BitGrid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *BitGrid) Height() int { return g.height }

// Color returns the colour of the cell at (x, y), or 0 outside the grid.
func (g *BitGrid) Color(x, y int) int {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0
	}
	if g.data.Test(uint(x + y*g.width)) {
		return g.trueColor
	}
	return g.falseColor
}
