package rect

import "fmt"

// A ByteGrid is a grid backed by a byte array, one byte per cell in
// row-major order, interpreted as unsigned colour indices. The backing
// array is not copied.
type ByteGrid struct {
	width, height int
	data          []byte
}

// NewByteGrid creates a grid over data, which must hold at least
// width*height bytes.
func NewByteGrid(width, height int, data []byte) (*ByteGrid, error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeSize
	}
	if len(data) < width*height {
		return nil, fmt.Errorf("rect: %d bytes provided, %d required",
			len(data), width*height)
	}
	return &ByteGrid{width: width, height: height, data: data}, nil
}

// Width returns the grid width in cells.
func (g *ByteGrid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *ByteGrid) Height() int { return g.height }

// Color returns the colour of the cell at (x, y), or 0 outside the grid.
func (g *ByteGrid) Color(x, y int) int {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0
	}
	return int(g.data[x+y*g.width])
}
