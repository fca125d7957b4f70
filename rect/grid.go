// Package rect realises the edges tracing core on rectangular grids of
// square cells, with integer lattice coordinates and a top-left origin:
// x grows rightwards and y downwards.
package rect

import (
	"errors"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ErrNegativeSize reports a grid constructed with a negative dimension.
var ErrNegativeSize = errors.New("rect: negative grid dimension")

// A Grid is a rectangular grid of coloured square cells. Colour 0 is
// always transparent. X coordinates within the grid lie in [0, Width())
// and Y in [0, Height()); reads outside that range must return 0.
type Grid interface {
	Width() int
	Height() int
	Color(x, y int) int
}

// Subgrid returns a read-only view of a rectangle of g. The cell at
// (left, top) in g becomes (0, 0) in the view. Reads outside the view, or
// through the view beyond g's own bounds, return 0.
func Subgrid(g Grid, left, top, width, height int) Grid {
	return &subgrid{g: g, left: left, top: top, width: width, height: height}
}

type subgrid struct {
	g             Grid
	left, top     int
	width, height int
}

func (s *subgrid) Width() int  { return s.width }
func (s *subgrid) Height() int { return s.height }

func (s *subgrid) Color(x, y int) int {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.g.Color(x+s.left, y+s.top)
}

// Reduce collapses a grid to a bitset, one bit per cell in row-major
// order, set where the cell's colour satisfies solid.
func Reduce(g Grid, solid func(color int) bool) *bitset.BitSet {
	width := g.Width()
	height := g.Height()
	result := bitset.New(uint(width * height))
	for y := 0; y < height; y++ {
		base := y * width
		for x := 0; x < width; x++ {
			result.SetTo(uint(base+x), solid(g.Color(x, y)))
		}
	}
	return result
}

// reducedGrid presents a multicolour grid as monochrome: cells whose
// colour satisfies the predicate read as 1, all others as 0.
type reducedGrid struct {
	g     Grid
	solid func(color int) bool
}

func (r *reducedGrid) Width() int  { return r.g.Width() }
func (r *reducedGrid) Height() int { return r.g.Height() }

func (r *reducedGrid) Color(x, y int) int {
	if r.solid(r.g.Color(x, y)) {
		return 1
	}
	return 0
}

// Sprint renders g with one character per cell, rows separated by
// newlines. Character i of chars stands for colour i; the final character
// stands for any colour beyond the range of chars. Useful for tests and
// debugging dumps.
func Sprint(g Grid, chars string) string {
	var sb strings.Builder
	width := g.Width()
	height := g.Height()
	last := chars[len(chars)-1]
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := g.Color(x, y)
			if c >= 0 && c < len(chars) {
				sb.WriteByte(chars[c])
			} else {
				sb.WriteByte(last)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
