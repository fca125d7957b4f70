package rect

import (
	"fmt"
	"image"

	"github.com/bits-and-blooms/bitset"
	"github.com/pxtrace/edges"
)

// A Layout is the step graph of a rectangular grid's cell boundaries.
//
// Step identifiers are laid out with row 0 at the top and column 0 on the
// left. Rightward steps along the top edge are numbered 0, 2, 4, ...;
// their inverses are obtained by adding 1. There are 2w(h+1) horizontal
// steps in all. The downward step from the top-left lattice point follows
// the horizontal block, and the steps to its right come after it in twos;
// inverses are again obtained by adding 1.
//
// Availability is one bit per undirected edge; consuming a step clears the
// bit shared with its inverse. An edge starts out available iff the two
// cells it separates differ in solidity, solid meaning any non-zero
// colour.
type Layout struct {
	width, height    int
	halfHorizontals  int
	horizontals      int
	halfVerticals    int
	verticals        int
	maxSteps         int
	steps            *bitset.BitSet
}

// NewLayout builds the step graph of grid's outline.
func NewLayout(grid Grid) *Layout {
	width := grid.Width()
	height := grid.Height()

	l := &Layout{
		width:           width,
		height:          height,
		halfHorizontals: (height + 1) * width,
		halfVerticals:   (width + 1) * height,
	}
	l.horizontals = 2 * l.halfHorizontals
	l.verticals = 2 * l.halfVerticals
	l.maxSteps = l.horizontals + l.verticals
	l.steps = bitset.New(uint(l.halfHorizontals + l.halfVerticals))

	for y := 0; y <= height; y++ {
		for x := 0; x <= width; x++ {
			here := grid.Color(x, y) != 0
			left := grid.Color(x-1, y) != 0
			up := grid.Color(x, y-1) != 0
			if here != up {
				l.steps.Set(uint(width*y + x))
			}
			if here != left {
				l.steps.Set(uint(l.halfHorizontals + (width+1)*y + x))
			}
		}
	}
	return l
}

func (l *Layout) available(id int) bool {
	return l.steps.Test(uint(id >> 1))
}

func (l *Layout) validate(id int) {
	if id < 0 || id >= l.maxSteps {
		panic(fmt.Sprintf("rect: invalid step id %d in %dx%d layout",
			id, l.width, l.height))
	}
}

// AnyStep returns an available step, or -1 if none remain. It returns the
// reverse-direction identifier of the lowest-numbered available undirected
// edge; that edge is the topmost-then-leftmost boundary edge of some
// region, so the step ends at the edge's left end, a corner of that
// region. Its start is not necessarily a corner.
func (l *Layout) AnyStep() int {
	halfID, ok := l.steps.NextSet(0)
	if !ok {
		return -1
	}
	return int(halfID)<<1 | 1
}

// Parallel reports whether two steps point in the same direction.
func (l *Layout) Parallel(id1, id2 int) bool {
	l.validate(id1)
	l.validate(id2)
	if (id1 < l.horizontals) != (id2 < l.horizontals) {
		return false
	}
	return (id1^id2)&1 == 0
}

// Antiparallel reports whether two steps point in opposite directions.
func (l *Layout) Antiparallel(id1, id2 int) bool {
	l.validate(id1)
	l.validate(id2)
	if (id1 < l.horizontals) != (id2 < l.horizontals) {
		return false
	}
	return (id1^id2)&1 != 0
}

// Options returns the available steps starting where id ends, excluding
// id's inverse. At most three steps are returned.
func (l *Layout) Options(id int) []int {
	end := l.End(id)
	x, y := end.X, end.Y
	inv := Invert(id)

	right := 2 * (l.width*y + x)
	left := right - 1
	down := l.horizontals + 2*((l.width+1)*y+x)
	up := down - (l.width+1)*2 + 1

	result := make([]int, 0, 3)
	if x > 0 && l.available(left) && inv != left {
		result = append(result, left)
	}
	if x < l.width && l.available(right) && inv != right {
		result = append(result, right)
	}
	if y > 0 && l.available(up) && inv != up {
		result = append(result, up)
	}
	if y < l.height && l.available(down) && inv != down {
		result = append(result, down)
	}
	return result
}

// Consume marks a step and its inverse as traced.
func (l *Layout) Consume(id int) {
	l.validate(id)
	l.steps.Clear(uint(id >> 1))
}

// End returns the end position of a step.
func (l *Layout) End(id int) image.Point {
	l.validate(id)
	var dx, dy, scale int
	if id < l.horizontals {
		scale = l.width
		dx = 1 - id&1
	} else {
		id -= l.horizontals
		scale = l.width + 1
		dy = 1 - id&1
	}
	halfID := id >> 1
	return image.Pt(halfID%scale+dx, halfID/scale+dy)
}

// Start returns the start position of a step: the end of its inverse.
func (l *Layout) Start(id int) image.Point {
	return l.End(Invert(id))
}

// Invert returns the identifier of a step's inverse.
func Invert(id int) int { return id ^ 1 }

// Layouts is a LayoutFactory over rectangular grids.
func Layouts(g Grid) edges.Layout[image.Point] { return NewLayout(g) }
