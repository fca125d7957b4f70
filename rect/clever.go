package rect

import (
	"image"

	"github.com/bits-and-blooms/bitset"
	"github.com/pxtrace/edges"
)

// A CleverOptimizer assumes no future cells should be included, then
// gradually accretes desirable ones, fills in corners, extends
// projections, and finally erodes reluctantly.
//
// The accretion phase works like AccretingOptimizer, except that a cell
// whose 3×3 saving does not justify inclusion is also matched against the
// corner and projection templates below; a match fills in the whole run
// of cells along the corner. Once the work queue drains, every solid cell
// is requeued and the optimiser switches to erosion: a future cell is
// removed only if removal strictly improves the score, whatever the
// eagerness setting.
type CleverOptimizer struct {
	accretionScorer edges.Scorer
	erosionScorer   edges.Scorer
	accept          func(int) bool
}

// NewClever creates a two-phase optimiser with separate scorers for the
// accretion and erosion phases. Eagerness applies to accretion only.
func NewClever(accretionScorer, erosionScorer edges.Scorer, eager bool) *CleverOptimizer {
	return &CleverOptimizer{
		accretionScorer: accretionScorer,
		erosionScorer:   erosionScorer,
		accept:          acceptScore(eager),
	}
}

// BestClever is a clever optimiser with parameters that perform well in
// practice.
var BestClever = NewClever(edges.ByDraws, edges.ByMovesAndDraws, true)

// Optimize prepares an optimisation of current against grid.
func (o *CleverOptimizer) Optimize(grid Grid, current int, future *bitset.BitSet) (edges.Optimization[Grid], error) {
	if err := edges.ValidateColors(current, future); err != nil {
		return nil, err
	}
	return &cleverJob{
		layerWork: newLayerWork(grid, future, func(c int) bool { return c == current }),
		reduce: func(c int) bool {
			return c == current || future.Test(uint(c))
		},
		accretionScorer: o.accretionScorer,
		erosionScorer:   o.erosionScorer,
		accept:          o.accept,
	}, nil
}

type cleverJob struct {
	*layerWork
	reduce          func(color int) bool
	accretionScorer edges.Scorer
	erosionScorer   edges.Scorer
	accept          func(int) bool

	eroding bool
}

// Process evaluates one queued cell, returning false once the erosion
// queue is empty.
func (j *cleverJob) Process() bool {
	idx, ok := j.pop()
	if !ok {
		if j.eroding {
			return false
		}
		// Accretion has settled; requeue all solid cells and start
		// eroding reluctantly.
		j.eroding = true
		j.remaining.InPlaceUnion(j.result)
		return true
	}
	x := int(idx) % j.width
	y := int(idx) / j.width

	// Only cells of future colours may change.
	if !j.future.Test(uint(j.grid.Color(x, y))) {
		return true
	}

	pattern := j.pattern(x, y)
	saving := savings[pattern]
	if j.eroding {
		if !j.result.Test(idx) {
			return true
		}
		if j.erosionScorer(saving) > 0 {
			j.result.Clear(idx)
			j.requeueAround(x, y, true)
		}
	} else if j.accept(j.accretionScorer(saving)) {
		j.result.Set(idx)
		j.requeueAround(x, y, false)
	} else {
		j.fillTemplate(x, y, pattern)
	}
	return true
}

// OptimizedGrid finishes both phases and returns the working grid.
func (j *cleverJob) OptimizedGrid() Grid {
	for j.Process() {
	}
	return j.resultGrid
}

// A cornerWalk is one way of extending a matched template: walk in dir,
// keeping the solid run on the turn side.
type cornerWalk struct {
	dir  Direction
	turn int
}

// A cornerTemplate matches the 3×3 occupancy around a candidate cell that
// sits at the start of a linear corner or projection. A pattern matches
// when every included bit is set and every excluded bit is clear; bits
// use the same encoding as the savings table (1 = top-left, 2 =
// top-centre, ..., 256 = bottom-right). Walks are attempted in order.
type cornerTemplate struct {
	included int
	excluded int
	walks    []cornerWalk
}

var cornerTemplates = []cornerTemplate{
	// Projections: a thin solid run alongside the candidate.
	// -??
	// #-?
	// #-?
	{8 + 64, 1 + 16 + 128, []cornerWalk{{Down, RightTurn90}}},
	// ??-
	// ?-#
	// ?-#
	{32 + 256, 4 + 16 + 128, []cornerWalk{{Down, LeftTurn90}}},
	// ##-
	// --?
	// ???
	{1 + 2, 4 + 8 + 16, []cornerWalk{{Left, RightTurn90}}},
	// ???
	// --?
	// ##-
	{64 + 128, 8 + 16 + 256, []cornerWalk{{Left, LeftTurn90}}},
	// #-?
	// #-?
	// -??
	{1 + 8, 2 + 16 + 64, []cornerWalk{{Up, LeftTurn90}}},
	// ?-#
	// ?-#
	// ??-
	{4 + 32, 2 + 16 + 256, []cornerWalk{{Up, RightTurn90}}},
	// -##
	// ?--
	// ???
	{2 + 4, 1 + 16 + 32, []cornerWalk{{Right, LeftTurn90}}},
	// ???
	// ?--
	// -##
	{128 + 256, 16 + 32 + 64, []cornerWalk{{Right, RightTurn90}}},

	// Corners: two solid runs meeting at the candidate.
	// ##-
	// #??
	// #-?
	{1 + 2 + 8 + 64, 4 + 128, []cornerWalk{{Down, RightTurn90}}},
	// ###
	// #?-
	// -??
	{1 + 2 + 4 + 8, 32 + 64, []cornerWalk{{Right, LeftTurn90}}},
	// ###
	// #?-
	// #-?
	{1 + 2 + 4 + 8 + 64, 32 + 128,
		[]cornerWalk{{Down, RightTurn90}, {Right, LeftTurn90}}},
	// -##
	// ??#
	// ?-#
	{2 + 4 + 32 + 256, 1 + 128, []cornerWalk{{Down, LeftTurn90}}},
	// ###
	// -?#
	// ??-
	{1 + 2 + 4 + 32, 8 + 256, []cornerWalk{{Left, RightTurn90}}},
	// ###
	// -?#
	// ?-#
	{1 + 2 + 4 + 32 + 256, 8 + 128,
		[]cornerWalk{{Left, RightTurn90}, {Down, LeftTurn90}}},
	// ?-#
	// ??#
	// -##
	{4 + 32 + 128 + 256, 2 + 64, []cornerWalk{{Up, RightTurn90}}},
	// ??-
	// -?#
	// ###
	{32 + 64 + 128 + 256, 4 + 8, []cornerWalk{{Left, LeftTurn90}}},
	// ?-#
	// -?#
	// ###
	{4 + 32 + 64 + 128 + 256, 2 + 8,
		[]cornerWalk{{Left, LeftTurn90}, {Up, RightTurn90}}},
	// #-?
	// #??
	// ##-
	{1 + 8 + 64 + 128, 2 + 256, []cornerWalk{{Up, LeftTurn90}}},
	// -??
	// #?-
	// ###
	{8 + 64 + 128 + 256, 1 + 32, []cornerWalk{{Right, RightTurn90}}},
	// #-?
	// #?-
	// ###
	{1 + 8 + 64 + 128 + 256, 2 + 32,
		[]cornerWalk{{Right, RightTurn90}, {Up, LeftTurn90}}},
}

// fillTemplate matches the pattern around (x, y) against the template
// library and fills the first workable corner. Only the first matching
// template is considered.
func (j *cleverJob) fillTemplate(x, y, pattern int) bool {
	for _, t := range cornerTemplates {
		if pattern&t.included != t.included || pattern&t.excluded != 0 {
			continue
		}
		for _, w := range t.walks {
			if j.fillCorner(x, y, w.dir, w.turn) {
				return true
			}
		}
		return false
	}
	return false
}

// fillCorner walks from (x, y) in dir, with the supporting solid run on
// the turn side, and fills the walked cells. The walk ends when the cell
// ahead is already solid or the supporting run ends; it fails, changing
// nothing, if a past-colour cell lies on the line. The matched template
// guarantees a walk of at least two cells.
func (j *cleverJob) fillCorner(x, y int, dir Direction, turn int) bool {
	start := image.Pt(x, y)
	length := 0
	{
		p := start
		side := dir.Turn(turn).Move(p)
		for {
			length++
			p = dir.Move(p)
			side = dir.Move(side)
			if j.solidAt(p.X, p.Y) {
				break
			}
			if !j.solidAt(side.X, side.Y) {
				break
			}
			if !j.reduce(j.grid.Color(p.X, p.Y)) {
				return false
			}
		}
	}

	// Fill the line, starting one cell early so the cells behind the
	// corner are requeued along with the two flanks of the whole run.
	p := dir.Turn(AboutTurn).Move(start)
	side1 := dir.Turn(turn).Move(p)
	side2 := dir.Turn(-turn).Move(p)
	j.requeueClear(p.X, p.Y)
	j.requeueClear(side1.X, side1.Y)
	j.requeueClear(side2.X, side2.Y)
	p = dir.Move(p)
	side1 = dir.Move(side1)
	side2 = dir.Move(side2)

	for i := 0; i < length; i++ {
		j.result.Set(uint(p.X + p.Y*j.width))
		j.resolve(p.X, p.Y)
		j.requeueClear(side1.X, side1.Y)
		j.requeueClear(side2.X, side2.Y)
		p = dir.Move(p)
		side1 = dir.Move(side1)
		side2 = dir.Move(side2)
	}

	j.requeueClear(p.X, p.Y)
	j.requeueClear(side1.X, side1.Y)
	j.requeueClear(side2.X, side2.Y)
	return true
}
