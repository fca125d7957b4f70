package edges

import "cmp"

// Score summarises a scribe's output as a pair of non-negative counts.
// Moves is the number of subpaths started; Draws the number of straight
// line segments drawn.
type Score struct {
	Moves int
	Draws int
}

// MovesAndDraws returns the size of the emitted coordinate sequence.
func (s Score) MovesAndDraws() int { return s.Moves + s.Draws }

// Sub returns the component-wise difference s - o.
func (s Score) Sub(o Score) Score {
	return Score{Moves: s.Moves - o.Moves, Draws: s.Draws - o.Draws}
}

// Neg returns the component-wise negation of s.
func (s Score) Neg() Score {
	return Score{Moves: -s.Moves, Draws: -s.Draws}
}

// A Scorer reduces a score to a single figure of merit. Optimisers use
// scorers to decide whether a cell flip pays off: positive means the flip
// improves the trace, negative that it worsens it, zero that it makes no
// difference.
type Scorer func(Score) int

// ByDraws scores by the number of line segments alone.
func ByDraws(s Score) int { return s.Draws }

// ByMovesAndDraws scores by the size of the coordinate sequence.
func ByMovesAndDraws(s Score) int { return s.MovesAndDraws() }

// A Comparison orders two scores; negative means a is better than b,
// following the convention of the cmp package.
type Comparison func(a, b Score) int

// CompareDraws orders scores by draw count.
func CompareDraws(a, b Score) int { return cmp.Compare(a.Draws, b.Draws) }

// CompareMovesAndDraws orders scores by coordinate-sequence size.
func CompareMovesAndDraws(a, b Score) int {
	return cmp.Compare(a.MovesAndDraws(), b.MovesAndDraws())
}
