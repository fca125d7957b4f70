package rect

import (
	"image"
	"testing"

	"github.com/pxtrace/edges"
)

// gridOf builds a grid from character art: '.' is transparent, digits are
// colour indices.
func gridOf(t *testing.T, rows ...string) Grid {
	t.Helper()
	height := len(rows)
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	data := make([]byte, width*height)
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if ch := r[x]; ch >= '1' && ch <= '9' {
				data[x+y*width] = ch - '0'
			}
		}
	}
	g, err := NewByteGrid(width, height, data)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	return g
}

// polyScribe collects closed paths as point sequences.
type polyScribe struct {
	polys [][]image.Point
	cur   []image.Point
	moves int
	draws int
}

func (s *polyScribe) Move(to image.Point) {
	s.moves++
	s.cur = []image.Point{to}
}

func (s *polyScribe) Draw(to image.Point) {
	s.draws++
	s.cur = append(s.cur, to)
}

func (s *polyScribe) Close() {
	s.polys = append(s.polys, s.cur)
	s.cur = nil
}

// insideOdd reports whether the centre of cell (x, y) is covered by an
// odd number of the collected paths, under the even-odd rule. It casts a
// ray rightwards from (x+0.5, y+0.5); only vertical segments can cross
// it, since all segments join integer lattice points.
func (s *polyScribe) insideOdd(x, y int) bool {
	crossings := 0
	for _, poly := range s.polys {
		for i := range poly {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			if a.X != b.X {
				continue
			}
			lo, hi := a.Y, b.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			if a.X > x && lo <= y && y < hi {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}

// vertexSet returns the distinct points of the i-th path.
func (s *polyScribe) vertexSet(i int) map[image.Point]bool {
	set := make(map[image.Point]bool)
	for _, p := range s.polys[i] {
		set[p] = true
	}
	return set
}

// tracePoly traces a grid's outline into a fresh polyScribe.
func tracePoly(g Grid) *polyScribe {
	var s polyScribe
	edges.Drain(edges.NewTracer[image.Point](NewLayout(g), &s))
	return &s
}

// polysEqual reports whether two path collections are identical in order
// and content.
func polysEqual(a, b [][]image.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
