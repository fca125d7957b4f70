package rect

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
)

func candidates(colors ...uint) *bitset.BitSet {
	b := bitset.New(8)
	for _, c := range colors {
		b.Set(c)
	}
	return b
}

func TestPerimeterSelector_Checkerboard(t *testing.T) {
	// Only the top-left/bottom-right diagonal contributes diagonal
	// weight, so the anti-diagonal colour 2 is the more exposed:
	// each of its cells scores its own diagonal corners, while colour
	// 1's diagonal corners face fellow candidates.
	g := gridOf(t,
		"12",
		"21")
	s := NewPerimeterSelector()
	if got := s.SelectColor(g, candidates(1, 2)); got != 2 {
		t.Errorf("expected colour 2, got %d", got)
	}
	if got := s.SelectColor(g, candidates(1)); got != 1 {
		t.Errorf("after removing 2: expected colour 1, got %d", got)
	}
}

func TestPerimeterSelector_TieBreak(t *testing.T) {
	// Two lone cells side by side have identical exposure; the tie
	// goes to the lowest colour index.
	g := gridOf(t, "12")
	s := NewPerimeterSelector()
	if got := s.SelectColor(g, candidates(1, 2)); got != 1 {
		t.Errorf("expected colour 1 on a tie, got %d", got)
	}
	g2 := gridOf(t, "21")
	if got := s.SelectColor(g2, candidates(1, 2)); got != 1 {
		t.Errorf("expected colour 1 on a tie, got %d", got)
	}
}

func TestPerimeterSelector_Empty(t *testing.T) {
	g := gridOf(t, "12")
	s := NewPerimeterSelector()
	if got := s.SelectColor(g, bitset.New(8)); got != -1 {
		t.Errorf("expected -1 on empty candidate set, got %d", got)
	}
}

func TestPerimeterSelector_Surrounded(t *testing.T) {
	// Colour 1 touches nothing transparent; colour 2 owns the whole
	// perimeter and must be traced first, so that 1 can later overpaint
	// into it.
	g := gridOf(t,
		"222",
		"212",
		"222")
	s := NewPerimeterSelector()
	if got := s.SelectColor(g, candidates(1, 2)); got != 2 {
		t.Errorf("expected the surrounding colour 2, got %d", got)
	}
	// With 2 gone, 1 is the only candidate and fully exposed.
	if got := s.SelectColor(g, candidates(1)); got != 1 {
		t.Errorf("expected colour 1, got %d", got)
	}
}

func TestPerimeterSelector_MoreExposedWins(t *testing.T) {
	// Colour 1 has two exposed end cells; colour 2 only the middle
	// cell's top and bottom.
	g := gridOf(t, "121")
	s := NewPerimeterSelector()
	if got := s.SelectColor(g, candidates(1, 2)); got != 1 {
		t.Errorf("expected colour 1, got %d", got)
	}
}

func TestColors(t *testing.T) {
	g := gridOf(t,
		"102",
		"031")
	got := Colors(g)
	for _, c := range []uint{0, 1, 2, 3} {
		if !got.Test(c) {
			t.Errorf("colour %d missing", c)
		}
	}
	if got.Test(4) {
		t.Error("colour 4 reported")
	}
}
