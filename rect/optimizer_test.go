package rect

import (
	"errors"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/pxtrace/edges"
)

func futureOf(colors ...uint) *bitset.BitSet {
	b := bitset.New(8)
	for _, c := range colors {
		b.Set(c)
	}
	return b
}

// optimize runs an optimiser to completion and renders the result.
func optimize(t *testing.T, o edges.Optimizer[Grid], g Grid, current int, future *bitset.BitSet) Grid {
	t.Helper()
	job, err := o.Optimize(g, current, future)
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	return job.OptimizedGrid()
}

func TestOptimizers_Validation(t *testing.T) {
	g := gridOf(t, "12")
	optimizers := map[string]edges.Optimizer[Grid]{
		"minimal":   Minimal,
		"mapped":    Mapped,
		"accreting": NewAccreting(edges.ByMovesAndDraws, true),
		"eroding":   NewEroding(edges.ByMovesAndDraws, true),
		"clever":    NewClever(edges.ByMovesAndDraws, edges.ByDraws, true),
	}
	for name, o := range optimizers {
		t.Run(name, func(t *testing.T) {
			if _, err := o.Optimize(g, 0, futureOf(2)); !errors.Is(err, edges.ErrTransparentColor) {
				t.Errorf("current 0: expected ErrTransparentColor, got %v", err)
			}
			if _, err := o.Optimize(g, 1, futureOf(0, 2)); !errors.Is(err, edges.ErrTransparentColor) {
				t.Errorf("future 0: expected ErrTransparentColor, got %v", err)
			}
			if _, err := o.Optimize(g, 1, futureOf(1, 2)); !errors.Is(err, edges.ErrCurrentInFuture) {
				t.Errorf("current in future: expected ErrCurrentInFuture, got %v", err)
			}
		})
	}
}

func TestMinimal(t *testing.T) {
	g := gridOf(t,
		"12",
		"21")
	out := optimize(t, Minimal, g, 1, futureOf(2))
	want := "" +
		"#-\n" +
		"-#\n"
	if got := Sprint(out, "-#"); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestMapped(t *testing.T) {
	g := gridOf(t,
		"123",
		"321")
	// Colour 3 is past: only 1 and 2 map.
	out := optimize(t, Mapped, g, 1, futureOf(2))
	want := "" +
		"##-\n" +
		"-##\n"
	if got := Sprint(out, "-#"); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestAccreting_Identity(t *testing.T) {
	// Nothing to claim: the optimised grid equals the input.
	g := gridOf(t, "1")
	out := optimize(t, NewAccreting(edges.ByMovesAndDraws, true), g, 1, futureOf(2))
	if out.Color(0, 0) != 1 {
		t.Error("current cell lost")
	}
	if out.Width() != 1 || out.Height() != 1 {
		t.Error("dimensions changed")
	}
}

func TestAccreting_Eagerness(t *testing.T) {
	// Claiming the neighbouring future cell turns one unit square into
	// a domino: same score, so only an eager optimiser takes it.
	g := gridOf(t, "12")
	eager := optimize(t, NewAccreting(edges.ByMovesAndDraws, true), g, 1, futureOf(2))
	if eager.Color(1, 0) == 0 {
		t.Error("eager accretion should claim a score-neutral cell")
	}
	reluctant := optimize(t, NewAccreting(edges.ByMovesAndDraws, false), g, 1, futureOf(2))
	if reluctant.Color(1, 0) != 0 {
		t.Error("reluctant accretion should skip a score-neutral cell")
	}
}

func TestAccreting_FillsGap(t *testing.T) {
	// The future cell bridges two squares of the current colour.
	g := gridOf(t, "121")
	out := optimize(t, NewAccreting(edges.ByMovesAndDraws, false), g, 1, futureOf(2))
	if got := Sprint(out, "-#"); got != "###\n" {
		t.Errorf("expected a solid run, got %q", got)
	}
}

func TestAccreting_NeverClaimsPast(t *testing.T) {
	// Colour 2 is past here; it must stay clear however helpful.
	g := gridOf(t, "121")
	out := optimize(t, NewAccreting(edges.ByMovesAndDraws, true), g, 1, bitset.New(8))
	if got := Sprint(out, "-#"); got != "#-#\n" {
		t.Errorf("expected the gap kept, got %q", got)
	}
}

func TestEroding_KeepsBridge(t *testing.T) {
	// The future cell joins two current cells; removing it would split
	// one rectangle into two squares, so it stays.
	g := gridOf(t, "121")
	out := optimize(t, NewEroding(edges.ByMovesAndDraws, false), g, 1, futureOf(2))
	if got := Sprint(out, "-#"); got != "###\n" {
		t.Errorf("expected the bridge kept, got %q", got)
	}
}

func TestEroding_DropsIsland(t *testing.T) {
	// The future cell is isolated; dropping it saves a whole square.
	g := gridOf(t, "1.2")
	out := optimize(t, NewEroding(edges.ByMovesAndDraws, false), g, 1, futureOf(2))
	if got := Sprint(out, "-#"); got != "#--\n" {
		t.Errorf("expected the island dropped, got %q", got)
	}
}

func TestEroding_NeverDropsCurrent(t *testing.T) {
	g := gridOf(t, "1.1")
	out := optimize(t, NewEroding(edges.ByMovesAndDraws, true), g, 1, futureOf(2))
	if got := Sprint(out, "-#"); got != "#-#\n" {
		t.Errorf("expected both current cells kept, got %q", got)
	}
}

func TestMonotonicity(t *testing.T) {
	// Accretion only adds to the minimal image; erosion only removes
	// from the mapped image.
	g := gridOf(t,
		"1221",
		"2112",
		"1221")
	future := futureOf(2)

	accreted := optimize(t, NewAccreting(edges.ByMovesAndDraws, true), g, 1, future)
	eroded := optimize(t, NewEroding(edges.ByMovesAndDraws, true), g, 1, future)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			switch g.Color(x, y) {
			case 1:
				if accreted.Color(x, y) == 0 || eroded.Color(x, y) == 0 {
					t.Errorf("current cell (%d, %d) lost", x, y)
				}
			case 2:
			default:
				if accreted.Color(x, y) != 0 || eroded.Color(x, y) != 0 {
					t.Errorf("non-layer cell (%d, %d) claimed", x, y)
				}
			}
		}
	}
}
