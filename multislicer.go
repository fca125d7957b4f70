package edges

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// A MultiOptimizerSlicer slices a multicolour grid into per-colour layers,
// racing several optimisers on each layer and keeping the best trace.
//
// For each colour, every optimiser's chain — optimise, lay out, trace —
// runs against a private replaying scribe; the chains share no mutable
// state and run concurrently. The recording with the minimum score under
// Compare wins, ties broken by roster order, and its replay becomes the
// layer's process.
type MultiOptimizerSlicer[G, P any] struct {
	// Collector determines the set of colours used in the grid.
	Collector Collector[G]

	// Selector picks the next colour to trace.
	Selector Selector[G]

	// Optimizers is the roster raced on each layer. It must not be empty.
	Optimizers []Optimizer[G]

	// Layouts derives step layouts from monochrome grids.
	Layouts LayoutFactory[G, P]

	// Compare orders competing scores; the minimum wins.
	Compare Comparison

	// Workers bounds tournament concurrency; GOMAXPROCS if not positive.
	Workers int
}

// Slice partitions grid into colour layers. For each colour, in selector
// order, it obtains a scribe from scribes and prepares a process that will
// replay the winning trace into it. Colour 0 is never traced.
func (s *MultiOptimizerSlicer[G, P]) Slice(grid G, scribes func(color int) Scribe[P]) (Slices[P], error) {
	if len(s.Optimizers) == 0 {
		return Slices[P]{}, ErrNoOptimizers
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	colors := s.Collector(grid)
	colors.Clear(0)

	var out Slices[P]
	for {
		col := s.Selector.SelectColor(grid, colors)
		if col < 1 {
			break
		}
		colors.Clear(uint(col))

		// Race the optimisers. Each chain owns its grid, layout and
		// recording; the future set is shared read-only.
		candidates := make([]*ReplayingScribe[P], len(s.Optimizers))
		var g errgroup.Group
		g.SetLimit(workers)
		for i, opt := range s.Optimizers {
			opt := opt
			rec := &ReplayingScribe[P]{}
			candidates[i] = rec
			g.Go(func() error {
				job, err := opt.Optimize(grid, col, colors)
				if err != nil {
					return err
				}
				Drain(NewTracer(s.Layouts(job.OptimizedGrid()), rec))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Slices[P]{}, err
		}

		best := 0
		for i := 1; i < len(candidates); i++ {
			if s.Compare(candidates[i].Score(), candidates[best].Score()) < 0 {
				best = i
			}
		}
		score := candidates[best].Score()
		logger().Debug("optimizer tournament", "color", col,
			"winner", best, "moves", score.Moves, "draws", score.Draws)

		scribe := scribes(col)
		out.Order = append(out.Order, scribe)
		out.Processes = append(out.Processes, candidates[best].Replay(scribe))
	}
	return out, nil
}
