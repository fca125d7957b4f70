package edges

// Slices is the product of slicing a grid: one scribe per traced colour in
// render order, and the processes that populate them. Every process must be
// driven to completion — serially, or via RunAll — before the scribes are
// consumed downstream.
type Slices[P any] struct {
	Order     []Scribe[P]
	Processes []Process
}

// A BasicSlicer slices a multicolour grid into per-colour layers using a
// single optimiser.
type BasicSlicer[G, P any] struct {
	// Collector determines the set of colours used in the grid.
	Collector Collector[G]

	// Selector picks the next colour to trace.
	Selector Selector[G]

	// Optimizer simplifies each colour's shape by temporarily including
	// cells of colours not yet traced.
	Optimizer Optimizer[G]

	// Layouts derives step layouts from monochrome grids.
	Layouts LayoutFactory[G, P]
}

// Slice partitions grid into colour layers. For each colour, in selector
// order, it obtains a scribe from scribes and prepares a tracing process
// that will populate it. Colour 0 is never traced.
func (s *BasicSlicer[G, P]) Slice(grid G, scribes func(color int) Scribe[P]) (Slices[P], error) {
	colors := s.Collector(grid)
	colors.Clear(0)

	var out Slices[P]
	for {
		col := s.Selector.SelectColor(grid, colors)
		if col < 1 {
			break
		}
		colors.Clear(uint(col))

		job, err := s.Optimizer.Optimize(grid, col, colors)
		if err != nil {
			return Slices[P]{}, err
		}
		mono := job.OptimizedGrid()
		logger().Debug("sliced colour", "color", col)

		scribe := scribes(col)
		out.Order = append(out.Order, scribe)
		out.Processes = append(out.Processes, NewTracer(s.Layouts(mono), scribe))
	}
	return out, nil
}
