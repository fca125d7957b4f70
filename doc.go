// Package edges traces compact vector outlines of multicolour cell grids.
//
// # Overview
//
// edges converts indexed-colour rasters (small palette, 1-bit alpha) into a
// minimal set of closed polygonal paths per colour. It exploits an even-odd
// fill rule and colour overpainting: a colour traced early may temporarily
// claim cells of colours traced later, because those cells will be painted
// over anyway. Claiming the right cells merges fragments and straightens
// edges, cutting both the number of paths and the number of vertices.
//
// # Quick Start
//
//	import (
//	    "github.com/pxtrace/edges"
//	    "github.com/pxtrace/edges/rect"
//	)
//
//	slicer := &edges.BasicSlicer[rect.Grid, image.Point]{
//	    Collector: rect.Colors,
//	    Selector:  rect.NewPerimeterSelector(),
//	    Optimizer: rect.BestClever,
//	    Layouts:   rect.Layouts,
//	}
//	slices, err := slicer.Slice(grid, scribes)
//	// drive slices.Processes, then consume slices.Order
//
// # Architecture
//
// The module is organised into:
//   - Core: Scribe, Score, Layout, Tracer, Process, slicers (this package)
//   - Rectangular realisation: grids, step layout, optimisers (package rect)
//   - Shells: image palettes (package palette), SVG output (package svg)
//
// The core is layout-independent: a Layout is any finite set of directed
// unit steps with inverses, and positions are an opaque type parameter. The
// rect package realises it for rectangular grids with integer lattice
// coordinates.
//
// # Concurrency
//
// All work is expressed as cooperative processes: repeated calls to a
// Process method, each doing bounded work. Processes produced by one slicer
// run share no mutable state and may be driven in parallel; RunAll does so
// with a bounded worker group.
package edges
