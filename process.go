package edges

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// A Process is a cooperative unit of work. Each call to Process performs a
// bounded step and reports whether more work remains. A Process never
// blocks; an external scheduler may check for cancellation between calls.
type Process interface {
	Process() bool
}

// ProcessFunc adapts a function to the Process interface.
type ProcessFunc func() bool

// Process calls f.
func (f ProcessFunc) Process() bool { return f() }

// Drain runs p to completion.
func Drain(p Process) {
	for p.Process() {
	}
}

// RunAll drives every process to completion, running up to workers of them
// concurrently. If workers is not positive, GOMAXPROCS is used. The
// processes must share no mutable state. RunAll returns the context's error
// if it is cancelled before all processes finish.
func RunAll(ctx context.Context, workers int, processes []Process) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, p := range processes {
		p := p
		g.Go(func() error {
			for p.Process() {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
