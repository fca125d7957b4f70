package edges

// A Tracer walks a layout and emits every closed path to a scribe, assuming
// an even-odd fill rule. It is a Process: each call to Process handles one
// step transition.
//
// At a crossing where four steps meet, the tracer carries straight on. This
// keeps the even-odd interpretation intact: the two sub-loops that share
// the crossing are traced as separate passes, and a successor that is
// antiparallel to another option is taken only as a last resort, so the
// opposite pass is never starved of its continuation.
type Tracer[P any] struct {
	layout Layout[P]
	scribe Scribe[P]

	step        int
	foundCorner bool
}

// NewTracer creates a tracer that walks layout and reports to scribe.
// The layout is mutated as steps are consumed; it must not be shared with
// another tracer.
func NewTracer[P any](layout Layout[P], scribe Scribe[P]) *Tracer[P] {
	return &Tracer[P]{layout: layout, scribe: scribe, step: -1}
}

// Process performs one step transition, returning false once every path
// has been traced and closed.
func (t *Tracer[P]) Process() bool {
	if t.step == -1 {
		t.step = t.layout.AnyStep()
		if t.step == -1 {
			return false
		}
		t.foundCorner = false
	}

	// Until the first corner is found we walk without consuming, so the
	// path can start at a corner rather than mid-edge.
	if t.foundCorner {
		t.layout.Consume(t.step)
	}

	alts := t.layout.Options(t.step)
	chosen := -1
	secondary := -1
	turn := true
	for i1, cand := range alts {
		// A candidate that carries straight on is taken at once.
		if t.layout.Parallel(cand, t.step) {
			turn = false
			chosen = cand
			break
		}

		// A candidate antiparallel to another option belongs to the
		// crossing's other pass; demote it.
		for _, cand2 := range alts[i1+1:] {
			if t.layout.Antiparallel(cand, cand2) {
				secondary = cand
			}
		}
		if secondary == cand {
			continue
		}
		chosen = cand
	}

	var next int
	switch {
	case chosen != -1:
		next = chosen
	case secondary != -1:
		// Reluctantly cut across the crossing; the straight line was
		// already taken by an earlier pass.
		next = secondary
	default:
		next = -1
	}

	if t.foundCorner {
		if turn || next == -1 {
			t.scribe.Draw(t.layout.End(t.step))
		}
		if next == -1 {
			t.scribe.Close()
		}
	} else if turn {
		t.foundCorner = true
		t.scribe.Move(t.layout.End(t.step))
	}
	t.step = next
	return true
}
