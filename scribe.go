package edges

// A Scribe receives drawing commands for closed paths on a 2D surface.
// It is a write-only stream: Move starts a new subpath, implicitly closing
// any open one; Draw extends the open subpath with a straight line; Close
// finalises it. Close may be issued just before each Move, and is always
// issued at the end of tracing.
type Scribe[P any] interface {
	Move(to P)
	Draw(to P)
	Close()
}

// A Counter is a scribe that counts commands and discards geometry.
// The zero value is ready to use.
type Counter[P any] struct {
	Moves  int
	Draws  int
	Closes int
}

// Move counts a move command.
func (c *Counter[P]) Move(P) { c.Moves++ }

// Draw counts a draw command.
func (c *Counter[P]) Draw(P) { c.Draws++ }

// Close counts a close command.
func (c *Counter[P]) Close() { c.Closes++ }

// Score reports the moves and draws counted so far.
func (c *Counter[P]) Score() Score {
	return Score{Moves: c.Moves, Draws: c.Draws}
}
