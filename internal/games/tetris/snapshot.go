package tetris

import "time"

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Phase        Phase
	Score        int
	Lines        int
	Level        int
	Pieces       int // Pieces spawned so far
	Active       Kind
	Shape        string
	X            int
	Y            int
	Next         Kind
	Filled       int // Locked cells on the grid
	FallingSpeed time.Duration
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:        g.phase,
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.Level(),
		Pieces:       g.pieces,
		Active:       g.active.Kind,
		Shape:        g.active.Shape.String(),
		X:            g.x,
		Y:            g.y,
		Next:         g.next.Kind,
		Filled:       g.grid.FilledCount(),
		FallingSpeed: g.FallingSpeed(),
	}
}
