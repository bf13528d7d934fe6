package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Direction is a one-cell translation of the active piece.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Phase is the state of the piece lifecycle.
type Phase uint8

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// lineClearPoints is the base award per number of rows cleared at once,
// multiplied by level+1. Four or more rows pay the top tier.
var lineClearPoints = [...]int{0, 40, 100, 300, 1200}

// Options configures a new game.
type Options struct {
	Width        int
	Height       int
	Speed        config.SpeedConfig
	RandomColors bool
	Seed         int64
}

// Game holds the complete state of one round: the grid of locked blocks,
// the falling piece, the preview piece and the progression counters.
// It is not safe for concurrent use; a single loop owns it.
type Game struct {
	grid         *Grid
	rng          *rand.Rand
	speed        config.SpeedConfig
	randomColors bool

	active Piece
	x, y   int
	next   Piece

	score  int
	lines  int
	pieces int
	phase  Phase
}

// New creates a game with an empty grid and a preselected next piece.
// The first piece enters the board on the first call to Spawn.
func New(opts Options) *Game {
	g := &Game{
		grid:         NewGrid(opts.Width, opts.Height),
		rng:          rand.New(rand.NewSource(opts.Seed)),
		speed:        opts.Speed,
		randomColors: opts.RandomColors,
		phase:        PhaseSpawning,
	}
	g.next = RandomPiece(g.rng, g.randomColors)
	return g
}

// Spawn promotes the next piece to the active piece at the top center of the
// board and chooses a new next piece. Returns false, and ends the game, when
// the new piece does not fit.
func (g *Game) Spawn() bool {
	if g.phase == PhaseGameOver {
		return false
	}

	g.active = g.next
	g.x = g.grid.W / 2
	g.y = 0
	g.next = RandomPiece(g.rng, g.randomColors)
	g.pieces++

	if !g.grid.CanPlace(g.active.Shape, g.x, g.y) {
		g.phase = PhaseGameOver
		return false
	}
	g.phase = PhaseFalling
	return true
}

// Move shifts the active piece one cell. The state is unchanged and false is
// returned when the target position is blocked; a blocked DirDown means the
// piece has landed.
func (g *Game) Move(d Direction) bool {
	if g.phase != PhaseFalling {
		return false
	}
	dx, dy := d.Delta()
	if !g.grid.CanPlace(g.active.Shape, g.x+dx, g.y+dy) {
		return false
	}
	g.x += dx
	g.y += dy
	return true
}

// HardDrop lowers the active piece one row at a time until the next row is
// blocked. Returns the number of rows descended.
func (g *Game) HardDrop() int {
	if g.phase != PhaseFalling {
		return 0
	}
	rows := 0
	for g.grid.CanPlace(g.active.Shape, g.x, g.y+1) {
		g.y++
		rows++
	}
	return rows
}

// Rotate turns the active piece clockwise in place. A rotation that does
// not fit at the current anchor is rejected; no offset is attempted.
func (g *Game) Rotate() bool {
	if g.phase != PhaseFalling {
		return false
	}
	rotated := RotateClockwise(g.active.Shape)
	if !g.grid.CanPlace(rotated, g.x, g.y) {
		return false
	}
	g.active.Shape = rotated
	return true
}

// LockAndScore writes the active piece into the grid, clears complete rows,
// updates lines, level and score, then spawns the next piece.
// Returns the number of rows cleared.
func (g *Game) LockAndScore() int {
	if g.phase != PhaseFalling {
		return 0
	}
	g.phase = PhaseLocking
	g.grid.Lock(g.active.Shape, g.active.Color, g.x, g.y)

	cleared := g.grid.ClearFullRows()
	if cleared > 0 {
		g.lines += cleared
		g.score += lineClearPoints[min(cleared, len(lineClearPoints)-1)] * (g.Level() + 1)
	}

	g.phase = PhaseSpawning
	g.Spawn()
	return cleared
}

// Shadow returns the row where the active piece would come to rest if
// dropped straight down, and whether a ghost should be drawn there.
func (g *Game) Shadow() (int, bool) {
	if g.phase != PhaseFalling {
		return 0, false
	}
	y := Project(g.grid, g.active.Shape, g.x, g.y)
	return y, y != g.y
}

// Grid returns the playfield. Callers must treat it as read-only.
func (g *Game) Grid() *Grid { return g.grid }

// Active returns the falling piece.
func (g *Game) Active() Piece { return g.active }

// Position returns the anchor of the falling piece.
func (g *Game) Position() (x, y int) { return g.x, g.y }

// Next returns the preview piece.
func (g *Game) Next() Piece { return g.next }

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Lines returns the total number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Level is derived from cleared lines.
func (g *Game) Level() int { return g.speed.Level(g.lines) }

// FallingSpeed returns the interval between gravity steps at the current level.
func (g *Game) FallingSpeed() time.Duration { return g.speed.Interval(g.Level()) }

// Phase returns the lifecycle state.
func (g *Game) Phase() Phase { return g.phase }

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool { return g.phase == PhaseGameOver }
