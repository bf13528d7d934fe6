// Package engine runs a game in real time. It merges timed gravity with
// queued player commands into one sequence of state transitions and paints
// only what changed between frames.
package engine

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// DefaultPollTimeout bounds each wait on the input source.
const DefaultPollTimeout = 300 * time.Millisecond

// minWait keeps an overdue tick from turning the poll into a busy spin.
const minWait = time.Millisecond

// Reason tells why a loop stopped.
type Reason uint8

const (
	ReasonGameOver Reason = iota
	ReasonExit
	ReasonCancelled
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonGameOver:
		return "game_over"
	case ReasonExit:
		return "exit"
	case ReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished game.
type Result struct {
	Reason Reason
	Final  tetris.Snapshot
}

// Options configures a Loop. Zero values select defaults.
type Options struct {
	PollTimeout time.Duration
	Ghost       bool
	Logger      *log.Logger
	Clock       func() time.Time
}

// frameCell is what one board cell shows.
type frameCell struct {
	glyph string // empty means blank
	color core.Color
}

// Loop owns a game and is the only code that mutates it.
type Loop struct {
	game   *tetris.Game
	input  InputSource
	out    Renderer
	logger *log.Logger
	poll   time.Duration
	ghost  bool
	now    func() time.Time

	lastTick  time.Time
	forceTick bool // a hard drop locks on the same step

	frame     []frameCell
	next      []frameCell
	panel     Panel
	havePanel bool
}

// NewLoop creates a loop for game reading from input and painting to out.
func NewLoop(game *tetris.Game, input InputSource, out Renderer, opts Options) *Loop {
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = DefaultPollTimeout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	g := game.Grid()
	return &Loop{
		game:   game,
		input:  input,
		out:    out,
		logger: opts.Logger,
		poll:   opts.PollTimeout,
		ghost:  opts.Ghost,
		now:    opts.Clock,
		frame:  make([]frameCell, g.W*g.H),
		next:   make([]frameCell, g.W*g.H),
	}
}

// Run plays until the game ends, an exit command arrives or ctx is done.
// Every wait is bounded by the poll timeout, so cancellation is noticed
// within one poll.
func (l *Loop) Run(ctx context.Context) Result {
	l.lastTick = l.now()
	if l.game.Phase() == tetris.PhaseSpawning {
		l.game.Spawn()
		l.logSpawn()
	}
	l.draw()

	for {
		if l.game.IsOver() {
			return l.finish(ReasonGameOver)
		}
		if ctx.Err() != nil {
			return l.finish(ReasonCancelled)
		}
		if !l.Step() {
			return l.finish(ReasonExit)
		}
	}
}

// Step waits for at most one command, applies it, runs gravity when due and
// repaints. Returns false when the player asked to exit.
func (l *Loop) Step() bool {
	if cmd, ok := l.input.Next(l.wait()); ok {
		if cmd == CmdExit {
			return false
		}
		l.apply(cmd)
	}

	if l.forceTick || l.now().Sub(l.lastTick) >= l.game.FallingSpeed() {
		l.gravity()
	}

	l.draw()
	return true
}

// wait returns how long the next input poll may block: the poll timeout, cut
// short so the poll ends when the next gravity tick is due.
func (l *Loop) wait() time.Duration {
	until := l.game.FallingSpeed() - l.now().Sub(l.lastTick)
	if until >= l.poll {
		return l.poll
	}
	return max(until, minWait)
}

func (l *Loop) apply(cmd Command) {
	switch cmd {
	case CmdRotate:
		l.game.Rotate()
	case CmdMoveLeft, CmdMoveRight, CmdMoveDown:
		l.game.Move(commandDirection(cmd))
	case CmdDropDown:
		rows := l.game.HardDrop()
		l.logger.Debug("hard drop", "rows", rows)
		l.forceTick = true
	}
}

// gravity moves the piece down one row, locking it when it has landed.
func (l *Loop) gravity() {
	l.lastTick = l.now()
	l.forceTick = false

	if l.game.Move(tetris.DirDown) {
		return
	}

	level := l.game.Level()
	cleared := l.game.LockAndScore()
	if cleared > 0 {
		l.logger.Info("lines cleared", "rows", cleared, "lines", l.game.Lines(), "score", l.game.Score())
	}
	if l.game.Level() > level {
		l.logger.Info("level up", "level", l.game.Level(), "interval", l.game.FallingSpeed())
	}
	if l.game.IsOver() {
		l.logger.Info("game over", "score", l.game.Score(), "lines", l.game.Lines(), "level", l.game.Level())
		return
	}
	l.logSpawn()
}

func (l *Loop) logSpawn() {
	if l.game.IsOver() {
		return
	}
	l.logger.Debug("spawn", "piece", l.game.Active().Kind, "next", l.game.Next().Kind)
}

func (l *Loop) finish(reason Reason) Result {
	l.logger.Debug("loop stopped", "reason", reason)
	return Result{Reason: reason, Final: l.game.Snapshot()}
}

// draw composes the current frame and paints the difference to the last one.
func (l *Loop) draw() {
	g := l.game.Grid()
	for i, c := range g.Cells {
		if c.Filled {
			l.next[i] = frameCell{glyph: BlockGlyph, color: c.Color}
		} else {
			l.next[i] = frameCell{}
		}
	}

	if l.game.Phase() == tetris.PhaseFalling {
		piece := l.game.Active()
		x, y := l.game.Position()
		if l.ghost {
			if gy, ok := l.game.Shadow(); ok {
				l.stamp(piece.Shape, x, gy, frameCell{glyph: GhostGlyph, color: piece.Color})
			}
		}
		// The live piece wins where it overlaps its own ghost.
		l.stamp(piece.Shape, x, y, frameCell{glyph: BlockGlyph, color: piece.Color})
	}

	dirty := false
	for i, cell := range l.next {
		if cell == l.frame[i] {
			continue
		}
		col, row := i%g.W, i/g.W
		if cell.glyph == "" {
			l.out.ClearCell(col, row)
		} else {
			l.out.PaintCell(col, row, cell.color, cell.glyph)
		}
		l.frame[i] = cell
		dirty = true
	}

	panel := Panel{
		Score: l.game.Score(),
		Lines: l.game.Lines(),
		Level: l.game.Level(),
		Next:  l.game.Next(),
	}
	if !l.havePanel || !panel.Equal(l.panel) {
		l.out.PaintPanel(panel)
		l.panel = panel
		l.havePanel = true
		dirty = true
	}

	if dirty {
		l.out.Flush()
	}
}

func (l *Loop) stamp(s tetris.Shape, x, y int, cell frameCell) {
	w := l.game.Grid().W
	s.Cells(func(cx, cy int) {
		l.next[(y+cy)*w+x+cx] = cell
	})
}

func commandDirection(cmd Command) tetris.Direction {
	switch cmd {
	case CmdMoveLeft:
		return tetris.DirLeft
	case CmdMoveRight:
		return tetris.DirRight
	default:
		return tetris.DirDown
	}
}
