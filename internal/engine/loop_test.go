package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// fakeClock is advanced by scriptedInput whenever a poll times out.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

// idle stands for a poll that times out.
const idle = CmdNone

// scriptedInput replays commands; an exhausted script exits.
type scriptedInput struct {
	clock  *fakeClock
	script []Command
}

func (s *scriptedInput) Next(timeout time.Duration) (Command, bool) {
	if len(s.script) == 0 {
		return CmdExit, true
	}
	cmd := s.script[0]
	s.script = s.script[1:]
	if cmd == idle {
		s.clock.t = s.clock.t.Add(timeout)
		return CmdNone, false
	}
	return cmd, true
}

type painted struct {
	color core.Color
	glyph string
}

// recorder keeps the board as the loop painted it.
type recorder struct {
	cells   map[[2]int]painted
	panels  []Panel
	paints  int
	clears  int
	flushes int
}

func newRecorder() *recorder {
	return &recorder{cells: make(map[[2]int]painted)}
}

func (r *recorder) PaintCell(col, row int, c core.Color, glyph string) {
	r.cells[[2]int{col, row}] = painted{color: c, glyph: glyph}
	r.paints++
}

func (r *recorder) ClearCell(col, row int) {
	delete(r.cells, [2]int{col, row})
	r.clears++
}

func (r *recorder) PaintPanel(p Panel) { r.panels = append(r.panels, p) }

func (r *recorder) Flush() { r.flushes++ }

func (r *recorder) count(glyph string) int {
	n := 0
	for _, c := range r.cells {
		if c.glyph == glyph {
			n++
		}
	}
	return n
}

type harness struct {
	game  *tetris.Game
	input *scriptedInput
	out   *recorder
	loop  *Loop
}

func newHarness(t *testing.T, w, h int, ghost bool, script ...Command) *harness {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	game := tetris.New(tetris.Options{
		Width:  w,
		Height: h,
		Speed:  config.DefaultTetrisConfig().Speed,
		Seed:   1,
	})
	input := &scriptedInput{clock: clock, script: script}
	out := newRecorder()
	loop := NewLoop(game, input, out, Options{
		PollTimeout: 100 * time.Millisecond,
		Ghost:       ghost,
		Clock:       clock.Now,
	})
	return &harness{game: game, input: input, out: out, loop: loop}
}

func TestLoopExit(t *testing.T) {
	h := newHarness(t, 15, 30, false, CmdExit, CmdMoveLeft)
	res := h.loop.Run(context.Background())

	assert.Equal(t, ReasonExit, res.Reason)
	assert.Len(t, h.input.script, 1, "commands after exit are not read")
	assert.Equal(t, tetris.PhaseFalling, res.Final.Phase)
	assert.Equal(t, 1, res.Final.Pieces)
	assert.Equal(t, 4, h.out.count(BlockGlyph))
	require.Len(t, h.out.panels, 1)
	assert.Equal(t, 0, h.out.panels[0].Score)
	assert.Equal(t, h.game.Next().Kind, h.out.panels[0].Next.Kind)
}

func TestLoopGravity(t *testing.T) {
	script := make([]Command, 8)
	for i := range script {
		script[i] = idle
	}
	h := newHarness(t, 15, 30, false, script...)
	res := h.loop.Run(context.Background())

	// 400ms falling speed, 100ms polls: one row every four polls
	assert.Equal(t, 2, res.Final.Y)
	assert.Equal(t, 0, res.Final.Filled)
}

// idleUntil times out every poll until the clock reaches deadline, then exits.
type idleUntil struct {
	clock    *fakeClock
	deadline time.Time
	longest  time.Duration
}

func (s *idleUntil) Next(timeout time.Duration) (Command, bool) {
	if !s.clock.t.Before(s.deadline) {
		return CmdExit, true
	}
	s.longest = max(s.longest, timeout)
	s.clock.t = s.clock.t.Add(timeout)
	return CmdNone, false
}

func TestLoopGravityCadence(t *testing.T) {
	speed := config.DefaultTetrisConfig().Speed
	const elapsed = 1200 * time.Millisecond

	tests := []struct {
		name  string
		level int
	}{
		{"level 0, slower than the poll", 0},
		{"level 5, faster than the poll", 5},
		{"level 7, top speed", 7},
		{"level 9, clamped to top speed", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := speed.Interval(tt.level)
			// Start the curve at this level's interval; no lines are cleared here.
			levelSpeed := speed
			levelSpeed.Start = interval

			start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			clock := &fakeClock{t: start}
			game := tetris.New(tetris.Options{Width: 15, Height: 30, Speed: levelSpeed, Seed: 1})
			input := &idleUntil{clock: clock, deadline: start.Add(elapsed)}
			loop := NewLoop(game, input, newRecorder(), Options{
				PollTimeout: DefaultPollTimeout,
				Clock:       clock.Now,
			})

			res := loop.Run(context.Background())

			require.Equal(t, ReasonExit, res.Reason)
			assert.Equal(t, elapsed, clock.t.Sub(start))
			assert.Equal(t, int(elapsed/interval), res.Final.Y, "one row per %s", interval)
			assert.LessOrEqual(t, input.longest, DefaultPollTimeout)
		})
	}
}

func TestLoopWaitEndsAtNextTick(t *testing.T) {
	h := newHarness(t, 15, 30, false)
	h.loop.lastTick = h.input.clock.t

	assert.Equal(t, 100*time.Millisecond, h.loop.wait(), "capped by the poll timeout")

	h.input.clock.t = h.loop.lastTick.Add(350 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, h.loop.wait(), "ends when gravity is due")

	h.input.clock.t = h.loop.lastTick.Add(time.Second)
	assert.Equal(t, minWait, h.loop.wait(), "an overdue tick never spins")
}

func TestLoopNoChangeNoPaint(t *testing.T) {
	h := newHarness(t, 15, 30, true, idle, idle)
	h.loop.Run(context.Background())

	assert.Equal(t, 1, h.out.flushes, "only the first frame is flushed")
	assert.Equal(t, 0, h.out.clears)
	assert.Len(t, h.out.panels, 1)
}

func TestLoopMoveAndRotate(t *testing.T) {
	h := newHarness(t, 15, 30, false, CmdMoveLeft, CmdMoveLeft, CmdMoveRight, CmdMoveDown)
	res := h.loop.Run(context.Background())
	assert.Equal(t, 6, res.Final.X)
	assert.Equal(t, 1, res.Final.Y)

	h = newHarness(t, 15, 30, false, CmdRotate)
	want := tetris.RotateClockwise(h.game.Next().Shape).String()
	res = h.loop.Run(context.Background())
	assert.Equal(t, want, res.Final.Shape)
}

func TestLoopMovesRepaintOnlyChangedCells(t *testing.T) {
	h := newHarness(t, 15, 30, false, CmdMoveDown)
	h.loop.Run(context.Background())

	// Each board cell change is one paint or clear; the piece never loses
	// more cells than it has
	assert.Equal(t, 4, h.out.count(BlockGlyph))
	assert.LessOrEqual(t, h.out.clears, 4)
	assert.Equal(t, 2, h.out.flushes)
}

func TestLoopHardDropLocksImmediately(t *testing.T) {
	h := newHarness(t, 15, 30, false, CmdDropDown, CmdMoveLeft)
	first := h.game.Next()
	res := h.loop.Run(context.Background())

	assert.Equal(t, ReasonExit, res.Reason)
	assert.Equal(t, 2, res.Final.Pieces, "dropped piece locked and the next spawned")
	assert.Equal(t, 4, res.Final.Filled)
	assert.Equal(t, 6, res.Final.X, "the move applied to the new piece")

	// Four locked cells at the bottom plus the new piece
	assert.Equal(t, 8, h.out.count(BlockGlyph))
	for pos, c := range h.out.cells {
		if pos[1] >= 28 {
			assert.Equal(t, first.Color, c.color)
		}
	}

	require.NotEmpty(t, h.out.panels)
	assert.Equal(t, h.game.Next().Kind, h.out.panels[len(h.out.panels)-1].Next.Kind)
}

func TestLoopGhost(t *testing.T) {
	h := newHarness(t, 15, 30, true, CmdExit)
	h.loop.Run(context.Background())
	assert.Equal(t, 4, h.out.count(GhostGlyph))

	h = newHarness(t, 15, 30, false, CmdExit)
	h.loop.Run(context.Background())
	assert.Equal(t, 0, h.out.count(GhostGlyph))
}

func TestLoopGhostClearedWhenResting(t *testing.T) {
	h := newHarness(t, 15, 30, true, CmdExit)
	g := h.game
	g.Spawn()
	g.HardDrop()
	h.loop.Run(context.Background())

	assert.Equal(t, 0, h.out.count(GhostGlyph), "no ghost under a resting piece")
	assert.Equal(t, 4, h.out.count(BlockGlyph))
}

func TestLoopGameOver(t *testing.T) {
	script := make([]Command, 20)
	for i := range script {
		script[i] = CmdDropDown
	}
	h := newHarness(t, 8, 4, false, script...)
	res := h.loop.Run(context.Background())

	assert.Equal(t, ReasonGameOver, res.Reason)
	assert.Equal(t, tetris.PhaseGameOver, res.Final.Phase)
	assert.NotEmpty(t, h.input.script, "loop stops reading input once the game is over")
}

func TestLoopCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := newHarness(t, 15, 30, false, CmdMoveLeft)
	res := h.loop.Run(ctx)

	assert.Equal(t, ReasonCancelled, res.Reason)
	assert.Len(t, h.input.script, 1)
	assert.Equal(t, 4, h.out.count(BlockGlyph), "first frame is still drawn")
}

func TestLoopWithQueue(t *testing.T) {
	game := tetris.New(tetris.Options{Width: 15, Height: 30, Speed: config.DefaultTetrisConfig().Speed, Seed: 5})
	q := NewQueue()
	defer q.Close()
	out := newRecorder()
	loop := NewLoop(game, q, out, Options{PollTimeout: 50 * time.Millisecond})

	q.Push(CmdMoveLeft)
	q.Push(CmdMoveLeft)
	q.Push(CmdExit)

	res := loop.Run(context.Background())
	assert.Equal(t, ReasonExit, res.Reason)
	assert.Equal(t, 5, res.Final.X)
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "game_over", ReasonGameOver.String())
	assert.Equal(t, "exit", ReasonExit.String())
	assert.Equal(t, "cancelled", ReasonCancelled.String())
}
