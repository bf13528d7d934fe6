// Package tcellterm is the tcell backend. A Term paints the game straight
// onto a tcell screen and runs a listener that turns key events into
// queued commands.
package tcellterm

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/layout"
)

// palette maps core.Color to tcell colors.
var palette = [...]tcell.Color{
	core.ColorDefault:       tcell.ColorDefault,
	core.ColorRed:           tcell.PaletteColor(1),
	core.ColorGreen:         tcell.PaletteColor(2),
	core.ColorYellow:        tcell.PaletteColor(3),
	core.ColorBlue:          tcell.PaletteColor(4),
	core.ColorMagenta:       tcell.PaletteColor(5),
	core.ColorCyan:          tcell.PaletteColor(6),
	core.ColorWhite:         tcell.PaletteColor(7),
	core.ColorBrightRed:     tcell.PaletteColor(9),
	core.ColorBrightGreen:   tcell.PaletteColor(10),
	core.ColorBrightYellow:  tcell.PaletteColor(11),
	core.ColorBrightBlue:    tcell.PaletteColor(12),
	core.ColorBrightMagenta: tcell.PaletteColor(13),
	core.ColorBrightCyan:    tcell.PaletteColor(14),
	core.ColorBrightWhite:   tcell.PaletteColor(15),
	core.ColorOrange:        tcell.ColorOrange,
	core.ColorGray:          tcell.PaletteColor(8),
}

// Style returns the tcell style for a color.
func Style(c core.Color) tcell.Style {
	if int(c) < len(palette) {
		return tcell.StyleDefault.Foreground(palette[c])
	}
	return tcell.StyleDefault
}

// Term implements engine.Renderer on a tcell screen.
type Term struct {
	screen tcell.Screen
	layout layout.Layout
	queue  *engine.Queue

	quit chan struct{}
	done chan struct{}
}

// New creates a Term on an initialized screen. Key presses are pushed to queue
// once Start is called.
func New(screen tcell.Screen, l layout.Layout, queue *engine.Queue) *Term {
	return &Term{
		screen: screen,
		layout: l,
		queue:  queue,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start draws the static frame and starts the input listener.
func (t *Term) Start() {
	t.screen.HideCursor()
	t.screen.Clear()
	t.layout.DrawFrame(t)
	t.screen.Show()

	events := make(chan tcell.Event)
	go t.screen.ChannelEvents(events, t.quit)
	go t.listen(events)
}

// Stop ends the input listener and waits for it to exit.
func (t *Term) Stop() {
	close(t.quit)
	<-t.done
}

func (t *Term) listen(events <-chan tcell.Event) {
	defer close(t.done)
	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if cmd, ok := CommandForKey(ev); ok {
				t.queue.Push(cmd)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// SetCell implements core.Canvas.
func (t *Term) SetCell(x, y int, r rune, c core.Color) {
	t.screen.SetContent(x, y, r, nil, Style(c))
}

// PaintCell draws a glyph in a board cell.
func (t *Term) PaintCell(col, row int, c core.Color, glyph string) {
	x, y := t.layout.CellOrigin(col, row)
	core.DrawString(t, x, y, glyph, c)
}

// ClearCell blanks a board cell.
func (t *Term) ClearCell(col, row int) {
	x, y := t.layout.CellOrigin(col, row)
	for i := 0; i < layout.CellWidth; i++ {
		t.screen.SetContent(x+i, y, ' ', nil, tcell.StyleDefault)
	}
}

// PaintPanel redraws the sidebar.
func (t *Term) PaintPanel(p engine.Panel) {
	t.layout.DrawPanel(t, p)
}

// Flush shows the changes made since the last call.
func (t *Term) Flush() {
	t.screen.Show()
}

// CommandForKey maps a key event to a game command.
func CommandForKey(ev *tcell.EventKey) (engine.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.CmdMoveLeft, true
	case tcell.KeyRight:
		return engine.CmdMoveRight, true
	case tcell.KeyDown:
		return engine.CmdMoveDown, true
	case tcell.KeyUp:
		return engine.CmdRotate, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.CmdExit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return engine.CmdDropDown, true
		case 'q':
			return engine.CmdExit, true
		}
	}
	return engine.CmdNone, false
}

// Play runs one game on an initialized screen. The listener is stopped
// before Play returns; the caller still owns the screen.
func Play(ctx context.Context, screen tcell.Screen, game *tetris.Game, opts engine.Options) engine.Result {
	g := game.Grid()
	queue := engine.NewQueue()
	defer queue.Close()

	t := New(screen, layout.New(g.W, g.H), queue)
	t.Start()
	defer t.Stop()

	return engine.NewLoop(game, queue, t, opts).Run(ctx)
}

// Run plays one game on the controlling terminal.
func Run(ctx context.Context, game *tetris.Game, opts engine.Options) (engine.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return engine.Result{}, fmt.Errorf("tcell: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return engine.Result{}, fmt.Errorf("tcell: init screen: %w", err)
	}
	defer screen.Fini()

	return Play(ctx, screen, game, opts), nil
}
