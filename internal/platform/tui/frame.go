package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/platform/layout"
)

// FrameMsg carries a finished, styled frame from the game loop to the model.
type FrameMsg string

// Renderer paints the game into a screen buffer owned by the game loop and
// hands each flushed frame to the Bubble Tea program.
// It implements engine.Renderer.
type Renderer struct {
	layout layout.Layout
	screen *core.Screen
	send   func(tea.Msg)
}

// NewRenderer creates a renderer with the static frame already drawn.
// send is usually (*tea.Program).Send.
func NewRenderer(l layout.Layout, send func(tea.Msg)) *Renderer {
	screen := core.NewScreen(l.Width(), l.Height())
	l.DrawFrame(screen)
	return &Renderer{layout: l, screen: screen, send: send}
}

// PaintCell draws a glyph in a board cell.
func (r *Renderer) PaintCell(col, row int, c core.Color, glyph string) {
	x, y := r.layout.CellOrigin(col, row)
	core.DrawString(r.screen, x, y, glyph, c)
}

// ClearCell blanks a board cell.
func (r *Renderer) ClearCell(col, row int) {
	x, y := r.layout.CellOrigin(col, row)
	for i := 0; i < layout.CellWidth; i++ {
		r.screen.SetCell(x+i, y, ' ', core.ColorDefault)
	}
}

// PaintPanel redraws the sidebar.
func (r *Renderer) PaintPanel(p engine.Panel) {
	r.layout.DrawPanel(r.screen, p)
}

// Flush renders the buffer and sends it to the program.
func (r *Renderer) Flush() {
	r.send(FrameMsg(RenderScreen(r.screen)))
}

// Screen returns the backing buffer.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}
