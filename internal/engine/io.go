package engine

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Glyphs used to paint one board cell. Each is two terminal columns wide.
const (
	BlockGlyph = "██"
	GhostGlyph = "▓▓"
)

// InputSource delivers player commands in arrival order.
type InputSource interface {
	// Next waits up to timeout for a command. ok is false when none arrived;
	// that is the normal idle path, not an error.
	Next(timeout time.Duration) (cmd Command, ok bool)
}

// Renderer is the paint surface for the board and the sidebar.
// Coordinates are board cells, always within the grid.
type Renderer interface {
	PaintCell(col, row int, c core.Color, glyph string)
	ClearCell(col, row int)
	PaintPanel(p Panel)
	// Flush makes everything painted since the last Flush visible.
	Flush()
}

// Panel is the sidebar content: progression counters and the next piece.
type Panel struct {
	Score int
	Lines int
	Level int
	Next  tetris.Piece
}

// Equal reports whether two panels would display the same thing.
func (p Panel) Equal(o Panel) bool {
	return p.Score == o.Score &&
		p.Lines == o.Lines &&
		p.Level == o.Level &&
		p.Next.Kind == o.Next.Kind &&
		p.Next.Color == o.Next.Color &&
		p.Next.Shape.Equal(o.Next.Shape)
}
