// Package layout positions the board, the next-piece preview and the stats
// box on a character canvas. Both terminal backends draw through it.
package layout

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

const (
	// CellWidth is the number of terminal columns per board cell.
	CellWidth = 2
	// Margin separates the board from the sidebar.
	Margin = 2
	// SidebarWidth is the inner width of the sidebar boxes.
	SidebarWidth = 16

	nextBoxHeight  = 6
	statsBoxHeight = 5
)

// Layout holds the screen geometry for a board of BoardW×BoardH cells.
type Layout struct {
	BoardW int
	BoardH int
}

// New returns the layout for a board size.
func New(boardW, boardH int) Layout {
	return Layout{BoardW: boardW, BoardH: boardH}
}

// Board returns the rectangle of the board including its border.
func (l Layout) Board() core.Rect {
	return core.NewRect(0, 0, l.BoardW*CellWidth+2, l.BoardH+2)
}

// NextBox returns the rectangle of the preview box including its border.
func (l Layout) NextBox() core.Rect {
	return core.NewRect(l.Board().Right()+Margin, 0, SidebarWidth+2, nextBoxHeight)
}

// StatsBox returns the rectangle of the score box including its border.
func (l Layout) StatsBox() core.Rect {
	next := l.NextBox()
	return core.NewRect(next.X, next.Bottom(), SidebarWidth+2, statsBoxHeight)
}

// Width returns the number of columns the whole layout needs.
func (l Layout) Width() int {
	return l.NextBox().Right()
}

// Height returns the number of rows the whole layout needs.
func (l Layout) Height() int {
	return max(l.Board().Bottom(), l.StatsBox().Bottom())
}

// CellOrigin maps a board cell to the screen position of its left column.
func (l Layout) CellOrigin(col, row int) (x, y int) {
	return 1 + col*CellWidth, 1 + row
}

// DrawFrame draws the static borders and labels.
func (l Layout) DrawFrame(dst core.Canvas) {
	core.DrawBox(dst, l.Board(), "Tetris", core.ColorDefault)
	core.DrawBox(dst, l.NextBox(), "Next", core.ColorDefault)
	core.DrawBox(dst, l.StatsBox(), "", core.ColorDefault)
	l.drawStats(dst, engine.Panel{})
}

// DrawPanel redraws the preview piece and the counters.
func (l Layout) DrawPanel(dst core.Canvas, p engine.Panel) {
	next := l.NextBox()
	for y := next.Y + 1; y < next.Bottom()-1; y++ {
		for x := next.X + 1; x < next.Right()-1; x++ {
			dst.SetCell(x, y, ' ', core.ColorDefault)
		}
	}

	s := p.Next.Shape
	if s.Width() > 0 {
		offset := next.X + 3 + (SidebarWidth-3)/2 - s.Width()
		s.Cells(func(cx, cy int) {
			core.DrawString(dst, offset+cx*CellWidth, next.Y+2+cy, engine.BlockGlyph, p.Next.Color)
		})
	}

	l.drawStats(dst, p)
}

func (l Layout) drawStats(dst core.Canvas, p engine.Panel) {
	stats := l.StatsBox()
	rows := []struct {
		label string
		value int
	}{
		{"Score", p.Score},
		{"Lines", p.Lines},
		{"Level", p.Level},
	}
	for i, r := range rows {
		core.DrawString(dst, stats.X+1, stats.Y+1+i, fmt.Sprintf(" %s: %07d ", r.label, r.value), core.ColorDefault)
	}
}
