package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Cell is one playfield position. An empty cell always has ColorDefault.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Grid is the playfield of locked blocks.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Cell
}

// NewGrid creates an empty grid. Panics on non-positive dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("tetris: invalid grid size %dx%d", w, h))
	}
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
}

// InBounds returns true if (x, y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y). Panics when out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("tetris: cell (%d, %d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return g.Cells[y*g.W+x]
}

// IsOccupied reports whether a locked block sits at (x, y).
// Panics when out of bounds; callers validate with CanPlace first.
func (g *Grid) IsOccupied(x, y int) bool {
	return g.At(x, y).Filled
}

// CanPlace reports whether every filled cell of shape, anchored with its
// top-left corner at (x, y), is on the board and free.
func (g *Grid) CanPlace(s Shape, x, y int) bool {
	if x < 0 || y < 0 || x+s.Width() > g.W || y+s.Height() > g.H {
		return false
	}
	for i, filled := range s.cells {
		if filled && g.Cells[(y+i/s.w)*g.W+x+i%s.w].Filled {
			return false
		}
	}
	return true
}

// Lock writes the filled cells of shape into the grid with the given color.
// The placement is not re-validated.
func (g *Grid) Lock(s Shape, c core.Color, x, y int) {
	s.Cells(func(cx, cy int) {
		g.Cells[(y+cy)*g.W+x+cx] = Cell{Filled: true, Color: c}
	})
}

// rowFull reports whether every cell of row y is filled.
func (g *Grid) rowFull(y int) bool {
	for _, cell := range g.Cells[y*g.W : (y+1)*g.W] {
		if !cell.Filled {
			return false
		}
	}
	return true
}

// ClearFullRows removes every complete row, compacting the rows above it
// downwards and filling the top with empty rows. Returns the number removed.
func (g *Grid) ClearFullRows() int {
	// Walk bottom-up, copying each surviving row to the next write slot.
	write := g.H - 1
	for read := g.H - 1; read >= 0; read-- {
		if g.rowFull(read) {
			continue
		}
		if write != read {
			copy(g.Cells[write*g.W:(write+1)*g.W], g.Cells[read*g.W:(read+1)*g.W])
		}
		write--
	}

	cleared := write + 1
	clear(g.Cells[:cleared*g.W])
	return cleared
}

// FilledCount returns the number of filled cells in the grid.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
