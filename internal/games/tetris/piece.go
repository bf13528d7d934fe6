// Package tetris implements the falling-block puzzle rules: pieces, the
// playfield grid, movement and rotation, line clears, scoring and the ghost
// projection. The package is UI-agnostic and deterministic for a given seed.
package tetris

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindT Kind = iota
	KindZ
	KindS
	KindO
	KindI
	KindJ
	KindL
)

// KindCount is the number of canonical tetrominoes.
const KindCount = 7

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Shape is an immutable rectangular cell pattern.
// Cells are stored row-major: index = y*w + x.
type Shape struct {
	w, h  int
	cells []bool
}

// NewShape builds a shape from rows of 0/1 values.
// Panics on an empty or ragged matrix.
func NewShape(rows [][]int) Shape {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("tetris: empty shape")
	}
	w, h := len(rows[0]), len(rows)
	cells := make([]bool, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			panic(fmt.Sprintf("tetris: ragged shape, row %d has %d cells, expected %d", y, len(row), w))
		}
		for _, v := range row {
			cells = append(cells, v != 0)
		}
	}
	return Shape{w: w, h: h, cells: cells}
}

// Width returns the number of columns in the bounding box.
func (s Shape) Width() int { return s.w }

// Height returns the number of rows in the bounding box.
func (s Shape) Height() int { return s.h }

// Filled reports whether the cell at (x, y) inside the bounding box is set.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		panic(fmt.Sprintf("tetris: shape cell (%d, %d) outside %dx%d", x, y, s.w, s.h))
	}
	return s.cells[y*s.w+x]
}

// Cells calls fn for every filled cell, in row-major order.
func (s Shape) Cells(fn func(x, y int)) {
	for i, filled := range s.cells {
		if filled {
			fn(i%s.w, i/s.w)
		}
	}
}

// Equal reports whether two shapes have the same dimensions and pattern.
func (s Shape) Equal(other Shape) bool {
	if s.w != other.w || s.h != other.h {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the shape as rows of '#' and '.' separated by '/'.
func (s Shape) String() string {
	var sb strings.Builder
	for y := 0; y < s.h; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		for x := 0; x < s.w; x++ {
			if s.cells[y*s.w+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// RotateClockwise returns the shape turned 90° clockwise: the h×w matrix
// becomes w×h. The receiver is not modified.
func RotateClockwise(s Shape) Shape {
	// Reverse the row order, then transpose.
	r := Shape{w: s.h, h: s.w, cells: make([]bool, len(s.cells))}
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			r.cells[y*r.w+x] = s.cells[(s.h-1-x)*s.w+y]
		}
	}
	return r
}

// Piece is a shape together with its display color.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
}

var canonicalShapes = [KindCount]Shape{
	KindT: NewShape([][]int{
		{0, 1, 0},
		{1, 1, 1},
	}),
	KindZ: NewShape([][]int{
		{1, 1, 0},
		{0, 1, 1},
	}),
	KindS: NewShape([][]int{
		{0, 1, 1},
		{1, 1, 0},
	}),
	KindO: NewShape([][]int{
		{1, 1},
		{1, 1},
	}),
	KindI: NewShape([][]int{
		{1, 1, 1, 1},
	}),
	KindJ: NewShape([][]int{
		{1, 0, 0},
		{1, 1, 1},
	}),
	KindL: NewShape([][]int{
		{0, 0, 1},
		{1, 1, 1},
	}),
}

var kindColors = [KindCount]core.Color{
	KindT: core.ColorMagenta,
	KindZ: core.ColorRed,
	KindS: core.ColorGreen,
	KindO: core.ColorYellow,
	KindI: core.ColorCyan,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

// CanonicalShape returns the spawn orientation of a kind.
func CanonicalShape(k Kind) Shape {
	return canonicalShapes[k]
}

// KindColor returns the fixed display color of a kind.
func KindColor(k Kind) core.Color {
	return kindColors[k]
}

// NewPiece returns the spawn-orientation piece of a kind in its fixed color.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, Shape: canonicalShapes[k], Color: kindColors[k]}
}

// RandomPiece picks one of the seven tetrominoes uniformly.
// With randomColors set the color is drawn from the ANSI palette instead of
// the kind's fixed color.
func RandomPiece(rng *rand.Rand, randomColors bool) Piece {
	p := NewPiece(Kind(rng.Intn(KindCount)))
	if randomColors {
		p.Color = core.RandomColor(rng)
	}
	return p
}
