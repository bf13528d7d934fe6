// Package core provides fundamental types and utilities shared by the game
// engine and the terminal backends. It contains no external dependencies
// (especially no Bubble Tea or tcell) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Canvas is anything a rectangle of runes can be drawn onto.
// *Screen implements it, as do the terminal backends.
type Canvas interface {
	SetCell(x, y int, r rune, c Color)
}

// DrawBox draws a heavy box outline with an optional centered title,
// rendered as ┫title┣ in the top edge.
func DrawBox(dst Canvas, r Rect, title string, c Color) {
	dst.SetCell(r.X, r.Y, '┏', c)
	dst.SetCell(r.Right()-1, r.Y, '┓', c)
	dst.SetCell(r.X, r.Bottom()-1, '┗', c)
	dst.SetCell(r.Right()-1, r.Bottom()-1, '┛', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		dst.SetCell(x, r.Y, '━', c)
		dst.SetCell(x, r.Bottom()-1, '━', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		dst.SetCell(r.X, y, '┃', c)
		dst.SetCell(r.Right()-1, y, '┃', c)
	}

	if title == "" {
		return
	}
	label := []rune("┫" + title + "┣")
	start := r.X + (r.W-len(label))/2
	if start <= r.X {
		return
	}
	for i, ch := range label {
		dst.SetCell(start+i, r.Y, ch, c)
	}
}

// DrawString writes text horizontally starting at (x, y).
func DrawString(dst Canvas, x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		dst.SetCell(x+i, y, r, c)
		i++
	}
}
