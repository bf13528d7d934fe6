package tetris

// Project returns the lowest row at which shape, anchored at (x, y), can
// rest when dropped straight down. (x, y) must be a legal placement.
//
// Each column of the shape is checked from its bottom-most filled cell; the
// piece stops at the first column that hits a block or the floor. Neither
// the grid nor the shape is modified.
func Project(g *Grid, s Shape, x, y int) int {
	drop := g.H
	for col := 0; col < s.Width(); col++ {
		bottom := -1
		for row := s.Height() - 1; row >= 0; row-- {
			if s.Filled(col, row) {
				bottom = row
				break
			}
		}
		if bottom < 0 {
			continue
		}

		gx, gy := x+col, y+bottom
		d := 0
		for gy+d+1 < g.H && !g.Cells[(gy+d+1)*g.W+gx].Filled {
			d++
		}
		drop = min(drop, d)
	}
	if drop == g.H {
		return y
	}
	return y + drop
}
