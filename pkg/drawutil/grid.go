// Package drawutil draws canvas decorations and tooltip frames into a
// cellbuf.Buffer.
package drawutil

import "github.com/wesen/tipplace/pkg/cellbuf"

// DrawGrid puts a dot ('·') on every cell whose offset position is a
// multiple of the spacing on both axes. Offsets let the grid stay fixed
// while the buffer origin moves.
func DrawGrid(buf *cellbuf.Buffer, offX, offY, spacingX, spacingY int, style cellbuf.StyleKey) {
	for r := 0; r < buf.H; r++ {
		if mod(r+offY, spacingY) != 0 {
			continue
		}
		for c := 0; c < buf.W; c++ {
			if mod(c+offX, spacingX) == 0 {
				buf.Set(c, r, '·', style)
			}
		}
	}
}

// mod returns a non-negative modulus (Go's % can return negative for negative operands).
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
