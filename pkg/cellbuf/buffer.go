// Package cellbuf provides a 2D character buffer with per-cell styling
// and run-merged Lipgloss rendering.
//
// Cells carry a rune and a StyleKey. Colors are supplied at render time
// as a map[StyleKey]lipgloss.Style, so one buffer layout can be drawn
// with different themes (the canvas grid and the tooltip body both use it).
//
// All runes are assumed to be single-width.
package cellbuf

import "image"

// StyleKey identifies a visual style. The caller maps keys to
// lipgloss.Style values at render time.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a Buffer of the given size, filled with spaces in the
// given default style. Negative sizes are clamped to zero.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w = max(w, 0)
	h = max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: defaultStyle}
		}
		b.Cells[y] = row
	}
	return b
}

// Bounds returns the buffer extent with its origin at (0, 0).
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell at (x, y), or a zero Cell when out of bounds.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.Cells[y][x]
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// dropped.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s starting at (x, y), one cell per rune. Runes that
// fall outside the buffer are skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	col := x
	for _, ch := range s {
		b.Set(col, y, ch, style)
		col++
	}
}

// SetLines writes each line on its own row starting at (x, y).
func (b *Buffer) SetLines(x, y int, lines []string, style StyleKey) {
	for i, line := range lines {
		b.SetString(x, y+i, line, style)
	}
}

// FillRect sets every cell of r (clipped to the buffer) to ch.
func (b *Buffer) FillRect(r image.Rectangle, ch rune, style StyleKey) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Cells[y][x] = Cell{Ch: ch, Style: style}
		}
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	b.FillRect(b.Bounds(), ' ', style)
}

// Crop returns a copy of the cells inside r, clipped to the buffer.
func (b *Buffer) Crop(r image.Rectangle) *Buffer {
	r = r.Intersect(b.Bounds())
	out := &Buffer{W: r.Dx(), H: r.Dy(), Cells: make([][]Cell, r.Dy())}
	for y := range out.Cells {
		row := make([]Cell, r.Dx())
		copy(row, b.Cells[r.Min.Y+y][r.Min.X:r.Max.X])
		out.Cells[y] = row
	}
	return out
}
