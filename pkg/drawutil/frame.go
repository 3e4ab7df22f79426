package drawutil

import (
	"image"

	"github.com/wesen/tipplace/pkg/cellbuf"
	"github.com/wesen/tipplace/pkg/placement"
)

// Frame is the set of runes used for a box outline.
type Frame struct {
	Top, Bottom, Left, Right                   rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
}

// RoundedFrame is a light outline with rounded corners.
var RoundedFrame = Frame{
	Top: '─', Bottom: '─', Left: '│', Right: '│',
	TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
}

// DrawFrame outlines r with f. Frames narrower or shorter than 2 cells
// are not drawn.
func DrawFrame(buf *cellbuf.Buffer, r image.Rectangle, f Frame, style cellbuf.StyleKey) {
	if r.Dx() < 2 || r.Dy() < 2 {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	for x := x0 + 1; x < x1; x++ {
		buf.Set(x, y0, f.Top, style)
		buf.Set(x, y1, f.Bottom, style)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.Set(x0, y, f.Left, style)
		buf.Set(x1, y, f.Right, style)
	}
	buf.Set(x0, y0, f.TopLeft, style)
	buf.Set(x1, y0, f.TopRight, style)
	buf.Set(x0, y1, f.BottomLeft, style)
	buf.Set(x1, y1, f.BottomRight, style)
}

// Pointer returns the arrow rune and its cell on the frame of a w×h
// tooltip drawn with orientation o. The arrow sits on the edge that faces
// the trigger: top or bottom for the vertical family, centered unless
// flipped, and left or right otherwise. ok is false for None or frames
// too small to carry it.
func Pointer(o placement.Orientation, w, h int) (ch rune, at image.Point, ok bool) {
	if !o.Valid() || w < 3 || h < 3 {
		return 0, image.Point{}, false
	}

	if !o.Vertical() {
		if o == placement.East {
			return '▶', image.Pt(w-1, h/2), true
		}
		return '◀', image.Pt(0, h/2), true
	}

	// The North family sits below the trigger and precedes its mirror in
	// cascade order.
	ch, y := '▼', h-1
	if o < o.Mirror() {
		ch, y = '▲', 0
	}

	x := w / 2
	if o.Flip() {
		// East flips sit left of the trigger: the arrow hugs the right corner.
		x = 1
		if o == placement.NorthEastFlip || o == placement.SouthEastFlip {
			x = w - 2
		}
	}
	return ch, image.Pt(x, y), true
}

// DrawPointer places the orientation arrow on a frame whose top-left
// corner is origin.
func DrawPointer(buf *cellbuf.Buffer, origin image.Point, o placement.Orientation, w, h int, style cellbuf.StyleKey) {
	ch, at, ok := Pointer(o, w, h)
	if !ok {
		return
	}
	p := origin.Add(at)
	buf.Set(p.X, p.Y, ch, style)
}
