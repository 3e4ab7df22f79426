package tipui

import (
	"image"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/wesen/tipplace/pkg/cellbuf"
	"github.com/wesen/tipplace/pkg/drawutil"
	"github.com/wesen/tipplace/pkg/placement"
)

// cellbuf style keys for the tooltip body.
const (
	tipBody    cellbuf.StyleKey = 0
	tipFrame   cellbuf.StyleKey = 1
	tipText    cellbuf.StyleKey = 2
	tipPointer cellbuf.StyleKey = 3
)

var tipStyles = map[cellbuf.StyleKey]lipgloss.Style{
	tipBody:    lipgloss.NewStyle().Background(tipBG),
	tipFrame:   lipgloss.NewStyle().Foreground(tipBorder).Background(tipBG),
	tipText:    lipgloss.NewStyle().Foreground(tipFG).Background(tipBG),
	tipPointer: lipgloss.NewStyle().Foreground(tipArrow).Background(tipBG).Bold(true),
}

// Surface is the terminal rendering of the tooltip. Content is fixed at
// creation; the controller only changes orientation, position and
// visibility.
type Surface struct {
	lines       []string
	w, h        int
	orientation placement.Orientation
	top, left   float64
	positioned  bool
	visible     bool
}

// NewSurface wraps content at maxWidth columns inside a one-cell frame
// with one column of horizontal padding.
func NewSurface(content string, maxWidth int) *Surface {
	wrapped := ansi.Wrap(strings.TrimSpace(content), maxWidth, "")
	lines := strings.Split(wrapped, "\n")
	inner := 0
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
		inner = max(inner, lipgloss.Width(lines[i]))
	}
	return &Surface{
		lines: lines,
		w:     inner + 4,
		h:     len(lines) + 2,
	}
}

// Measure implements tooltip.Surface.
func (s *Surface) Measure() placement.Size {
	return placement.SizeFromPoint(image.Pt(s.w, s.h))
}

// SetOrientation implements tooltip.Surface.
func (s *Surface) SetOrientation(o placement.Orientation) { s.orientation = o }

// ClearOrientation implements tooltip.Surface.
func (s *Surface) ClearOrientation() { s.orientation = placement.None }

// SetPosition implements tooltip.Surface.
func (s *Surface) SetPosition(top, left float64) {
	s.top, s.left, s.positioned = top, left, true
}

// ClearPosition implements tooltip.Surface.
func (s *Surface) ClearPosition() {
	s.top, s.left, s.positioned = 0, 0, false
}

// Show implements tooltip.Surface.
func (s *Surface) Show() { s.visible = true }

// Hide implements tooltip.Surface.
func (s *Surface) Hide() { s.visible = false }

// Visible reports whether the tooltip is currently shown.
func (s *Surface) Visible() bool { return s.visible }

// Orientation returns the applied orientation, or None.
func (s *Surface) Orientation() placement.Orientation { return s.orientation }

// Bounds returns the tooltip rectangle in screen cells. Fractional
// offsets (half-cell centering) are floored.
func (s *Surface) Bounds() image.Rectangle {
	x := int(math.Floor(s.left))
	y := int(math.Floor(s.top))
	return image.Rect(x, y, x+s.w, y+s.h)
}

// draw renders the full tooltip into a fresh buffer.
func (s *Surface) draw() *cellbuf.Buffer {
	buf := cellbuf.New(s.w, s.h, tipBody)
	drawutil.DrawFrame(buf, buf.Bounds(), drawutil.RoundedFrame, tipFrame)
	buf.SetLines(2, 1, s.lines, tipText)
	drawutil.DrawPointer(buf, image.Point{}, s.orientation, s.w, s.h, tipPointer)
	return buf
}

// Layer returns the tooltip as a compositor layer clipped to screen, or
// nil when hidden or entirely off screen.
func (s *Surface) Layer(screen image.Rectangle) *lipgloss.Layer {
	if !s.visible || !s.positioned {
		return nil
	}
	bounds := s.Bounds()
	vis := bounds.Intersect(screen)
	if vis.Empty() {
		return nil
	}
	buf := s.draw().Crop(vis.Sub(bounds.Min))
	return lipgloss.NewLayer(buf.Render(tipStyles)).
		X(vis.Min.X).Y(vis.Min.Y).Z(zTooltip).
		ID("tooltip")
}

// Preview renders a tooltip with the pointer for orientation o, outside
// of any screen.
func Preview(content string, maxWidth int, o placement.Orientation) string {
	s := NewSurface(content, maxWidth)
	s.SetOrientation(o)
	return s.draw().Render(tipStyles)
}
