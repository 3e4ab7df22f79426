package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Z levels for chrome layers. Content layers go between ZChrome and ZModal.
const (
	ZBackground = 0
	ZChrome     = 1
	ZModal      = 100
)

// ToolbarLayer renders content across the toolbar region.
func ToolbarLayer(content string, r Region, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(ZChrome).ID("toolbar")
}

// FooterLayer renders content across the footer region.
func FooterLayer(content string, r Region, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(ZChrome).ID("footer")
}

// Segments joins non-empty status segments with a box-drawing separator.
func Segments(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return " " + strings.Join(kept, "  │  ")
}

// ModalLayer renders content inside boxStyle and centers it on the terminal.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := max((termW-lipgloss.Width(rendered))/2, 0)
	cy := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(ZModal).ID("modal")
}

// FillLayer fills a region with spaces in the given style.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}
