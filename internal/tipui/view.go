package tipui

import (
	"fmt"
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/tipplace/pkg/cellbuf"
	"github.com/wesen/tipplace/pkg/drawutil"
	"github.com/wesen/tipplace/pkg/tealayout"
	"github.com/wesen/tipplace/pkg/triggers"
)

// cellbuf style keys for the canvas background.
const (
	styleBG   cellbuf.StyleKey = 0
	styleGrid cellbuf.StyleKey = 1
)

var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:   bgStyle,
	styleGrid: lipgloss.NewStyle().Foreground(gridColor).Background(colorBG),
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	canvas := layout.Get("canvas")

	layers := []*lipgloss.Layer{
		tealayout.FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", tealayout.ZBackground),
		tealayout.FillLayer(layout.Get("footer"), ftStyle, "footer-bg", tealayout.ZBackground),
		buildGridLayer(canvas.Rect),
		tealayout.ToolbarLayer(m.toolbarContent(), layout.Get("toolbar"), tbStyle),
		tealayout.FooterLayer(m.footerContent(), layout.Get("footer"), ftStyle),
	}
	layers = append(layers, buildTriggerLayers(m.Triggers.All(), m.Active, m.Selected)...)

	if s := m.Surface(); s != nil {
		if l := s.Layer(m.screen()); l != nil {
			layers = append(layers, l)
		}
	}
	if m.EditOpen {
		layers = append(layers, buildEditModalLayer(m))
	}

	comp := lipgloss.NewCompositor(layers...)
	out := lipgloss.NewCanvas(m.Width, m.Height)
	out.Compose(comp)

	v := tea.NewView(out.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// toolbarContent leaves room for the button layers drawn over it.
func (m Model) toolbarContent() string {
	width := 0
	for _, b := range m.Config.Toolbar {
		width += buttonWidth(b.Label) + 1
	}
	return toolbarTitle + strings.Repeat(" ", width) + toolbarHelp
}

// footerContent summarizes the tooltip state.
func (m Model) footerContent() string {
	tip := "tip: hidden"
	at := ""
	switch {
	case m.Unavailable:
		tip = "tip: no placement"
	case m.Active != "":
		if res, ok := m.Tip.Current(); ok {
			tip = "tip: " + res.Orientation.String()
			at = fmt.Sprintf("at (%g,%g)", res.Left, res.Top)
		}
	}
	trig := ""
	if m.Selected != "" {
		trig = "trigger: " + strings.TrimPrefix(m.Selected, toolbarPrefix)
	}
	return tealayout.Segments(
		tip,
		at,
		trig,
		fmt.Sprintf("mouse: (%d,%d)", m.MouseX, m.MouseY),
		fmt.Sprintf("view: %dx%d", m.Width, m.Height),
	)
}

// buildGridLayer renders the dotted canvas background.
func buildGridLayer(r image.Rectangle) *lipgloss.Layer {
	if r.Empty() {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(tealayout.ZBackground)
	}
	buf := cellbuf.New(r.Dx(), r.Dy(), styleBG)
	drawutil.DrawGrid(buf, r.Min.X, r.Min.Y, 6, 3, styleGrid)
	return lipgloss.NewLayer(buf.Render(bufStyles)).
		X(r.Min.X).Y(r.Min.Y).Z(tealayout.ZBackground).
		ID("canvas-grid")
}

// buildTriggerLayers renders one button layer per trigger.
func buildTriggerLayers(all []*triggers.Trigger, active, selected string) []*lipgloss.Layer {
	layers := make([]*lipgloss.Layer, 0, len(all))
	for _, t := range all {
		style := btnStyle
		switch t.Name {
		case active:
			style = btnActiveStyle
		case selected:
			style = btnFocusStyle
		}
		rendered := style.
			Width(t.W).
			Height(t.H).
			AlignHorizontal(lipgloss.Center).
			Render(t.Label)
		layers = append(layers, lipgloss.NewLayer(rendered).
			X(t.X).Y(t.Y).Z(zTriggers).
			ID("trigger-"+t.Name))
	}
	return layers
}
