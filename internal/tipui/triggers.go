package tipui

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/wesen/tipplace/internal/config"
	"github.com/wesen/tipplace/pkg/triggers"
)

const (
	toolbarPrefix = "toolbar:"
	toolbarTitle  = " TIPPLACE │ "
	toolbarHelp   = "│ [tab] focus [enter] show [e]dit [esc] hide [q]uit"
)

// isToolbar reports whether the trigger is a toolbar button.
func isToolbar(name string) bool {
	return strings.HasPrefix(name, toolbarPrefix)
}

// buttonWidth is the cell width of a button showing label.
func buttonWidth(label string) int {
	return lipgloss.Width(label) + 2
}

// relayout re-registers every configured trigger for the current
// terminal size. Toolbar buttons flow left to right after the title;
// canvas triggers resolve negative coordinates from the far edges and
// are clamped into the canvas.
func (m Model) relayout() Model {
	reg := triggers.New()
	l := m.layout()

	tb := l.Get("toolbar").Rect
	x := tb.Min.X + lipgloss.Width(toolbarTitle)
	for _, b := range m.Config.Toolbar {
		w := buttonWidth(b.Label)
		reg.Add(triggers.Trigger{Name: toolbarPrefix + b.ID, Label: b.Label, X: x, Y: tb.Min.Y, W: w, H: 1})
		x += w + 1
	}

	cv := l.Get("canvas").Rect
	for _, tc := range m.Config.Triggers {
		r := canvasRect(tc, cv)
		reg.Add(triggers.Trigger{
			Name:  tc.ID,
			Label: tc.Label,
			X:     r.Min.X,
			Y:     r.Min.Y,
			W:     r.Dx(),
			H:     r.Dy(),
		})
	}

	m.Triggers = reg
	return m
}

// canvasRect resolves a configured trigger into screen cells.
func canvasRect(tc config.TriggerConfig, cv image.Rectangle) image.Rectangle {
	w := tc.W
	if w == 0 {
		w = buttonWidth(tc.Label)
	}
	h := max(tc.H, 1)

	x := cv.Min.X + tc.X
	if tc.X < 0 {
		x = cv.Max.X + tc.X
	}
	y := cv.Min.Y + tc.Y
	if tc.Y < 0 {
		y = cv.Max.Y + tc.Y
	}
	return clampInto(image.Rect(x, y, x+w, y+h), cv)
}

// clampInto shifts r so it lies inside bounds where possible.
func clampInto(r, bounds image.Rectangle) image.Rectangle {
	if r.Max.X > bounds.Max.X {
		r = r.Sub(image.Pt(r.Max.X-bounds.Max.X, 0))
	}
	if r.Max.Y > bounds.Max.Y {
		r = r.Sub(image.Pt(0, r.Max.Y-bounds.Max.Y))
	}
	if r.Min.X < bounds.Min.X {
		r = r.Add(image.Pt(bounds.Min.X-r.Min.X, 0))
	}
	if r.Min.Y < bounds.Min.Y {
		r = r.Add(image.Pt(0, bounds.Min.Y-r.Min.Y))
	}
	return r
}

// storeTriggerPos writes a dragged canvas trigger's position back into
// the config, relative to the canvas origin, so it survives a relayout.
func (m Model) storeTriggerPos(name string) {
	t := m.Triggers.Lookup(name)
	if t == nil {
		return
	}
	cv := m.layout().Get("canvas").Rect
	for i := range m.Config.Triggers {
		if m.Config.Triggers[i].ID == name {
			m.Config.Triggers[i].X = t.X - cv.Min.X
			m.Config.Triggers[i].Y = t.Y - cv.Min.Y
		}
	}
}

// setLabel changes a trigger label in the config. Canvas triggers with
// an automatic width grow or shrink with the label.
func (m Model) setLabel(name, label string) {
	if isToolbar(name) {
		id := strings.TrimPrefix(name, toolbarPrefix)
		for i := range m.Config.Toolbar {
			if m.Config.Toolbar[i].ID == id {
				m.Config.Toolbar[i].Label = label
			}
		}
		return
	}
	for i := range m.Config.Triggers {
		if m.Config.Triggers[i].ID == name {
			m.Config.Triggers[i].Label = label
		}
	}
}

// cycleSelection moves keyboard focus forward or backward through the
// triggers in registration order.
func (m Model) cycleSelection(step int) Model {
	all := m.Triggers.All()
	if len(all) == 0 {
		m.Selected = ""
		return m
	}
	idx := -1
	for i, t := range all {
		if t.Name == m.Selected {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && step < 0:
		idx = len(all) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + step + len(all)) % len(all)
	}
	m.Selected = all[idx].Name
	return m
}
