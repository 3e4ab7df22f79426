package tipui

import (
	"errors"
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/tipplace/pkg/placement"
	"github.com/wesen/tipplace/pkg/tooltip"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case readyMsg:
		if err := m.Tip.Ready(); err != nil {
			m.log.Error("tooltip surface unavailable", zap.Error(err))
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// The viewport changed, so any placement is stale.
		m = m.dismiss()
		m = m.relayout()

	case tea.KeyMsg:
		if m.EditOpen {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.EditOpen {
			return m, nil
		}
		return handleMouse(m, msg)
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "escape":
		m = m.dismiss()

	case "tab":
		m = m.cycleSelection(1)
	case "shift+tab":
		m = m.cycleSelection(-1)

	case "enter", "space", " ":
		if m.Selected != "" {
			m = m.activate(m.Selected)
		}

	case "up":
		m = m.nudge(image.Pt(0, -1))
	case "down":
		m = m.nudge(image.Pt(0, 1))
	case "left":
		m = m.nudge(image.Pt(-1, 0))
	case "right":
		m = m.nudge(image.Pt(1, 0))

	case "e":
		return m.openEditModal()
	}

	return m, nil
}

// activate shows the tooltip next to the named trigger. The trigger rect
// and viewport are captured now, at event time.
func (m Model) activate(name string) Model {
	t := m.Triggers.Lookup(name)
	if t == nil {
		return m
	}
	m.Selected = name

	res, err := m.Tip.Activate(tooltip.Activation{
		Trigger:  t.Rect(image.Point{}),
		Viewport: placement.ViewportFromImage(m.screen()),
	})
	switch {
	case errors.Is(err, tooltip.ErrPlacementUnavailable):
		m.Active = ""
		m.Unavailable = true
	case err != nil:
		m.log.Error("tooltip activation failed", zap.String("trigger", name), zap.Error(err))
		m.Active = ""
		m.Unavailable = false
	default:
		m.log.Debug("trigger activated",
			zap.String("trigger", name),
			zap.Stringer("orientation", res.Orientation))
		m.Active = name
		m.Unavailable = false
	}
	return m
}

// dismiss hides the tooltip and clears the "no placement" notice.
// Calling it while hidden leaves the surface untouched.
func (m Model) dismiss() Model {
	m.Tip.Dismiss()
	m.Active = ""
	m.Unavailable = false
	return m
}

// nudge moves the selected canvas trigger by d, keeping it on the canvas.
func (m Model) nudge(d image.Point) Model {
	if m.Selected == "" || isToolbar(m.Selected) {
		return m
	}
	t := m.Triggers.Lookup(m.Selected)
	if t == nil {
		return m
	}
	m = m.dismiss()
	r := clampInto(image.Rect(t.X, t.Y, t.X+t.W, t.Y+t.H).Add(d), m.layout().Get("canvas").Rect)
	m.Triggers.Move(t.ID, r.Min)
	m.storeTriggerPos(m.Selected)
	return m
}
