package tipui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
	"github.com/wesen/tipplace/pkg/tealayout"
	"github.com/wesen/tipplace/pkg/triggers"
	"go.uber.org/zap"
)

// openEditModal opens the label editor for the selected trigger.
func (m Model) openEditModal() (tea.Model, tea.Cmd) {
	if m.Selected == "" {
		return m, nil
	}
	t := m.Triggers.Lookup(m.Selected)
	if t == nil {
		return m, nil
	}

	m = m.dismiss()
	m.EditOpen = true
	m.EditName = t.Name

	m.EditLabel = textinput.New()
	m.EditLabel.Prompt = ""
	m.EditLabel.CharLimit = 24
	m.EditLabel.SetValue(t.Label)

	cmd := m.EditLabel.Focus()
	return m, cmd
}

// handleEditKeys processes keys when the edit modal is open.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.EditOpen = false
		return m, nil

	case "enter":
		label := strings.TrimSpace(m.EditLabel.Value())
		if label != "" {
			m.setLabel(m.EditName, label)
			m = m.relabel(m.EditName, label)
			m.log.Debug("trigger relabeled", zap.String("trigger", m.EditName), zap.String("label", label))
		}
		m.EditOpen = false
		return m, nil

	default:
		var cmd tea.Cmd
		m.EditLabel, cmd = m.EditLabel.Update(msg)
		return m, cmd
	}
}

// buildEditModalLayer renders the label editor as a centered modal.
func buildEditModalLayer(m Model) *lipgloss.Layer {
	lines := []string{
		modalTitleStyle.Render(fmt.Sprintf("EDIT LABEL: %s", m.EditName)),
		"",
		"  " + m.EditLabel.View(),
		"",
		modalHintStyle.Render("  [enter] save  [esc] cancel"),
	}
	return tealayout.ModalLayer(strings.Join(lines, "\n"), m.Width, m.Height, modalBoxStyle)
}

// relabel applies a new label to the registered trigger. Toolbar buttons
// flow after each other, so they are laid out again; a canvas trigger
// with an automatic width is resized in place and kept on the canvas.
func (m Model) relabel(name, label string) Model {
	t := m.Triggers.Lookup(name)
	if t == nil || isToolbar(name) {
		return m.relayout()
	}
	t.Label = label
	for _, tc := range m.Config.Triggers {
		if tc.ID == name && tc.W == 0 {
			m.Triggers.Resize(t.ID, buttonWidth(label), t.H)
		}
	}
	r := clampInto(triggers.BoundsOf(*t), m.layout().Get("canvas").Rect)
	m.Triggers.Move(t.ID, r.Min)
	return m
}
