package tipui

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/tipplace/pkg/triggers"
	"go.uber.org/zap"
)

// handleMouse turns mouse events into activations, dismissals and drags.
func handleMouse(m Model, msg tea.MouseMsg) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y
	pt := image.Pt(mouse.X, mouse.Y)

	switch msg.(type) {
	case tea.MouseClickMsg:
		switch mouse.Button {
		case tea.MouseLeft:
			m = handleLeftClick(m, pt)
		case tea.MouseRight:
			m = startDrag(m, pt)
		}

	case tea.MouseMotionMsg:
		if m.Dragging {
			m = dragTo(m, pt)
		} else if m.Config.Tooltip.DismissOnLeave && m.Active != "" && !m.overTooltipRegion(pt) {
			m = m.dismiss()
		}

	case tea.MouseReleaseMsg:
		if m.Dragging {
			m.storeTriggerPos(m.DragName)
			m.log.Debug("trigger moved", zap.String("trigger", m.DragName))
			m.Dragging = false
			m.DragName = ""
		}
	}

	return m, nil
}

// handleLeftClick activates the trigger under the pointer. The tooltip is
// drawn above the triggers, so clicks inside it are ignored even when a
// trigger lies underneath. Clicks on empty toolbar or footer chrome are
// ignored too; clicks on the empty canvas dismiss.
func handleLeftClick(m Model, pt image.Point) Model {
	if s := m.Surface(); s != nil && s.Visible() && pt.In(s.Bounds()) {
		return m
	}
	if hit := m.Triggers.HitTest(pt); hit != nil {
		return m.activate(hit.Name)
	}
	if r, ok := m.layout().RegionAt(pt); !ok || r.Name != "canvas" {
		return m
	}
	m.Selected = ""
	return m.dismiss()
}

// startDrag picks up a canvas trigger. Toolbar buttons stay put.
func startDrag(m Model, pt image.Point) Model {
	hit := m.Triggers.HitTest(pt)
	if hit == nil || isToolbar(hit.Name) {
		return m
	}
	m = m.dismiss()
	m.Dragging = true
	m.DragName = hit.Name
	m.Selected = hit.Name
	m.DragOffX = pt.X - hit.X
	m.DragOffY = pt.Y - hit.Y
	return m
}

// dragTo moves the dragged trigger, clamped to the canvas.
func dragTo(m Model, pt image.Point) Model {
	t := m.Triggers.Lookup(m.DragName)
	if t == nil {
		m.Dragging = false
		return m
	}
	x, y := pt.X-m.DragOffX, pt.Y-m.DragOffY
	r := clampInto(image.Rect(x, y, x+t.W, y+t.H), m.layout().Get("canvas").Rect)
	m.Triggers.Move(t.ID, r.Min)
	return m
}

// overTooltipRegion reports whether pt is over the active trigger or the
// tooltip itself.
func (m Model) overTooltipRegion(pt image.Point) bool {
	if t := m.Triggers.Lookup(m.Active); t != nil && pt.In(triggers.BoundsOf(*t)) {
		return true
	}
	s := m.Surface()
	return s != nil && s.Visible() && pt.In(s.Bounds())
}
