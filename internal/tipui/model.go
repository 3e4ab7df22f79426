// Package tipui is the terminal host for the tooltip controller. Trigger
// buttons live on the toolbar and the canvas; clicking one activates the
// tooltip, Esc or moving the pointer away dismisses it.
package tipui

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"github.com/wesen/tipplace/internal/config"
	"github.com/wesen/tipplace/pkg/tealayout"
	"github.com/wesen/tipplace/pkg/tooltip"
	"github.com/wesen/tipplace/pkg/triggers"
	"go.uber.org/zap"
)

// tipHost holds the lazily created surface. It is shared by every copy
// of the Model.
type tipHost struct {
	surface *Surface
	created int
}

// Model is the main application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	Config   *config.Config
	Triggers *triggers.Registry
	Tip      *tooltip.Controller
	host     *tipHost

	// Trigger names; triggers are re-registered on resize so IDs are not stable.
	Active      string // trigger the tooltip is shown for
	Selected    string // keyboard focus
	Unavailable bool   // last activation found no placement

	// Drag state
	Dragging bool
	DragName string
	DragOffX int
	DragOffY int

	// Edit modal state
	EditOpen  bool
	EditName  string
	EditLabel textinput.Model

	log *zap.Logger
}

// readyMsg tells the model the program has started so the tooltip
// surface can be created before the first click.
type readyMsg struct{}

// NewModel creates the initial model. A nil logger disables logging.
func NewModel(cfg *config.Config, log *zap.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	h := &tipHost{}
	factory := func() (tooltip.Surface, error) {
		h.surface = NewSurface(cfg.Tooltip.Content, cfg.Tooltip.MaxWidth)
		h.created++
		return h.surface, nil
	}
	return Model{
		Config:   cfg,
		Triggers: triggers.New(),
		Tip:      tooltip.New(factory, tooltip.WithLogger(log.Named("tooltip"))),
		host:     h,
		log:      log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return readyMsg{} }
}

// Surface returns the tooltip surface, or nil before it is created.
func (m Model) Surface() *Surface {
	return m.host.surface
}

// layout computes the screen regions. Must match the layout in View.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		Remaining("canvas").
		Build()
}

// screen is the clipping boundary used as the placement viewport.
func (m Model) screen() image.Rectangle {
	return m.layout().Screen()
}
