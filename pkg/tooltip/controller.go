// Package tooltip owns the lifecycle of a single tooltip: lazy creation of
// its render surface, placement on activation and hiding on dismissal.
//
// A Controller is not safe for concurrent use. It is driven from one event
// loop; rapid activations are serialized there and the last one wins.
package tooltip

import (
	"errors"
	"fmt"

	"github.com/wesen/tipplace/pkg/placement"
	"go.uber.org/zap"
)

// ErrPlacementUnavailable is returned by Activate when no orientation fits.
// The tooltip stays hidden; callers should not treat it as a failure.
var ErrPlacementUnavailable = errors.New("tooltip: no placement available")

// Surface is what the host must provide to draw the tooltip.
type Surface interface {
	// Measure returns the rendered size of the tooltip content.
	Measure() placement.Size
	SetOrientation(o placement.Orientation)
	ClearOrientation()
	SetPosition(top, left float64)
	ClearPosition()
	Show()
	Hide()
}

// SurfaceFactory creates the tooltip surface. It is called lazily and only
// until it succeeds once.
type SurfaceFactory func() (Surface, error)

// Activation is a request to show the tooltip next to a trigger. Both
// rects are captured fresh by the host at event time.
type Activation struct {
	Trigger  placement.Rect
	Viewport placement.Viewport
}

// State is the externally visible controller state.
type State struct {
	Visible     bool
	Orientation placement.Orientation
}

// Controller mediates between activation events and the placement evaluator.
type Controller struct {
	factory SurfaceFactory
	surface Surface
	size    placement.Size
	current placement.Result
	shown   bool
	log     *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a hidden controller. The surface is not created until the
// first Ready or Activate call.
func New(factory SurfaceFactory, opts ...Option) *Controller {
	c := &Controller{factory: factory, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ready creates the surface if it does not exist yet. Safe to call any
// number of times.
func (c *Controller) Ready() error {
	if c.surface != nil {
		return nil
	}
	if c.factory == nil {
		return errors.New("tooltip: no surface factory")
	}
	s, err := c.factory()
	if err != nil {
		return fmt.Errorf("create tooltip surface: %w", err)
	}
	if s == nil {
		return errors.New("tooltip: surface factory returned nil")
	}
	c.surface = s
	c.size = s.Measure()
	c.log.Debug("tooltip surface created",
		zap.Float64("width", c.size.Width),
		zap.Float64("height", c.size.Height))
	return nil
}

// Activate places and shows the tooltip next to a.Trigger. Any previous
// placement is cleared first. When nothing fits, it returns
// ErrPlacementUnavailable and the tooltip stays hidden.
func (c *Controller) Activate(a Activation) (placement.Result, error) {
	if err := c.Ready(); err != nil {
		return placement.Result{}, err
	}
	c.Dismiss()

	res, ok := placement.Place(a.Trigger, c.size, a.Viewport)
	if !ok {
		c.log.Debug("tooltip placement unavailable",
			zap.Float64("trigger_left", a.Trigger.Left),
			zap.Float64("trigger_top", a.Trigger.Top),
			zap.Float64("viewport_width", a.Viewport.Width))
		return res, ErrPlacementUnavailable
	}

	c.surface.SetOrientation(res.Orientation)
	c.surface.SetPosition(res.Top, res.Left)
	c.surface.Show()
	c.current = res
	c.shown = true

	c.log.Debug("tooltip shown",
		zap.Stringer("orientation", res.Orientation),
		zap.Float64("top", res.Top),
		zap.Float64("left", res.Left))
	return res, nil
}

// Dismiss hides the tooltip. It does nothing when already hidden.
func (c *Controller) Dismiss() {
	if !c.shown {
		return
	}
	c.surface.ClearPosition()
	c.surface.ClearOrientation()
	c.surface.Hide()
	c.log.Debug("tooltip hidden", zap.Stringer("orientation", c.current.Orientation))
	c.current = placement.Result{}
	c.shown = false
}

// State reports visibility and the active orientation.
func (c *Controller) State() State {
	if !c.shown {
		return State{Orientation: placement.None}
	}
	return State{Visible: true, Orientation: c.current.Orientation}
}

// Current returns the applied placement while the tooltip is shown.
func (c *Controller) Current() (placement.Result, bool) {
	return c.current, c.shown
}

// Size returns the measured tooltip size, or the zero Size before the
// surface exists.
func (c *Controller) Size() placement.Size {
	return c.size
}
