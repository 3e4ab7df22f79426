package placement

import "image"

// Rect is an axis-aligned box in viewport coordinates, snapshotted at
// activation time.
type Rect struct {
	Top, Left, Width, Height float64
}

// Right returns Left + Width.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns Top + Height.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Size is the tooltip's own rendered dimensions.
type Size struct {
	Width, Height float64
}

// Viewport is the clipping boundary at decision time.
type Viewport struct {
	Width, Height float64
}

// Result is a chosen orientation plus the tooltip's top-left corner.
type Result struct {
	Orientation Orientation `yaml:"orientation" json:"orientation"`
	Top         float64     `yaml:"top" json:"top"`
	Left        float64     `yaml:"left" json:"left"`
}

// RectFromImage converts a cell rectangle into a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		Top:    float64(r.Min.Y),
		Left:   float64(r.Min.X),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

// SizeFromPoint converts a width/height point into a Size.
func SizeFromPoint(p image.Point) Size {
	return Size{Width: float64(p.X), Height: float64(p.Y)}
}

// ViewportFromImage uses the extent of r as the viewport. The origin is
// ignored; callers translate trigger rects into the same space.
func ViewportFromImage(r image.Rectangle) Viewport {
	return Viewport{Width: float64(r.Dx()), Height: float64(r.Dy())}
}
