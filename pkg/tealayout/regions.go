// Package tealayout computes named screen regions and builds the chrome
// layers (toolbar, footer, modal) for Bubbletea v2 + Lipgloss v2 apps.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Contains reports whether pt lies inside the region.
func (r Region) Contains(pt image.Point) bool {
	return pt.In(r.Rect)
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
	order        []string
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// Screen returns the whole terminal as a rectangle.
func (l Layout) Screen() image.Rectangle {
	return image.Rect(0, 0, l.TermW, l.TermH)
}

// RegionAt returns the first region (in declaration order) containing pt.
func (l Layout) RegionAt(pt image.Point) (Region, bool) {
	for _, name := range l.order {
		if r := l.Regions[name]; r.Contains(pt) {
			return r, true
		}
	}
	return Region{}, false
}

// LayoutBuilder accumulates fixed rows and assigns the remainder.
type LayoutBuilder struct {
	termW, termH int
	top, bottom  int // rows consumed from top/bottom
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{termW: termW, termH: termH}
}

// TopFixed reserves rows from the top.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	y := b.top
	b.regions = append(b.regions, Region{Name: name, Rect: image.Rect(0, y, b.termW, y+height)})
	b.top += height
	return b
}

// BottomFixed reserves rows from the bottom.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	y := b.termH - b.bottom - height
	b.regions = append(b.regions, Region{Name: name, Rect: image.Rect(0, y, b.termW, y+height)})
	b.bottom += height
	return b
}

// Remaining assigns whatever is left between the top and bottom rows.
// A degenerate remainder becomes an empty rectangle.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	var rect image.Rectangle
	if y1 := b.termH - b.bottom; b.termW > 0 && y1 > b.top {
		rect = image.Rect(0, b.top, b.termW, y1)
	}
	b.regions = append(b.regions, Region{Name: name, Rect: rect})
	return b
}

// Build computes the final Layout. Regions with min >= max on either
// axis are clamped to the empty rectangle.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		if r.Rect.Empty() {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
		l.order = append(l.order, r.Name)
	}
	return l
}
