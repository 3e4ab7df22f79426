// Package triggers keeps the positioned elements that can request a
// tooltip, in stable insertion order, with hit testing.
package triggers

import "image"

// Spatial is the minimal interface for a positioned, sized element.
type Spatial interface {
	Pos() image.Point
	Size() image.Point
}

// BoundsOf returns the bounding rectangle of a Spatial element.
func BoundsOf(s Spatial) image.Rectangle {
	p := s.Pos()
	sz := s.Size()
	return image.Rect(p.X, p.Y, p.X+sz.X, p.Y+sz.Y)
}
