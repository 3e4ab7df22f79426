package placement

// Evaluate chooses an orientation for a tooltip of size tip next to
// trigger inside vp. The first matching rule wins:
//
//	North          no room above, centered tooltip stays inside both side edges
//	NorthEastFlip  no room above, overflows the right edge
//	NorthWestFlip  no room above, overflows the left edge
//	South          no room below, centered tooltip stays inside both side edges
//	SouthEastFlip  no room below, overflows the right edge
//	SouthWestFlip  no room below, overflows the left edge
//	East           overflows the right edge
//	West           fits on the right
//
// All comparisons are strict. When the tooltip's right edge lands exactly
// on the viewport edge and no vertical rule matched, Evaluate returns None.
func Evaluate(trigger Rect, tip Size, vp Viewport) Orientation {
	right := trigger.Right()
	bottom := trigger.Bottom()

	clipsTop := bottom-tip.Height < 0
	clipsBottom := bottom+tip.Height > vp.Height
	overRight := right+tip.Width > vp.Width
	underRight := right+tip.Width < vp.Width
	overLeft := right-tip.Width < 0
	clearLeft := right-tip.Width > 0

	switch {
	case clipsTop && clearLeft && underRight:
		return North
	case overRight && clipsTop:
		return NorthEastFlip
	case clipsTop && overLeft:
		return NorthWestFlip
	case clipsBottom && underRight && clearLeft:
		return South
	case clipsBottom && overRight:
		return SouthEastFlip
	case clipsBottom && overLeft:
		return SouthWestFlip
	case overRight:
		return East
	case underRight:
		return West
	}
	return None
}

// Offset returns the tooltip's top-left corner for orientation o.
// ok is false for None and unknown values.
func Offset(o Orientation, trigger Rect, tip Size) (top, left float64, ok bool) {
	centered := trigger.Left - tip.Width/2 + trigger.Width/2
	beside := trigger.Top - (tip.Height-trigger.Height)/2

	switch o {
	case North:
		return trigger.Top + trigger.Height, centered, true
	case NorthEastFlip:
		return trigger.Top + trigger.Height/2, trigger.Left - tip.Width, true
	case NorthWestFlip:
		return trigger.Top + trigger.Height/2, trigger.Left + trigger.Width, true
	case East:
		return beside, trigger.Left - tip.Width, true
	case South:
		return trigger.Top - tip.Height, centered, true
	case SouthEastFlip:
		return trigger.Top - tip.Height + trigger.Height/2, trigger.Left - tip.Width, true
	case SouthWestFlip:
		return trigger.Top - tip.Height + trigger.Height/2, trigger.Left + trigger.Width, true
	case West:
		return beside, trigger.Left + trigger.Width, true
	}
	return 0, 0, false
}

// Place runs Evaluate and Offset together. ok is false when no
// orientation fits.
func Place(trigger Rect, tip Size, vp Viewport) (Result, bool) {
	o := Evaluate(trigger, tip, vp)
	top, left, ok := Offset(o, trigger, tip)
	if !ok {
		return Result{Orientation: None}, false
	}
	return Result{Orientation: o, Top: top, Left: left}, true
}
