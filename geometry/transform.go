package geometry

// A shape's frame is set up translate -> flip -> rotate, the same call order a
// drawing surface uses (translate, scale by +/-1, rotate). Applied to a point
// that composes as rotate first, then flip, then translate. Hit-testing
// inverts it stepwise: translate by -center, un-flip, then un-rotate. Flip and
// rotation do not commute in general, so both directions are pinned to this
// convention by the transform tests.

// LocalPoint maps a world-space point into a shape's local frame given the
// shape's center, rotation angle, and flip state.
func LocalPoint(p Point, center Point, angle float64, flipH, flipV bool) Point {
	l := p.Sub(center)
	if flipH {
		l.X = -l.X
	}
	if flipV {
		l.Y = -l.Y
	}
	return l.RotateAbout(Point{}, -angle)
}

// WorldPoint maps a point in a shape's local frame back to world space. It is
// the exact inverse of LocalPoint: rotate, then flip, then translate.
func WorldPoint(l Point, center Point, angle float64, flipH, flipV bool) Point {
	w := l.RotateAbout(Point{}, angle)
	if flipH {
		w.X = -w.X
	}
	if flipV {
		w.Y = -w.Y
	}
	return w.Add(center)
}
