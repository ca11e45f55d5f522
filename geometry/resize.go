package geometry

import "math"

// Box is an axis-aligned box described by its top-left corner and extents.
type Box struct {
	X, Y, W, H float64
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// ResizeBox computes the new geometry of a box-like shape while one of its
// handles is being dragged. init is the geometry captured at gesture start
// (never the live shape), center and angle describe the initial frame, and
// mouse is the current world-space pointer position.
//
// The mouse point is brought into the initial rotated frame, then the new
// box is derived with plain axis-aligned arithmetic: corner handles move two
// edges and keep the opposite corner anchored, edge handles move one edge and
// keep the opposite edge anchored, center handles leave the cross axis alone.
// Both extents are floored at MinSize; a drag past the opposite edge clamps
// there instead of inverting.
func ResizeBox(init Box, center Point, angle float64, kind HandleKind, mouse Point) Box {
	m := mouse.RotateAbout(center, -angle)
	out := init

	switch {
	case kind.onLeft():
		right := init.X + init.W
		out.W = math.Max(MinSize, right-m.X)
		out.X = right - out.W
	case kind.onRight():
		out.W = math.Max(MinSize, m.X-init.X)
	}

	switch {
	case kind.onTop():
		bottom := init.Y + init.H
		out.H = math.Max(MinSize, bottom-m.Y)
		out.Y = bottom - out.H
	case kind.onBottom():
		out.H = math.Max(MinSize, m.Y-init.Y)
	}

	return out
}

// ResizeCircle computes a circle's new radius from the handle being dragged
// and the current world-space pointer. Edge handles take the distance along
// their own axis; corner handles average the two. This mirrors the historical
// behaviour and is deliberately kept, not generalized.
func ResizeCircle(center Point, angle float64, kind HandleKind, mouse Point) float64 {
	m := mouse.RotateAbout(center, -angle)
	dx := math.Abs(m.X - center.X)
	dy := math.Abs(m.Y - center.Y)

	var r float64
	switch kind {
	case HandleMiddleLeft, HandleMiddleRight:
		r = dx
	case HandleTopCenter, HandleBottomCenter:
		r = dy
	default:
		r = (dx + dy) / 2
	}
	return math.Max(HandleSize, r)
}
