package geometry

import "math"

// LineHitTolerance is the maximum distance, in canvas units, at which a point
// still counts as hitting a line segment.
const LineHitTolerance = 5.0

// PointInBox tests a local-frame point against an axis-aligned box of the
// given extents centered on the origin.
func PointInBox(l Point, w, h float64) bool {
	return math.Abs(l.X) <= w/2 && math.Abs(l.Y) <= h/2
}

// PointInDiamond tests a local-frame point against the diamond whose vertices
// are the edge midpoints of a w-by-h box centered on the origin. Membership is
// the L1-ball condition |x|/(w/2) + |y|/(h/2) <= 1.
func PointInDiamond(l Point, w, h float64) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	return math.Abs(l.X)/(w/2)+math.Abs(l.Y)/(h/2) <= 1
}

// PointInCircle tests a world-space point against a disk. Rotation and flip
// are irrelevant to a disk, so no frame change is involved.
func PointInCircle(p Point, center Point, r float64) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dx*dx+dy*dy <= r*r
}

// SegmentDistance returns the distance from p to the segment a-b. A
// degenerate zero-length segment falls back to point-to-point distance.
func SegmentDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// PointNearSegment reports whether p lies within LineHitTolerance of the
// segment a-b.
func PointNearSegment(p, a, b Point) bool {
	return SegmentDistance(p, a, b) <= LineHitTolerance
}
