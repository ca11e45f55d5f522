package geometry

// HandleSize is the on-screen edge length of a resize handle, in pixels. It
// also fixes MinSize: shapes are never resized below two handle lengths so
// they stay selectable.
const (
	HandleSize           = 8.0
	MinSize              = 2 * HandleSize
	RotationHandleOffset = 20.0
)

// HandleKind identifies which resize or rotation hotspot of a selected shape
// a pointer event refers to.
type HandleKind int

const (
	HandleNone HandleKind = iota
	HandleTopLeft
	HandleTopCenter
	HandleTopRight
	HandleMiddleLeft
	HandleMiddleRight
	HandleBottomLeft
	HandleBottomCenter
	HandleBottomRight
	HandleRotate
)

// String returns the handle name for debugging and cursor selection.
func (k HandleKind) String() string {
	switch k {
	case HandleNone:
		return "none"
	case HandleTopLeft:
		return "top-left"
	case HandleTopCenter:
		return "top-center"
	case HandleTopRight:
		return "top-right"
	case HandleMiddleLeft:
		return "middle-left"
	case HandleMiddleRight:
		return "middle-right"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleBottomCenter:
		return "bottom-center"
	case HandleBottomRight:
		return "bottom-right"
	case HandleRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// onLeft reports whether the handle sits on the left edge of the box.
func (k HandleKind) onLeft() bool {
	return k == HandleTopLeft || k == HandleMiddleLeft || k == HandleBottomLeft
}

// onRight reports whether the handle sits on the right edge of the box.
func (k HandleKind) onRight() bool {
	return k == HandleTopRight || k == HandleMiddleRight || k == HandleBottomRight
}

// onTop reports whether the handle sits on the top edge of the box.
func (k HandleKind) onTop() bool {
	return k == HandleTopLeft || k == HandleTopCenter || k == HandleTopRight
}

// onBottom reports whether the handle sits on the bottom edge of the box.
func (k HandleKind) onBottom() bool {
	return k == HandleBottomLeft || k == HandleBottomCenter || k == HandleBottomRight
}

// Handle is a world-space hotspot attached to a selected shape.
type Handle struct {
	X, Y float64
	Kind HandleKind
}

// Point returns the handle position as a Point.
func (h Handle) Point() Point {
	return Point{X: h.X, Y: h.Y}
}

var boxHandleKinds = [8]HandleKind{
	HandleTopLeft, HandleTopCenter, HandleTopRight,
	HandleMiddleLeft, HandleMiddleRight,
	HandleBottomLeft, HandleBottomCenter, HandleBottomRight,
}

// localHandleOffset returns the local-frame position of a box handle for a box
// of the given half extents.
func localHandleOffset(k HandleKind, w2, h2 float64) Point {
	var p Point
	switch {
	case k.onLeft():
		p.X = -w2
	case k.onRight():
		p.X = w2
	}
	switch {
	case k.onTop():
		p.Y = -h2
	case k.onBottom():
		p.Y = h2
	}
	return p
}

// BoxHandles lays out the 8 resize handles of a box with the given center and
// extents, transformed to world space through the shape's flip and rotation.
// When rotatable is true a rotation handle is added a fixed offset beyond the
// top-center handle; the offset is divided by zoom so the grab distance stays
// constant on screen.
func BoxHandles(center Point, w, h, angle float64, flipH, flipV bool, rotatable bool, zoom float64) []Handle {
	if zoom <= 0 {
		zoom = 1
	}
	w2, h2 := w/2, h/2
	handles := make([]Handle, 0, 9)
	for _, k := range boxHandleKinds {
		p := WorldPoint(localHandleOffset(k, w2, h2), center, angle, flipH, flipV)
		handles = append(handles, Handle{X: p.X, Y: p.Y, Kind: k})
	}
	if rotatable {
		p := WorldPoint(Pt(0, -h2-RotationHandleOffset/zoom), center, angle, flipH, flipV)
		handles = append(handles, Handle{X: p.X, Y: p.Y, Kind: HandleRotate})
	}
	return handles
}
