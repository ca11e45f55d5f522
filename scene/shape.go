// Package scene contains the shape entities of a diagram and the scene that
// orders them. Shapes are a closed tagged variant: one struct with a Kind tag
// and per-kind payloads, dispatched by exhaustive switch. All placement math
// is deferred to the geometry package.
package scene

import (
	"image"

	"sketch/geometry"
)

// Kind tags the concrete variant of a Shape.
type Kind int

const (
	KindRectangle Kind = iota
	KindCircle
	KindDiamond
	KindLine
	KindText
	KindImage
)

// String returns the kind name for display.
func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindDiamond:
		return "diamond"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Rotatable reports whether shapes of this kind support the rotation handle.
// Lines flip but never rotate; text supports neither.
func (k Kind) Rotatable() bool {
	switch k {
	case KindRectangle, KindCircle, KindDiamond, KindImage:
		return true
	default:
		return false
	}
}

// Shape is one entity on the canvas. X,Y is the anchor point: top-left for
// box-like shapes, the center for circles, the first endpoint for lines.
// Exactly one payload pointer is non-nil, matching Kind.
type Shape struct {
	ID    int
	Kind  Kind
	X, Y  float64
	Angle float64 // radians about the shape center; always 0 for line and text
	FlipH bool
	FlipV bool
	Fill  string // hex fill color; empty means unfilled

	Rect  *RectData
	Circ  *CircleData
	Line  *LineData
	Text  *TextData
	Image *ImageData
}

// RectData is the payload for rectangles and diamonds, which share the same
// bounding-box model.
type RectData struct {
	W, H float64
}

// CircleData is the payload for circles. The shape anchor is the center.
type CircleData struct {
	R float64
}

// LineData is the payload for lines: the second endpoint. Lines have no
// resize handles; flipping mirrors the endpoints about the segment center.
type LineData struct {
	X2, Y2 float64
}

// TextData is the payload for text shapes. W and H are derived from the font
// metrics and must be recomputed through UpdateDimensions whenever the
// content, family, size, or style changes.
type TextData struct {
	Lines     []string
	Family    string
	Size      float64
	Bold      bool
	Italic    bool
	Underline bool
	Align     string
	W, H      float64
}

// ImageState tracks the bitmap lifecycle of an image shape.
type ImageState int

const (
	ImageLoading ImageState = iota
	ImageLoaded
	ImageError
)

// ImageData is the payload for image shapes. Source is the data URL the
// bitmap was decoded from; Bitmap is nil unless State is ImageLoaded.
type ImageData struct {
	W, H   float64
	Source string
	State  ImageState
	Sized  bool // extents have been set from the bitmap or by the user
	Bitmap image.Image
}

// Measurer computes the rendered extents of text content in its active font.
type Measurer interface {
	Measure(td *TextData) (w, h float64)
}

// Center returns the shape's rotation center in world space.
func (s *Shape) Center() geometry.Point {
	switch s.Kind {
	case KindRectangle, KindDiamond:
		return geometry.Pt(s.X+s.Rect.W/2, s.Y+s.Rect.H/2)
	case KindCircle:
		return geometry.Pt(s.X, s.Y)
	case KindLine:
		return geometry.Pt((s.X+s.Line.X2)/2, (s.Y+s.Line.Y2)/2)
	case KindText:
		return geometry.Pt(s.X+s.Text.W/2, s.Y+s.Text.H/2)
	case KindImage:
		return geometry.Pt(s.X+s.Image.W/2, s.Y+s.Image.H/2)
	default:
		return geometry.Pt(s.X, s.Y)
	}
}

// Endpoints returns a line's two endpoints with flips applied: flipping
// mirrors the endpoints about the segment's own center.
func (s *Shape) Endpoints() (geometry.Point, geometry.Point) {
	a := geometry.Pt(s.X, s.Y)
	b := geometry.Pt(s.Line.X2, s.Line.Y2)
	c := s.Center()
	if s.FlipH {
		a.X = 2*c.X - a.X
		b.X = 2*c.X - b.X
	}
	if s.FlipV {
		a.Y = 2*c.Y - a.Y
		b.Y = 2*c.Y - b.Y
	}
	return a, b
}

// Contains reports whether a world-space point hits the shape.
func (s *Shape) Contains(p geometry.Point) bool {
	switch s.Kind {
	case KindRectangle, KindImage:
		w, h := s.boxExtents()
		l := geometry.LocalPoint(p, s.Center(), s.Angle, s.FlipH, s.FlipV)
		return geometry.PointInBox(l, w, h)
	case KindDiamond:
		l := geometry.LocalPoint(p, s.Center(), s.Angle, s.FlipH, s.FlipV)
		return geometry.PointInDiamond(l, s.Rect.W, s.Rect.H)
	case KindCircle:
		return geometry.PointInCircle(p, s.Center(), s.Circ.R)
	case KindLine:
		a, b := s.Endpoints()
		return geometry.PointNearSegment(p, a, b)
	case KindText:
		// Axis-aligned only; text does not rotate.
		return p.X >= s.X && p.X <= s.X+s.Text.W &&
			p.Y >= s.Y && p.Y <= s.Y+s.Text.H
	default:
		return false
	}
}

// Handles returns the shape's resize and rotation hotspots in world space.
// Lines have none; text handles are laid out unrotated.
func (s *Shape) Handles(zoom float64) []geometry.Handle {
	switch s.Kind {
	case KindRectangle, KindDiamond:
		return geometry.BoxHandles(s.Center(), s.Rect.W, s.Rect.H, s.Angle, s.FlipH, s.FlipV, true, zoom)
	case KindCircle:
		d := 2 * s.Circ.R
		return geometry.BoxHandles(s.Center(), d, d, s.Angle, s.FlipH, s.FlipV, true, zoom)
	case KindLine:
		return nil
	case KindText:
		return geometry.BoxHandles(s.Center(), s.Text.W, s.Text.H, 0, false, false, false, zoom)
	case KindImage:
		return geometry.BoxHandles(s.Center(), s.Image.W, s.Image.H, s.Angle, s.FlipH, s.FlipV, true, zoom)
	default:
		return nil
	}
}

// boxExtents returns the bounding-box extents of a box-like shape.
func (s *Shape) boxExtents() (w, h float64) {
	switch s.Kind {
	case KindRectangle, KindDiamond:
		return s.Rect.W, s.Rect.H
	case KindCircle:
		return 2 * s.Circ.R, 2 * s.Circ.R
	case KindText:
		return s.Text.W, s.Text.H
	case KindImage:
		return s.Image.W, s.Image.H
	default:
		return 0, 0
	}
}

// UpdateDimensions recomputes a text shape's extents from its content and
// font through the measurer. It is a no-op for every other kind.
func (s *Shape) UpdateDimensions(m Measurer) {
	if s.Kind != KindText || m == nil {
		return
	}
	s.Text.W, s.Text.H = m.Measure(s.Text)
}

// Clone creates a deep copy of the shape. Clones share no mutable sub-state
// with the original; an image clone keeps its source reference but drops the
// decoded bitmap and re-enters the loading state, so the caller re-triggers
// the decode for the copy.
func (s *Shape) Clone() *Shape {
	clone := *s
	switch s.Kind {
	case KindRectangle, KindDiamond:
		rect := *s.Rect
		clone.Rect = &rect
	case KindCircle:
		circ := *s.Circ
		clone.Circ = &circ
	case KindLine:
		line := *s.Line
		clone.Line = &line
	case KindText:
		text := *s.Text
		text.Lines = make([]string, len(s.Text.Lines))
		copy(text.Lines, s.Text.Lines)
		clone.Text = &text
	case KindImage:
		img := *s.Image
		img.Bitmap = nil
		if img.State == ImageLoaded {
			img.State = ImageLoading
		}
		clone.Image = &img
	}
	return &clone
}
