package scene

import "sketch/geometry"

// Default extents for tool-placed shapes. Click-to-place centers the new
// shape on the click point.
const (
	DefaultRectWidth  = 100.0
	DefaultRectHeight = 60.0
	DefaultCircleR    = 40.0
	DefaultTextSize   = 16.0
	MaxImageEdge      = 400.0
)

// NewRectangleAt creates a default-sized rectangle centered on p.
func NewRectangleAt(id int, p geometry.Point) *Shape {
	return &Shape{
		ID:   id,
		Kind: KindRectangle,
		X:    p.X - DefaultRectWidth/2,
		Y:    p.Y - DefaultRectHeight/2,
		Rect: &RectData{W: DefaultRectWidth, H: DefaultRectHeight},
	}
}

// NewCircleAt creates a default-sized circle centered on p.
func NewCircleAt(id int, p geometry.Point) *Shape {
	return &Shape{
		ID:   id,
		Kind: KindCircle,
		X:    p.X,
		Y:    p.Y,
		Circ: &CircleData{R: DefaultCircleR},
	}
}

// NewDiamondAt creates a default-sized diamond centered on p.
func NewDiamondAt(id int, p geometry.Point) *Shape {
	s := NewRectangleAt(id, p)
	s.Kind = KindDiamond
	return s
}

// NewLine creates a line between two endpoints.
func NewLine(id int, a, b geometry.Point) *Shape {
	return &Shape{
		ID:   id,
		Kind: KindLine,
		X:    a.X,
		Y:    a.Y,
		Line: &LineData{X2: b.X, Y2: b.Y},
	}
}

// NewText creates a text shape anchored at p. The caller measures it through
// UpdateDimensions once a Measurer is available.
func NewText(id int, p geometry.Point, lines []string, family string) *Shape {
	content := make([]string, len(lines))
	copy(content, lines)
	return &Shape{
		ID:   id,
		Kind: KindText,
		X:    p.X,
		Y:    p.Y,
		Text: &TextData{
			Lines:  content,
			Family: family,
			Size:   DefaultTextSize,
			Align:  "left",
		},
	}
}

// NewImage creates an image shape in the loading state. The natural bitmap
// size is not known until the decode completes; until then the shape shows a
// placeholder at the default rectangle extents.
func NewImage(id int, p geometry.Point, source string) *Shape {
	return &Shape{
		ID:   id,
		Kind: KindImage,
		X:    p.X,
		Y:    p.Y,
		Image: &ImageData{
			W:      DefaultRectWidth,
			H:      DefaultRectHeight,
			Source: source,
			State:  ImageLoading,
		},
	}
}
