package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fixed editor palette. Shape borders always use the stroke color; fills are
// per shape and optional.
var (
	strokeColor    = colorful.Color{R: 0.13, G: 0.15, B: 0.19}
	selectionColor = mustHex("#2f80ed")
	handleBorder   = mustHex("#2f80ed")
	handleFill     = colorful.Color{R: 1, G: 1, B: 1}
	placeholderCol = colorful.Color{R: 0.6, G: 0.6, B: 0.62}
	errorColor     = mustHex("#d64545")
)

// selectionSoft is the translucent outline tint, a lightened selection blue.
var selectionSoft = selectionColor.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.35)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad palette color " + s)
	}
	return c
}

// ParseFill converts a shape's hex fill string to a drawable color. The
// second return is false for an empty or malformed value, which renders as
// unfilled.
func ParseFill(hex string) (color.Color, bool) {
	if hex == "" {
		return nil, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, false
	}
	return c, true
}
