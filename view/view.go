// Package view maps between screen pixel coordinates and canvas coordinates.
// The mapping is a pan offset plus a uniform zoom factor; every pointer event
// and every rendered shape passes through it exactly once per direction.
package view

import (
	"math"

	"sketch/geometry"
)

// Zoom limits and the multiplicative step applied per zoom gesture.
const (
	MinZoom  = 0.1
	MaxZoom  = 10.0
	ZoomStep = 1.1
)

// Transform holds the current pan offset and zoom factor.
type Transform struct {
	Pan  geometry.Point
	Zoom float64
}

// New creates an identity transform.
func New() *Transform {
	return &Transform{Zoom: 1.0}
}

// ScreenToCanvas converts a screen pixel position to canvas coordinates.
func (t *Transform) ScreenToCanvas(sx, sy float64) geometry.Point {
	return geometry.Pt((sx-t.Pan.X)/t.Zoom, (sy-t.Pan.Y)/t.Zoom)
}

// CanvasToScreen converts a canvas point to screen pixel coordinates.
func (t *Transform) CanvasToScreen(p geometry.Point) (sx, sy float64) {
	return p.X*t.Zoom + t.Pan.X, p.Y*t.Zoom + t.Pan.Y
}

// PanBy shifts the view by a screen-space delta.
func (t *Transform) PanBy(dx, dy float64) {
	t.Pan.X += dx
	t.Pan.Y += dy
}

// ZoomAt applies one multiplicative zoom step centered on the screen point
// (sx, sy). The pan offset is re-solved so the canvas point under the cursor
// stays visually stationary.
func (t *Transform) ZoomAt(sx, sy float64, in bool) {
	anchor := t.ScreenToCanvas(sx, sy)

	zoom := t.Zoom * ZoomStep
	if !in {
		zoom = t.Zoom / ZoomStep
	}
	t.Zoom = math.Max(MinZoom, math.Min(MaxZoom, zoom))

	t.Pan.X = sx - anchor.X*t.Zoom
	t.Pan.Y = sy - anchor.Y*t.Zoom
}
