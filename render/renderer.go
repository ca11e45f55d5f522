// Package render draws a scene through the view transform onto a gg drawing
// context. Rendering is a pure function of scene, view, and selection state;
// it owns no state of its own beyond the font catalog it measures text with.
package render

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"sketch/fonts"
	"sketch/geometry"
	"sketch/scene"
	"sketch/view"
)

// LinePreview is the transient dashed segment shown while a line is being
// drawn; no shape exists in the scene yet.
type LinePreview struct {
	A, B geometry.Point
}

// Renderer draws scenes. The font catalog may be nil, in which case text
// shapes render as outline boxes.
type Renderer struct {
	fonts *fonts.Catalog
}

// New creates a renderer using the given font catalog.
func New(cat *fonts.Catalog) *Renderer {
	return &Renderer{fonts: cat}
}

// Draw renders the whole scene in z-order, then the line preview, then the
// selection decoration. The caller clears the context first; stroke widths
// and handle geometry are divided by zoom so they stay constant on screen.
func (r *Renderer) Draw(dc *gg.Context, sc *scene.Scene, vt *view.Transform, selected *scene.Shape, preview *LinePreview) {
	dc.Push()
	dc.Translate(vt.Pan.X, vt.Pan.Y)
	dc.Scale(vt.Zoom, vt.Zoom)

	for _, s := range sc.Shapes {
		r.drawShape(dc, s, vt.Zoom)
	}

	if preview != nil {
		dc.SetColor(strokeColor)
		dc.SetLineWidth(2 / vt.Zoom)
		dc.SetDash(6/vt.Zoom, 4/vt.Zoom)
		dc.DrawLine(preview.A.X, preview.A.Y, preview.B.X, preview.B.Y)
		dc.Stroke()
		dc.ClearDash()
	}

	if selected != nil {
		r.drawSelection(dc, selected, vt.Zoom)
	}

	dc.Pop()
}

// pushFrame sets up a shape's local frame: translate to the center, apply
// flip, then rotation, in the same order the hit-test inverts.
func pushFrame(dc *gg.Context, s *scene.Shape) {
	c := s.Center()
	sx, sy := 1.0, 1.0
	if s.FlipH {
		sx = -1
	}
	if s.FlipV {
		sy = -1
	}
	dc.Push()
	dc.Translate(c.X, c.Y)
	dc.Scale(sx, sy)
	dc.Rotate(s.Angle)
}

func (r *Renderer) drawShape(dc *gg.Context, s *scene.Shape, zoom float64) {
	switch s.Kind {
	case scene.KindRectangle:
		pushFrame(dc, s)
		w2, h2 := s.Rect.W/2, s.Rect.H/2
		dc.DrawRectangle(-w2, -h2, s.Rect.W, s.Rect.H)
		r.fillStroke(dc, s.Fill, zoom)
		dc.Pop()

	case scene.KindCircle:
		pushFrame(dc, s)
		dc.DrawCircle(0, 0, s.Circ.R)
		r.fillStroke(dc, s.Fill, zoom)
		dc.Pop()

	case scene.KindDiamond:
		pushFrame(dc, s)
		w2, h2 := s.Rect.W/2, s.Rect.H/2
		dc.MoveTo(0, -h2)
		dc.LineTo(w2, 0)
		dc.LineTo(0, h2)
		dc.LineTo(-w2, 0)
		dc.ClosePath()
		r.fillStroke(dc, s.Fill, zoom)
		dc.Pop()

	case scene.KindLine:
		a, b := s.Endpoints()
		dc.SetColor(strokeColor)
		dc.SetLineWidth(2 / zoom)
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()

	case scene.KindText:
		r.drawText(dc, s, zoom)

	case scene.KindImage:
		r.drawImage(dc, s, zoom)
	}
}

// fillStroke paints the current path: optional fill, then the fixed border.
func (r *Renderer) fillStroke(dc *gg.Context, fill string, zoom float64) {
	if col, ok := ParseFill(fill); ok {
		dc.SetColor(col)
		dc.FillPreserve()
	}
	dc.SetColor(strokeColor)
	dc.SetLineWidth(2 / zoom)
	dc.Stroke()
}

func (r *Renderer) drawText(dc *gg.Context, s *scene.Shape, zoom float64) {
	td := s.Text
	var face text.Face
	if r.fonts != nil {
		if f, err := r.fonts.Face(td.Family, td.Size, td.Bold, td.Italic); err == nil {
			face = f
		}
	}
	if face == nil {
		// No usable font: keep the shape visible and selectable.
		dc.SetColor(placeholderCol)
		dc.SetLineWidth(1 / zoom)
		dc.DrawRectangle(s.X, s.Y, td.W, td.H)
		dc.Stroke()
		return
	}

	metrics := face.Metrics()
	lineHeight := metrics.LineHeight()
	dc.SetFont(face)
	dc.SetColor(strokeColor)
	for i, line := range td.Lines {
		x := s.X
		switch td.Align {
		case "center":
			x += (td.W - face.Advance(line)) / 2
		case "right":
			x += td.W - face.Advance(line)
		}
		baseline := s.Y + metrics.Ascent + float64(i)*lineHeight
		dc.DrawString(line, x, baseline)
		if td.Underline {
			dc.SetLineWidth(td.Size / 14)
			dc.DrawLine(x, baseline+2, x+face.Advance(line), baseline+2)
			dc.Stroke()
		}
	}
}

func (r *Renderer) drawImage(dc *gg.Context, s *scene.Shape, zoom float64) {
	im := s.Image
	pushFrame(dc, s)
	defer dc.Pop()
	w2, h2 := im.W/2, im.H/2

	switch im.State {
	case scene.ImageLoaded:
		if im.Bitmap != nil {
			buf := gg.ImageBufFromImage(im.Bitmap)
			dc.DrawImageEx(buf, gg.DrawImageOptions{
				X:         -w2,
				Y:         -h2,
				DstWidth:  im.W,
				DstHeight: im.H,
			})
			return
		}
		fallthrough

	case scene.ImageLoading:
		dc.SetColor(placeholderCol)
		dc.SetLineWidth(1 / zoom)
		dc.SetDash(4/zoom, 4/zoom)
		dc.DrawRectangle(-w2, -h2, im.W, im.H)
		dc.Stroke()
		dc.ClearDash()

	case scene.ImageError:
		dc.SetColor(errorColor)
		dc.SetLineWidth(1.5 / zoom)
		dc.DrawRectangle(-w2, -h2, im.W, im.H)
		dc.Stroke()
		dc.DrawLine(-w2, -h2, w2, h2)
		dc.Stroke()
		dc.DrawLine(-w2, h2, w2, -h2)
		dc.Stroke()
	}
}

// drawSelection draws the highlight outline in the shape's own transformed
// frame, then the handles at constant screen size.
func (r *Renderer) drawSelection(dc *gg.Context, s *scene.Shape, zoom float64) {
	dc.SetColor(selectionSoft)
	dc.SetLineWidth(1.5 / zoom)

	switch s.Kind {
	case scene.KindLine:
		a, b := s.Endpoints()
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
		// Endpoint markers instead of handles; lines only drag whole.
		for _, p := range []geometry.Point{a, b} {
			dc.DrawCircle(p.X, p.Y, geometry.HandleSize/2/zoom)
			dc.SetColor(handleFill)
			dc.FillPreserve()
			dc.SetColor(handleBorder)
			dc.Stroke()
		}
		return

	case scene.KindText:
		dc.DrawRectangle(s.X, s.Y, s.Text.W, s.Text.H)
		dc.Stroke()

	default:
		pushFrame(dc, s)
		w, h := boxExtents(s)
		dc.DrawRectangle(-w/2, -h/2, w, h)
		dc.Stroke()
		dc.Pop()
	}

	half := geometry.HandleSize / 2 / zoom
	for _, hd := range s.Handles(zoom) {
		if hd.Kind == geometry.HandleRotate {
			dc.DrawCircle(hd.X, hd.Y, half)
		} else {
			dc.DrawRectangle(hd.X-half, hd.Y-half, 2*half, 2*half)
		}
		dc.SetColor(handleFill)
		dc.FillPreserve()
		dc.SetColor(handleBorder)
		dc.SetLineWidth(1 / zoom)
		dc.Stroke()
	}
}

func boxExtents(s *scene.Shape) (w, h float64) {
	switch s.Kind {
	case scene.KindRectangle, scene.KindDiamond:
		return s.Rect.W, s.Rect.H
	case scene.KindCircle:
		return 2 * s.Circ.R, 2 * s.Circ.R
	case scene.KindImage:
		return s.Image.W, s.Image.H
	default:
		return 0, 0
	}
}
