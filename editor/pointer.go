package editor

import (
	"math"

	"sketch/geometry"
	"sketch/scene"
)

// resizeGesture captures the shape geometry at gesture start. The resize math
// always runs against this snapshot, never the live shape, so the handle
// anchoring stays stable across the whole drag.
type resizeGesture struct {
	shape    *scene.Shape
	kind     geometry.HandleKind
	box      geometry.Box
	center   geometry.Point
	angle    float64
	radius   float64
	fontSize float64
}

// rotateGesture accumulates incremental pointer angle deltas about the
// shape's center, so multi-turn rotation stays continuous.
type rotateGesture struct {
	shape  *scene.Shape
	center geometry.Point
	prev   float64
}

// PointerDown handles a pointer press at screen coordinates.
func (e *Editor) PointerDown(sx, sy float64) {
	if e.state != StateIdle {
		return
	}
	p := e.view.ScreenToCanvas(sx, sy)

	// Handles win over everything else; no drag-threshold logic applies.
	if e.selected != nil {
		if kind, ok := e.handleAt(sx, sy); ok {
			e.scene.BringToFront(e.selected)
			if kind == geometry.HandleRotate {
				e.beginRotate(p)
			} else {
				e.beginResize(kind)
			}
			return
		}
	}

	if e.tool == ToolLine {
		e.state = StateDrawingLine
		e.lineStart = p
		e.lineEnd = p
		return
	}

	if hit := e.scene.HitTest(p); hit != nil {
		e.selectShape(hit)
		e.pendingDrag = true
		e.downScreen = geometry.Pt(sx, sy)
		return
	}

	// Empty space: the armed tool decides.
	switch e.tool {
	case ToolRectangle:
		e.placeShape(scene.NewRectangleAt(e.allocID(), p))
	case ToolCircle:
		e.placeShape(scene.NewCircleAt(e.allocID(), p))
	case ToolDiamond:
		e.placeShape(scene.NewDiamondAt(e.allocID(), p))
	case ToolText:
		e.beginTextEdit(p, nil)
	case ToolImage:
		e.openImage(p)
	default:
		e.clearSelection()
	}
}

// PointerMove handles pointer motion at screen coordinates.
func (e *Editor) PointerMove(sx, sy float64) {
	p := e.view.ScreenToCanvas(sx, sy)

	switch e.state {
	case StateIdle:
		if e.pendingDrag && e.selected != nil {
			if e.downScreen.Distance(geometry.Pt(sx, sy)) > DragThreshold {
				e.state = StateDragging
				e.dragOffset = geometry.Pt(e.selected.X-p.X, e.selected.Y-p.Y)
			}
			return
		}
		e.cursor = e.cursorAt(sx, sy, p)

	case StateDragging:
		e.moveSelected(p.Add(e.dragOffset))

	case StateResizing:
		e.applyResize(p)

	case StateRotating:
		a := math.Atan2(p.Y-e.rotate.center.Y, p.X-e.rotate.center.X)
		e.rotate.shape.Angle += a - e.rotate.prev
		e.rotate.prev = a

	case StateDrawingLine:
		e.lineEnd = p
	}
}

// PointerUp handles pointer release at screen coordinates.
func (e *Editor) PointerUp(sx, sy float64) {
	switch e.state {
	case StateDragging, StateResizing, StateRotating:
		e.resize = nil
		e.rotate = nil
		e.state = StateIdle
		e.commit()

	case StateDrawingLine:
		e.state = StateIdle
		if e.lineStart != e.lineEnd {
			s := scene.NewLine(e.allocID(), e.lineStart, e.lineEnd)
			e.scene.Add(s)
			e.selectShape(s)
			e.commit()
			e.tool = ToolSelect
		}

	default:
		e.pendingDrag = false
	}
	e.pendingDrag = false
}

// PointerLeave cancels the in-progress gesture without a history commit when
// the pointer leaves the canvas. Text editing survives; its overlay lives
// outside the canvas bounds.
func (e *Editor) PointerLeave() {
	if e.state == StateEditingText {
		return
	}
	e.cancelGesture()
}

func (e *Editor) beginRotate(p geometry.Point) {
	c := e.selected.Center()
	e.rotate = &rotateGesture{
		shape:  e.selected,
		center: c,
		prev:   math.Atan2(p.Y-c.Y, p.X-c.X),
	}
	e.state = StateRotating
}

func (e *Editor) beginResize(kind geometry.HandleKind) {
	s := e.selected
	g := &resizeGesture{shape: s, kind: kind, center: s.Center(), angle: s.Angle}
	switch s.Kind {
	case scene.KindRectangle, scene.KindDiamond:
		g.box = geometry.Box{X: s.X, Y: s.Y, W: s.Rect.W, H: s.Rect.H}
	case scene.KindCircle:
		g.radius = s.Circ.R
	case scene.KindText:
		g.box = geometry.Box{X: s.X, Y: s.Y, W: s.Text.W, H: s.Text.H}
		g.fontSize = s.Text.Size
		g.angle = 0
	case scene.KindImage:
		g.box = geometry.Box{X: s.X, Y: s.Y, W: s.Image.W, H: s.Image.H}
	default:
		// Lines expose no handles; nothing to resize.
		return
	}
	e.resize = g
	e.state = StateResizing
}

func (e *Editor) applyResize(mouse geometry.Point) {
	g := e.resize
	s := g.shape
	switch s.Kind {
	case scene.KindRectangle, scene.KindDiamond:
		b := geometry.ResizeBox(g.box, g.center, g.angle, g.kind, mouse)
		s.X, s.Y, s.Rect.W, s.Rect.H = b.X, b.Y, b.W, b.H

	case scene.KindCircle:
		s.Circ.R = geometry.ResizeCircle(g.center, g.angle, g.kind, mouse)

	case scene.KindText:
		// Font size follows the height change; the real extents then come
		// back out of the font metrics.
		b := geometry.ResizeBox(g.box, g.center, 0, g.kind, mouse)
		if g.box.H > 0 {
			size := g.fontSize * b.H / g.box.H
			s.Text.Size = math.Max(4, size)
		}
		s.X, s.Y = b.X, b.Y
		s.UpdateDimensions(e.measurer)

	case scene.KindImage:
		b := geometry.ResizeBox(g.box, g.center, g.angle, g.kind, mouse)
		s.X, s.Y, s.Image.W, s.Image.H = b.X, b.Y, b.W, b.H
		s.Image.Sized = true
	}
}

// moveSelected drags the selected shape's anchor; a line moves both
// endpoints, preserving its delta vector.
func (e *Editor) moveSelected(anchor geometry.Point) {
	s := e.selected
	if s == nil {
		return
	}
	dx := anchor.X - s.X
	dy := anchor.Y - s.Y
	s.X = anchor.X
	s.Y = anchor.Y
	if s.Kind == scene.KindLine {
		s.Line.X2 += dx
		s.Line.Y2 += dy
	}
}

// placeShape inserts a tool-created shape, selects it, commits, and re-arms
// the select tool.
func (e *Editor) placeShape(s *scene.Shape) {
	s.Fill = e.fill
	e.scene.Add(s)
	e.selectShape(s)
	e.commit()
	e.tool = ToolSelect
}

// handleAt finds the selected shape's handle whose screen-space hit box
// contains (sx, sy). Handle hit boxes are constant screen size.
func (e *Editor) handleAt(sx, sy float64) (geometry.HandleKind, bool) {
	for _, h := range e.selected.Handles(e.view.Zoom) {
		hx, hy := e.view.CanvasToScreen(h.Point())
		if math.Abs(sx-hx) <= geometry.HandleSize && math.Abs(sy-hy) <= geometry.HandleSize {
			return h.Kind, true
		}
	}
	return geometry.HandleNone, false
}

// cursorAt chooses the idle-state cursor glyph: handle cursors first, then
// the move cursor over shapes, then the armed tool's cursor.
func (e *Editor) cursorAt(sx, sy float64, p geometry.Point) Cursor {
	if e.selected != nil {
		if kind, ok := e.handleAt(sx, sy); ok {
			if kind == geometry.HandleRotate {
				return CursorRotate
			}
			return CursorResize
		}
	}
	if e.scene.HitTest(p) != nil {
		return CursorMove
	}
	switch e.tool {
	case ToolText:
		return CursorText
	case ToolRectangle, ToolCircle, ToolDiamond, ToolLine:
		return CursorCrosshair
	default:
		return CursorDefault
	}
}
