// Package editor contains the interaction state machine that drives shape
// creation, selection, dragging, resizing, and rotation, together with the
// undo/redo history. All scene mutation happens here; the renderer and the
// geometry kernel only read.
package editor

import (
	"log/slog"

	"sketch/export"
	"sketch/geometry"
	"sketch/scene"
	"sketch/view"
)

// DragThreshold is the screen-space displacement, in pixels, a pointer must
// travel after going down on a shape before a drag starts.
const DragThreshold = 3.0

// PasteOffset is the canvas-space offset applied to pasted shapes so they do
// not exactly overlap their source.
const PasteOffset = 10.0

// Editor is the controller owning the scene, the view transform, the
// interaction state, and the history. It is driven synchronously by pointer
// and command events from one goroutine; the only asynchronous path is image
// decoding, whose completions are handed back in through CompleteImageLoad.
type Editor struct {
	scene    *scene.Scene
	view     *view.Transform
	history  *History
	host     Host
	measurer scene.Measurer

	tool     Tool
	state    State
	selected *scene.Shape

	fill       string // fill applied to newly created shapes; empty = unfilled
	fontFamily string // family for new text shapes

	// Drag-threshold deferral: pointer went down on a shape but the gesture
	// has not started yet.
	pendingDrag bool
	downScreen  geometry.Point
	dragOffset  geometry.Point

	resize *resizeGesture
	rotate *rotateGesture

	lineStart geometry.Point
	lineEnd   geometry.Point

	textEdit *textEditSession

	clipboard *scene.Shape
	loads     chan ImageLoad
	cursor    Cursor
	nextID    int

	exportOpts export.Options
}

// New creates an editor over an empty scene. The host port may be nil for
// headless use; save and image-open requests then become no-ops. The initial
// empty scene is captured as the first history snapshot, so undo never goes
// below an empty canvas.
func New(host Host, measurer scene.Measurer) *Editor {
	e := &Editor{
		scene:      scene.New(),
		view:       view.New(),
		history:    NewHistory(100),
		host:       host,
		measurer:   measurer,
		tool:       ToolSelect,
		state:      StateIdle,
		loads:      make(chan ImageLoad, 16),
		nextID:     1,
		exportOpts: export.DefaultOptions(),
	}
	e.history.SaveState(e.scene)
	return e
}

// Scene returns the live scene. Callers other than the editor must not
// mutate it.
func (e *Editor) Scene() *scene.Scene { return e.scene }

// View returns the view transform shared with the renderer.
func (e *Editor) View() *view.Transform { return e.view }

// Selected returns the selected shape, or nil.
func (e *Editor) Selected() *scene.Shape { return e.selected }

// State returns the current interaction state.
func (e *Editor) State() State { return e.state }

// Tool returns the armed tool.
func (e *Editor) Tool() Tool { return e.tool }

// Cursor returns the pointer glyph hint computed by the last idle move.
func (e *Editor) Cursor() Cursor { return e.cursor }

// LinePreview returns the transient endpoints of an in-progress line draw.
// ok is false unless a line gesture is active.
func (e *Editor) LinePreview() (a, b geometry.Point, ok bool) {
	return e.lineStart, e.lineEnd, e.state == StateDrawingLine
}

// SetTool arms a tool. Switching tools while a line draw, resize, or
// rotation is active cancels the gesture without a history commit.
func (e *Editor) SetTool(t Tool) {
	switch e.state {
	case StateDrawingLine, StateResizing, StateRotating:
		e.cancelGesture()
	}
	e.tool = t
}

// SetFillColor sets the fill for new shapes, and recolors the selected shape
// immediately with a history commit.
func (e *Editor) SetFillColor(hex string) {
	e.fill = hex
	if e.selected != nil && e.state == StateIdle {
		e.selected.Fill = hex
		e.commit()
	}
}

// SetFontFamily sets the font family used for new text shapes.
func (e *Editor) SetFontFamily(family string) {
	e.fontFamily = family
}

// FlipSelectedH mirrors the selected shape horizontally and commits.
func (e *Editor) FlipSelectedH() {
	if e.selected == nil || e.state != StateIdle {
		return
	}
	e.selected.FlipH = !e.selected.FlipH
	e.commit()
}

// FlipSelectedV mirrors the selected shape vertically and commits.
func (e *Editor) FlipSelectedV() {
	if e.selected == nil || e.state != StateIdle {
		return
	}
	e.selected.FlipV = !e.selected.FlipV
	e.commit()
}

// Delete removes the selected shape, cancels any in-flight gesture, and
// commits. It is ignored while a text edit is active.
func (e *Editor) Delete() {
	if e.selected == nil || e.state == StateEditingText {
		return
	}
	e.cancelGesture()
	e.scene.Remove(e.selected)
	e.selected = nil
	e.commit()
}

// Copy clones the selected shape into the single-slot clipboard.
func (e *Editor) Copy() {
	if e.selected == nil {
		return
	}
	e.clipboard = e.selected.Clone()
}

// Paste clones the clipboard contents into the scene, offset so it does not
// exactly overlap, under a fresh identity. The pasted shape becomes the
// selection.
func (e *Editor) Paste() {
	if e.clipboard == nil || e.state == StateEditingText {
		return
	}
	s := e.clipboard.Clone()
	s.ID = e.allocID()
	s.X += PasteOffset
	s.Y += PasteOffset
	if s.Kind == scene.KindLine {
		s.Line.X2 += PasteOffset
		s.Line.Y2 += PasteOffset
	}
	e.scene.Add(s)
	e.selectShape(s)
	if s.Kind == scene.KindImage && s.Image.State == scene.ImageLoading && s.Image.Source != "" {
		e.startImageLoad(s)
	}
	e.commit()
}

// Undo steps the scene back one snapshot. Selection is cleared; it is not
// part of history.
func (e *Editor) Undo() {
	if sc := e.history.Undo(); sc != nil {
		e.cancelGesture()
		e.scene = sc
		e.selected = nil
		e.reloadImages()
	}
}

// Redo reapplies the snapshot an undo stepped away from.
func (e *Editor) Redo() {
	if sc := e.history.Redo(); sc != nil {
		e.cancelGesture()
		e.scene = sc
		e.selected = nil
		e.reloadImages()
	}
}

// HistoryStats returns the history cursor and depth for the status line.
func (e *Editor) HistoryStats() (current, total int) {
	return e.history.Stats()
}

// SetExportOptions configures the raster size and background used by save
// requests.
func (e *Editor) SetExportOptions(opts export.Options) {
	e.exportOpts = opts
}

// commit pushes the current scene onto the undo history. Called after every
// discrete completed action, never on intermediate pointer moves.
func (e *Editor) commit() {
	e.history.SaveState(e.scene)
}

// cancelGesture drops all transient gesture state without committing.
func (e *Editor) cancelGesture() {
	e.state = StateIdle
	e.pendingDrag = false
	e.resize = nil
	e.rotate = nil
}

// selectShape marks a shape selected and brings it to the front of the
// z-order.
func (e *Editor) selectShape(s *scene.Shape) {
	e.selected = s
	e.scene.BringToFront(s)
}

func (e *Editor) clearSelection() {
	e.selected = nil
}

func (e *Editor) allocID() int {
	id := e.nextID
	e.nextID++
	return id
}

// RequestSave runs the save flow: ask the host for a path, rasterize the
// scene in the format implied by the extension, and hand the bytes back to
// the host as a data URL. Dialog cancellation aborts silently; I/O failures
// are reported through the host notice and leave the scene untouched.
func (e *Editor) RequestSave() {
	if e.host == nil {
		return
	}
	res := e.host.ShowSaveDialog([]string{"png", "jpeg"})
	if res.Canceled {
		return
	}

	format := export.FormatFromPath(res.Path)
	exp, err := export.NewExporter(format)
	if err != nil {
		e.host.Notify("export: " + err.Error())
		return
	}
	dataURL, err := exp.Export(e.scene, e.exportOpts)
	if err != nil {
		slog.Warn("export failed", "format", format, "error", err)
		e.host.Notify("export: " + err.Error())
		return
	}
	if err := e.host.WriteFile(res.Path, dataURL); err != nil {
		slog.Warn("write failed", "path", res.Path, "error", err)
		e.host.Notify("save: " + err.Error())
	}
}
