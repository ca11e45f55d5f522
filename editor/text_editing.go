package editor

import (
	"strings"

	"sketch/geometry"
	"sketch/scene"
)

// textEditSession tracks an in-progress inline text edit. When an existing
// shape is being edited it is removed from the scene for the duration and
// held here; cancel restores it unmodified.
type textEditSession struct {
	at       geometry.Point
	original *scene.Shape
}

// TextEditAnchor returns the canvas position of the active text overlay. ok
// is false unless a text edit is active.
func (e *Editor) TextEditAnchor() (geometry.Point, bool) {
	if e.textEdit == nil {
		return geometry.Point{}, false
	}
	return e.textEdit.at, true
}

// TextEditContent returns the initial content for the overlay: the edited
// shape's lines joined by newlines, or empty when creating.
func (e *Editor) TextEditContent() string {
	if e.textEdit == nil || e.textEdit.original == nil {
		return ""
	}
	return strings.Join(e.textEdit.original.Text.Lines, "\n")
}

// EditSelectedText begins editing the selected text shape in place. The
// shape leaves the scene while the overlay is open.
func (e *Editor) EditSelectedText() {
	if e.selected == nil || e.selected.Kind != scene.KindText || e.state != StateIdle {
		return
	}
	s := e.selected
	e.scene.Remove(s)
	e.clearSelection()
	e.beginTextEdit(geometry.Pt(s.X, s.Y), s)
}

func (e *Editor) beginTextEdit(at geometry.Point, original *scene.Shape) {
	e.textEdit = &textEditSession{at: at, original: original}
	e.state = StateEditingText
}

// CommitTextEdit ends the text edit with the overlay's final content. Empty
// content is treated as cancellation. Otherwise the content becomes a new or
// updated text shape, its dimensions are recomputed, and a snapshot is taken.
func (e *Editor) CommitTextEdit(content string) {
	if e.textEdit == nil {
		return
	}
	if strings.TrimSpace(content) == "" {
		e.CancelTextEdit()
		return
	}
	session := e.textEdit
	e.textEdit = nil
	e.state = StateIdle

	lines := strings.Split(content, "\n")
	if session.original != nil {
		s := session.original
		s.Text.Lines = lines
		s.UpdateDimensions(e.measurer)
		e.scene.Add(s)
		e.selectShape(s)
		e.commit()
		return
	}

	s := scene.NewText(e.allocID(), session.at, lines, e.fontFamily)
	s.UpdateDimensions(e.measurer)
	e.scene.Add(s)
	e.selectShape(s)
	e.commit()
	e.tool = ToolSelect
}

// CancelTextEdit discards the overlay. An edited shape is re-inserted
// unmodified; a new creation leaves no trace and no snapshot.
func (e *Editor) CancelTextEdit() {
	if e.textEdit == nil {
		return
	}
	session := e.textEdit
	e.textEdit = nil
	e.state = StateIdle

	if session.original != nil {
		e.scene.Add(session.original)
		e.selectShape(session.original)
	}
}
