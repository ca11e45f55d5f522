package editor

// Tool is the currently armed creation tool. ToolSelect is the default; shape
// tools re-arm ToolSelect after placing their shape.
type Tool int

const (
	ToolSelect Tool = iota
	ToolRectangle
	ToolCircle
	ToolDiamond
	ToolLine
	ToolText
	ToolImage
)

// String returns the tool name for display.
func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolDiamond:
		return "diamond"
	case ToolLine:
		return "line"
	case ToolText:
		return "text"
	case ToolImage:
		return "image"
	default:
		return "unknown"
	}
}

// State is the current interaction state. The states are mutually exclusive;
// at most one gesture is active at a time.
type State int

const (
	StateIdle State = iota
	StateDrawingLine
	StateDragging
	StateResizing
	StateRotating
	StateEditingText
)

// String returns the state name for display.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateDrawingLine:
		return "DRAWING-LINE"
	case StateDragging:
		return "DRAGGING"
	case StateResizing:
		return "RESIZING"
	case StateRotating:
		return "ROTATING"
	case StateEditingText:
		return "EDITING-TEXT"
	default:
		return "UNKNOWN"
	}
}

// Cursor is the pointer glyph hint the shell should show, chosen from
// hit-testing in idle state: handles win over shapes, shapes over tools.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResize
	CursorRotate
	CursorCrosshair
	CursorText
)
