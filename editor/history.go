package editor

import "sketch/scene"

// History manages undo/redo as a linear sequence of full scene snapshots
// plus a cursor. Saving while the cursor sits mid-history truncates the
// forward states, which is what invalidates the redo side on a new edit.
type History struct {
	states  []*scene.Scene
	current int
	max     int
}

// NewHistory creates a history manager holding at most max snapshots.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 100
	}
	return &History{
		states:  make([]*scene.Scene, 0, max),
		current: -1,
		max:     max,
	}
}

// SaveState pushes a deep clone of the scene as the newest snapshot.
func (h *History) SaveState(sc *scene.Scene) {
	clone := sc.Clone()

	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, clone)

	if len(h.states) > h.max {
		h.states = h.states[1:]
	} else {
		h.current++
	}
}

// CanUndo returns true if there is an older snapshot to return to.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if an undo has left forward states to reapply.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Undo steps back one snapshot and returns a clone of it, or nil at the
// oldest entry. The entry at position zero is the empty scene captured at
// startup, so undo never goes below an empty canvas.
func (h *History) Undo() *scene.Scene {
	if !h.CanUndo() {
		return nil
	}
	h.current--
	return h.states[h.current].Clone()
}

// Redo steps forward one snapshot and returns a clone of it, or nil if there
// is nothing to redo.
func (h *History) Redo() *scene.Scene {
	if !h.CanRedo() {
		return nil
	}
	h.current++
	return h.states[h.current].Clone()
}

// Clear drops all snapshots.
func (h *History) Clear() {
	h.states = h.states[:0]
	h.current = -1
}

// Stats returns the cursor position (1-based) and total snapshot count.
func (h *History) Stats() (current, total int) {
	return h.current + 1, len(h.states)
}
