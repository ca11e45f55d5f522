package editor

import (
	"testing"

	"sketch/scene"
)

func sceneWith(ids ...int) *scene.Scene {
	sc := scene.New()
	for _, id := range ids {
		sc.Add(&scene.Shape{ID: id, Kind: scene.KindRectangle, Rect: &scene.RectData{W: 10, H: 10}})
	}
	return sc
}

func firstID(sc *scene.Scene) int {
	if sc.Len() == 0 {
		return 0
	}
	return sc.Shapes[0].ID
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(10)
	h.SaveState(sceneWith(1))
	h.SaveState(sceneWith(2))
	h.SaveState(sceneWith(3))

	current, total := h.Stats()
	if current != 3 || total != 3 {
		t.Fatalf("Stats = (%d, %d), want (3, 3)", current, total)
	}

	if got := h.Undo(); firstID(got) != 2 {
		t.Errorf("first undo returned id %d, want 2", firstID(got))
	}
	if got := h.Undo(); firstID(got) != 1 {
		t.Errorf("second undo returned id %d, want 1", firstID(got))
	}
	if got := h.Redo(); firstID(got) != 2 {
		t.Errorf("redo returned id %d, want 2", firstID(got))
	}
	if got := h.Redo(); firstID(got) != 3 {
		t.Errorf("second redo returned id %d, want 3", firstID(got))
	}
}

func TestHistoryBoundaries(t *testing.T) {
	h := NewHistory(10)

	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history should allow neither direction")
	}
	if h.Undo() != nil || h.Redo() != nil {
		t.Error("stepping an empty history should return nil")
	}

	h.SaveState(sceneWith())
	if h.CanUndo() {
		t.Error("single snapshot leaves nothing to undo")
	}
	if h.Undo() != nil {
		t.Error("undo at the oldest entry should return nil")
	}
	if h.Redo() != nil {
		t.Error("redo with no forward states should return nil")
	}
}

func TestHistoryNewEditInvalidatesRedo(t *testing.T) {
	h := NewHistory(10)
	h.SaveState(sceneWith(1))
	h.SaveState(sceneWith(2))
	h.SaveState(sceneWith(3))

	h.Undo()
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("two undos should leave redo available")
	}

	h.SaveState(sceneWith(9))
	if h.CanRedo() {
		t.Error("a new save should truncate the redo side")
	}
	if got := h.Undo(); firstID(got) != 1 {
		t.Errorf("undo after truncation returned id %d, want 1", firstID(got))
	}
	if got := h.Redo(); firstID(got) != 9 {
		t.Errorf("redo should reach the new branch, got id %d", firstID(got))
	}
}

func TestHistoryCapacity(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.SaveState(sceneWith(i))
	}

	_, total := h.Stats()
	if total != 3 {
		t.Fatalf("total = %d, want cap at 3", total)
	}
	// Oldest reachable snapshot is now 3.
	h.Undo()
	got := h.Undo()
	if firstID(got) != 3 {
		t.Errorf("oldest snapshot id = %d, want 3", firstID(got))
	}
	if h.CanUndo() {
		t.Error("no snapshots should remain below the oldest")
	}
}

func TestHistorySnapshotsAreIsolated(t *testing.T) {
	h := NewHistory(10)
	live := sceneWith(1)
	h.SaveState(live)

	// Mutating the live scene after saving must not change the snapshot.
	live.Shapes[0].X = 999
	h.SaveState(live)

	old := h.Undo()
	if old.Shapes[0].X != 0 {
		t.Errorf("snapshot X = %v, want 0 from save time", old.Shapes[0].X)
	}

	// Mutating a returned scene must not corrupt the stored snapshot.
	old.Shapes[0].X = -5
	again := h.Redo()
	h.Undo()
	if again.Shapes[0].X != 999 {
		t.Errorf("redo scene X = %v, want 999", again.Shapes[0].X)
	}
}
