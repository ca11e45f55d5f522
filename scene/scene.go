package scene

import "sketch/geometry"

// Scene is the ordered sequence of shapes on the canvas. Order is z-order:
// later shapes draw on top. Selection brings a shape to the end.
type Scene struct {
	Shapes []*Shape
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Clone creates a deep copy of the scene. Clones used for history must be
// independent of future mutation.
func (sc *Scene) Clone() *Scene {
	if sc == nil {
		return nil
	}
	clone := &Scene{Shapes: make([]*Shape, len(sc.Shapes))}
	for i, s := range sc.Shapes {
		clone.Shapes[i] = s.Clone()
	}
	return clone
}

// Add appends a shape on top of the z-order.
func (sc *Scene) Add(s *Shape) {
	sc.Shapes = append(sc.Shapes, s)
}

// Remove deletes a shape from the scene. It reports whether the shape was
// present.
func (sc *Scene) Remove(s *Shape) bool {
	for i, cur := range sc.Shapes {
		if cur == s {
			sc.Shapes = append(sc.Shapes[:i], sc.Shapes[i+1:]...)
			return true
		}
	}
	return false
}

// BringToFront moves a shape to the end of the z-order.
func (sc *Scene) BringToFront(s *Shape) {
	if len(sc.Shapes) > 0 && sc.Shapes[len(sc.Shapes)-1] == s {
		return
	}
	if sc.Remove(s) {
		sc.Shapes = append(sc.Shapes, s)
	}
}

// HitTest returns the topmost shape under the given canvas point, or nil.
// Shapes are tested back to front.
func (sc *Scene) HitTest(p geometry.Point) *Shape {
	for i := len(sc.Shapes) - 1; i >= 0; i-- {
		if sc.Shapes[i].Contains(p) {
			return sc.Shapes[i]
		}
	}
	return nil
}

// FindByID returns the shape with the given id, or nil if it is no longer in
// the scene. Asynchronous completions look shapes up through this rather than
// holding a reference that deletion or undo may have detached.
func (sc *Scene) FindByID(id int) *Shape {
	for _, s := range sc.Shapes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Len returns the number of shapes in the scene.
func (sc *Scene) Len() int {
	return len(sc.Shapes)
}
