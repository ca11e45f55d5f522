package scene

import (
	"testing"

	"sketch/geometry"
)

func rect(id int, x, y, w, h float64) *Shape {
	return &Shape{ID: id, Kind: KindRectangle, X: x, Y: y, Rect: &RectData{W: w, H: h}}
}

func TestSceneAddRemove(t *testing.T) {
	sc := New()
	a := rect(1, 0, 0, 10, 10)
	b := rect(2, 20, 20, 10, 10)
	sc.Add(a)
	sc.Add(b)

	if sc.Len() != 2 {
		t.Fatalf("Len = %d, want 2", sc.Len())
	}
	if !sc.Remove(a) {
		t.Error("Remove should report the shape was present")
	}
	if sc.Remove(a) {
		t.Error("second Remove should report absence")
	}
	if sc.Len() != 1 || sc.Shapes[0] != b {
		t.Error("wrong shape removed")
	}
}

func TestBringToFront(t *testing.T) {
	sc := New()
	a := rect(1, 0, 0, 10, 10)
	b := rect(2, 0, 0, 10, 10)
	c := rect(3, 0, 0, 10, 10)
	sc.Add(a)
	sc.Add(b)
	sc.Add(c)

	sc.BringToFront(a)
	if sc.Shapes[2] != a {
		t.Error("a should be last after BringToFront")
	}
	if sc.Shapes[0] != b || sc.Shapes[1] != c {
		t.Error("relative order of the others should be preserved")
	}

	// Already frontmost: order unchanged.
	sc.BringToFront(a)
	if sc.Len() != 3 || sc.Shapes[2] != a {
		t.Error("BringToFront on the top shape should be a no-op")
	}
}

func TestHitTestTopmost(t *testing.T) {
	sc := New()
	bottom := rect(1, 0, 0, 100, 100)
	top := rect(2, 25, 25, 50, 50)
	sc.Add(bottom)
	sc.Add(top)

	if hit := sc.HitTest(geometry.Pt(50, 50)); hit != top {
		t.Errorf("overlap should hit the topmost shape, got id %d", hit.ID)
	}
	if hit := sc.HitTest(geometry.Pt(10, 10)); hit != bottom {
		t.Error("point only over the bottom shape should hit it")
	}
	if hit := sc.HitTest(geometry.Pt(500, 500)); hit != nil {
		t.Error("empty space should miss")
	}
}

func TestFindByID(t *testing.T) {
	sc := New()
	a := rect(7, 0, 0, 10, 10)
	sc.Add(a)

	if sc.FindByID(7) != a {
		t.Error("FindByID should return the live shape")
	}
	if sc.FindByID(99) != nil {
		t.Error("unknown id should return nil")
	}
	sc.Remove(a)
	if sc.FindByID(7) != nil {
		t.Error("removed shape should no longer be found")
	}
}

func TestSceneClone(t *testing.T) {
	sc := New()
	sc.Add(rect(1, 0, 0, 10, 10))
	sc.Add(&Shape{ID: 2, Kind: KindLine, X: 0, Y: 0, Line: &LineData{X2: 30, Y2: 30}})

	clone := sc.Clone()
	clone.Shapes[0].X = 999
	clone.Shapes[1].Line.X2 = 999
	clone.Add(rect(3, 0, 0, 5, 5))

	if sc.Shapes[0].X != 0 || sc.Shapes[1].Line.X2 != 30 {
		t.Error("mutating the clone leaked into the original")
	}
	if sc.Len() != 2 {
		t.Error("adding to the clone grew the original")
	}
}

func TestFactoryPlacement(t *testing.T) {
	p := geometry.Pt(300, 200)

	r := NewRectangleAt(1, p)
	if r.Center() != p {
		t.Errorf("rectangle center = %v, want click point %v", r.Center(), p)
	}
	if r.Rect.W != DefaultRectWidth || r.Rect.H != DefaultRectHeight {
		t.Errorf("rectangle extents = %vx%v", r.Rect.W, r.Rect.H)
	}

	c := NewCircleAt(2, p)
	if c.Center() != p || c.Circ.R != DefaultCircleR {
		t.Error("circle should sit on the click point at the default radius")
	}

	d := NewDiamondAt(3, p)
	if d.Kind != KindDiamond || d.Center() != p {
		t.Error("diamond should share the rectangle placement")
	}

	img := NewImage(4, p, "data:image/png;base64,xxxx")
	if img.Image.State != ImageLoading || img.Image.Sized {
		t.Error("new image should start unsized in the loading state")
	}
}
