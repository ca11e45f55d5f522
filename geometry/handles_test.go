package geometry

import (
	"math"
	"testing"
)

func findHandle(handles []Handle, kind HandleKind) (Handle, bool) {
	for _, h := range handles {
		if h.Kind == kind {
			return h, true
		}
	}
	return Handle{}, false
}

func TestBoxHandlesLayout(t *testing.T) {
	center := Pt(100, 80)
	handles := BoxHandles(center, 100, 60, 0, false, false, true, 1)

	if len(handles) != 9 {
		t.Fatalf("expected 8 box handles plus rotate, got %d", len(handles))
	}

	expect := map[HandleKind]Point{
		HandleTopLeft:      Pt(50, 50),
		HandleTopCenter:    Pt(100, 50),
		HandleTopRight:     Pt(150, 50),
		HandleMiddleLeft:   Pt(50, 80),
		HandleMiddleRight:  Pt(150, 80),
		HandleBottomLeft:   Pt(50, 110),
		HandleBottomCenter: Pt(100, 110),
		HandleBottomRight:  Pt(150, 110),
		HandleRotate:       Pt(100, 50 - RotationHandleOffset),
	}
	for kind, want := range expect {
		h, ok := findHandle(handles, kind)
		if !ok {
			t.Errorf("missing handle %v", kind)
			continue
		}
		if !approxEq(h.Point(), want) {
			t.Errorf("handle %v at %v, want %v", kind, h.Point(), want)
		}
	}
}

func TestBoxHandlesNotRotatable(t *testing.T) {
	handles := BoxHandles(Pt(0, 0), 40, 40, 0, false, false, false, 1)
	if len(handles) != 8 {
		t.Fatalf("expected 8 handles without rotate, got %d", len(handles))
	}
	if _, ok := findHandle(handles, HandleRotate); ok {
		t.Error("rotate handle present on a non-rotatable layout")
	}
}

func TestBoxHandlesRotated(t *testing.T) {
	// Quarter turn: the top-center handle moves to the right of the center,
	// offset by the half height.
	center := Pt(100, 80)
	handles := BoxHandles(center, 100, 60, math.Pi/2, false, false, true, 1)

	tc, _ := findHandle(handles, HandleTopCenter)
	if !approxEq(tc.Point(), Pt(130, 80)) {
		t.Errorf("rotated top-center at %v, want (130, 80)", tc.Point())
	}
	mr, _ := findHandle(handles, HandleMiddleRight)
	if !approxEq(mr.Point(), Pt(100, 130)) {
		t.Errorf("rotated middle-right at %v, want (100, 130)", mr.Point())
	}
}

func TestBoxHandlesFlip(t *testing.T) {
	// A horizontal flip mirrors left handles to the right side of the center.
	center := Pt(100, 80)
	handles := BoxHandles(center, 100, 60, 0, true, false, true, 1)

	tl, _ := findHandle(handles, HandleTopLeft)
	if !approxEq(tl.Point(), Pt(150, 50)) {
		t.Errorf("flipped top-left at %v, want (150, 50)", tl.Point())
	}
}

func TestRotateHandleZoomCompensation(t *testing.T) {
	center := Pt(0, 0)
	at1, _ := findHandle(BoxHandles(center, 40, 40, 0, false, false, true, 1), HandleRotate)
	at2, _ := findHandle(BoxHandles(center, 40, 40, 0, false, false, true, 2), HandleRotate)

	if !approxEq(at1.Point(), Pt(0, -20-RotationHandleOffset)) {
		t.Errorf("rotate handle at zoom 1: %v", at1.Point())
	}
	if !approxEq(at2.Point(), Pt(0, -20-RotationHandleOffset/2)) {
		t.Errorf("rotate handle at zoom 2: %v", at2.Point())
	}
}

func TestHandleKindString(t *testing.T) {
	if got := HandleBottomRight.String(); got != "bottom-right" {
		t.Errorf("String() = %q, want %q", got, "bottom-right")
	}
	if got := HandleKind(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}
