package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func approxEq(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestLocalWorldRoundTrip(t *testing.T) {
	angles := []float64{0, math.Pi / 6, math.Pi / 2, math.Pi, -math.Pi / 3}
	flips := []struct{ h, v bool }{
		{false, false},
		{true, false},
		{false, true},
		{true, true},
	}
	points := []Point{
		{0, 0}, {10, 0}, {0, -25}, {33, 47}, {-12.5, 8.75},
	}
	center := Pt(100, 60)

	for _, angle := range angles {
		for _, f := range flips {
			for _, p := range points {
				world := WorldPoint(p, center, angle, f.h, f.v)
				back := LocalPoint(world, center, angle, f.h, f.v)
				if !approxEq(back, p) {
					t.Errorf("round trip angle=%.3f flipH=%v flipV=%v: %v -> %v -> %v",
						angle, f.h, f.v, p, world, back)
				}
			}
		}
	}
}

func TestWorldPointComposition(t *testing.T) {
	// The frame composes rotate first, then flip, then translate. For a
	// local point on the +X axis, a 90 degree rotation lands it on +Y, and a
	// horizontal flip afterwards must leave Y alone.
	w := WorldPoint(Pt(10, 0), Pt(0, 0), math.Pi/2, true, false)
	if !approxEq(w, Pt(0, 10)) {
		t.Errorf("rotate then flip: got %v, want (0, 10)", w)
	}

	// Same input with the flip first would give (0, -10); pin the order the
	// other way around too.
	l := LocalPoint(Pt(0, 10), Pt(0, 0), math.Pi/2, true, false)
	if !approxEq(l, Pt(10, 0)) {
		t.Errorf("inverse: got %v, want (10, 0)", l)
	}
}

func TestLocalPointTranslationOnly(t *testing.T) {
	l := LocalPoint(Pt(130, 90), Pt(100, 60), 0, false, false)
	if !approxEq(l, Pt(30, 30)) {
		t.Errorf("identity frame: got %v, want (30, 30)", l)
	}
}

func TestRotateAbout(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		c      Point
		angle  float64
		expect Point
	}{
		{"quarter turn about origin", Pt(1, 0), Pt(0, 0), math.Pi / 2, Pt(0, 1)},
		{"half turn about origin", Pt(1, 0), Pt(0, 0), math.Pi, Pt(-1, 0)},
		{"quarter turn about offset center", Pt(5, 3), Pt(3, 3), math.Pi / 2, Pt(3, 5)},
		{"zero angle", Pt(7, -2), Pt(1, 1), 0, Pt(7, -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.RotateAbout(tt.c, tt.angle)
			if !approxEq(got, tt.expect) {
				t.Errorf("RotateAbout(%v, %v, %.3f) = %v, want %v",
					tt.p, tt.c, tt.angle, got, tt.expect)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	if d := Pt(0, 0).Distance(Pt(3, 4)); math.Abs(d-5) > eps {
		t.Errorf("Distance = %v, want 5", d)
	}
	if got := Pt(1, 2).Add(Pt(3, 4)); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := Pt(1, 2).Sub(Pt(3, 4)); got != Pt(-2, -2) {
		t.Errorf("Sub = %v, want (-2, -2)", got)
	}
}
