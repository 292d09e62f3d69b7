package geometry

import (
	"math"
	"testing"
)

func TestBoundsContains_EdgesInclusive(t *testing.T) {
	b := Bounds{MinX: -2, MaxX: 3, MinZ: 0, MaxZ: 5}

	cases := []struct {
		name string
		x, z float64
		want bool
	}{
		{"interior", 0.5, 2.5, true},
		{"min corner", -2, 0, true},
		{"max corner", 3, 5, true},
		{"left of min", -2.001, 2, false},
		{"beyond max z", 1, 5.001, false},
	}
	for _, tc := range cases {
		if got := b.Contains(tc.x, tc.z); got != tc.want {
			t.Errorf("%s: Contains(%v,%v) = %v, want %v", tc.name, tc.x, tc.z, got, tc.want)
		}
	}
}

func TestBoundsContains_RejectsNonFinite(t *testing.T) {
	b := Bounds{MinX: -1, MaxX: 1, MinZ: -1, MaxZ: 1}
	if b.Contains(math.NaN(), 0) {
		t.Error("expected NaN x to be outside")
	}
	if b.Contains(0, math.Inf(1)) {
		t.Error("expected +Inf z to be outside")
	}
	if b.ContainsWithin(math.Inf(-1), 0, 0.5) {
		t.Error("expected -Inf x to be outside even with epsilon")
	}
}

func TestBoundsContainsWithin_AbsorbsSeamDrift(t *testing.T) {
	left := Bounds{MinX: -4, MaxX: 0, MinZ: 0, MaxZ: 4}
	right := Bounds{MinX: 0, MaxX: 4, MinZ: 0, MaxZ: 4}

	// A point a hair past the shared seam at x=0 should test inside both
	// rectangles once each is expanded.
	x := 0.0 + 1e-9
	if !left.ContainsWithin(x, 2, 1e-5) {
		t.Errorf("expected left rect to contain seam point with epsilon")
	}
	if !right.ContainsWithin(x, 2, 1e-5) {
		t.Errorf("expected right rect to contain seam point with epsilon")
	}
}

func TestBoundsIsDegenerate(t *testing.T) {
	cases := []struct {
		name string
		b    Bounds
		want bool
	}{
		{"well formed", Bounds{MinX: 0, MaxX: 1, MinZ: 0, MaxZ: 1}, false},
		{"zero width", Bounds{MinX: 1, MaxX: 1, MinZ: 0, MaxZ: 1}, true},
		{"inverted", Bounds{MinX: 2, MaxX: 1, MinZ: 0, MaxZ: 1}, true},
		{"nan corner", Bounds{MinX: math.NaN(), MaxX: 1, MinZ: 0, MaxZ: 1}, true},
	}
	for _, tc := range cases {
		if got := tc.b.IsDegenerate(); got != tc.want {
			t.Errorf("%s: IsDegenerate() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBoundsExpandedAndIntersects(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 2, MinZ: 0, MaxZ: 2}
	e := b.Expanded(0.5)
	if e.MinX != -0.5 || e.MaxX != 2.5 || e.MinZ != -0.5 || e.MaxZ != 2.5 {
		t.Fatalf("Expanded(0.5) = %+v", e)
	}

	other := Bounds{MinX: 2, MaxX: 4, MinZ: 1, MaxZ: 3}
	if !b.Intersects(other) {
		t.Error("expected edge-touching rectangles to intersect")
	}
	far := Bounds{MinX: 5, MaxX: 6, MinZ: 5, MaxZ: 6}
	if b.Intersects(far) {
		t.Error("expected disjoint rectangles not to intersect")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Errorf("Clamp(-1,0,1) = %v", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Clamp(2,0,1) = %v", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp(0.25,0,1) = %v", got)
	}
}
