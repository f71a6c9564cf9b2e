package geometry

import (
	"testing"

	"pgregory.net/rapid"
)

func TestOverlapsEdgeContactIsNotOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 2, Height: 2}
	b := Rect{X: 2, Y: 0, Width: 2, Height: 2}
	if Overlaps(a, b) {
		t.Error("rectangles touching only at an edge must not be reported as overlapping")
	}
}

func TestOverlapsInterior(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 2, Height: 2}
	b := Rect{X: 1, Y: 1, Width: 2, Height: 2}
	if !Overlaps(a, b) {
		t.Error("expected overlapping interiors to be detected")
	}
}

func TestIsAdjacentSharedEdge(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 2, Height: 2}
	b := Rect{X: 2, Y: 0, Width: 2, Height: 2}
	if !IsAdjacent(a, b) {
		t.Error("expected rectangles sharing a full edge to be adjacent")
	}
}

func TestIsAdjacentCornerOnlyIsNotAdjacent(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 2, Height: 2}
	b := Rect{X: 2, Y: 2, Width: 2, Height: 2}
	if IsAdjacent(a, b) {
		t.Error("rectangles touching only at a corner must not be reported as adjacent")
	}
}

func TestContains(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	inner := Rect{X: 1, Y: 1, Width: 5, Height: 5}
	if !Contains(outer, inner) {
		t.Error("expected inner rect to be contained")
	}
	outOfBounds := Rect{X: 8, Y: 8, Width: 5, Height: 5}
	if Contains(outer, outOfBounds) {
		t.Error("expected rect extending past the boundary to not be contained")
	}
}

func TestTouchesExterior(t *testing.T) {
	boundary := Boundary{Width: 10, Height: 10}.Rect()
	onEdge := Rect{X: 0, Y: 2, Width: 3, Height: 3}
	if !TouchesExterior(onEdge, boundary) {
		t.Error("expected rect flush with the left edge to touch exterior")
	}
	interior := Rect{X: 2, Y: 2, Width: 3, Height: 3}
	if TouchesExterior(interior, boundary) {
		t.Error("expected interior rect to not touch exterior")
	}
}

func rapidRect(t *rapid.T, label string) Rect {
	w := rapid.IntRange(1, 20).Draw(t, label+"_w")
	h := rapid.IntRange(1, 20).Draw(t, label+"_h")
	x := rapid.IntRange(-20, 20).Draw(t, label+"_x")
	y := rapid.IntRange(-20, 20).Draw(t, label+"_y")
	return Rect{
		X:      float64(x) * GridStep,
		Y:      float64(y) * GridStep,
		Width:  float64(w) * GridStep,
		Height: float64(h) * GridStep,
	}
}

func TestPropertyOverlapsIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapidRect(t, "a")
		b := rapidRect(t, "b")
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("Overlaps(%v, %v) != Overlaps(%v, %v)", a, b, b, a)
		}
	})
}

func TestPropertyIsAdjacentIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapidRect(t, "a")
		b := rapidRect(t, "b")
		if IsAdjacent(a, b) != IsAdjacent(b, a) {
			t.Fatalf("IsAdjacent(%v, %v) != IsAdjacent(%v, %v)", a, b, b, a)
		}
	})
}

func TestPropertyOverlapsAndAdjacentAreExclusive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapidRect(t, "a")
		b := rapidRect(t, "b")
		if Overlaps(a, b) && IsAdjacent(a, b) {
			t.Fatalf("rects %v and %v reported as both overlapping and adjacent", a, b)
		}
	})
}
