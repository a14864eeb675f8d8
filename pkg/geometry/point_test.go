package geometry

import (
	"math"
	"testing"
)

func TestPointAddSub(t *testing.T) {
	p1 := NewPoint(1, 2)
	p2 := NewPoint(4, 6)

	if got := p1.Add(p2); got != NewPoint(5, 8) {
		t.Errorf("Add failed: expected (5,8), got %v", got)
	}
	if got := p2.Sub(p1); got != NewPoint(3, 4) {
		t.Errorf("Sub failed: expected (3,4), got %v", got)
	}
}

func TestPointDistance(t *testing.T) {
	d := NewPoint(0, 0).Distance(NewPoint(3, 4))
	if math.Abs(d-5) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", d)
	}
}

func TestPointMidpoint(t *testing.T) {
	if got := NewPoint(0, 0).Midpoint(NewPoint(10, 4)); got != NewPoint(5, 2) {
		t.Errorf("Midpoint failed: expected (5,2), got %v", got)
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(Shape{{1, 5}, {3, 2}}, Shape{{-1, 7}})
	if b.Min != NewPoint(-1, 2) || b.Max != NewPoint(3, 7) {
		t.Errorf("BoundsOf failed: got %+v", b)
	}
	if b.Size() != NewPoint(4, 5) {
		t.Errorf("Size failed: got %v", b.Size())
	}
	if !b.Contains(NewPoint(0, 3)) {
		t.Error("expected bounds to contain (0,3)")
	}
}

func TestEmptyBounds(t *testing.T) {
	b := BoundsOf()
	if !b.IsEmpty() {
		t.Error("expected empty bounds")
	}
	if b.Size() != (Point{}) {
		t.Errorf("expected zero size for empty bounds, got %v", b.Size())
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{{1, 1}, {2, 2}}
	c := s.Clone()
	c[0] = Point{9, 9}
	if s[0] != (Point{1, 1}) {
		t.Error("Clone must not share backing storage")
	}
	if Shape(nil).Clone() != nil {
		t.Error("Clone of nil must be nil")
	}
}
