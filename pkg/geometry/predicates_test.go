package geometry

import (
	"math"
	"testing"
)

func square(x0, y0, x1, y1 float64) Shape {
	return Shape{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestPointInPolygon(t *testing.T) {
	sq := square(0, 0, 10, 10)

	tests := []struct {
		name      string
		p         Point
		tolerance float64
		want      bool
	}{
		{"center", Point{5, 5}, 0, true},
		{"outside", Point{15, 5}, 0, false},
		{"on edge with tolerance", Point{10, 5}, 2, true},
		{"near edge outside tolerance", Point{13, 5}, 2, false},
		{"just outside within tolerance", Point{11, 5}, 2, true},
		{"below", Point{5, -1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(tt.p, sq, tt.tolerance); got != tt.want {
				t.Errorf("PointInPolygon(%v) failed: expected %v, got %v", tt.p, tt.want, got)
			}
		})
	}
}

func TestPointInPolygonEmpty(t *testing.T) {
	if PointInPolygon(Point{0, 0}, nil, 10) {
		t.Error("empty polygon should contain nothing")
	}
}

func TestPointInPolygonConcave(t *testing.T) {
	// L-shaped room
	l := Shape{{0, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 20}, {0, 20}}
	if !PointInPolygon(Point{5, 15}, l, 0) {
		t.Error("expected point in the vertical arm to be inside")
	}
	if PointInPolygon(Point{15, 15}, l, 0) {
		t.Error("expected point in the notch to be outside")
	}
}

func TestPointNearSegment(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}

	if !PointNearSegment(Point{5, 1}, a, b, 2) {
		t.Error("expected point above middle to be near")
	}
	if PointNearSegment(Point{5, 2}, a, b, 2) {
		t.Error("distance equal to threshold must not count as near")
	}
	// projection is clamped to the segment end
	if PointNearSegment(Point{12, 0}, a, b, 1.5) {
		t.Error("expected point beyond the end to be far")
	}
	if !PointNearSegment(Point{11, 0}, a, b, 1.5) {
		t.Error("expected point just beyond the end to be near")
	}
	if PointNearSegment(Point{0, 0}, a, a, 10) {
		t.Error("zero-length segment must be skipped")
	}
}

func TestPointNearPolyline(t *testing.T) {
	line := Shape{{0, 0}, {10, 0}, {10, 10}}
	if !PointNearPolyline(Point{11, 5}, line, 2) {
		t.Error("expected point near second segment")
	}
	if PointNearPolyline(Point{5, 5}, line, 2) {
		t.Error("expected point away from both segments")
	}
	if PointNearPolyline(Point{0, 0}, Shape{{0, 0}}, 2) {
		t.Error("single point polyline has no segments")
	}
}

func TestNearestPoint(t *testing.T) {
	path := Shape{{0, 0}, {10, 0}, {20, 0}}
	got, ok := NearestPoint(Point{12, 3}, path)
	if !ok || got != (Point{10, 0}) {
		t.Errorf("NearestPoint failed: expected (10,0), got %v (ok=%v)", got, ok)
	}

	// tie resolves to first in traversal order
	got, _ = NearestPoint(Point{5, 0}, path)
	if got != (Point{0, 0}) {
		t.Errorf("NearestPoint tie failed: expected (0,0), got %v", got)
	}

	if _, ok := NearestPoint(Point{1, 1}, nil); ok {
		t.Error("expected no result for empty path")
	}
}

func TestNearestPointOnPaths(t *testing.T) {
	paths := []Shape{
		{{0, 0}, {1, 0}},
		{{50, 50}, {7, 7}},
	}
	got, ok := NearestPointOnPaths(Point{6, 6}, paths)
	if !ok || got != (Point{7, 7}) {
		t.Errorf("NearestPointOnPaths failed: expected (7,7), got %v", got)
	}
}

func TestPolygonArea(t *testing.T) {
	if area := PolygonArea(square(0, 0, 10, 10)); math.Abs(area-100) > 1e-10 {
		t.Errorf("Area failed: expected 100, got %v", area)
	}

	// winding does not change the result
	cw := Shape{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	if area := PolygonArea(cw); math.Abs(area-100) > 1e-10 {
		t.Errorf("Clockwise area failed: expected 100, got %v", area)
	}

	tri := Shape{{0, 0}, {3, 0}, {0, 4}}
	if area := PolygonArea(tri); math.Abs(area-6) > 1e-10 {
		t.Errorf("Triangle area failed: expected 6, got %v", area)
	}
}

func TestInnermostPolygon(t *testing.T) {
	outer := square(0, 0, 100, 100)
	inner := square(25, 25, 75, 75)

	if got := InnermostPolygon(Point{50, 50}, []Shape{outer, inner}); got != 1 {
		t.Errorf("expected inner square (1), got %d", got)
	}
	// order does not matter
	if got := InnermostPolygon(Point{50, 50}, []Shape{inner, outer}); got != 0 {
		t.Errorf("expected inner square (0), got %d", got)
	}
	if got := InnermostPolygon(Point{10, 10}, []Shape{outer, inner}); got != 0 {
		t.Errorf("expected outer square (0), got %d", got)
	}
	if got := InnermostPolygon(Point{200, 200}, []Shape{outer, inner}); got != -1 {
		t.Errorf("expected no polygon, got %d", got)
	}
}
