package view

import (
	"math"
	"math/rand"
	"testing"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

const epsilon = 1e-6

func near(a, b geometry.Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		s := State{
			Scale:  0.01 + rng.Float64()*20,
			Offset: geometry.Point{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000},
		}
		p := geometry.Point{X: rng.Float64()*1000 - 500, Y: rng.Float64()*1000 - 500}

		if got := s.ToModel(s.ToScreen(p)); !near(got, p) {
			t.Fatalf("round trip failed for %+v: expected %v, got %v", s, p, got)
		}
	}
}

func TestZoomAtKeepsPivot(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		s := State{
			Scale:  0.1 + rng.Float64()*5,
			Offset: geometry.Point{X: rng.Float64() * 300, Y: rng.Float64() * 300},
		}
		pivot := geometry.Point{X: rng.Float64() * 800, Y: rng.Float64() * 600}
		factor := 0.05 + rng.Float64()*4

		before := s.ToModel(pivot)
		zoomed := s.ZoomAt(pivot, factor)
		after := zoomed.ToModel(pivot)

		if !near(before, after) {
			t.Fatalf("pivot moved: before %v, after %v (factor %v)", before, after, factor)
		}
		if math.Abs(zoomed.Scale-s.Scale*factor) > epsilon {
			t.Fatalf("scale failed: expected %v, got %v", s.Scale*factor, zoomed.Scale)
		}
	}
}

func TestZoomInOutRestores(t *testing.T) {
	s := State{Scale: 1, Offset: geometry.Point{X: 10, Y: 20}}
	pivot := geometry.Point{X: 400, Y: 300}

	got := s.ZoomAt(pivot, ZoomInFactor).ZoomAt(pivot, ZoomOutFactor)
	if math.Abs(got.Scale-1) > epsilon || !near(got.Offset, s.Offset) {
		t.Errorf("zoom in/out failed: expected %+v, got %+v", s, got)
	}
}

func TestPan(t *testing.T) {
	s := State{Scale: 3, Offset: geometry.Point{X: 1, Y: 1}}
	got := s.Pan(geometry.Point{X: 5, Y: -2})
	if got.Offset != (geometry.Point{X: 6, Y: -1}) || got.Scale != 3 {
		t.Errorf("Pan failed: got %+v", got)
	}
}

func TestFit(t *testing.T) {
	bounds := geometry.Bounds{Min: geometry.Point{X: 0, Y: 0}, Max: geometry.Point{X: 100, Y: 50}}
	s := Fit(bounds, 800, 600, 0)

	if math.Abs(s.Scale-8) > epsilon {
		t.Errorf("Fit scale failed: expected 8, got %v", s.Scale)
	}
	if center := s.ToScreen(bounds.Center()); !near(center, geometry.Point{X: 400, Y: 300}) {
		t.Errorf("Fit center failed: expected (400,300), got %v", center)
	}

	if got := Fit(geometry.EmptyBounds(), 800, 600, 10); got != Identity() {
		t.Errorf("Fit of empty bounds should be identity, got %+v", got)
	}
}
