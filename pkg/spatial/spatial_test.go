package spatial

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

func square(x0, y0, x1, y1 float64) geometry.Shape {
	return geometry.Shape{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestInnermostNested(t *testing.T) {
	polygons := []geometry.Shape{square(0, 0, 100, 100), square(25, 25, 75, 75)}
	idx := NewSpaceIndex(polygons)

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 1, idx.Innermost(geometry.Point{X: 50, Y: 50}))
	assert.Equal(t, 0, idx.Innermost(geometry.Point{X: 10, Y: 10}))
	assert.Equal(t, -1, idx.Innermost(geometry.Point{X: 150, Y: 50}))
}

func TestInnermostMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	var polygons []geometry.Shape
	for i := 0; i < 60; i++ {
		x, y := rng.Float64()*700, rng.Float64()*500
		w, h := 5+rng.Float64()*150, 5+rng.Float64()*150
		polygons = append(polygons, square(x, y, x+w, y+h))
	}
	// duplicates exercise the earliest-wins tie rule
	polygons = append(polygons, polygons[3].Clone(), nil)

	idx := NewSpaceIndex(polygons)
	for i := 0; i < 2000; i++ {
		p := geometry.Point{X: rng.Float64() * 850, Y: rng.Float64() * 650}
		want := geometry.InnermostPolygon(p, polygons)
		if got := idx.Innermost(p); got != want {
			t.Fatalf("Innermost(%v) = %d, linear scan gives %d", p, got, want)
		}
	}
}

func TestMarkerWithin(t *testing.T) {
	points := []geometry.Point{{X: 10, Y: 10}, {X: 14, Y: 10}, {X: 100, Y: 100}}
	idx := NewMarkerIndex(points)

	assert.Equal(t, []int{0, 1}, idx.Within(geometry.Point{X: 12, Y: 10}, 2))
	assert.Equal(t, 0, idx.First(geometry.Point{X: 12, Y: 10}, 8))
	assert.Equal(t, 2, idx.First(geometry.Point{X: 105, Y: 100}, 8))
	assert.Equal(t, -1, idx.First(geometry.Point{X: 50, Y: 50}, 8))
}

func TestMarkerWithinMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	var points []geometry.Point
	for i := 0; i < 300; i++ {
		points = append(points, geometry.Point{X: rng.Float64() * 800, Y: rng.Float64() * 600})
	}
	idx := NewMarkerIndex(points)

	for i := 0; i < 500; i++ {
		p := geometry.Point{X: rng.Float64() * 800, Y: rng.Float64() * 600}
		radius := rng.Float64() * 40

		var want []int
		for j, q := range points {
			if p.Distance(q) <= radius {
				want = append(want, j)
			}
		}
		assert.Equal(t, want, idx.Within(p, radius))
	}
}

func TestEmptyMarkerIndex(t *testing.T) {
	idx := NewMarkerIndex(nil)
	assert.Equal(t, -1, idx.First(geometry.Point{}, 8))
}

func TestMarkerIndexCoincidentPoints(t *testing.T) {
	points := []geometry.Point{{X: 80, Y: 80}}
	for i := 0; i < 12; i++ {
		points = append(points, geometry.Point{X: 50, Y: 20})
	}
	idx := NewMarkerIndex(points)

	hits := idx.Within(geometry.Point{X: 51, Y: 20}, 8)
	assert.Len(t, hits, 12)
	assert.Equal(t, 1, hits[0])
	assert.Equal(t, 12, hits[11])
	assert.Equal(t, 0, idx.First(geometry.Point{X: 80, Y: 81}, 8))
	assert.Equal(t, -1, idx.First(geometry.Point{X: 300, Y: 300}, 8))
}
