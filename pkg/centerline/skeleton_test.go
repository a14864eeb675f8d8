package centerline

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

func rect(x0, y0, x1, y1 float64) geometry.Shape {
	return geometry.Shape{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestCorridorSkeleton(t *testing.T) {
	corridor := rect(0, 0, 200, 20)
	branches, err := NewSkeleton(DefaultOptions()).Centerline(corridor)
	require.NoError(t, err)
	require.NotEmpty(t, branches)

	total := 0.0
	for _, b := range branches {
		for i, p := range b {
			assert.True(t, geometry.PointInPolygon(p, corridor, 0), "point %v outside corridor", p)
			if i > 0 {
				total += p.Distance(b[i-1])
			}
		}
	}

	// most of the corridor length is covered and the spine runs near y=10
	assert.Greater(t, total, 120.0)
	nearest, ok := geometry.NearestPointOnPaths(geometry.Point{X: 100, Y: 10}, branches)
	require.True(t, ok)
	assert.InDelta(t, 10, nearest.Y, 3)
}

func TestJunctionsAreShared(t *testing.T) {
	// T-shaped room
	tee := geometry.Shape{
		{X: 0, Y: 0}, {X: 150, Y: 0}, {X: 150, Y: 30}, {X: 90, Y: 30},
		{X: 90, Y: 150}, {X: 60, Y: 150}, {X: 60, Y: 30}, {X: 0, Y: 30},
	}
	branches, err := NewSkeleton(DefaultOptions()).Centerline(tee)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(branches), 3)

	endpoints := make(map[geometry.Point]int)
	for _, b := range branches {
		require.NotEmpty(t, b)
		endpoints[b[0]]++
		endpoints[b[len(b)-1]]++
	}

	junction := false
	for _, count := range endpoints {
		if count >= 3 {
			junction = true
		}
	}
	assert.True(t, junction, "expected one coordinate shared by three branch ends, got %v", endpoints)
}

func TestDegeneratePolygons(t *testing.T) {
	svc := NewSkeleton(DefaultOptions())

	_, err := svc.Centerline(geometry.Shape{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.True(t, errors.Is(err, ErrDegenerate))

	_, err = svc.Centerline(geometry.Shape{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}})
	assert.True(t, errors.Is(err, ErrDegenerate))
}

func TestExtendReachesBoundary(t *testing.T) {
	opts := DefaultOptions()
	opts.Extend = true
	corridor := rect(0, 0, 200, 20)

	branches, err := NewSkeleton(opts).Centerline(corridor)
	require.NoError(t, err)

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, b := range branches {
		for _, p := range b {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
		}
	}
	assert.InDelta(t, 0, minX, 1)
	assert.InDelta(t, 200, maxX, 1)
}

func TestPruneLength(t *testing.T) {
	assert.Equal(t, 10.0, DefaultOptions().pruneLength())
	assert.Equal(t, 0.0, Options{DensifyDistance: 5}.pruneLength())
	assert.Equal(t, 3.0, Options{MinBranchLength: 3}.pruneLength())
}

func TestFuncAdapter(t *testing.T) {
	var svc Service = Func(func(polygon geometry.Shape) ([]geometry.Shape, error) {
		return []geometry.Shape{polygon[:2]}, nil
	})
	got, err := svc.Centerline(rect(0, 0, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []geometry.Shape{{{X: 0, Y: 0}, {X: 1, Y: 0}}}, got)
}
