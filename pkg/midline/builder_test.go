package midline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gofloor/pkg/centerline"
	"github.com/philipparndt/gofloor/pkg/geometry"
)

func square(x0, y0, x1, y1 float64) geometry.Shape {
	return geometry.Shape{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// horizontal returns a centerline through the vertical middle of the
// polygon bounds with points every 10 units
var horizontal = centerline.Func(func(polygon geometry.Shape) ([]geometry.Shape, error) {
	if geometry.PolygonArea(polygon) == 0 {
		return nil, centerline.ErrDegenerate
	}
	b := polygon.Bounds()
	y := b.Center().Y
	var line geometry.Shape
	for x := b.Min.X; x <= b.Max.X; x += 10 {
		line = append(line, geometry.Point{X: x, Y: y})
	}
	return []geometry.Shape{line}, nil
})

func TestBuildConnectsEntranceAndMarkers(t *testing.T) {
	rooms := Rooms([]geometry.Shape{square(0, 0, 100, 40)})
	entrances := []geometry.Shape{{{X: 30, Y: 0}, {X: 40, Y: 0}}}
	elevators := []geometry.Point{{X: 71, Y: 35}}
	stairs := []geometry.Point{{X: 500, Y: 500}}

	net := NewBuilder(horizontal, DefaultOptions()).Build(rooms, entrances, elevators, stairs)
	require.Len(t, net.Segments, 3)

	assert.Equal(t, KindCenterline, net.Segments[0].Kind)

	door := net.Segments[1]
	assert.Equal(t, KindEntrance, door.Kind)
	assert.Equal(t, geometry.Shape{{X: 35, Y: 0}, {X: 30, Y: 20}}, door.Points)

	lift := net.Segments[2]
	assert.Equal(t, KindElevator, lift.Kind)
	assert.Equal(t, geometry.Shape{{X: 71, Y: 35}, {X: 70, Y: 20}}, lift.Points)

	net.Merge()
	require.Len(t, net.Components, 1)
	assert.Equal(t, []bool{true, true, true}, net.Membership())
}

func TestBuildDoorBetweenTwoRooms(t *testing.T) {
	rooms := Rooms([]geometry.Shape{square(0, 0, 100, 40), square(0, 40, 100, 80)})
	door := []geometry.Shape{{{X: 45, Y: 40}, {X: 55, Y: 40}}}

	net := NewBuilder(horizontal, DefaultOptions()).Build(rooms, door, nil, nil)

	var connectors []Segment
	for _, s := range net.Segments {
		if s.Kind == KindEntrance {
			connectors = append(connectors, s)
		}
	}
	require.Len(t, connectors, 2)
	assert.Equal(t, connectors[0].Points[0], connectors[1].Points[0])
	assert.Equal(t, 0, connectors[0].Space)
	assert.Equal(t, 1, connectors[1].Space)

	// both rooms join through the shared door anchor
	net.Merge()
	assert.Len(t, net.Components, 1)
}

func TestBuildEntranceTolerance(t *testing.T) {
	rooms := Rooms([]geometry.Shape{square(0, 0, 100, 40)})
	outside := []geometry.Shape{{{X: 50, Y: -4}, {X: 50, Y: -4}}}
	farOutside := []geometry.Shape{{{X: 50, Y: -6}, {X: 50, Y: -6}}}

	b := NewBuilder(horizontal, DefaultOptions())
	assert.Len(t, b.Build(rooms, outside, nil, nil).Segments, 2)
	assert.Len(t, b.Build(rooms, farOutside, nil, nil).Segments, 1)
}

func TestBuildSkipsDegenerateRooms(t *testing.T) {
	rooms := Rooms([]geometry.Shape{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}},
		square(0, 0, 40, 40),
	})
	elevators := []geometry.Point{{X: 5, Y: 0}}

	net := NewBuilder(horizontal, DefaultOptions()).Build(rooms, nil, elevators, nil)
	for _, s := range net.Segments {
		assert.Equal(t, 1, s.Space)
	}
}

func TestBuildNoRooms(t *testing.T) {
	net := NewBuilder(horizontal, DefaultOptions()).Build(nil, nil, nil, nil)
	net.Merge()
	assert.Empty(t, net.Segments)
	assert.Empty(t, net.Components)
	assert.Equal(t, Stats{}, net.Stats())
}

func TestStats(t *testing.T) {
	net := NewNetwork([]Segment{
		{Points: seg(0, 0, 10, 0), Kind: KindCenterline},
		{Points: seg(10, 0, 10, 5), Kind: KindEntrance},
		{Points: seg(50, 50, 53, 54), Kind: KindCenterline},
	})
	net.Merge()

	s := net.Stats()
	assert.Equal(t, 3, s.Segments)
	assert.Equal(t, 2, s.Centerlines)
	assert.Equal(t, 1, s.Connectors)
	assert.Equal(t, 2, s.Components)
	assert.Equal(t, 3, s.PrimarySize)
	assert.Equal(t, 2, s.PrimarySegments)
	assert.InDelta(t, 20, s.Length, 1e-9)
	assert.InDelta(t, 15, s.PrimaryLength, 1e-9)
}
