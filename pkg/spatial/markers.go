package spatial

import (
	"sort"

	"github.com/asim/quadtree"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// margin around the marker bounds so points on the edge are kept
const margin = 10

// MarkerIndex is a quadtree over marker positions in model space
type MarkerIndex struct {
	tree   *quadtree.QuadTree
	points []geometry.Point
}

// NewMarkerIndex indexes positions. Markers sharing a coordinate share one
// tree point whose data lists their indices, since the quadtree cannot split
// identical points apart.
func NewMarkerIndex(points []geometry.Point) *MarkerIndex {
	bounds := geometry.EmptyBounds()
	for _, p := range points {
		bounds = bounds.Extend(p)
	}
	if bounds.IsEmpty() {
		bounds = geometry.Bounds{}
	}

	center := bounds.Center()
	size := bounds.Size()
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(center.X, center.Y, nil),
		quadtree.NewPoint(size.X/2+margin, size.Y/2+margin, nil),
	)

	idx := &MarkerIndex{tree: quadtree.New(aabb, 0, nil), points: points}
	byPosition := make(map[geometry.Point][]int)
	var order []geometry.Point
	for i, p := range points {
		if _, ok := byPosition[p]; !ok {
			order = append(order, p)
		}
		byPosition[p] = append(byPosition[p], i)
	}
	for _, p := range order {
		idx.tree.Insert(quadtree.NewPoint(p.X, p.Y, byPosition[p]))
	}
	return idx
}

// Within returns the indices of markers at most radius away from p, ascending
func (m *MarkerIndex) Within(p geometry.Point, radius float64) []int {
	if len(m.points) == 0 || radius < 0 {
		return nil
	}
	query := quadtree.NewAABB(
		quadtree.NewPoint(p.X, p.Y, nil),
		quadtree.NewPoint(radius, radius, nil),
	)

	var out []int
	for _, hit := range m.tree.Search(query) {
		indices := hit.Data().([]int)
		if p.Distance(m.points[indices[0]]) <= radius {
			out = append(out, indices...)
		}
	}
	sort.Ints(out)
	return out
}

// First returns the lowest marker index within radius of p, or -1
func (m *MarkerIndex) First(p geometry.Point, radius float64) int {
	hits := m.Within(p, radius)
	if len(hits) == 0 {
		return -1
	}
	return hits[0]
}
