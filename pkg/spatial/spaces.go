// Package spatial holds lookup indexes that answer the hover, click and
// marker hit queries without scanning every shape.
package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// minExtent keeps degenerate bounding boxes valid for the R-tree
const minExtent = 1e-6

type spaceEntry struct {
	index int
	rect  rtreego.Rect
}

func (e *spaceEntry) Bounds() rtreego.Rect {
	return e.rect
}

// SpaceIndex is an R-tree over the bounding boxes of room polygons
type SpaceIndex struct {
	tree     *rtreego.Rtree
	polygons []geometry.Shape
	areas    []float64
}

// NewSpaceIndex indexes polygons by position. Empty polygons are skipped.
func NewSpaceIndex(polygons []geometry.Shape) *SpaceIndex {
	idx := &SpaceIndex{
		polygons: polygons,
		areas:    make([]float64, len(polygons)),
	}

	var entries []rtreego.Spatial
	for i, polygon := range polygons {
		idx.areas[i] = geometry.PolygonArea(polygon)
		b := polygon.Bounds()
		if b.IsEmpty() {
			continue
		}
		rect, err := rtreego.NewRect(
			rtreego.Point{b.Min.X, b.Min.Y},
			[]float64{extent(b.Max.X - b.Min.X), extent(b.Max.Y - b.Min.Y)},
		)
		if err != nil {
			continue
		}
		entries = append(entries, &spaceEntry{index: i, rect: rect})
	}
	idx.tree = rtreego.NewTree(2, 25, 50, entries...)
	return idx
}

func extent(v float64) float64 {
	if v < minExtent {
		return minExtent
	}
	return v
}

// Candidates returns the indices of polygons whose bounding box contains p, ascending
func (s *SpaceIndex) Candidates(p geometry.Point) []int {
	query := rtreego.Point{p.X, p.Y}.ToRect(minExtent)
	var out []int
	for _, hit := range s.tree.SearchIntersect(query) {
		out = append(out, hit.(*spaceEntry).index)
	}
	sort.Ints(out)
	return out
}

// Innermost returns the smallest polygon containing p, or -1. It gives the
// same answer as geometry.InnermostPolygon over the indexed polygons.
func (s *SpaceIndex) Innermost(p geometry.Point) int {
	best := -1
	for _, i := range s.Candidates(p) {
		if !geometry.PointInPolygon(p, s.polygons[i], 0) {
			continue
		}
		if best < 0 || s.areas[i] < s.areas[best] {
			best = i
		}
	}
	return best
}

// Len returns the number of indexed polygons
func (s *SpaceIndex) Len() int {
	return s.tree.Size()
}
