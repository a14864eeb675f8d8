package centerline

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Skeleton is the raster medial-axis approximation
type Skeleton struct {
	opts Options
}

// NewSkeleton creates a skeleton service with the given options
func NewSkeleton(opts Options) *Skeleton {
	return &Skeleton{opts: opts}
}

// Options returns the options the service was created with
func (s *Skeleton) Options() Options {
	return s.opts
}

// Centerline returns the skeleton branches of polygon. Branches that meet at
// a junction share the junction coordinate exactly.
func (s *Skeleton) Centerline(polygon geometry.Shape) ([]geometry.Shape, error) {
	ring := toRing(polygon)
	if len(ring) < 4 || geometry.PolygonArea(polygon) == 0 {
		return nil, fmt.Errorf("centerline of %d points: %w", len(polygon), ErrDegenerate)
	}

	g := rasterize(ring, s.opts.DensifyDistance)
	g.thin()

	net := newNetwork(g, g.trace())
	net.prune(s.opts.pruneLength())
	net.join()

	var result []geometry.Shape
	for _, b := range net.alive() {
		ls := net.lineString(b)
		if len(ls) > 2 && s.opts.SimplifyTolerance > 0 {
			ls = simplify.DouglasPeucker(s.opts.SimplifyTolerance).LineString(ls)
		}
		if s.opts.Extend && len(ls) > 1 && !b.closed() {
			if net.degree[b.first()] == 1 {
				ls[0] = extend(ring, ls[1], ls[0])
			}
			if net.degree[b.last()] == 1 {
				ls[len(ls)-1] = extend(ring, ls[len(ls)-2], ls[len(ls)-1])
			}
		}
		result = append(result, fromLineString(ls))
	}
	return result, nil
}

// extend moves end along the direction from->end until it meets the ring
func extend(ring orb.Ring, from, end orb.Point) orb.Point {
	dx, dy := end[0]-from[0], end[1]-from[1]
	if dx == 0 && dy == 0 {
		return end
	}

	best := math.Inf(1)
	for i := 0; i+1 < len(ring); i++ {
		if t, ok := rayHit(end, dx, dy, ring[i], ring[i+1]); ok && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return end
	}
	return orb.Point{end[0] + dx*best, end[1] + dy*best}
}

// rayHit intersects the ray o + t*(dx,dy), t >= 0, with segment a-b
func rayHit(o orb.Point, dx, dy float64, a, b orb.Point) (float64, bool) {
	ex, ey := b[0]-a[0], b[1]-a[1]
	den := dx*ey - dy*ex
	if den == 0 {
		return 0, false
	}
	ox, oy := a[0]-o[0], a[1]-o[1]
	t := (ox*ey - oy*ex) / den
	u := (ox*dy - oy*dx) / den
	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

// toRing converts a shape into a closed orb ring
func toRing(shape geometry.Shape) orb.Ring {
	ring := make(orb.Ring, 0, len(shape)+1)
	for _, p := range shape {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

func fromLineString(ls orb.LineString) geometry.Shape {
	shape := make(geometry.Shape, len(ls))
	for i, p := range ls {
		shape[i] = geometry.Point{X: p[0], Y: p[1]}
	}
	return shape
}
