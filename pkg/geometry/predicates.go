package geometry

import "math"

// PointNearSegment reports whether p is closer than threshold to the segment ab.
// The projection is clamped to the segment. Zero-length segments are never near.
func PointNearSegment(p, a, b Point, threshold float64) bool {
	d := b.Sub(a)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return false
	}
	t := p.Sub(a).Dot(d) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := a.Add(d.Mul(t))
	return p.Distance(closest) < threshold
}

// PointNearPolyline reports whether p is near any consecutive segment of line
func PointNearPolyline(p Point, line Shape, threshold float64) bool {
	for i := 0; i+1 < len(line); i++ {
		if PointNearSegment(p, line[i], line[i+1], threshold) {
			return true
		}
	}
	return false
}

// PointInPolygon uses ray casting to test whether p is inside polygon.
// When the strict test fails, points within tolerance of an edge count as inside.
func PointInPolygon(p Point, polygon Shape, tolerance float64) bool {
	n := len(polygon)
	if n == 0 {
		return false
	}

	inside := false
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[(i+1)%n]
		// horizontal edges never cross the ray and would divide by zero
		if a.Y == b.Y {
			continue
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	if inside {
		return true
	}

	if tolerance <= 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if PointNearSegment(p, polygon[i], polygon[(i+1)%n], tolerance) {
			return true
		}
	}
	return false
}

// NearestPoint returns the vertex of path closest to p.
// Ties resolve to the first vertex in traversal order; ok is false for an empty path.
func NearestPoint(p Point, path Shape) (nearest Point, ok bool) {
	return NearestPointOnPaths(p, []Shape{path})
}

// NearestPointOnPaths scans every vertex of every path in order and returns the closest one to p
func NearestPointOnPaths(p Point, paths []Shape) (nearest Point, ok bool) {
	minDist := math.Inf(1)
	for _, path := range paths {
		for _, q := range path {
			if d := p.Distance(q); d < minDist {
				minDist = d
				nearest = q
				ok = true
			}
		}
	}
	return nearest, ok
}

// PolygonArea returns the absolute area of polygon using the shoelace formula
func PolygonArea(polygon Shape) float64 {
	n := len(polygon)
	area := 0.0
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(area) / 2
}

// InnermostPolygon returns the index of the smallest-area polygon containing p,
// or -1 when no polygon contains it. Equal areas resolve to the earliest polygon.
func InnermostPolygon(p Point, polygons []Shape) int {
	best := -1
	bestArea := math.Inf(1)
	for i, polygon := range polygons {
		if !PointInPolygon(p, polygon, 0) {
			continue
		}
		if area := PolygonArea(polygon); area < bestArea {
			bestArea = area
			best = i
		}
	}
	return best
}
