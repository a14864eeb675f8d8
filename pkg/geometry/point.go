package geometry

import "math"

// Point represents a 2D point in model space
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point{X: p.X * scalar, Y: p.Y * scalar}
}

// Dot returns the dot product of two points treated as vectors
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Length returns the magnitude of the point treated as a vector
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Midpoint returns the point halfway between p and other
func (p Point) Midpoint(other Point) Point {
	return Point{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// Shape is an ordered sequence of points. Order defines polygon winding or
// polyline traversal and is preserved end-to-end.
type Shape []Point

// Clone returns a copy of the shape
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Bounds returns the axis-aligned bounding box of the shape
func (s Shape) Bounds() Bounds {
	return BoundsOf(s)
}

// Bounds is an axis-aligned bounding box
type Bounds struct {
	Min, Max Point
}

// EmptyBounds returns bounds that contain nothing; Extend grows them
func EmptyBounds() Bounds {
	return Bounds{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// BoundsOf returns the bounding box of the given shapes combined
func BoundsOf(shapes ...Shape) Bounds {
	b := EmptyBounds()
	for _, s := range shapes {
		for _, p := range s {
			b = b.Extend(p)
		}
	}
	return b
}

// Extend returns the bounds grown to include p
func (b Bounds) Extend(p Point) Bounds {
	return Bounds{
		Min: Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// IsEmpty reports whether the bounds contain no points
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Size returns the width and height of the bounds
func (b Bounds) Size() Point {
	if b.IsEmpty() {
		return Point{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center of the bounds
func (b Bounds) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Contains reports whether p lies inside the bounds (inclusive)
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
