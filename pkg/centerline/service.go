// Package centerline computes walkable skeletons of room polygons.
//
// The network builder only depends on the Service interface; Skeleton is the
// built-in implementation, which approximates the medial axis by rasterizing
// the polygon, thinning it to a one-cell-wide skeleton and vectorizing the
// result back into simplified polylines.
package centerline

import (
	"errors"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// ErrDegenerate is returned for polygons with fewer than three points or no area
var ErrDegenerate = errors.New("polygon is degenerate")

// Service computes the centerline skeleton of a simple polygon.
// Implementations must be side-effect free.
type Service interface {
	Centerline(polygon geometry.Shape) ([]geometry.Shape, error)
}

// Func adapts a plain function to the Service interface
type Func func(polygon geometry.Shape) ([]geometry.Shape, error)

// Centerline calls f
func (f Func) Centerline(polygon geometry.Shape) ([]geometry.Shape, error) {
	return f(polygon)
}

// Options tunes the skeleton computation
type Options struct {
	Extend            bool    // Extend terminal branches to the polygon boundary
	DensifyDistance   float64 // Sampling distance; the raster cell is half of it
	SimplifyTolerance float64 // Douglas-Peucker tolerance applied to every branch
	MinBranchLength   float64 // Terminal branches shorter than this are pruned; <0 picks 2*DensifyDistance, 0 keeps all
}

// DefaultOptions returns the settings the annotation tool uses
func DefaultOptions() Options {
	return Options{
		Extend:            false,
		DensifyDistance:   5,
		SimplifyTolerance: 0.5,
		MinBranchLength:   -1,
	}
}

func (o Options) pruneLength() float64 {
	switch {
	case o.MinBranchLength > 0:
		return o.MinBranchLength
	case o.MinBranchLength < 0:
		return 2 * o.DensifyDistance
	}
	return 0
}
