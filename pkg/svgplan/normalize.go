package svgplan

import (
	"math"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Normalize scales every shape of the plan into its box. The maximum x and y
// are taken over all shapes combined; by default each axis is scaled
// independently so the plan fills the box. Coordinates are truncated to whole
// display units.
func Normalize(plan *Plan, opts Options) {
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range plan.All() {
		for _, p := range s {
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(maxX, -1) {
		maxX, maxY = plan.DocWidth, plan.DocHeight
	}

	xAxis := axis{max: maxX, target: plan.Box.Width}
	yAxis := axis{max: maxY, target: plan.Box.Height}
	if opts.UniformScale {
		if xAxis.factor() <= yAxis.factor() {
			yAxis = xAxis
		} else {
			xAxis = yAxis
		}
	}

	scale := func(shapes []geometry.Shape) {
		for _, s := range shapes {
			for i, p := range s {
				s[i] = geometry.Point{X: math.Trunc(xAxis.apply(p.X)), Y: math.Trunc(yAxis.apply(p.Y))}
			}
		}
	}
	scale(plan.Entrances)
	scale(plan.Spaces)
	scale(plan.Walls)
	scale(plan.Paths)
}

// axis maps [0, max] onto [0, target]
type axis struct {
	max    float64
	target float64
}

func (a axis) valid() bool {
	return a.max > 0 && a.target > 0
}

func (a axis) factor() float64 {
	if !a.valid() {
		return 1
	}
	return a.target / a.max
}

func (a axis) apply(v float64) float64 {
	if !a.valid() {
		return v
	}
	return v / a.max * a.target
}
