package svgplan

import (
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Group identifiers looked up in the source document
const (
	GroupEntrances = "entrances"
	GroupSpaces    = "spaces"
	GroupWalls     = "walls"
)

// Box is the display box shapes are normalized into
type Box struct {
	Width  float64
	Height float64
}

// Plan holds the normalized geometry extracted from a floor-plan document
type Plan struct {
	Name      string
	DocWidth  float64 // Declared document width, or the box width when absent
	DocHeight float64 // Declared document height, or the box height when absent
	Box       Box

	Entrances []geometry.Shape
	Spaces    []geometry.Shape
	Walls     []geometry.Shape
	Paths     []geometry.Shape
}

// All returns every shape of the plan in extraction order
func (p *Plan) All() []geometry.Shape {
	all := make([]geometry.Shape, 0, len(p.Entrances)+len(p.Spaces)+len(p.Walls)+len(p.Paths))
	all = append(all, p.Entrances...)
	all = append(all, p.Spaces...)
	all = append(all, p.Walls...)
	all = append(all, p.Paths...)
	return all
}

// Bounds returns the bounding box of every shape in the plan
func (p *Plan) Bounds() geometry.Bounds {
	return geometry.BoundsOf(p.All()...)
}

// EntranceMidpoint returns the connector anchor of an entrance: the midpoint
// of its first two points. ok is false for entrances with fewer than two points.
func EntranceMidpoint(entrance geometry.Shape) (geometry.Point, bool) {
	if len(entrance) < 2 {
		return geometry.Point{}, false
	}
	return entrance[0].Midpoint(entrance[1]), true
}
