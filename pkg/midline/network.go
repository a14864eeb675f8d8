// Package midline builds the walkable path network of a floor plan from
// per-room centerlines and door/marker connectors, and partitions it into
// connected components.
package midline

import (
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Kind tells where a segment came from
type Kind int

const (
	KindCenterline Kind = iota
	KindEntrance
	KindElevator
	KindStairs
)

func (k Kind) String() string {
	switch k {
	case KindCenterline:
		return "centerline"
	case KindEntrance:
		return "entrance"
	case KindElevator:
		return "elevator"
	case KindStairs:
		return "stairs"
	}
	return "unknown"
}

// Connector reports whether the segment links an anchor to a centerline
func (k Kind) Connector() bool {
	return k != KindCenterline
}

// Segment is one piece of the network
type Segment struct {
	Points geometry.Shape
	Kind   Kind
	Space  int // index of the room the segment was built for
}

// Component is a maximal set of segments connected by shared coordinates
type Component struct {
	Segments []int           // indices into the merged segment list, ascending
	Points   []geometry.Point // distinct points in first-seen order
}

// Size is the number of distinct points of the component
func (c Component) Size() int {
	return len(c.Points)
}

// Network is the result of a midline build. Components are only present
// after Merge.
type Network struct {
	Segments   []Segment
	Components []Component
	primary    int
	merged     bool
}

// NewNetwork wraps already built segments
func NewNetwork(segments []Segment) *Network {
	return &Network{Segments: segments, primary: -1}
}

// Shapes returns the point lists of all segments in order
func (n *Network) Shapes() []geometry.Shape {
	shapes := make([]geometry.Shape, len(n.Segments))
	for i, s := range n.Segments {
		shapes[i] = s.Points
	}
	return shapes
}

// Merge partitions the segments into components and ranks them
func (n *Network) Merge() {
	n.Components = Merge(n.Shapes())
	n.primary = largest(n.Components)
	n.merged = true
}

// Merged reports whether Merge has run
func (n *Network) Merged() bool {
	return n.merged
}

// Primary returns the component with the most distinct points.
// Ties resolve to the component containing the earliest segment.
func (n *Network) Primary() (Component, bool) {
	if !n.merged || n.primary < 0 {
		return Component{}, false
	}
	return n.Components[n.primary], true
}

// Membership tells for every segment whether any of its points belongs to
// the primary network. All false before Merge.
func (n *Network) Membership() []bool {
	member := make([]bool, len(n.Segments))
	primary, ok := n.Primary()
	if !ok {
		return member
	}

	points := make(map[geometry.Point]struct{}, len(primary.Points))
	for _, p := range primary.Points {
		points[p] = struct{}{}
	}
	for i, s := range n.Segments {
		for _, p := range s.Points {
			if _, found := points[p]; found {
				member[i] = true
				break
			}
		}
	}
	return member
}

func largest(components []Component) int {
	best := -1
	for i, c := range components {
		if best < 0 || c.Size() > components[best].Size() {
			best = i
		}
	}
	return best
}
