package midline

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Stats summarizes a network
type Stats struct {
	Segments        int
	Centerlines     int
	Connectors      int
	Components      int
	PrimarySize     int
	PrimarySegments int
	Length          float64 // Total length of all segments
	PrimaryLength   float64
}

// Stats computes the network summary. Component fields stay zero before Merge.
func (n *Network) Stats() Stats {
	s := Stats{Segments: len(n.Segments), Components: len(n.Components)}
	member := n.Membership()
	for i, seg := range n.Segments {
		if seg.Kind.Connector() {
			s.Connectors++
		} else {
			s.Centerlines++
		}
		length := planar.Length(toLineString(seg.Points))
		s.Length += length
		if member[i] {
			s.PrimaryLength += length
		}
	}
	if primary, ok := n.Primary(); ok {
		s.PrimarySize = primary.Size()
		s.PrimarySegments = len(primary.Segments)
	}
	return s
}

func toLineString(shape geometry.Shape) orb.LineString {
	ls := make(orb.LineString, len(shape))
	for i, p := range shape {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls
}
