package midline

import (
	"log"

	"github.com/philipparndt/gofloor/pkg/centerline"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/svgplan"
)

// Options controls how anchors are matched to rooms
type Options struct {
	EntranceTolerance float64 // Door midpoints within this distance of a room edge count as inside
	MarkerTolerance   float64
}

// DefaultOptions returns the tolerances used by the annotation tool
func DefaultOptions() Options {
	return Options{EntranceTolerance: 5, MarkerTolerance: 0}
}

// Builder turns rooms, doors and markers into a midline network
type Builder struct {
	service centerline.Service
	opts    Options
}

// NewBuilder creates a builder backed by the given centerline service
func NewBuilder(service centerline.Service, opts Options) *Builder {
	return &Builder{service: service, opts: opts}
}

// Room is a polygon to process together with its index in the plan
type Room struct {
	Index   int
	Polygon geometry.Shape
}

// Rooms wraps a list of polygons keeping their positions as indices
func Rooms(polygons []geometry.Shape) []Room {
	rooms := make([]Room, len(polygons))
	for i, p := range polygons {
		rooms[i] = Room{Index: i, Polygon: p}
	}
	return rooms
}

// Build computes the centerline of every room and stitches entrances,
// elevators and stairs onto it. The returned network is not merged yet.
// A door inside two rooms gets a connector in each of them.
func (b *Builder) Build(rooms []Room, entrances []geometry.Shape, elevators, stairs []geometry.Point) *Network {
	net := NewNetwork(nil)

	anchors := entranceAnchors(entrances)
	for _, room := range rooms {
		branches, err := b.service.Centerline(room.Polygon)
		if err != nil {
			log.Printf("[MIDLINE] Skipping space %d: %v", room.Index, err)
			continue
		}
		if len(branches) == 0 {
			log.Printf("[MIDLINE] Skipping space %d: empty centerline", room.Index)
			continue
		}

		for _, branch := range branches {
			net.Segments = append(net.Segments, Segment{Points: branch, Kind: KindCenterline, Space: room.Index})
		}

		connect := func(anchor geometry.Point, kind Kind, tolerance float64) {
			if !geometry.PointInPolygon(anchor, room.Polygon, tolerance) {
				return
			}
			nearest, ok := geometry.NearestPointOnPaths(anchor, branches)
			if !ok {
				return
			}
			net.Segments = append(net.Segments, Segment{
				Points: geometry.Shape{anchor, nearest},
				Kind:   kind,
				Space:  room.Index,
			})
		}

		for _, a := range anchors {
			connect(a, KindEntrance, b.opts.EntranceTolerance)
		}
		for _, p := range elevators {
			connect(p, KindElevator, b.opts.MarkerTolerance)
		}
		for _, p := range stairs {
			connect(p, KindStairs, b.opts.MarkerTolerance)
		}
	}

	log.Printf("[MIDLINE] Built %d segments for %d spaces", len(net.Segments), len(rooms))
	return net
}

func entranceAnchors(entrances []geometry.Shape) []geometry.Point {
	anchors := make([]geometry.Point, 0, len(entrances))
	for _, e := range entrances {
		if mid, ok := svgplan.EntranceMidpoint(e); ok {
			anchors = append(anchors, mid)
		}
	}
	return anchors
}
