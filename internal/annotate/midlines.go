package annotate

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/pkg/export"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/midline"
)

// ComputeSelectedMidlines builds the network of the selected spaces without
// merging. Every segment gets the midline color.
func (s *Session) ComputeSelectedMidlines() *midline.Network {
	var rooms []midline.Room
	for i, sp := range s.spaces {
		if sp.Selected {
			rooms = append(rooms, midline.Room{Index: i, Polygon: sp.Polygon})
		}
	}

	net := s.build(rooms)
	s.midlineColors = make([]config.Color, len(net.Segments))
	for i := range s.midlineColors {
		s.midlineColors[i] = s.cfg.Colors.Midline
	}
	s.network = net
	return net
}

// ComputeAllMidlines builds the network of every space, merges it and
// colors segments by membership of the primary network
func (s *Session) ComputeAllMidlines() *midline.Network {
	rooms := make([]midline.Room, len(s.spaces))
	for i, sp := range s.spaces {
		rooms[i] = midline.Room{Index: i, Polygon: sp.Polygon}
	}

	net := s.build(rooms)
	net.Merge()

	member := net.Membership()
	s.midlineColors = make([]config.Color, len(member))
	for i, m := range member {
		if m {
			s.midlineColors[i] = s.cfg.Colors.Primary
		} else {
			s.midlineColors[i] = s.cfg.Colors.Secondary
		}
	}

	stats := net.Stats()
	log.Printf("[MIDLINE] %d components, primary has %d points in %d segments",
		stats.Components, stats.PrimarySize, stats.PrimarySegments)
	s.network = net
	return net
}

func (s *Session) build(rooms []midline.Room) *midline.Network {
	return s.builder.Build(rooms, s.plan.Entrances, s.markerPositions(Elevator), s.markerPositions(Stairs))
}

func (s *Session) markerPositions(kind MarkerKind) []geometry.Point {
	points := make([]geometry.Point, len(s.markers[kind]))
	for i, m := range s.markers[kind] {
		points[i] = m.Position
	}
	return points
}

// Midlines returns the segments of the last computed network
func (s *Session) Midlines() []geometry.Shape {
	if s.network == nil {
		return nil
	}
	return s.network.Shapes()
}

// MidlineColors returns one color per segment of the last computed network
func (s *Session) MidlineColors() []config.Color {
	return s.midlineColors
}

// ExportDocument collects everything the exporter writes
func (s *Session) ExportDocument() export.Document {
	doc := export.Document{
		Walls:     s.plan.Walls,
		Entrances: s.plan.Entrances,
		Midlines:  s.Midlines(),
	}
	for _, sp := range s.spaces {
		doc.Spaces = append(doc.Spaces, sp.Polygon)
	}
	for _, m := range s.markers[Elevator] {
		doc.Elevators = append(doc.Elevators, export.Marker{Position: m.Position, ID: m.ID})
	}
	for _, m := range s.markers[Stairs] {
		doc.Stairs = append(doc.Stairs, export.Marker{Position: m.Position, ID: m.ID})
	}
	return doc
}

// ExportOptions returns the exporter settings. In debug mode midlines carry
// the colors of the last computation.
func (s *Session) ExportOptions(debug bool) export.Options {
	c := s.cfg.Colors
	opts := export.Options{
		Width:        s.cfg.Width,
		Height:       s.cfg.Height,
		MarkerRadius: s.cfg.MarkerRadius,
		Debug:        debug,
		Palette: export.Palette{
			Space:    c.Space.RGBA(),
			Wall:     c.Wall.RGBA(),
			Entrance: c.Entrance.RGBA(),
			Midline:  c.Midline.RGBA(),
			Elevator: c.Elevator.RGBA(),
			Stairs:   c.Stairs.RGBA(),
		},
	}
	if debug && s.network != nil && s.network.Merged() {
		opts.MidlineColors = make([]color.RGBA, len(s.midlineColors))
		for i, mc := range s.midlineColors {
			opts.MidlineColors[i] = mc.RGBA()
		}
	}
	return opts
}

// Export writes the annotated plan as SVG
func (s *Session) Export(w io.Writer, debug bool) error {
	return export.Write(w, s.ExportDocument(), s.ExportOptions(debug))
}

// ExportFile writes the annotated plan to path
func (s *Session) ExportFile(path string, debug bool) error {
	if err := export.WriteFile(path, s.ExportDocument(), s.ExportOptions(debug)); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	if debug {
		log.Printf("[SESSION] SVG exported as '%s' with debug info", path)
	} else {
		log.Printf("[SESSION] SVG exported as '%s'", path)
	}
	return nil
}
