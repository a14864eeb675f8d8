package annotate

import (
	"fmt"
	"log"

	"github.com/philipparndt/gofloor/internal/settings"
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// SaveSettings stores the markers and the space selection of the document
func (s *Session) SaveSettings() error {
	if s.store == nil {
		return nil
	}
	markers := settings.Markers{
		Elevators: toStored(s.markers[Elevator]),
		Stairs:    toStored(s.markers[Stairs]),
	}
	if err := s.store.SaveMarkers(s.document, markers); err != nil {
		return fmt.Errorf("failed to save markers: %w", err)
	}
	if err := s.store.SaveSelection(s.document, s.Selection()); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

// LoadSettings restores markers and selection. Missing settings leave the
// session as it is.
func (s *Session) LoadSettings() error {
	if s.store == nil {
		return nil
	}

	markers, found, err := s.store.LoadMarkers(s.document)
	if err != nil {
		return fmt.Errorf("failed to load markers: %w", err)
	}
	if found {
		s.markers[Elevator] = fromStored(markers.Elevators)
		s.markers[Stairs] = fromStored(markers.Stairs)
		s.markerIndex[Elevator] = nil
		s.markerIndex[Stairs] = nil
		s.cursors[Elevator] = s.nextCursor(Elevator)
		s.cursors[Stairs] = s.nextCursor(Stairs)
	}

	selection, found, err := s.store.LoadSelection(s.document)
	if err != nil {
		return fmt.Errorf("failed to load selection: %w", err)
	}
	if found {
		if len(selection) != len(s.spaces) {
			log.Printf("[SETTINGS] Selection has %d entries for %d spaces", len(selection), len(s.spaces))
		}
		s.applySelection(selection)
	}
	return nil
}

// nextCursor continues after the highest loaded ID
func (s *Session) nextCursor(kind MarkerKind) IDCursor {
	c := NewIDCursor(s.cfg.MaxID)
	highest := 0
	for _, m := range s.markers[kind] {
		if m.ID > highest {
			highest = m.ID
		}
	}
	return c.Adjust(highest)
}

func toStored(markers []Marker) []settings.Marker {
	out := make([]settings.Marker, len(markers))
	for i, m := range markers {
		out[i] = settings.Marker{X: m.Position.X, Y: m.Position.Y, ID: m.ID, Selected: m.Selected}
	}
	return out
}

func fromStored(markers []settings.Marker) []Marker {
	out := make([]Marker, len(markers))
	for i, m := range markers {
		out[i] = Marker{Position: geometry.Point{X: m.X, Y: m.Y}, ID: m.ID, Selected: m.Selected}
	}
	return out
}
