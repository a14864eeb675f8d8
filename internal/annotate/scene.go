package annotate

import (
	"fmt"
	"strconv"

	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/preview"
)

const lineWidth = 3

// Scene returns the current state as display-space primitives for the
// frontends
func (s *Session) Scene() preview.Scene {
	c := s.cfg.Colors
	scene := preview.Scene{Background: c.Background.RGBA()}

	for _, sp := range s.spaces {
		scene.Polygons = append(scene.Polygons, preview.Polygon{
			Points: s.view.ShapeToScreen(sp.Polygon),
			Color:  sp.Color.RGBA(),
		})
	}

	for i, w := range s.plan.Walls {
		col := c.Wall
		if i == s.hoveredWall {
			col = c.Highlight
		}
		scene.Lines = append(scene.Lines, s.line(w, col))
	}
	for i, e := range s.plan.Entrances {
		col := c.Entrance
		if i == s.hoveredEntrance {
			col = c.Highlight
		}
		scene.Lines = append(scene.Lines, s.line(e, col))
	}
	for i, m := range s.Midlines() {
		col := c.Midline
		if i < len(s.midlineColors) {
			col = s.midlineColors[i]
		}
		scene.Lines = append(scene.Lines, s.line(m, col))
	}

	radius := s.cfg.MarkerRadius * s.view.Scale
	for _, kind := range []MarkerKind{Elevator, Stairs} {
		base, glyph := c.Elevator, preview.GlyphCircle
		if kind == Stairs {
			base, glyph = c.Stairs, preview.GlyphSquare
		}
		for _, m := range s.markers[kind] {
			col := base
			if m.Selected {
				col = c.Selected
			}
			scene.Markers = append(scene.Markers, preview.Marker{
				Center: s.view.ToScreen(m.Position),
				Radius: radius,
				Glyph:  glyph,
				Color:  col.RGBA(),
				Label:  strconv.Itoa(m.ID),
			})
		}
	}

	if kind, ok := s.mode.Kind(); ok {
		scene.Caption = fmt.Sprintf("%s mode, next ID %d", kind, s.cursors[kind].Value)
	}
	return scene
}

func (s *Session) line(shape geometry.Shape, col config.Color) preview.Line {
	return preview.Line{Points: s.view.ShapeToScreen(shape), Color: col.RGBA(), Width: lineWidth}
}
