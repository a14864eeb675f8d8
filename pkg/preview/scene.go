// Package preview renders floor plan scenes into images for PNG previews
// and the desktop shell.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Glyph is the marker symbol
type Glyph int

const (
	GlyphCircle Glyph = iota
	GlyphSquare
)

// Polygon is a filled area
type Polygon struct {
	Points geometry.Shape
	Color  color.RGBA
}

// Line is an open polyline
type Line struct {
	Points geometry.Shape
	Color  color.RGBA
	Width  int
}

// Marker is a labelled symbol
type Marker struct {
	Center geometry.Point
	Radius float64
	Glyph  Glyph
	Color  color.RGBA
	Label  string
}

// Scene is a list of primitives in display coordinates, drawn in order:
// polygons, lines, markers
type Scene struct {
	Background color.RGBA
	Polygons   []Polygon
	Lines      []Line
	Markers    []Marker
	Caption    string
}

// Render draws the scene into a new width x height image
func Render(scene Scene, width, height int) *image.RGBA {
	c := NewCanvas(width, height, scene.Background)

	for _, p := range scene.Polygons {
		c.FillPolygon(p.Points, p.Color)
	}
	for _, l := range scene.Lines {
		c.Polyline(l.Points, l.Width, l.Color)
	}
	for _, m := range scene.Markers {
		switch m.Glyph {
		case GlyphSquare:
			c.FillRect(m.Center, m.Radius, m.Color)
		default:
			c.FillCircle(m.Center, m.Radius, m.Color)
		}
		if m.Label != "" {
			c.Text(m.Center, m.Label, color.RGBA{255, 255, 255, 255})
		}
	}
	if scene.Caption != "" {
		c.Text(geometry.Point{X: float64(width) / 2, Y: float64(height) - 10}, scene.Caption, color.RGBA{0, 0, 0, 255})
	}
	return c.Image()
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
