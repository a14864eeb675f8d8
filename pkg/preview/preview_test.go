package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	teal  = color.RGBA{0, 100, 100, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func TestRenderPolygon(t *testing.T) {
	scene := Scene{
		Background: white,
		Polygons: []Polygon{{
			Points: geometry.Shape{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 50, Y: 50}, {X: 10, Y: 50}},
			Color:  teal,
		}},
	}
	img := Render(scene, 100, 100)

	if got := img.RGBAAt(30, 30); got != teal {
		t.Errorf("inside polygon: expected %v, got %v", teal, got)
	}
	if got := img.RGBAAt(80, 80); got != white {
		t.Errorf("outside polygon: expected background, got %v", got)
	}
}

func TestRenderLine(t *testing.T) {
	scene := Scene{
		Background: white,
		Lines:      []Line{{Points: geometry.Shape{{X: 0, Y: 20}, {X: 99, Y: 20}}, Color: red, Width: 3}},
	}
	img := Render(scene, 100, 40)

	for _, y := range []int{19, 20, 21} {
		if got := img.RGBAAt(50, y); got != red {
			t.Errorf("line pixel (50,%d): expected %v, got %v", y, red, got)
		}
	}
	if got := img.RGBAAt(50, 25); got != white {
		t.Errorf("line too wide at y=25: got %v", got)
	}
}

func TestRenderMarkers(t *testing.T) {
	scene := Scene{
		Background: white,
		Markers: []Marker{
			{Center: geometry.Point{X: 20, Y: 20}, Radius: 8, Glyph: GlyphCircle, Color: blue},
			{Center: geometry.Point{X: 60, Y: 20}, Radius: 8, Glyph: GlyphSquare, Color: red, Label: "7"},
		},
	}
	img := Render(scene, 100, 40)

	if got := img.RGBAAt(20, 14); got != blue {
		t.Errorf("circle interior: expected %v, got %v", blue, got)
	}
	if got := img.RGBAAt(20+7, 20-7); got != white {
		t.Errorf("circle corner should stay empty, got %v", got)
	}
	if got := img.RGBAAt(60+7, 20-7); got != red {
		t.Errorf("square corner: expected %v, got %v", red, got)
	}

	// the label leaves white pixels inside the square
	found := false
	for y := 13; y < 28 && !found; y++ {
		for x := 53; x < 68; x++ {
			if img.RGBAAt(x, y) == white {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected label pixels inside the stairs marker")
	}
}

func TestWritePNG(t *testing.T) {
	img := Render(Scene{Background: white}, 16, 8)

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 8 {
		t.Errorf("unexpected size %v", decoded.Bounds())
	}
}
