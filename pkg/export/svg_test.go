package export

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

var palette = Palette{
	Space:    color.RGBA{0, 100, 100, 255},
	Wall:     color.RGBA{200, 200, 200, 255},
	Entrance: color.RGBA{0, 100, 255, 255},
	Midline:  color.RGBA{255, 0, 0, 255},
	Elevator: color.RGBA{0, 0, 255, 255},
	Stairs:   color.RGBA{255, 140, 0, 255},
}

func sampleDocument() Document {
	return Document{
		Spaces:    []geometry.Shape{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
		Walls:     []geometry.Shape{{{X: 0, Y: 0}, {X: 0, Y: 10}}},
		Entrances: []geometry.Shape{{{X: 4, Y: 0}, {X: 6, Y: 0}}},
		Midlines: []geometry.Shape{
			{{X: 1.5, Y: 5}, {X: 8.25, Y: 5}},
			{{X: 5, Y: 0}, {X: 5, Y: 5}},
			{{X: 20, Y: 20}, {X: 21, Y: 21}},
			{{X: 30, Y: 30}, {X: 31, Y: 31}},
		},
		Elevators: []Marker{{Position: geometry.Point{X: 3, Y: 4}, ID: 12}},
	}
}

// parsed mirrors the output loosely for assertions
type parsed struct {
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Groups []struct {
		ID        string `xml:"id,attr"`
		Style     string `xml:"style,attr"`
		Polygons  []shape  `xml:"polygon"`
		Polylines []shape  `xml:"polyline"`
		Circles   []circle `xml:"circle"`
		Texts     []label  `xml:"text"`
	} `xml:"g"`
}

func write(t *testing.T, doc Document, opts Options) parsed {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, opts))

	var out parsed
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestWriteGroups(t *testing.T) {
	out := write(t, sampleDocument(), Options{Width: 800, Height: 600, MarkerRadius: 8, Palette: palette})

	assert.Equal(t, "800", out.Width)
	assert.Equal(t, "600", out.Height)

	var ids []string
	for _, g := range out.Groups {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"spaces", "walls", "entrances", "midlines", "elevators"}, ids)

	spaces := out.Groups[0]
	assert.Equal(t, "fill:none;stroke:rgb(0, 100, 100);stroke-width:2", spaces.Style)
	require.Len(t, spaces.Polygons, 1)
	assert.Equal(t, "0,0 10,0 10,10", spaces.Polygons[0].Points)

	midlines := out.Groups[3]
	require.Len(t, midlines.Polylines, 4)
	assert.Equal(t, "1.5,5 8.25,5", midlines.Polylines[0].Points)
	for _, p := range midlines.Polylines {
		assert.Equal(t, "fill:none;stroke:rgb(255, 0, 0);stroke-width:2", p.Style)
	}

	elevators := out.Groups[4]
	require.Len(t, elevators.Circles, 1)
	c := elevators.Circles[0]
	assert.Equal(t, circle{CX: "3", CY: "4", R: "8", Adjacency: "12", DataID: "12", Style: "fill:rgb(0, 0, 255);stroke:none"}, c)
	require.Len(t, elevators.Texts, 1)
	assert.Equal(t, "12", elevators.Texts[0].Text)
	assert.Equal(t, "middle", elevators.Texts[0].TextAnchor)
	assert.Equal(t, ".3em", elevators.Texts[0].DY)
}

func TestWriteDebugCycle(t *testing.T) {
	out := write(t, sampleDocument(), Options{Width: 800, Height: 600, Palette: palette, Debug: true})

	last := out.Groups[len(out.Groups)-1]
	assert.Equal(t, "debug", last.ID)

	midlines := out.Groups[3]
	want := []string{"rgb(255, 0, 0)", "rgb(0, 255, 0)", "rgb(0, 0, 255)", "rgb(255, 0, 0)"}
	for i, p := range midlines.Polylines {
		assert.True(t, strings.Contains(p.Style, want[i]), "midline %d: expected %s in %s", i, want[i], p.Style)
	}
}

func TestWriteDebugMembershipColors(t *testing.T) {
	green := color.RGBA{0, 255, 0, 255}
	red := color.RGBA{255, 0, 0, 255}
	opts := Options{
		Width: 800, Height: 600, Palette: palette, Debug: true,
		MidlineColors: []color.RGBA{green, green, red, red},
	}
	out := write(t, sampleDocument(), opts)

	midlines := out.Groups[3]
	assert.Contains(t, midlines.Polylines[0].Style, "rgb(0, 255, 0)")
	assert.Contains(t, midlines.Polylines[1].Style, "rgb(0, 255, 0)")
	assert.Contains(t, midlines.Polylines[2].Style, "rgb(255, 0, 0)")
}

func TestPoints(t *testing.T) {
	assert.Equal(t, "", Points(nil))
	assert.Equal(t, "1,2 -3.5,4", Points(geometry.Shape{{X: 1, Y: 2}, {X: -3.5, Y: 4}}))
}
