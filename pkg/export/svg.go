// Package export writes annotated floor plans back to SVG.
package export

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	labelStyle   = "font-size:12px; fill: white;"
)

// Marker is an elevator or stairs annotation to export
type Marker struct {
	Position geometry.Point
	ID       int
}

// Document is everything that ends up in the exported file
type Document struct {
	Spaces    []geometry.Shape
	Walls     []geometry.Shape
	Entrances []geometry.Shape
	Midlines  []geometry.Shape
	Elevators []Marker
	Stairs    []Marker
}

// Palette holds the stroke colors of each group
type Palette struct {
	Space    color.RGBA
	Wall     color.RGBA
	Entrance color.RGBA
	Midline  color.RGBA
	Elevator color.RGBA
	Stairs   color.RGBA
}

// DebugCycle is used for midlines in debug mode when no colors are given
var DebugCycle = []color.RGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
}

// Options controls the output
type Options struct {
	Width        float64
	Height       float64
	MarkerRadius float64
	Palette      Palette
	// Debug colors every midline individually: with MidlineColors (one per
	// midline, usually primary network membership) or by cycling DebugCycle.
	Debug         bool
	MidlineColors []color.RGBA
}

type svgElement struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	Groups  []*group `xml:"g"`
}

type group struct {
	ID        string   `xml:"id,attr"`
	Style     string   `xml:"style,attr,omitempty"`
	Polygons  []shape  `xml:"polygon"`
	Polylines []shape  `xml:"polyline"`
	Circles   []circle `xml:"circle"`
	Texts     []label  `xml:"text"`
}

type shape struct {
	Points string `xml:"points,attr"`
	Style  string `xml:"style,attr"`
}

type circle struct {
	CX        string `xml:"cx,attr"`
	CY        string `xml:"cy,attr"`
	R         string `xml:"r,attr"`
	Adjacency string `xml:"adjacency,attr"`
	DataID    string `xml:"data-id,attr"`
	Style     string `xml:"style,attr,omitempty"`
}

type label struct {
	X          string `xml:"x,attr"`
	Y          string `xml:"y,attr"`
	TextAnchor string `xml:"text-anchor,attr"`
	DY         string `xml:"dy,attr"`
	Style      string `xml:"style,attr"`
	Text       string `xml:",chardata"`
}

// Write encodes doc as SVG
func Write(w io.Writer, doc Document, opts Options) error {
	root := svgElement{
		Xmlns:  svgNamespace,
		Width:  number(opts.Width),
		Height: number(opts.Height),
	}

	spaces := newGroup("spaces", opts.Palette.Space)
	for _, s := range doc.Spaces {
		spaces.Polygons = append(spaces.Polygons, stroked(s, opts.Palette.Space))
	}
	walls := newGroup("walls", opts.Palette.Wall)
	for _, s := range doc.Walls {
		walls.Polylines = append(walls.Polylines, stroked(s, opts.Palette.Wall))
	}
	entrances := newGroup("entrances", opts.Palette.Entrance)
	for _, s := range doc.Entrances {
		entrances.Polylines = append(entrances.Polylines, stroked(s, opts.Palette.Entrance))
	}
	midlines := newGroup("midlines", opts.Palette.Midline)
	for i, s := range doc.Midlines {
		midlines.Polylines = append(midlines.Polylines, stroked(s, midlineColor(i, opts)))
	}

	root.Groups = []*group{spaces, walls, entrances, midlines}
	if len(doc.Elevators) > 0 {
		root.Groups = append(root.Groups, markerGroup("elevators", doc.Elevators, opts.MarkerRadius, opts.Palette.Elevator))
	}
	if len(doc.Stairs) > 0 {
		root.Groups = append(root.Groups, markerGroup("stairs", doc.Stairs, opts.MarkerRadius, opts.Palette.Stairs))
	}
	if opts.Debug {
		root.Groups = append(root.Groups, &group{ID: "debug"})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write svg header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to encode svg: %w", err)
	}
	return enc.Flush()
}

// WriteFile writes doc to path
func WriteFile(path string, doc Document, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(f, doc, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func midlineColor(i int, opts Options) color.RGBA {
	if !opts.Debug {
		return opts.Palette.Midline
	}
	if i < len(opts.MidlineColors) {
		return opts.MidlineColors[i]
	}
	if len(opts.MidlineColors) == 0 {
		return DebugCycle[i%len(DebugCycle)]
	}
	return opts.Palette.Midline
}

func markerGroup(id string, markers []Marker, radius float64, fill color.RGBA) *group {
	g := &group{ID: id}
	for _, m := range markers {
		x, y := number(m.Position.X), number(m.Position.Y)
		text := strconv.Itoa(m.ID)
		g.Circles = append(g.Circles, circle{
			CX:        x,
			CY:        y,
			R:         number(radius),
			Adjacency: text,
			DataID:    text,
			Style:     "fill:" + rgb(fill) + ";stroke:none",
		})
		g.Texts = append(g.Texts, labelAt(x, y, text))
	}
	return g
}

func labelAt(x, y, text string) label {
	return label{X: x, Y: y, TextAnchor: "middle", DY: ".3em", Style: labelStyle, Text: text}
}

func newGroup(id string, c color.RGBA) *group {
	return &group{ID: id, Style: strokeStyle(c)}
}

func stroked(s geometry.Shape, c color.RGBA) shape {
	return shape{Points: Points(s), Style: strokeStyle(c)}
}

func strokeStyle(c color.RGBA) string {
	return "fill:none;stroke:" + rgb(c) + ";stroke-width:2"
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Points formats a shape as an SVG points attribute
func Points(s geometry.Shape) string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = number(p.X) + "," + number(p.Y)
	}
	return strings.Join(parts, " ")
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
