package svgplan

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// ErrNoRoot is returned when the document root is not an <svg> element
var ErrNoRoot = errors.New("document root is not an svg element")

// Options controls shape extraction
type Options struct {
	// UniformScale normalizes both axes with the same factor instead of
	// stretching each axis to the box independently.
	UniformScale bool
}

// ParseFile reads a floor-plan SVG from disk and normalizes it into box
func ParseFile(filename string, box Box, opts Options) (*Plan, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	plan, err := Parse(file, box, opts)
	if err != nil {
		return nil, err
	}
	plan.Name = filepath.Base(filename)
	return plan, nil
}

// Parse extracts entrances, spaces, walls and free paths from a floor-plan
// SVG and normalizes them into box. Missing groups yield empty collections.
func Parse(r io.Reader, box Box, opts Options) (*Plan, error) {
	var root node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode svg: %w", err)
	}
	if root.XMLName.Local != "svg" {
		return nil, ErrNoRoot
	}

	plan := &Plan{
		Box:       box,
		DocWidth:  box.Width,
		DocHeight: box.Height,
	}
	if w, ok := dimension(root.attr("width")); ok {
		plan.DocWidth = w
	}
	if h, ok := dimension(root.attr("height")); ok {
		plan.DocHeight = h
	}

	plan.Entrances = extractGroup(&root, GroupEntrances)
	plan.Spaces = extractGroup(&root, GroupSpaces)
	plan.Walls = extractGroup(&root, GroupWalls)
	for _, p := range root.childrenNamed("path") {
		plan.Paths = append(plan.Paths, ParsePath(p.attr("d"))...)
	}

	log.Printf("[PLAN] Extracted %d entrances, %d spaces, %d walls, %d paths",
		len(plan.Entrances), len(plan.Spaces), len(plan.Walls), len(plan.Paths))

	Normalize(plan, opts)
	return plan, nil
}

// extractGroup reads the polyline/polygon children of the group with the given id
func extractGroup(root *node, id string) []geometry.Shape {
	group := root.findGroup(id)
	if group == nil {
		return nil
	}

	var shapes []geometry.Shape
	for _, el := range group.childrenNamed("polyline", "polygon") {
		if points := ParsePoints(el.attr("points")); len(points) > 0 {
			shapes = append(shapes, points)
		}
	}
	return shapes
}
