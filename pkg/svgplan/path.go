package svgplan

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

var (
	commandPattern = regexp.MustCompile(`([MmLlHhVvZzCcSsQqTtAa])([^MmLlHhVvZzCcSsQqTtAa]*)`)
	numberPattern  = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)
)

// ParsePath interprets the M, L, H, V and Z commands (absolute and relative)
// of a path string. A moveto after points have been accumulated flushes the
// current subpath as its own shape. Curve and arc commands are skipped: they
// are not flattened.
func ParsePath(d string) []geometry.Shape {
	var (
		shapes  []geometry.Shape
		points  geometry.Shape
		current geometry.Point
		start   geometry.Point
	)

	flush := func() {
		if len(points) > 0 {
			shapes = append(shapes, points)
			points = nil
		}
	}

	for _, match := range commandPattern.FindAllStringSubmatch(d, -1) {
		cmd := match[1][0]
		args := parseNumbers(match[2])
		relative := cmd >= 'a' && cmd <= 'z'

		switch cmd {
		case 'M', 'm':
			flush()
			for i := 0; i+1 < len(args); i += 2 {
				next := geometry.Point{X: args[i], Y: args[i+1]}
				if relative {
					next = next.Add(current)
				}
				current = next
				if i == 0 {
					start = current
				}
				points = append(points, current)
			}

		case 'L', 'l':
			for i := 0; i+1 < len(args); i += 2 {
				next := geometry.Point{X: args[i], Y: args[i+1]}
				if relative {
					next = next.Add(current)
				}
				current = next
				points = append(points, current)
			}

		case 'H', 'h':
			for _, x := range args {
				if relative {
					x += current.X
				}
				current = geometry.Point{X: x, Y: current.Y}
				points = append(points, current)
			}

		case 'V', 'v':
			for _, y := range args {
				if relative {
					y += current.Y
				}
				current = geometry.Point{X: current.X, Y: y}
				points = append(points, current)
			}

		case 'Z', 'z':
			current = start
			points = append(points, current)

		default:
			log.Printf("[PLAN] Skipping unsupported path command %q", string(cmd))
		}
	}

	flush()
	return shapes
}

// ParsePoints parses a polyline/polygon points attribute of whitespace
// separated "x,y" pairs. Unparseable numbers are dropped.
func ParsePoints(s string) geometry.Shape {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))

	var coords []float64
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		coords = append(coords, v)
	}

	var shape geometry.Shape
	for i := 0; i+1 < len(coords); i += 2 {
		shape = append(shape, geometry.Point{X: coords[i], Y: coords[i+1]})
	}
	return shape
}

func parseNumbers(s string) []float64 {
	var out []float64
	for _, tok := range numberPattern.FindAllString(s, -1) {
		v, err := strconv.ParseFloat(tok, 64)
		if err == nil {
			out = append(out, v)
		}
	}
	return out
}
