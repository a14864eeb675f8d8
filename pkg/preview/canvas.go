package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Canvas draws the primitives a floor plan needs onto an RGBA image
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas of the given size filled with background
func NewCanvas(width, height int, background color.RGBA) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image returns the underlying image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillPolygon fills a closed polygon (nonzero winding)
func (c *Canvas) FillPolygon(points geometry.Shape, col color.RGBA) {
	if len(points) < 3 {
		return
	}
	b := c.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over

	r.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// FillRect fills an axis aligned square centered at center
func (c *Canvas) FillRect(center geometry.Point, half float64, col color.RGBA) {
	c.FillPolygon(geometry.Shape{
		{X: center.X - half, Y: center.Y - half},
		{X: center.X + half, Y: center.Y - half},
		{X: center.X + half, Y: center.Y + half},
		{X: center.X - half, Y: center.Y + half},
	}, col)
}

// FillCircle fills a disc
func (c *Canvas) FillCircle(center geometry.Point, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	steps := int(math.Max(12, radius*2))
	ring := make(geometry.Shape, steps)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / float64(steps)
		ring[i] = geometry.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	c.FillPolygon(ring, col)
}

// Polyline strokes consecutive points with the given width in pixels
func (c *Canvas) Polyline(points geometry.Shape, width int, col color.RGBA) {
	if width < 1 {
		width = 1
	}
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		c.line(int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), width, col)
	}
}

// Text draws s centered at p
func (c *Canvas) Text(p geometry.Point, s string, col color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: face}
	width := d.MeasureString(s)
	metrics := face.Metrics()
	baseline := (metrics.Ascent - metrics.Descent) / 2

	x := fixed.Int26_6(p.X*64) - width/2
	y := fixed.Int26_6(p.Y*64) + baseline
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(s)
}

// line draws a line using Bresenham's algorithm, stamping a square pen
func (c *Canvas) line(x1, y1, x2, y2, width int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy
	for {
		c.stamp(x1, y1, width, col)
		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (c *Canvas) stamp(x, y, width int, col color.RGBA) {
	bounds := c.img.Bounds()
	lo := -(width - 1) / 2
	for oy := lo; oy < lo+width; oy++ {
		for ox := lo; ox < lo+width; ox++ {
			px, py := x+ox, y+oy
			if px >= 0 && px < bounds.Max.X && py >= 0 && py < bounds.Max.Y {
				c.img.SetRGBA(px, py, col)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
