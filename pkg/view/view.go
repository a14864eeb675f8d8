package view

import (
	"math"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Fixed zoom steps applied by the frontends for one wheel notch
const (
	ZoomInFactor  = 1.1
	ZoomOutFactor = 1.0 / 1.1
)

// State is the affine map between model and display space:
// screen = model*Scale + Offset. Scale must be positive.
type State struct {
	Scale  float64
	Offset geometry.Point
}

// Identity returns the unscaled, unshifted view
func Identity() State {
	return State{Scale: 1}
}

// ToScreen maps a model-space point to display space
func (s State) ToScreen(p geometry.Point) geometry.Point {
	return p.Mul(s.Scale).Add(s.Offset)
}

// ToModel maps a display-space point back to model space
func (s State) ToModel(p geometry.Point) geometry.Point {
	return p.Sub(s.Offset).Mul(1 / s.Scale)
}

// ShapeToScreen maps every point of a shape to display space
func (s State) ShapeToScreen(shape geometry.Shape) geometry.Shape {
	out := make(geometry.Shape, len(shape))
	for i, p := range shape {
		out[i] = s.ToScreen(p)
	}
	return out
}

// ZoomAt scales the view by factor keeping the model point under pivot fixed
func (s State) ZoomAt(pivot geometry.Point, factor float64) State {
	return State{
		Scale:  s.Scale * factor,
		Offset: pivot.Sub(pivot.Sub(s.Offset).Mul(factor)),
	}
}

// Pan shifts the view by a display-space delta, independent of scale
func (s State) Pan(delta geometry.Point) State {
	return State{Scale: s.Scale, Offset: s.Offset.Add(delta)}
}

// Fit returns a view showing bounds centered in a width x height display,
// leaving margin pixels on every side. Empty bounds yield the identity view.
func Fit(bounds geometry.Bounds, width, height, margin float64) State {
	size := bounds.Size()
	if bounds.IsEmpty() || size.X <= 0 || size.Y <= 0 {
		return Identity()
	}

	availW := math.Max(width-2*margin, 1)
	availH := math.Max(height-2*margin, 1)
	scale := math.Min(availW/size.X, availH/size.Y)

	center := bounds.Center().Mul(scale)
	return State{
		Scale:  scale,
		Offset: geometry.Point{X: width/2 - center.X, Y: height/2 - center.Y},
	}
}
