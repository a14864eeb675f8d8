package main

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// planView shows the rendered plan and reports taps and hovers in image
// pixel coordinates
type planView struct {
	widget.BaseWidget

	image   *canvas.Image
	onTap   func(geometry.Point)
	onHover func(geometry.Point)
}

var (
	_ fyne.Tappable     = (*planView)(nil)
	_ desktop.Hoverable = (*planView)(nil)
)

func newPlanView(onTap, onHover func(geometry.Point)) *planView {
	v := &planView{
		image:   canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
		onTap:   onTap,
		onHover: onHover,
	}
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScalePixels
	v.ExtendBaseWidget(v)
	return v
}

func (v *planView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.image)
}

// SetImage replaces the displayed raster
func (v *planView) SetImage(img image.Image) {
	v.image.Image = img
	v.image.Refresh()
}

// toImage maps a widget position to image pixels, honoring the letterbox of
// the contain fill mode
func (v *planView) toImage(pos fyne.Position) (geometry.Point, bool) {
	if v.image.Image == nil {
		return geometry.Point{}, false
	}
	b := v.image.Image.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	size := v.Size()
	w, h := float64(size.Width), float64(size.Height)
	if iw == 0 || ih == 0 || w == 0 || h == 0 {
		return geometry.Point{}, false
	}

	scale := min(w/iw, h/ih)
	ox, oy := (w-iw*scale)/2, (h-ih*scale)/2
	p := geometry.Point{
		X: (float64(pos.X) - ox) / scale,
		Y: (float64(pos.Y) - oy) / scale,
	}
	return p, p.X >= 0 && p.Y >= 0 && p.X < iw && p.Y < ih
}

func (v *planView) Tapped(ev *fyne.PointEvent) {
	if p, ok := v.toImage(ev.Position); ok && v.onTap != nil {
		v.onTap(p)
	}
}

func (v *planView) MouseIn(ev *desktop.MouseEvent) {}

func (v *planView) MouseMoved(ev *desktop.MouseEvent) {
	if p, ok := v.toImage(ev.Position); ok && v.onHover != nil {
		v.onHover(p)
	}
}

func (v *planView) MouseOut() {}
