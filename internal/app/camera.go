package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/view"
)

const fitMargin = 20

// fitView shows the whole plan in the current window
func (app *App) fitView() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	app.Camera.width, app.Camera.height = int32(w), int32(h)
	app.Session.SetView(view.Fit(app.Session.Plan().Bounds(), float64(w), float64(h), fitMargin))
	app.Layer.dirty = true
}

// resetView returns to the unscaled view the plan was normalized for
func (app *App) resetView() {
	app.Session.SetView(view.Identity())
	app.Layer.dirty = true
}

// handleResize keeps the plan layer in sync with the window size
func (app *App) handleResize() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if w != app.Camera.width || h != app.Camera.height {
		app.Camera.width, app.Camera.height = w, h
		app.Layer.dirty = true
	}
}

// doPan moves the view by the mouse delta
func (app *App) doPan(delta rl.Vector2) {
	app.Session.SetView(app.Session.View().Pan(geometry.Point{X: float64(delta.X), Y: float64(delta.Y)}))
	app.Layer.dirty = true
}

func toPoint(v rl.Vector2) geometry.Point {
	return geometry.Point{X: float64(v.X), Y: float64(v.Y)}
}

func toVector(p geometry.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}
