package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofloor/pkg/preview"
)

const markerFontSize = 12

// drawPlan draws the session scene. Filled spaces come from a cached
// software-rendered texture since raylib only fans convex polygons; lines
// and markers are drawn directly.
func (app *App) drawPlan() {
	scene := app.Session.Scene()

	if app.Layer.dirty {
		app.rebuildLayer(scene)
	}
	if app.Layer.loaded {
		rl.DrawTexture(app.Layer.texture, 0, 0, rl.White)
	}

	for _, line := range scene.Lines {
		width := float32(line.Width)
		for i := 1; i < len(line.Points); i++ {
			rl.DrawLineEx(toVector(line.Points[i-1]), toVector(line.Points[i]), width, line.Color)
		}
	}

	for _, m := range scene.Markers {
		center := toVector(m.Center)
		r := float32(m.Radius)
		switch m.Glyph {
		case preview.GlyphSquare:
			rl.DrawRectangleV(rl.Vector2{X: center.X - r, Y: center.Y - r}, rl.Vector2{X: 2 * r, Y: 2 * r}, m.Color)
		default:
			rl.DrawCircleV(center, r, m.Color)
		}
		if m.Label != "" {
			size := rl.MeasureTextEx(app.UI.font, m.Label, markerFontSize, 1)
			pos := rl.Vector2{X: center.X - size.X/2, Y: center.Y - size.Y/2}
			rl.DrawTextEx(app.UI.font, m.Label, pos, markerFontSize, 1, rl.White)
		}
	}
}

// rebuildLayer rasterizes the space polygons into the cached texture
func (app *App) rebuildLayer(scene preview.Scene) {
	w, h := int(app.Camera.width), int(app.Camera.height)
	if w <= 0 || h <= 0 {
		return
	}

	img := preview.Render(preview.Scene{
		Background: scene.Background,
		Polygons:   scene.Polygons,
	}, w, h)

	rlImage := rl.NewImageFromImage(img)
	if app.Layer.loaded {
		rl.UnloadTexture(app.Layer.texture)
	}
	app.Layer.texture = rl.LoadTextureFromImage(rlImage)
	rl.UnloadImage(rlImage)
	app.Layer.loaded = true
	app.Layer.dirty = false
}
