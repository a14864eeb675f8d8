package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofloor/internal/annotate"
)

// clickSlop is how far the mouse may move between press and release for
// the gesture to count as a click
const clickSlop = 3

const arrowPanStep = 20

// handleInput processes user input
func (app *App) handleInput() {
	s := app.Session
	mouse := rl.GetMousePosition()
	moved := mouse != app.Interaction.lastMousePos
	app.Interaction.lastMousePos = mouse

	if moved && !s.Dragging() {
		before := s.Hovered()
		if s.Hover(toPoint(mouse)) != before {
			app.Layer.dirty = true
		}
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	// Panning with right or middle drag, or Shift + left drag
	if rl.IsMouseButtonPressed(rl.MouseRightButton) || rl.IsMouseButtonPressed(rl.MouseMiddleButton) ||
		(rl.IsMouseButtonPressed(rl.MouseLeftButton) && shiftPressed) {
		s.BeginDrag(toPoint(mouse))
		app.Interaction.isPanning = true
	}
	if app.Interaction.isPanning && moved {
		s.Drag(toPoint(mouse))
		app.Layer.dirty = true
	}
	if app.Interaction.isPanning && !rl.IsMouseButtonDown(rl.MouseRightButton) &&
		!rl.IsMouseButtonDown(rl.MouseMiddleButton) && !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		s.EndDrag()
		app.Interaction.isPanning = false
	}

	// Click vs drag detection for the primary button
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !app.Interaction.isPanning {
		app.Interaction.mouseDownPos = mouse
		app.Interaction.mouseMoved = false
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && rl.Vector2Distance(mouse, app.Interaction.mouseDownPos) > clickSlop {
		app.Interaction.mouseMoved = true
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) && !app.Interaction.mouseMoved && !shiftPressed {
		app.click(mouse)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.Zoom(toPoint(mouse), wheel > 0)
		app.Layer.dirty = true
	}

	switch {
	case rl.IsKeyPressed(rl.KeyHome):
		app.fitView()
	case rl.IsKeyPressed(rl.KeyZero):
		app.resetView()
	case rl.IsKeyPressed(rl.KeyF1):
		app.UI.showHelp = !app.UI.showHelp
	case rl.IsKeyPressed(rl.KeyLeft):
		app.doPan(rl.Vector2{X: arrowPanStep})
	case rl.IsKeyPressed(rl.KeyRight):
		app.doPan(rl.Vector2{X: -arrowPanStep})
	case rl.IsKeyPressed(rl.KeyUp):
		app.doPan(rl.Vector2{Y: arrowPanStep})
	case rl.IsKeyPressed(rl.KeyDown):
		app.doPan(rl.Vector2{Y: -arrowPanStep})
	case rl.IsKeyPressed(rl.KeyEscape) && s.Mode() != annotate.ModeNormal:
		kind, _ := s.Mode().Kind()
		s.ToggleMode(kind)
		app.setStatus("Normal mode")
		app.Layer.dirty = true
	}

	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		app.key(rune(ch))
	}
}

func (app *App) click(mouse rl.Vector2) {
	res := app.Session.Click(toPoint(mouse))
	switch res.Kind {
	case annotate.ClickSpace:
		app.Layer.dirty = true
	case annotate.ClickMarker:
		app.setStatus("Marker %d selected: %v", res.ID, res.Selected)
	case annotate.ClickMarkerCreated:
		kind, _ := app.Session.Mode().Kind()
		app.setStatus("Placed %s %d", kind, res.ID)
		if dups := app.Session.DuplicateMarkerIDs(kind); len(dups) > 0 {
			log.Printf("[SESSION] Duplicate %s IDs: %v", kind, dups)
		}
	}
}

func (app *App) key(ch rune) {
	s := app.Session
	cmd, err := s.HandleKey(ch)
	if err != nil {
		log.Printf("[SESSION] %s failed: %v", cmd, err)
		app.setStatus("%s failed: %v", cmd, err)
		return
	}

	switch cmd {
	case annotate.CmdNone:
		return
	case annotate.CmdMidlines:
		app.setStatus("%d midline segments", len(s.Midlines()))
	case annotate.CmdAllMidlines:
		st := s.Network().Stats()
		app.setStatus("%d midline segments in %d components", st.Segments, st.Components)
	case annotate.CmdExport, annotate.CmdExportDebug:
		app.setStatus("Exported %s", s.Config().Output)
	case annotate.CmdSave:
		app.setStatus("Settings saved")
	case annotate.CmdLoad:
		app.setStatus("Settings loaded")
	case annotate.CmdToggleElevator, annotate.CmdToggleStairs:
		app.setStatus("%s mode", s.Mode())
	case annotate.CmdNextID, annotate.CmdPreviousID:
		if kind, ok := s.Mode().Kind(); ok {
			app.setStatus("Next %s ID: %d", kind, s.Cursor(kind))
		}
	case annotate.CmdDelete:
		app.setStatus("Deleted selected markers")
	}
	app.Layer.dirty = true
}
