package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofloor/internal/annotate"
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/pkg/analysis"
	"github.com/philipparndt/gofloor/version"
)

const statusDuration = 4 * time.Second

var (
	panelColor  = rl.NewColor(0, 0, 0, 170)
	headerColor = rl.Yellow
	textColor   = rl.White
	hintColor   = rl.LightGray
)

// drawUI draws the info panel, the status line and the version footer
func (app *App) drawUI() {
	s := app.Session
	y := float32(10)
	lineHeight := float32(18)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	lines := app.infoLines()
	if app.UI.showHelp {
		lines = append(lines, "")
		lines = append(lines, helpLines(s.Config())...)
	}

	panelWidth := float32(0)
	for _, l := range lines {
		if w := rl.MeasureTextEx(app.UI.font, l, fontSize14, 1).X; w > panelWidth {
			panelWidth = w
		}
	}
	rl.DrawRectangle(5, 5, int32(panelWidth+20), int32(float32(len(lines))*lineHeight+10), panelColor)

	for _, l := range lines {
		switch {
		case strings.HasSuffix(l, ":"):
			rl.DrawTextEx(app.UI.font, l, rl.Vector2{X: 12, Y: y}, fontSize16, 1, headerColor)
		case strings.HasPrefix(l, "  "):
			rl.DrawTextEx(app.UI.font, l, rl.Vector2{X: 12, Y: y}, fontSize14, 1, hintColor)
		default:
			rl.DrawTextEx(app.UI.font, l, rl.Vector2{X: 12, Y: y}, fontSize14, 1, textColor)
		}
		y += lineHeight
	}

	// Mode banner in the top-right corner
	if kind, ok := s.Mode().Kind(); ok {
		banner := fmt.Sprintf("%s mode  next ID %d", strings.ToUpper(kind.String()), s.Cursor(kind))
		size := rl.MeasureTextEx(app.UI.font, banner, fontSize16, 1)
		x := screenWidth - size.X - 30
		rl.DrawRectangle(int32(x-10), 15, int32(size.X+20), int32(size.Y+10), panelColor)
		rl.DrawRectangleLines(int32(x-10), 15, int32(size.X+20), int32(size.Y+10), rl.Magenta)
		rl.DrawTextEx(app.UI.font, banner, rl.Vector2{X: x, Y: 20}, fontSize16, 1, rl.Magenta)
	}

	// Loading indicator
	if app.FileWatch.isLoading {
		elapsed := time.Since(app.FileWatch.loadingStartTime).Seconds()
		text := fmt.Sprintf("Loading... (%.1fs)", elapsed)
		size := rl.MeasureTextEx(app.UI.font, text, fontSize16, 1)
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: screenWidth - size.X - 20, Y: 60}, fontSize16, 1, rl.Yellow)
	}

	// Status line
	if app.UI.status != "" && time.Since(app.UI.statusTime) < statusDuration {
		size := rl.MeasureTextEx(app.UI.font, app.UI.status, fontSize16, 1)
		x := screenWidth - size.X - 20
		yStatus := screenHeight - size.Y - 20
		rl.DrawRectangle(int32(x-10), int32(yStatus-5), int32(size.X+20), int32(size.Y+10), panelColor)
		rl.DrawTextEx(app.UI.font, app.UI.status, rl.Vector2{X: x, Y: yStatus}, fontSize16, 1, rl.Yellow)
	}

	// Version and FPS in bottom-left corner
	bottomY := screenHeight - 20
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

// infoLines summarizes the plan and the session
func (app *App) infoLines() []string {
	s := app.Session
	selected := 0
	for _, sp := range s.Spaces() {
		if sp.Selected {
			selected++
		}
	}

	lines := []string{"Plan:"}
	if info := app.UI.info; info != nil {
		lines = append(lines,
			fmt.Sprintf("Spaces: %d (%d selected)", info.SpaceCount, selected),
			fmt.Sprintf("Entrances: %d  Walls: %d", info.EntranceCount, info.WallCount),
			fmt.Sprintf("Total area: %s", analysis.FormatArea(info.TotalArea)),
		)
	}
	lines = append(lines,
		fmt.Sprintf("Elevators: %d  Stairs: %d", len(s.Markers(annotate.Elevator)), len(s.Markers(annotate.Stairs))),
		fmt.Sprintf("Zoom: %.0f%%", s.View().Scale*100),
	)

	if net := s.Network(); net != nil {
		st := net.Stats()
		lines = append(lines, "Midlines:", fmt.Sprintf("Segments: %d  Connectors: %d", st.Segments, st.Connectors))
		if net.Merged() {
			lines = append(lines, fmt.Sprintf("Components: %d  Primary: %d points", st.Components, st.PrimarySize))
		}
	}
	return lines
}

// helpLines lists the configured key bindings
func helpLines(cfg config.Config) []string {
	byCommand := make(map[string][]string)
	for key, cmd := range cfg.Keys {
		byCommand[cmd] = append(byCommand[cmd], key)
	}

	lines := []string{"Keys:"}
	for _, name := range annotate.CommandNames() {
		keys := byCommand[name]
		if len(keys) == 0 {
			continue
		}
		sort.Strings(keys)
		lines = append(lines, fmt.Sprintf("  %s: %s", strings.Join(keys, " "), name))
	}
	lines = append(lines,
		"Navigate:",
		"  Left Click: Select space / place marker",
		"  Right Drag or Shift+Drag: Pan",
		"  Mouse Wheel: Zoom | Home: Fit | 0: Reset",
		"  F1: Toggle help | Esc: Leave marker mode",
	)
	return lines
}
