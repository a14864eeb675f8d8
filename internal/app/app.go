// Package app is the interactive raylib frontend of the annotation session.
package app

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofloor/internal/annotate"
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/internal/settings"
	"github.com/philipparndt/gofloor/pkg/analysis"
	"github.com/philipparndt/gofloor/pkg/svgplan"
)

// Options configures the window
type Options struct {
	File   string
	Config config.Config
	Store  settings.Store
	Watch  bool
	// LoadSettings restores markers and selection on startup
	LoadSettings bool
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	cfg := opts.Config
	plan, err := loadPlan(opts.File, cfg)
	if err != nil {
		return err
	}

	app := &App{
		Session: annotate.NewSession(plan, opts.File, cfg, opts.Store, nil),
		FileWatch: FileWatchState{
			sourceFile: opts.File,
			loaded:     make(chan *svgplan.Plan, 1),
		},
		UI: UIState{
			showHelp: true,
			info:     analysis.AnalyzePlan(plan, cfg.EntranceTolerance),
		},
	}
	app.Layer.dirty = true

	if opts.LoadSettings {
		if err := app.Session.LoadSettings(); err != nil {
			log.Printf("[SETTINGS] %v", err)
		}
	}

	if opts.Watch {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "gofloor - "+filepath.Base(opts.File))
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull)

	app.UI.font = rl.GetFontDefault()
	app.fitView()

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		if app.FileWatch.needsReload.Load() && !app.FileWatch.isLoading {
			app.FileWatch.needsReload.Store(false)
			app.reloadPlan()
		}
		app.applyLoadedPlan()

		app.handleResize()
		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(cfg.Colors.Background.RGBA())
		app.drawPlan()
		app.drawUI()
		rl.EndDrawing()
	}

	if app.Layer.loaded {
		rl.UnloadTexture(app.Layer.texture)
	}
	rl.CloseWindow()
	return nil
}

// setStatus shows a message in the status line for a few seconds
func (app *App) setStatus(format string, args ...any) {
	app.UI.status = fmt.Sprintf(format, args...)
	app.UI.statusTime = time.Now()
}
