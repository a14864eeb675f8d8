package app

import (
	"context"
	"fmt"
	"time"

	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/pkg/analysis"
	"github.com/philipparndt/gofloor/pkg/svgplan"
	"github.com/philipparndt/gofloor/pkg/watcher"
)

// loadPlan parses a floor plan into the configured display box
func loadPlan(path string, cfg config.Config) (*svgplan.Plan, error) {
	plan, err := svgplan.ParseFile(path, cfg.Box(), cfg.PlanOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load floor plan: %w", err)
	}
	return plan, nil
}

// setupFileWatcher reloads the plan whenever the source file changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		fmt.Printf("\nFile changed: %s\n", changedFile)
		app.FileWatch.needsReload.Store(true)
	}

	if err := fw.Watch([]string{app.FileWatch.sourceFile}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}
	fmt.Printf("Watching file for changes: %s\n", app.FileWatch.sourceFile)

	fw.Start(context.Background())
	app.FileWatch.fileWatcher = fw
	return nil
}

// reloadPlan parses the source file in the background
func (app *App) reloadPlan() {
	if app.FileWatch.isLoading {
		return
	}
	app.FileWatch.isLoading = true
	app.FileWatch.loadingStartTime = time.Now()
	fmt.Println("Reloading floor plan...")

	path := app.FileWatch.sourceFile
	cfg := app.Session.Config()
	go func() {
		plan, err := loadPlan(path, cfg)
		if err != nil {
			fmt.Printf("Error reloading floor plan: %v\n", err)
			plan = nil
		}
		app.FileWatch.loaded <- plan
	}()
}

// applyLoadedPlan swaps in a plan parsed by reloadPlan. It must run on the
// main thread since the cached texture is rebuilt.
func (app *App) applyLoadedPlan() {
	select {
	case plan := <-app.FileWatch.loaded:
		app.FileWatch.isLoading = false
		if plan == nil {
			app.setStatus("Reload failed")
			return
		}
		app.Session.Reload(plan)
		app.UI.info = analysis.AnalyzePlan(plan, app.Session.Config().EntranceTolerance)
		app.Layer.dirty = true

		elapsed := time.Since(app.FileWatch.loadingStartTime)
		fmt.Printf("Floor plan reloaded successfully in %.2fs!\n", elapsed.Seconds())
		app.setStatus("Reloaded %d spaces", len(plan.Spaces))
	default:
	}
}
