package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gofloor/internal/annotate"
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/internal/settings"
	"github.com/philipparndt/gofloor/pkg/analysis"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/preview"
	"github.com/philipparndt/gofloor/pkg/svgplan"
	"github.com/philipparndt/gofloor/pkg/view"
	"github.com/philipparndt/gofloor/version"
)

type App struct {
	window  fyne.Window
	cfg     config.Config
	store   settings.Store
	session *annotate.Session
	view    *planView
	info    *SessionInfo
}

type SessionInfo struct {
	planLabel     *widget.Label
	modeLabel     *widget.Label
	selectedLabel *widget.Label
	markersLabel  *widget.Label
	networkLabel  *widget.Label
	statusLabel   *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("gofloor " + version.GetVersion() + " - Floor Plan Annotator")

	cfg := config.Default()
	if path := os.Getenv("GOFLOOR_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Printf("[SETTINGS] %v", err)
		} else {
			cfg = loaded
		}
	}

	appInstance := &App{
		window: w,
		cfg:    cfg,
		store:  settings.NewFileStore(cfg.SelectionFile),
	}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to gofloor")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Floor Plan' to load an SVG document")

	openButton := widget.NewButton("Open Floor Plan", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	plan, err := svgplan.ParseFile(filename, a.cfg.Box(), a.cfg.PlanOptions())
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load floor plan: %w", err), a.window)
		return
	}

	a.session = annotate.NewSession(plan, filename, a.cfg, a.store, nil)
	a.session.SetView(view.Fit(plan.Bounds(), a.cfg.Width, a.cfg.Height, 20))
	a.setupMainUI(plan, filename)
}

func (a *App) setupMainUI(plan *svgplan.Plan, filename string) {
	a.info = &SessionInfo{
		planLabel:     widget.NewLabel(""),
		modeLabel:     widget.NewLabel(""),
		selectedLabel: widget.NewLabel(""),
		markersLabel:  widget.NewLabel(""),
		networkLabel:  widget.NewLabel("Midlines: -"),
		statusLabel:   widget.NewLabel(""),
	}
	a.info.modeLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.info.statusLabel.Wrapping = fyne.TextWrapWord

	result := analysis.AnalyzePlan(plan, a.cfg.EntranceTolerance)
	a.info.planLabel.SetText(fmt.Sprintf(
		"File: %s\nSpaces: %d\nWalls: %d\nEntrances: %d\nTotal area: %s",
		filepath.Base(filename),
		result.SpaceCount,
		result.WallCount,
		result.EntranceCount,
		analysis.FormatArea(result.TotalArea),
	))

	a.view = newPlanView(
		func(p geometry.Point) {
			res := a.session.Click(p)
			if res.Kind == annotate.ClickMarkerCreated {
				a.setStatus(fmt.Sprintf("Placed marker %d", res.ID))
			}
			a.refresh()
		},
		func(p geometry.Point) {
			before := a.session.Hovered()
			wall, entrance := a.session.HoveredLines()
			hovered := a.session.Hover(p)
			nextWall, nextEntrance := a.session.HoveredLines()
			if hovered != before || wall != nextWall || entrance != nextEntrance {
				a.refresh()
			}
		},
	)

	a.window.Canvas().SetOnTypedRune(func(r rune) {
		a.run(func() error {
			_, err := a.session.HandleKey(r)
			return err
		})
	})

	actions := container.NewVBox(
		widget.NewButton("Selected Midlines (m)", func() { a.execute(annotate.CmdMidlines) }),
		widget.NewButton("All Midlines (a)", func() { a.execute(annotate.CmdAllMidlines) }),
		widget.NewButton("Elevator Mode (1)", func() { a.execute(annotate.CmdToggleElevator) }),
		widget.NewButton("Stairs Mode (2)", func() { a.execute(annotate.CmdToggleStairs) }),
		widget.NewButton("Delete Selected Markers (x)", func() { a.execute(annotate.CmdDelete) }),
		widget.NewSeparator(),
		widget.NewButton("Save Settings (s)", func() { a.execute(annotate.CmdSave) }),
		widget.NewButton("Load Settings (l)", func() { a.execute(annotate.CmdLoad) }),
		widget.NewButton("Export SVG (e)", func() { a.execute(annotate.CmdExport) }),
		widget.NewButton("Export Debug SVG (r)", func() { a.execute(annotate.CmdExportDebug) }),
		widget.NewButton("Save Preview PNG", a.savePreview),
		widget.NewSeparator(),
		widget.NewButton("Open File", a.showFileDialog),
	)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click spaces to select them\n" +
			"• In a marker mode, click to place or select markers\n" +
			"• +/- change the next marker ID\n" +
			"• Keys work as in the viewer",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Plan Information:"),
		widget.NewSeparator(),
		a.info.planLabel,
		widget.NewSeparator(),
		a.info.modeLabel,
		a.info.selectedLabel,
		a.info.markersLabel,
		a.info.networkLabel,
		widget.NewSeparator(),
		actions,
		widget.NewSeparator(),
		instructions,
		a.info.statusLabel,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.view,     // center
	)

	a.window.SetContent(content)
	a.refresh()
}

func (a *App) execute(cmd annotate.Command) {
	a.run(func() error { return a.session.Execute(cmd) })
}

// run applies a session change and refreshes the window
func (a *App) run(fn func() error) {
	if err := fn(); err != nil {
		dialog.ShowError(err, a.window)
	}
	a.refresh()
}

func (a *App) refresh() {
	s := a.session
	a.view.SetImage(preview.Render(s.Scene(), int(a.cfg.Width), int(a.cfg.Height)))

	mode := "Mode: normal"
	if kind, ok := s.Mode().Kind(); ok {
		mode = fmt.Sprintf("Mode: %s (next ID %d)", kind, s.Cursor(kind))
	}
	a.info.modeLabel.SetText(mode)

	selected := 0
	for _, sp := range s.Spaces() {
		if sp.Selected {
			selected++
		}
	}
	a.info.selectedLabel.SetText(fmt.Sprintf("Selected spaces: %d", selected))
	a.info.markersLabel.SetText(fmt.Sprintf("Elevators: %d\nStairs: %d",
		len(s.Markers(annotate.Elevator)), len(s.Markers(annotate.Stairs))))

	if net := s.Network(); net != nil {
		st := net.Stats()
		text := fmt.Sprintf("Midlines: %d segments", st.Segments)
		if net.Merged() {
			text += fmt.Sprintf("\nComponents: %d\nPrimary: %d points", st.Components, st.PrimarySize)
		}
		a.info.networkLabel.SetText(text)
	} else {
		a.info.networkLabel.SetText("Midlines: -")
	}
}

func (a *App) setStatus(text string) {
	a.info.statusLabel.SetText(text)
}

func (a *App) savePreview() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		img := preview.Render(a.session.Scene(), int(a.cfg.Width), int(a.cfg.Height))
		if err := preview.WritePNG(writer, img); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.setStatus("Preview saved to " + writer.URI().Path())
	}, a.window)
}
