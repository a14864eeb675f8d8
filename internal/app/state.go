package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gofloor/internal/annotate"
	"github.com/philipparndt/gofloor/pkg/analysis"
	"github.com/philipparndt/gofloor/pkg/svgplan"
	"github.com/philipparndt/gofloor/pkg/watcher"
)

// CameraState tracks the window size the view was last fitted to
type CameraState struct {
	width  int32
	height int32
}

// PlanLayer caches the rasterized space polygons as a texture
type PlanLayer struct {
	texture rl.Texture2D
	loaded  bool
	dirty   bool
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool
	lastMousePos rl.Vector2
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile       string
	fileWatcher      *watcher.FileWatcher
	needsReload      atomic.Bool
	isLoading        bool
	loadingStartTime time.Time
	loaded           chan *svgplan.Plan
}

// UIState holds fonts and transient messages
type UIState struct {
	font       rl.Font
	status     string
	statusTime time.Time
	showHelp   bool
	info       *analysis.PlanResult
}

// App is the interactive annotation window
type App struct {
	Session     *annotate.Session
	Camera      CameraState
	Layer       PlanLayer
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState
}
