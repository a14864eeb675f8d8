package annotate

import (
	"fmt"
	"sort"

	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/internal/settings"
	"github.com/philipparndt/gofloor/pkg/centerline"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/midline"
	"github.com/philipparndt/gofloor/pkg/spatial"
	"github.com/philipparndt/gofloor/pkg/svgplan"
	"github.com/philipparndt/gofloor/pkg/view"
)

// Session is the state of one open document. It is not safe for concurrent
// use; independent sessions share nothing.
type Session struct {
	cfg      config.Config
	document string
	plan     *svgplan.Plan
	store    settings.Store
	builder  *midline.Builder

	spaces  []Space
	markers [2][]Marker
	cursors [2]IDCursor
	mode    Mode

	// hovered space, wall and entrance, -1 for none
	hovered         int
	hoveredWall     int
	hoveredEntrance int

	view     view.State
	dragging bool
	dragLast geometry.Point

	// last hover position, replayed when the view changes
	cursor    geometry.Point
	hasCursor bool

	network       *midline.Network
	midlineColors []config.Color

	spaceIndex  *spatial.SpaceIndex
	markerIndex [2]*spatial.MarkerIndex
}

// NewSession opens a session on a parsed plan. document is the key used for
// persisted settings, usually the source path.
func NewSession(plan *svgplan.Plan, document string, cfg config.Config, store settings.Store, service centerline.Service) *Session {
	if service == nil {
		service = centerline.NewSkeleton(cfg.CenterlineOptions())
	}
	s := &Session{
		cfg:      cfg,
		document: document,
		store:    store,
		builder:  midline.NewBuilder(service, cfg.MidlineOptions()),
		cursors:  [2]IDCursor{NewIDCursor(cfg.MaxID), NewIDCursor(cfg.MaxID)},
		hovered:  -1,
		view:     view.Identity(),
	}
	s.setPlan(plan, nil)
	return s
}

func (s *Session) setPlan(plan *svgplan.Plan, selection []bool) {
	s.plan = plan
	s.spaces = make([]Space, len(plan.Spaces))
	for i, polygon := range plan.Spaces {
		s.spaces[i] = Space{Polygon: polygon, Color: s.cfg.Colors.Space}
	}
	s.applySelection(selection)
	s.spaceIndex = spatial.NewSpaceIndex(plan.Spaces)
	s.hovered = -1
	s.hoveredWall, s.hoveredEntrance = -1, -1
	s.network = nil
	s.midlineColors = nil
}

// Reload swaps in a freshly parsed plan. The space selection is kept
// positionally and markers are kept as they are.
func (s *Session) Reload(plan *svgplan.Plan) {
	s.setPlan(plan, s.Selection())
}

// Config returns the configuration of the session
func (s *Session) Config() config.Config { return s.cfg }

// Document returns the settings key of the session
func (s *Session) Document() string { return s.document }

// Plan returns the loaded plan
func (s *Session) Plan() *svgplan.Plan { return s.plan }

// Mode returns the active mode
func (s *Session) Mode() Mode { return s.mode }

// View returns the current view transform
func (s *Session) View() view.State { return s.view }

// SetView replaces the view transform
func (s *Session) SetView(v view.State) { s.setView(v) }

// setView moves the view and refreshes the hover under a resting cursor
func (s *Session) setView(v view.State) {
	s.view = v
	if s.hasCursor {
		s.Hover(s.cursor)
	}
}

// Hovered returns the index of the highlighted space or -1
func (s *Session) Hovered() int { return s.hovered }

// Spaces returns the spaces; callers must not modify them
func (s *Session) Spaces() []Space { return s.spaces }

// Markers returns the markers of kind; callers must not modify them
func (s *Session) Markers(kind MarkerKind) []Marker { return s.markers[kind] }

// Cursor returns the next ID for kind
func (s *Session) Cursor(kind MarkerKind) int { return s.cursors[kind].Value }

// Network returns the last computed midline network, or nil
func (s *Session) Network() *midline.Network { return s.network }

// Selection returns the positional selection of all spaces
func (s *Session) Selection() []bool {
	sel := make([]bool, len(s.spaces))
	for i, sp := range s.spaces {
		sel[i] = sp.Selected
	}
	return sel
}

// applySelection sets the selection from a positional array. Only the
// prefix shared with the space list is applied; the rest is cleared.
func (s *Session) applySelection(selection []bool) {
	for i := range s.spaces {
		s.spaces[i].Selected = i < len(selection) && selection[i]
		s.recolor(i)
	}
}

func (s *Session) recolor(i int) {
	switch {
	case s.spaces[i].Selected:
		s.spaces[i].Color = s.cfg.Colors.Clicked
	case i == s.hovered:
		s.spaces[i].Color = s.cfg.Colors.Highlight
	default:
		s.spaces[i].Color = s.cfg.Colors.Space
	}
}

// SetSelected selects or clears one space
func (s *Session) SetSelected(index int, selected bool) error {
	if index < 0 || index >= len(s.spaces) {
		return fmt.Errorf("space %d: %w", index, ErrIndexOutOfRange)
	}
	s.spaces[index].Selected = selected
	s.recolor(index)
	return nil
}

// Hover highlights the innermost space under the cursor and the walls and
// entrances within the hover threshold. It does nothing while a marker mode
// is active. Returns the hovered space index or -1.
func (s *Session) Hover(screen geometry.Point) int {
	s.cursor, s.hasCursor = screen, true
	if s.mode != ModeNormal {
		return s.hovered
	}
	model := s.view.ToModel(screen)
	s.hovered = s.spaceIndex.Innermost(model)

	// the threshold is in display pixels
	threshold := s.cfg.HoverThreshold / s.view.Scale
	s.hoveredWall = nearPolyline(model, s.plan.Walls, threshold)
	s.hoveredEntrance = nearPolyline(model, s.plan.Entrances, threshold)
	for i := range s.spaces {
		s.recolor(i)
	}
	return s.hovered
}

// HoveredLines returns the wall and entrance under the cursor, -1 for none
func (s *Session) HoveredLines() (wall, entrance int) {
	return s.hoveredWall, s.hoveredEntrance
}

func nearPolyline(p geometry.Point, lines []geometry.Shape, threshold float64) int {
	for i, line := range lines {
		if geometry.PointNearPolyline(p, line, threshold) {
			return i
		}
	}
	return -1
}

// ClickKind tells what a click did
type ClickKind string

const (
	ClickNone          ClickKind = "none"
	ClickSpace         ClickKind = "space"
	ClickMarker        ClickKind = "marker"
	ClickMarkerCreated ClickKind = "created"
)

// ClickResult describes the effect of a click
type ClickResult struct {
	Kind     ClickKind `json:"kind"`
	Index    int       `json:"index"`
	Selected bool      `json:"selected"`
	ID       int       `json:"id,omitempty"`
}

// Click handles a primary button press at a display position
func (s *Session) Click(screen geometry.Point) ClickResult {
	model := s.view.ToModel(screen)

	kind, editing := s.mode.Kind()
	if !editing {
		i := s.spaceIndex.Innermost(model)
		if i < 0 {
			return ClickResult{Kind: ClickNone, Index: -1}
		}
		s.spaces[i].Selected = !s.spaces[i].Selected
		s.recolor(i)
		return ClickResult{Kind: ClickSpace, Index: i, Selected: s.spaces[i].Selected}
	}

	// the hit radius is r*scale on screen, which is r in model space
	if i := s.markerIndexOf(kind).First(model, s.cfg.MarkerRadius*kind.hitScale()); i >= 0 {
		m := &s.markers[kind][i]
		m.Selected = !m.Selected
		return ClickResult{Kind: ClickMarker, Index: i, Selected: m.Selected, ID: m.ID}
	}

	id := s.cursors[kind].Value
	s.markers[kind] = append(s.markers[kind], Marker{Position: model, ID: id})
	s.cursors[kind] = s.cursors[kind].Adjust(1)
	s.markerIndex[kind] = nil
	return ClickResult{Kind: ClickMarkerCreated, Index: len(s.markers[kind]) - 1, ID: id}
}

func (s *Session) markerIndexOf(kind MarkerKind) *spatial.MarkerIndex {
	if s.markerIndex[kind] == nil {
		points := make([]geometry.Point, len(s.markers[kind]))
		for i, m := range s.markers[kind] {
			points[i] = m.Position
		}
		s.markerIndex[kind] = spatial.NewMarkerIndex(points)
	}
	return s.markerIndex[kind]
}

// ToggleMode switches the edit mode of kind on or off
func (s *Session) ToggleMode(kind MarkerKind) Mode {
	s.mode = s.mode.Toggle(kind)
	if s.mode != ModeNormal {
		s.hovered = -1
		s.hoveredWall, s.hoveredEntrance = -1, -1
		for i := range s.spaces {
			s.recolor(i)
		}
	}
	return s.mode
}

// AdjustID moves the ID cursor of kind by delta within [1, MaxID]
func (s *Session) AdjustID(kind MarkerKind, delta int) int {
	s.cursors[kind] = s.cursors[kind].Adjust(delta)
	return s.cursors[kind].Value
}

// DeleteSelected removes the selected markers of the active kind and
// returns how many were removed
func (s *Session) DeleteSelected() int {
	kind, ok := s.mode.Kind()
	if !ok {
		return 0
	}
	kept := s.markers[kind][:0]
	removed := 0
	for _, m := range s.markers[kind] {
		if m.Selected {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	s.markers[kind] = kept
	if removed > 0 {
		s.markerIndex[kind] = nil
	}
	return removed
}

// DuplicateMarkerIDs returns the IDs used by more than one marker of kind, ascending
func (s *Session) DuplicateMarkerIDs(kind MarkerKind) []int {
	counts := make(map[int]int)
	for _, m := range s.markers[kind] {
		counts[m.ID]++
	}
	var dups []int
	for id, n := range counts {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Ints(dups)
	return dups
}

// BeginDrag starts panning at a display position
func (s *Session) BeginDrag(screen geometry.Point) {
	s.dragging = true
	s.dragLast = screen
}

// Drag pans by the motion since the last drag position
func (s *Session) Drag(screen geometry.Point) {
	if !s.dragging {
		return
	}
	s.setView(s.view.Pan(screen.Sub(s.dragLast)))
	s.dragLast = screen
}

// EndDrag stops panning
func (s *Session) EndDrag() {
	s.dragging = false
}

// Dragging reports whether a pan is in progress
func (s *Session) Dragging() bool { return s.dragging }

// Zoom scales the view one step in or out around a display position
func (s *Session) Zoom(pivot geometry.Point, in bool) {
	factor := view.ZoomOutFactor
	if in {
		factor = view.ZoomInFactor
	}
	s.setView(s.view.ZoomAt(pivot, factor))
}
