package svgplan

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/philipparndt/gofloor/pkg/geometry"
)

const samplePlan = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300">
  <g id="floor">
    <g id="spaces">
      <polygon points="0,0 200,0 200,150 0,150"/>
      <polygon points="200,0 400,0 400,150 200,150"/>
    </g>
  </g>
  <g id="walls">
    <polyline points="0,0 400,0"/>
    <polyline points=""/>
  </g>
  <g id="entrances">
    <polyline points="200,50 200,100"/>
  </g>
  <path d="M0,300 L400,300"/>
  <g id="other">
    <path d="M0,0 L1,1"/>
  </g>
</svg>`

func TestParse(t *testing.T) {
	plan, err := Parse(strings.NewReader(samplePlan), Box{Width: 800, Height: 600}, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if plan.DocWidth != 400 || plan.DocHeight != 300 {
		t.Errorf("document size failed: expected 400x300, got %vx%v", plan.DocWidth, plan.DocHeight)
	}

	// max x = 400, max y = 300 across all shapes; box 800x600 doubles both axes
	wantSpaces := []geometry.Shape{
		{{X: 0, Y: 0}, {X: 400, Y: 0}, {X: 400, Y: 300}, {X: 0, Y: 300}},
		{{X: 400, Y: 0}, {X: 800, Y: 0}, {X: 800, Y: 300}, {X: 400, Y: 300}},
	}
	if diff := cmp.Diff(wantSpaces, plan.Spaces); diff != "" {
		t.Errorf("spaces mismatch (-want +got):\n%s", diff)
	}

	wantWalls := []geometry.Shape{{{X: 0, Y: 0}, {X: 800, Y: 0}}}
	if diff := cmp.Diff(wantWalls, plan.Walls); diff != "" {
		t.Errorf("walls mismatch (-want +got):\n%s", diff)
	}

	wantEntrances := []geometry.Shape{{{X: 400, Y: 100}, {X: 400, Y: 200}}}
	if diff := cmp.Diff(wantEntrances, plan.Entrances); diff != "" {
		t.Errorf("entrances mismatch (-want +got):\n%s", diff)
	}

	// only top-level paths are read
	wantPaths := []geometry.Shape{{{X: 0, Y: 600}, {X: 800, Y: 600}}}
	if diff := cmp.Diff(wantPaths, plan.Paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMissingGroups(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg"><g id="spaces"><polygon points="0,0 10,0 10,10"/></g></svg>`
	plan, err := Parse(strings.NewReader(doc), Box{Width: 100, Height: 100}, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(plan.Entrances) != 0 || len(plan.Walls) != 0 || len(plan.Paths) != 0 {
		t.Errorf("expected empty collections for missing groups, got %+v", plan)
	}
	if plan.DocWidth != 100 || plan.DocHeight != 100 {
		t.Errorf("expected box fallback for document size, got %vx%v", plan.DocWidth, plan.DocHeight)
	}
	if len(plan.Spaces) != 1 {
		t.Fatalf("expected 1 space, got %d", len(plan.Spaces))
	}
}

func TestParseEmptyDocument(t *testing.T) {
	plan, err := Parse(strings.NewReader(`<svg width="50" height="20"></svg>`), Box{Width: 800, Height: 600}, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(plan.All()) != 0 {
		t.Errorf("expected no shapes, got %d", len(plan.All()))
	}
}

func TestParseNotSVG(t *testing.T) {
	_, err := Parse(strings.NewReader(`<html></html>`), Box{Width: 1, Height: 1}, Options{})
	if !errors.Is(err, ErrNoRoot) {
		t.Errorf("expected ErrNoRoot, got %v", err)
	}

	if _, err := Parse(strings.NewReader(`<svg`), Box{Width: 1, Height: 1}, Options{}); err == nil {
		t.Error("expected decode error for truncated document")
	}
}

func TestNormalizeUniformScale(t *testing.T) {
	plan := &Plan{
		Box:    Box{Width: 800, Height: 600},
		Spaces: []geometry.Shape{{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}},
	}
	Normalize(plan, Options{UniformScale: true})

	want := geometry.Shape{{X: 0, Y: 0}, {X: 600, Y: 0}, {X: 600, Y: 600}, {X: 0, Y: 600}}
	if diff := cmp.Diff(want, plan.Spaces[0]); diff != "" {
		t.Errorf("uniform normalization mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeTruncates(t *testing.T) {
	plan := &Plan{
		Box:   Box{Width: 10, Height: 10},
		Walls: []geometry.Shape{{{X: 0, Y: 0}, {X: 3, Y: 3}, {X: 7, Y: 7}}},
	}
	Normalize(plan, Options{})

	// 3/7*10 = 4.28 -> 4
	want := geometry.Shape{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 10, Y: 10}}
	if diff := cmp.Diff(want, plan.Walls[0]); diff != "" {
		t.Errorf("truncation mismatch (-want +got):\n%s", diff)
	}
}

func TestEntranceMidpoint(t *testing.T) {
	mid, ok := EntranceMidpoint(geometry.Shape{{X: 0, Y: 0}, {X: 10, Y: 4}, {X: 99, Y: 99}})
	if !ok || mid != (geometry.Point{X: 5, Y: 2}) {
		t.Errorf("EntranceMidpoint failed: got %v (ok=%v)", mid, ok)
	}
	if _, ok := EntranceMidpoint(geometry.Shape{{X: 1, Y: 1}}); ok {
		t.Error("expected no midpoint for single-point entrance")
	}
}
