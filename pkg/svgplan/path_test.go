package svgplan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/philipparndt/gofloor/pkg/geometry"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want []geometry.Shape
	}{
		{
			name: "closed triangle",
			d:    "M0,0 L10,0 L10,10 Z",
			want: []geometry.Shape{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}},
		},
		{
			name: "relative commands",
			d:    "m5 5 l10 0 v10 h-10 z",
			want: []geometry.Shape{{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}, {X: 5, Y: 5}}},
		},
		{
			name: "absolute horizontal and vertical",
			d:    "M1,1 H4 V6",
			want: []geometry.Shape{{{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 6}}},
		},
		{
			name: "implicit lineto after moveto",
			d:    "M0 0 10 0 10 10",
			want: []geometry.Shape{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
		},
		{
			name: "new subpath flushes previous",
			d:    "M0,0 L1,0 M5,5 L6,5",
			want: []geometry.Shape{{{X: 0, Y: 0}, {X: 1, Y: 0}}, {{X: 5, Y: 5}, {X: 6, Y: 5}}},
		},
		{
			name: "relative moveto after close is relative to start",
			d:    "M10,10 L20,10 Z m5,0 l1,0",
			want: []geometry.Shape{{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 10, Y: 10}}, {{X: 15, Y: 10}, {X: 16, Y: 10}}},
		},
		{
			name: "curves are skipped",
			d:    "M0,0 C1,1 2,2 3,3 L4,0",
			want: []geometry.Shape{{{X: 0, Y: 0}, {X: 4, Y: 0}}},
		},
		{
			name: "exponents and signs",
			d:    "M1e1,-2.5L.5-1",
			want: []geometry.Shape{{{X: 10, Y: -2.5}, {X: 0.5, Y: -1}}},
		},
		{
			name: "empty",
			d:    "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePath(tt.d)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParsePath(%q) mismatch (-want +got):\n%s", tt.d, diff)
			}
		})
	}
}

func TestParsePoints(t *testing.T) {
	got := ParsePoints(" 1,2 3,4\n5.5,6 ")
	want := geometry.Shape{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5.5, Y: 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParsePoints mismatch (-want +got):\n%s", diff)
	}

	if got := ParsePoints(""); got != nil {
		t.Errorf("expected nil for empty attribute, got %v", got)
	}
}
