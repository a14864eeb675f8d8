// Package config holds the immutable tool configuration: colors, key
// bindings, tolerances and the display box.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/philipparndt/gofloor/pkg/centerline"
	"github.com/philipparndt/gofloor/pkg/midline"
	"github.com/philipparndt/gofloor/pkg/svgplan"
)

// Color is an RGB triple, written as [r, g, b] in TOML
type Color [3]uint8

// RGBA converts to an opaque image color
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// CSS formats the color as used in SVG style attributes
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c[0], c[1], c[2])
}

// Colors of every drawable category
type Colors struct {
	Background Color `toml:"background"`
	Entrance   Color `toml:"entrance"`
	Space      Color `toml:"space"`
	Wall       Color `toml:"wall"`
	Highlight  Color `toml:"highlight"`
	Clicked    Color `toml:"clicked"`
	Midline    Color `toml:"midline"`
	Primary    Color `toml:"primary"`
	Secondary  Color `toml:"secondary"`
	Elevator   Color `toml:"elevator"`
	Stairs     Color `toml:"stairs"`
	Selected   Color `toml:"selected"` // selected markers
}

// Centerline mirrors centerline.Options for the config file
type Centerline struct {
	Extend            bool    `toml:"extend"`
	DensifyDistance   float64 `toml:"densify_distance"`
	SimplifyTolerance float64 `toml:"simplify_tolerance"`
	MinBranchLength   float64 `toml:"min_branch_length"`
}

// Config is built once at startup and passed by value
type Config struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	UniformScale bool    `toml:"uniform_scale"`

	MaxID             int     `toml:"max_id"`
	MarkerRadius      float64 `toml:"marker_radius"`
	EntranceTolerance float64 `toml:"entrance_tolerance"`
	MarkerTolerance   float64 `toml:"marker_tolerance"`
	HoverThreshold    float64 `toml:"hover_threshold"`

	Output        string `toml:"output"`
	SelectionFile string `toml:"selection_file"`
	Database      string `toml:"database"`
	Addr          string `toml:"addr"`

	Colors     Colors            `toml:"colors"`
	Keys       map[string]string `toml:"keys"`
	Centerline Centerline        `toml:"centerline"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:             800,
		Height:            600,
		MaxID:             99,
		MarkerRadius:      8,
		EntranceTolerance: 5,
		MarkerTolerance:   0,
		HoverThreshold:    5,
		Output:            "output.svg",
		SelectionFile:     "selected_spaces.json",
		Addr:              ":8080",
		Colors: Colors{
			Background: Color{255, 255, 255},
			Entrance:   Color{0, 100, 255},
			Space:      Color{0, 100, 100},
			Wall:       Color{200, 200, 200},
			Highlight:  Color{50, 50, 50},
			Clicked:    Color{0, 150, 150},
			Midline:    Color{255, 0, 0},
			Primary:    Color{0, 255, 0},
			Secondary:  Color{255, 0, 0},
			Elevator:   Color{0, 0, 255},
			Stairs:     Color{255, 140, 0},
			Selected:   Color{255, 0, 0},
		},
		Keys: DefaultKeys(),
		Centerline: Centerline{
			Extend:            false,
			DensifyDistance:   5,
			SimplifyTolerance: 0.5,
			MinBranchLength:   -1,
		},
	}
}

// DefaultKeys maps keyboard letters to command names
func DefaultKeys() map[string]string {
	return map[string]string{
		"m": "midlines",
		"a": "all-midlines",
		"e": "export",
		"r": "export-debug",
		"s": "save",
		"l": "load",
		"1": "toggle-elevator",
		"2": "toggle-stairs",
		"+": "next-id",
		"=": "next-id",
		"-": "previous-id",
		"x": "delete",
	}
}

// Load reads a TOML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the tool cannot work with
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("display box must be positive, got %vx%v", c.Width, c.Height))
	}
	if c.MaxID < 1 {
		errs = append(errs, fmt.Errorf("max_id must be at least 1, got %d", c.MaxID))
	}
	if c.MarkerRadius <= 0 {
		errs = append(errs, fmt.Errorf("marker_radius must be positive, got %v", c.MarkerRadius))
	}
	if c.EntranceTolerance < 0 || c.MarkerTolerance < 0 || c.HoverThreshold < 0 {
		errs = append(errs, errors.New("tolerances must not be negative"))
	}
	if c.Centerline.DensifyDistance <= 0 {
		errs = append(errs, fmt.Errorf("centerline densify_distance must be positive, got %v", c.Centerline.DensifyDistance))
	}
	return errors.Join(errs...)
}

// CenterlineOptions converts to the skeleton options
func (c Config) CenterlineOptions() centerline.Options {
	return centerline.Options{
		Extend:            c.Centerline.Extend,
		DensifyDistance:   c.Centerline.DensifyDistance,
		SimplifyTolerance: c.Centerline.SimplifyTolerance,
		MinBranchLength:   c.Centerline.MinBranchLength,
	}
}

// MidlineOptions converts to the network builder options
func (c Config) MidlineOptions() midline.Options {
	return midline.Options{
		EntranceTolerance: c.EntranceTolerance,
		MarkerTolerance:   c.MarkerTolerance,
	}
}

// Box is the display box plans are normalized into
func (c Config) Box() svgplan.Box {
	return svgplan.Box{Width: c.Width, Height: c.Height}
}

// PlanOptions returns the parser settings
func (c Config) PlanOptions() svgplan.Options {
	return svgplan.Options{UniformScale: c.UniformScale}
}

// WithBox returns a copy using the given display box; zero values keep the current size
func (c Config) WithBox(width, height float64) Config {
	if width > 0 {
		c.Width = width
	}
	if height > 0 {
		c.Height = height
	}
	return c
}

// Command returns the command bound to key
func (c Config) Command(key rune) (string, bool) {
	name, ok := c.Keys[string(key)]
	return name, ok
}
