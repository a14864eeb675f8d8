package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/svgplan"
)

// SpaceInfo describes one room of a plan
type SpaceInfo struct {
	Index  int
	Area   float64
	Points int
	Bounds geometry.Bounds
}

// WallInfo describes one wall polyline
type WallInfo struct {
	Index  int
	Length float64
}

// PlanResult contains statistics about a parsed plan
type PlanResult struct {
	Bounds          geometry.Bounds
	Dimensions      geometry.Point
	SpaceCount      int
	WallCount       int
	EntranceCount   int
	PathCount       int
	TotalArea       float64
	MinSpaceArea    float64
	MaxSpaceArea    float64
	AvgSpaceArea    float64
	TotalWallLength float64
	Spaces          []SpaceInfo
	Walls           []WallInfo
	// Entrances that do not lie in any space even with the connector tolerance
	OrphanEntrances []int
}

// AnalyzePlan gathers statistics about a plan. entranceTolerance is the
// distance used to decide whether a door touches a room.
func AnalyzePlan(plan *svgplan.Plan, entranceTolerance float64) *PlanResult {
	result := &PlanResult{
		Bounds:        plan.Bounds(),
		SpaceCount:    len(plan.Spaces),
		WallCount:     len(plan.Walls),
		EntranceCount: len(plan.Entrances),
		PathCount:     len(plan.Paths),
		Spaces:        make([]SpaceInfo, 0, len(plan.Spaces)),
	}
	result.Dimensions = result.Bounds.Size()

	minArea := math.MaxFloat64
	maxArea := 0.0
	for i, space := range plan.Spaces {
		area := geometry.PolygonArea(space)
		result.Spaces = append(result.Spaces, SpaceInfo{
			Index:  i,
			Area:   area,
			Points: len(space),
			Bounds: space.Bounds(),
		})

		result.TotalArea += area
		minArea = math.Min(minArea, area)
		maxArea = math.Max(maxArea, area)
	}
	if result.SpaceCount > 0 {
		result.MinSpaceArea = minArea
		result.MaxSpaceArea = maxArea
		result.AvgSpaceArea = result.TotalArea / float64(result.SpaceCount)
	}

	for i, wall := range plan.Walls {
		length := 0.0
		for j := 1; j < len(wall); j++ {
			length += wall[j].Distance(wall[j-1])
		}
		result.Walls = append(result.Walls, WallInfo{Index: i, Length: length})
		result.TotalWallLength += length
	}

	for i, entrance := range plan.Entrances {
		anchor, ok := svgplan.EntranceMidpoint(entrance)
		if !ok {
			result.OrphanEntrances = append(result.OrphanEntrances, i)
			continue
		}
		inside := false
		for _, space := range plan.Spaces {
			if geometry.PointInPolygon(anchor, space, entranceTolerance) {
				inside = true
				break
			}
		}
		if !inside {
			result.OrphanEntrances = append(result.OrphanEntrances, i)
		}
	}

	return result
}

// LargestSpaces returns the N largest spaces by area
func LargestSpaces(result *PlanResult, count int) []SpaceInfo {
	spaces := make([]SpaceInfo, len(result.Spaces))
	copy(spaces, result.Spaces)

	sort.SliceStable(spaces, func(i, j int) bool {
		return spaces[i].Area > spaces[j].Area
	})

	if count > len(spaces) {
		count = len(spaces)
	}
	return spaces[:count]
}

// SmallestSpaces returns the N smallest spaces by area
func SmallestSpaces(result *PlanResult, count int) []SpaceInfo {
	spaces := make([]SpaceInfo, len(result.Spaces))
	copy(spaces, result.Spaces)

	sort.SliceStable(spaces, func(i, j int) bool {
		return spaces[i].Area < spaces[j].Area
	})

	if count > len(spaces) {
		count = len(spaces)
	}
	return spaces[:count]
}

// FormatArea formats an area in display units
func FormatArea(value float64) string {
	return fmt.Sprintf("%.1f units²", value)
}

// FormatPoint formats a 2D point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}
