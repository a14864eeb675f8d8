package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofloor/pkg/analysis"
	"github.com/philipparndt/gofloor/pkg/svgplan"
)

var (
	infoTop      int
	infoMidlines bool
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a floor plan",
	Long:  "Show counts per category, space areas, wall lengths and entrances that touch no space. With --midlines the full walking network is built and summarized.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().IntVarP(&infoTop, "top", "n", 5, "number of largest and smallest spaces to list")
	infoCmd.Flags().BoolVarP(&infoMidlines, "midlines", "m", false, "build the midline network of all spaces")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	plan, err := svgplan.ParseFile(filename, cfg.Box(), cfg.PlanOptions())
	if err != nil {
		return err
	}
	result := analysis.AnalyzePlan(plan, cfg.EntranceTolerance)

	fmt.Println("Floor Plan Information")
	fmt.Println("======================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Document size: %.0f x %.0f\n", plan.DocWidth, plan.DocHeight)
	fmt.Printf("Display box: %.0f x %.0f\n\n", plan.Box.Width, plan.Box.Height)

	fmt.Println("Shapes:")
	fmt.Printf("  Spaces: %d\n", result.SpaceCount)
	fmt.Printf("  Walls: %d\n", result.WallCount)
	fmt.Printf("  Entrances: %d\n", result.EntranceCount)
	fmt.Printf("  Free paths: %d\n\n", result.PathCount)

	fmt.Println("Bounds:")
	fmt.Printf("  Min: %s\n", analysis.FormatPoint(result.Bounds.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatPoint(result.Bounds.Max))
	fmt.Printf("  Size: %.2f x %.2f\n\n", result.Dimensions.X, result.Dimensions.Y)

	if result.SpaceCount > 0 {
		fmt.Println("Space Areas:")
		fmt.Printf("  Total: %s\n", analysis.FormatArea(result.TotalArea))
		fmt.Printf("  Minimum: %s\n", analysis.FormatArea(result.MinSpaceArea))
		fmt.Printf("  Maximum: %s\n", analysis.FormatArea(result.MaxSpaceArea))
		fmt.Printf("  Average: %s\n\n", analysis.FormatArea(result.AvgSpaceArea))

		fmt.Printf("Largest %d:\n", infoTop)
		for _, s := range analysis.LargestSpaces(result, infoTop) {
			fmt.Printf("  #%d: %s (%d points)\n", s.Index, analysis.FormatArea(s.Area), s.Points)
		}
		fmt.Printf("Smallest %d:\n", infoTop)
		for _, s := range analysis.SmallestSpaces(result, infoTop) {
			fmt.Printf("  #%d: %s (%d points)\n", s.Index, analysis.FormatArea(s.Area), s.Points)
		}
		fmt.Println()
	}

	fmt.Printf("Wall length: %.2f\n", result.TotalWallLength)
	if len(result.OrphanEntrances) > 0 {
		warn("Entrances outside every space: %v", result.OrphanEntrances)
	}

	if !infoMidlines {
		return nil
	}

	session, err := openSession(filename, cfg, nil, false)
	if err != nil {
		return err
	}
	st := session.ComputeAllMidlines().Stats()

	fmt.Println()
	fmt.Println("Midline Network:")
	fmt.Printf("  Segments: %d (%d centerline, %d connectors)\n", st.Segments, st.Centerlines, st.Connectors)
	fmt.Printf("  Components: %d\n", st.Components)
	fmt.Printf("  Primary: %d points in %d segments\n", st.PrimarySize, st.PrimarySegments)
	fmt.Printf("  Length: %.2f (primary %.2f)\n", st.Length, st.PrimaryLength)
	if st.Components > 1 {
		warn("%d segments are not reachable from the primary network", st.Segments-st.PrimarySegments)
	} else if st.Components == 1 {
		success("All segments are connected")
	}
	return nil
}
