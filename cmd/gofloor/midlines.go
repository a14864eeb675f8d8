package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofloor/internal/annotate"
)

var (
	midlinesAll    bool
	midlinesOutput string
	midlinesDebug  bool
)

var midlinesCmd = &cobra.Command{
	Use:   "midlines [file]",
	Short: "Compute the midline network and export it as SVG",
	Long: `Compute midlines for the saved space selection, or for every space with
--all, which also merges the network and marks the primary component. Saved
elevators and stairs are connected to the network.`,
	Args: cobra.ExactArgs(1),
	RunE: runMidlines,
}

func init() {
	midlinesCmd.Flags().BoolVarP(&midlinesAll, "all", "a", false, "use every space and merge the network")
	midlinesCmd.Flags().StringVarP(&midlinesOutput, "output", "o", "", "output SVG (defaults to the configured output)")
	midlinesCmd.Flags().BoolVarP(&midlinesDebug, "debug", "d", false, "color every midline segment individually")
	rootCmd.AddCommand(midlinesCmd)
}

func runMidlines(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, done, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(done, &err)

	session, err := openSession(args[0], cfg, store, true)
	if err != nil {
		return err
	}

	if !midlinesAll {
		selected := 0
		for _, s := range session.Selection() {
			if s {
				selected++
			}
		}
		if selected == 0 {
			warn("No spaces selected; select spaces in the viewer or pass --all")
		}
		session.ComputeSelectedMidlines()
	} else {
		session.ComputeAllMidlines()
	}

	st := session.Network().Stats()
	fmt.Printf("Segments: %d (%d centerline, %d connectors)\n", st.Segments, st.Centerlines, st.Connectors)
	if session.Network().Merged() {
		fmt.Printf("Components: %d, primary has %d points\n", st.Components, st.PrimarySize)
	}
	for _, kind := range []annotate.MarkerKind{annotate.Elevator, annotate.Stairs} {
		if dups := session.DuplicateMarkerIDs(kind); len(dups) > 0 {
			warn("Duplicate %s IDs: %v", kind, dups)
		}
	}

	output := midlinesOutput
	if output == "" {
		output = cfg.Output
	}
	if err := session.ExportFile(output, midlinesDebug); err != nil {
		return err
	}
	success("Exported %s", output)
	return nil
}
