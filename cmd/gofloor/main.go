package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofloor/version"
)

var (
	configPath   string
	boxWidth     float64
	boxHeight    float64
	databasePath string
)

var rootCmd = &cobra.Command{
	Use:   "gofloor",
	Short: "Annotate floor plans and build walking networks",
	Long: `gofloor reads floor-plan SVG documents with spaces, walls and entrances,
lets you select rooms and place elevators and stairs, and computes the
midline network connecting them.`,
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	flags.Float64Var(&boxWidth, "width", 0, "display box width (overrides the configuration)")
	flags.Float64Var(&boxHeight, "height", 0, "display box height (overrides the configuration)")
	flags.StringVar(&databasePath, "db", "", "store settings in this SQLite database instead of files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
