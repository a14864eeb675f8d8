package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/gofloor/internal/app"
)

var (
	viewWatch bool
	viewLoad  bool
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open a floor plan in the interactive annotation window",
	Long: `Open the annotation window. Click spaces to select them, press 1 or 2 to
place elevators or stairs, m or a to compute midlines and e to export.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "reload the plan when the file changes")
	viewCmd.Flags().BoolVarP(&viewLoad, "load", "l", false, "restore saved markers and selection on startup")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, done, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(done, &err)

	return app.Run(app.Options{
		File:         args[0],
		Config:       cfg,
		Store:        store,
		Watch:        viewWatch,
		LoadSettings: viewLoad,
	})
}
