package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/gofloor/pkg/preview"
	"github.com/philipparndt/gofloor/pkg/view"
)

var (
	previewOutput   string
	previewMidlines bool
	previewMargin   float64
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render the annotated plan to a PNG image",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "preview.png", "output PNG")
	previewCmd.Flags().BoolVarP(&previewMidlines, "midlines", "m", false, "draw the merged midline network")
	previewCmd.Flags().Float64Var(&previewMargin, "margin", 20, "margin around the plan in pixels")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) (err error) {
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
	if previewMidlines {
		session.ComputeAllMidlines()
	}
	session.SetView(view.Fit(session.Plan().Bounds(), cfg.Width, cfg.Height, previewMargin))

	img := preview.Render(session.Scene(), int(cfg.Width), int(cfg.Height))
	if err := preview.SavePNG(previewOutput, img); err != nil {
		return err
	}
	success("Wrote %s (%dx%d)", previewOutput, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
