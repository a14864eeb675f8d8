package main

import (
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportDebug  bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the plan with its saved markers as SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output SVG (defaults to the configured output)")
	exportCmd.Flags().BoolVarP(&exportDebug, "debug", "d", false, "append the debug group")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) (err error) {
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

	output := exportOutput
	if output == "" {
		output = cfg.Output
	}
	if err := session.ExportFile(output, exportDebug); err != nil {
		return err
	}
	success("Exported %s", output)
	return nil
}
