package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofloor/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect settings stored in the SQLite database",
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents with stored settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(db *settings.SQLiteStore) error {
			docs, err := db.Documents(cmd.Context())
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				fmt.Println("No stored settings")
			}
			for _, doc := range docs {
				fmt.Println(doc)
			}
			return nil
		})
	},
}

var settingsDeleteCmd = &cobra.Command{
	Use:   "delete [document]",
	Short: "Delete the markers and selection of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(db *settings.SQLiteStore) error {
			err := db.Delete(cmd.Context(), args[0])
			if errors.Is(err, settings.ErrNotFound) {
				warn("No settings stored for %s", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			success("Deleted settings of %s", args[0])
			return nil
		})
	},
}

func init() {
	settingsCmd.AddCommand(settingsListCmd, settingsDeleteCmd)
	rootCmd.AddCommand(settingsCmd)
}

func withDatabase(fn func(*settings.SQLiteStore) error) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database == "" {
		return errors.New("no database configured, pass --db or set database in the configuration")
	}
	db, err := settings.OpenSQLite(cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore(db.Close, &err)
	return fn(db)
}
