package main

import (
	"fmt"

	"github.com/ttacon/chalk"

	"github.com/philipparndt/gofloor/internal/annotate"
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/internal/settings"
	"github.com/philipparndt/gofloor/pkg/svgplan"
)

// loadConfig applies the configuration file and the global flags
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if databasePath != "" {
		cfg.Database = databasePath
	}
	cfg = cfg.WithBox(boxWidth, boxHeight)
	return cfg, cfg.Validate()
}

// openStore returns the SQLite store when a database is configured and the
// JSON file store otherwise. done must be called when finished.
func openStore(cfg config.Config) (store settings.Store, done func() error, err error) {
	if cfg.Database == "" {
		return settings.NewFileStore(cfg.SelectionFile), func() error { return nil }, nil
	}
	db, err := settings.OpenSQLite(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return db, db.Close, nil
}

// openSession parses the plan and optionally restores its saved settings
func openSession(path string, cfg config.Config, store settings.Store, load bool) (*annotate.Session, error) {
	plan, err := svgplan.ParseFile(path, cfg.Box(), cfg.PlanOptions())
	if err != nil {
		return nil, err
	}
	session := annotate.NewSession(plan, path, cfg, store, nil)
	if load {
		if err := session.LoadSettings(); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func success(format string, args ...any) {
	fmt.Println(chalk.Green.Color(fmt.Sprintf(format, args...)))
}

func warn(format string, args ...any) {
	fmt.Println(chalk.Yellow.Color(fmt.Sprintf(format, args...)))
}

// closeStore runs done and reports its error unless the command already failed
func closeStore(done func() error, err *error) {
	if cerr := done(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close settings store: %w", cerr)
	}
}
