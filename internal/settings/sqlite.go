package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const schema = `
CREATE TABLE IF NOT EXISTS markers (
    document   TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS selections (
    document   TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore keeps the settings of many documents in one database
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates) the database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadMarkers(document string) (Markers, bool, error) {
	var markers Markers
	found, err := s.load("markers", document, &markers)
	return markers, found, err
}

func (s *SQLiteStore) SaveMarkers(document string, markers Markers) error {
	markers.Version = Version
	return s.save("markers", document, markers)
}

func (s *SQLiteStore) LoadSelection(document string) ([]bool, bool, error) {
	var selection []bool
	found, err := s.load("selections", document, &selection)
	return selection, found, err
}

func (s *SQLiteStore) SaveSelection(document string, selection []bool) error {
	if selection == nil {
		selection = []bool{}
	}
	return s.save("selections", document, selection)
}

// Documents lists every document with stored markers or selection
func (s *SQLiteStore) Documents(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document FROM markers UNION SELECT document FROM selections ORDER BY document`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}

// Delete removes all settings of document
func (s *SQLiteStore) Delete(ctx context.Context, document string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM markers WHERE document = ?`, document)
	if err != nil {
		return fmt.Errorf("failed to delete markers: %w", err)
	}
	n, _ := res.RowsAffected()
	res, err = s.db.ExecContext(ctx, `DELETE FROM selections WHERE document = ?`, document)
	if err != nil {
		return fmt.Errorf("failed to delete selection: %w", err)
	}
	m, _ := res.RowsAffected()
	if n+m == 0 {
		return ErrNotFound
	}
	return nil
}

// table is one of the two fixed table names above
func (s *SQLiteStore) load(table, document string, v any) (bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM `+table+` WHERE document = ?`, document).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query %s: %w", table, err)
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", table, err)
	}
	return true, nil
}

func (s *SQLiteStore) save(table, document string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", table, err)
	}
	_, err = s.db.Exec(`
        INSERT INTO `+table+` (document, payload, updated_at)
        VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(document) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
    `, document, string(payload))
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", table, err)
	}
	return nil
}
