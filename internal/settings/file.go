package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// MarkerSuffix is appended to the document path for the marker file
const MarkerSuffix = ".gofloor.json"

// FileStore keeps markers in a JSON file beside each document and the
// space selection in a shared selection file
type FileStore struct {
	// SelectionFile is the selection file name. Relative names are resolved
	// against the directory of the document.
	SelectionFile string
}

// NewFileStore creates a file store using the given selection file name
func NewFileStore(selectionFile string) *FileStore {
	return &FileStore{SelectionFile: selectionFile}
}

// MarkerPath returns the path of the marker file of document
func (s *FileStore) MarkerPath(document string) string {
	return document + MarkerSuffix
}

// SelectionPath returns the path of the selection file of document
func (s *FileStore) SelectionPath(document string) string {
	if filepath.IsAbs(s.SelectionFile) {
		return s.SelectionFile
	}
	return filepath.Join(filepath.Dir(document), s.SelectionFile)
}

// SaveMarkers writes the markers. An empty set is written too so that a
// later load restores it.
func (s *FileStore) SaveMarkers(document string, markers Markers) error {
	path := s.MarkerPath(document)
	markers.Version = Version
	if err := writeJSON(path, markers); err != nil {
		return fmt.Errorf("failed to write markers file: %w", err)
	}
	log.Printf("[SETTINGS] Saved %d elevators and %d stairs to %s", len(markers.Elevators), len(markers.Stairs), path)
	return nil
}

// LoadMarkers reads the markers; a missing file is a fresh document
func (s *FileStore) LoadMarkers(document string) (Markers, bool, error) {
	var markers Markers
	found, err := readJSON(s.MarkerPath(document), &markers)
	if err != nil {
		return Markers{}, false, fmt.Errorf("failed to read markers file: %w", err)
	}
	return markers, found, nil
}

// SaveSelection writes the selection as a positional JSON array
func (s *FileStore) SaveSelection(document string, selection []bool) error {
	if selection == nil {
		selection = []bool{}
	}
	path := s.SelectionPath(document)
	if err := writeJSON(path, selection); err != nil {
		return fmt.Errorf("failed to write selection file: %w", err)
	}
	log.Printf("[SETTINGS] Saved selection of %d spaces to %s", len(selection), path)
	return nil
}

// LoadSelection reads the positional selection array
func (s *FileStore) LoadSelection(document string) ([]bool, bool, error) {
	var selection []bool
	found, err := readJSON(s.SelectionPath(document), &selection)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read selection file: %w", err)
	}
	return selection, found, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}
