// Package settings persists per-document annotation state: placed markers
// and the positional selection of spaces.
package settings

import (
	"errors"
	"sync"
)

// Version of the persisted document format
const Version = "1.0"

// ErrNotFound is returned by lookups that require an existing record
var ErrNotFound = errors.New("settings not found")

// Marker is a persisted elevator or stairs marker
type Marker struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ID       int     `json:"id"`
	Selected bool    `json:"selected"`
}

// Markers groups the persisted markers by kind
type Markers struct {
	Version   string   `json:"version"`
	Elevators []Marker `json:"elevators"`
	Stairs    []Marker `json:"stairs"`
}

// Empty reports whether no marker is stored
func (m Markers) Empty() bool {
	return len(m.Elevators) == 0 && len(m.Stairs) == 0
}

// Store persists settings keyed by document. Loading a document that was
// never saved returns found=false and no error.
type Store interface {
	LoadMarkers(document string) (markers Markers, found bool, err error)
	SaveMarkers(document string, markers Markers) error
	LoadSelection(document string) (selection []bool, found bool, err error)
	SaveSelection(document string, selection []bool) error
}

// Memory is an in-process store used by headless sessions and tests
type Memory struct {
	mu        sync.Mutex
	markers   map[string]Markers
	selection map[string][]bool
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{markers: make(map[string]Markers), selection: make(map[string][]bool)}
}

func (m *Memory) LoadMarkers(document string) (Markers, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	markers, ok := m.markers[document]
	return markers, ok, nil
}

func (m *Memory) SaveMarkers(document string, markers Markers) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	markers.Version = Version
	m.markers[document] = markers
	return nil
}

func (m *Memory) LoadSelection(document string) ([]bool, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	selection, ok := m.selection[document]
	return append([]bool(nil), selection...), ok, nil
}

func (m *Memory) SaveSelection(document string, selection []bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection[document] = append([]bool(nil), selection...)
	return nil
}
