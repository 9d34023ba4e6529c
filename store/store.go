// Package store persists the player's progress between sessions.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoSave is returned by Load when nothing has been saved yet.
var ErrNoSave = errors.New("store: no saved game")

// Progress is the saved portion of the game state.
type Progress struct {
	Level        int   `json:"level"`
	Score        int   `json:"score"`
	LevelHistory []int `json:"levelHistory"`
}

// Fresh is the progress of a new game.
func Fresh() Progress {
	return Progress{Level: 1, Score: 0, LevelHistory: []int{}}
}

// normalize applies defaults to missing or invalid fields.
func (p Progress) normalize() Progress {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Score < 0 {
		p.Score = 0
	}
	if p.LevelHistory == nil {
		p.LevelHistory = []int{}
	}
	return p
}

// Store loads and saves progress.
type Store interface {
	Load() (Progress, error)
	Save(Progress) error
	Exists() bool
}

// FileStore keeps progress as a JSON document at Path.
type FileStore struct {
	Path string
}

// NewFileStore returns a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// DefaultPath is the save file location under the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "vquest", "state.json")
}

// Exists reports whether a save file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Load reads the saved progress. A missing file yields ErrNoSave; a corrupt one a
// wrapped decode error. In both cases the returned progress is Fresh().
func (s *FileStore) Load() (Progress, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Fresh(), ErrNoSave
		}
		return Fresh(), fmt.Errorf("store: read %s: %w", s.Path, err)
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return Fresh(), fmt.Errorf("store: decode %s: %w", s.Path, err)
	}
	return p.normalize(), nil
}

// Save writes progress atomically via a temp file and rename.
func (s *FileStore) Save(p Progress) error {
	data, err := json.Marshal(p.normalize())
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("store: create dir: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}

// Memory is an in-process store, used when saving is disabled and in tests.
type Memory struct {
	saved *Progress
	// Err, when set, fails every Load and Save.
	Err error
}

// Exists reports whether Save has succeeded at least once.
func (m *Memory) Exists() bool { return m.saved != nil }

// Load returns the last saved progress.
func (m *Memory) Load() (Progress, error) {
	if m.Err != nil {
		return Fresh(), m.Err
	}
	if m.saved == nil {
		return Fresh(), ErrNoSave
	}
	p := *m.saved
	p.LevelHistory = append([]int{}, p.LevelHistory...)
	return p, nil
}

// Save stores a copy of p.
func (m *Memory) Save(p Progress) error {
	if m.Err != nil {
		return m.Err
	}
	p = p.normalize()
	p.LevelHistory = append([]int{}, p.LevelHistory...)
	m.saved = &p
	return nil
}
