package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LeaveTimePreference is the user's custom time-of-day range for single-day
// leave, persisted across sessions.
type LeaveTimePreference struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Preferences struct {
	LeaveTime *LeaveTimePreference `json:"leave_time,omitempty"`
}

// Store persists preferences as a JSON file, the CLI's stand-in for the
// browser's localStorage.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Load reads stored preferences. A missing file yields empty preferences.
func (s *Store) Load() (*Preferences, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Preferences{}, nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	return &p, nil
}

// Save writes preferences, creating the directory structure as needed.
func (s *Store) Save(p *Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
