package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists user-added commands as a single JSON object on disk,
// keyed by command name. The file is read whole and rewritten whole;
// a mutex keeps concurrent adds from interleaving.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStorePath returns the standard location of the custom table:
// $XDG_DATA_HOME/shexplain/custom_commands.json, falling back to
// ~/.local/share/shexplain/custom_commands.json.
func DefaultStorePath() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "shexplain", "custom_commands.json"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "shexplain", "custom_commands.json"), nil
}

// Load reads the custom table. A missing or malformed file is treated as
// an empty table; Load never fails.
func (s *Store) Load() Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() Table {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Table{}
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return Table{}
	}
	if table == nil {
		return Table{}
	}
	return table
}

// Add inserts or replaces one command and rewrites the whole file.
func (s *Store) Add(name string, entry Entry) error {
	if name == "" {
		return fmt.Errorf("empty command name")
	}
	if _, err := ParseDangerLevel(string(entry.Danger)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table := s.loadLocked()
	table[name] = entry

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	data, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding custom commands: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing custom commands: %w", err)
	}
	return nil
}
