// Package cache persists the expanded-path set and the last selection
// across sessions as a small JSON state file.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// Record is the persisted session state. Round-tripping the expanded
// paths and the selected path must be lossless.
type Record struct {
	ExpandedPaths []string `json:"expandedPaths,omitempty"`
	SelectedPath  string   `json:"selectedPath,omitempty"`
}

// DefaultPath returns the per-user state file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "treeline", "state.json")
}

// Load reads a record from path. A missing file yields an empty record;
// any other failure is returned to the caller.
func Load(path string) (Record, error) {
	var rec Record
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return rec, nil
	}
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// Save writes the record to path, creating the directory if needed.
// Paths are written sorted so the file is stable across runs.
func Save(path string, rec Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	sort.Strings(rec.ExpandedPaths)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
