// Package keymap holds user key bindings: an exact-match table from a
// structural key press to the command it triggers.
package keymap

import (
	"github.com/marcus/treeline/internal/command"
	"github.com/marcus/treeline/internal/key"
)

// Map is the user binding table. Bindings are added only through map
// commands; built-in navigation lives in the app layer and is consulted
// separately.
type Map struct {
	bindings map[key.KeyPress]command.Command
}

// New returns an empty binding table.
func New() *Map {
	return &Map{bindings: make(map[key.KeyPress]command.Command)}
}

// Bind associates k with cmd. Rebinding a key overwrites the previous
// command.
func (m *Map) Bind(k key.KeyPress, cmd command.Command) {
	m.bindings[k] = cmd
}

// Lookup returns the command bound to k, if any. Lookup is an exact match
// on key code and modifier set.
func (m *Map) Lookup(k key.KeyPress) (command.Command, bool) {
	cmd, ok := m.bindings[k]
	return cmd, ok
}

// Len returns the number of bindings.
func (m *Map) Len() int { return len(m.bindings) }
