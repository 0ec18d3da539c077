// Package config holds the process-wide options. A Config is created with
// defaults at startup and mutated only through the set command; everything
// that reads it (tree updates, line styling) receives it as an explicit
// value.
package config

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/treeline/internal/styles"
)

// Config is the full option set.
type Config struct {
	// ShowHidden includes dotfiles below the root in the tree.
	ShowHidden bool
	// OpenCmd is the shell template run by the open command. The target
	// path is passed as "$1".
	OpenCmd string
	// QuitOnOpen exits the panel after a successful open.
	QuitOnOpen bool
	// FileIcons selects per-filetype icons instead of the plain glyphs.
	FileIcons bool

	// Line styles, threaded into flattening so rebuilt lines carry their
	// final presentation.
	DirStyle      lipgloss.Style
	FileStyle     lipgloss.Style
	LinkStyle     lipgloss.Style
	IconStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		ShowHidden: false,
		OpenCmd:    `${EDITOR:-vi} "$1"`,
		QuitOnOpen: false,
		FileIcons:  false,

		DirStyle:      styles.Dir,
		FileStyle:     styles.File,
		LinkStyle:     styles.Link,
		IconStyle:     styles.Icon,
		SelectedStyle: styles.Selected,
	}
}

// Set applies a named option. An unrecognized name or an unparseable
// value returns an error and leaves the config unchanged.
func (c *Config) Set(name, value string) error {
	switch name {
	case "show_hidden":
		return setBool(&c.ShowHidden, value)
	case "open_cmd":
		c.OpenCmd = value
		return nil
	case "quit_on_open":
		return setBool(&c.QuitOnOpen, value)
	case "file_icons":
		return setBool(&c.FileIcons, value)
	default:
		return fmt.Errorf("unknown option %q", name)
	}
}

func setBool(dst *bool, value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("could not parse option value %q", value)
	}
	*dst = v
	return nil
}
