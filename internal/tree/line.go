package tree

import (
	"encoding/binary"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/treeline/internal/config"
	"github.com/marcus/treeline/internal/icons"
)

// Span is one styled segment of a rendered line.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Line is the render-ready projection of one visible entry. Path points
// back at the entry it was built from; Level is the entry's depth below
// the root. Lines are rebuilt wholesale on every sync, never mutated.
type Line struct {
	Path  string
	Level int
	Spans []Span
}

// buildLine produces the line for an entry at the given depth. Entries
// whose name cannot be derived produce no line.
func (e *Entry) buildLine(cfg *config.Config, level int) (Line, bool) {
	name := filepath.Base(e.Path)
	if name == "" {
		return Line{}, false
	}

	arrow := icons.Arrow(e.IsDir, e.expanded)
	icon := icons.For(e.Path, e.IsDir, e.expanded, e.IsLink, cfg.FileIcons)

	style := cfg.FileStyle
	if e.IsDir {
		style = cfg.DirStyle
	}
	if e.IsLink {
		style = cfg.LinkStyle.Inherit(style)
	}

	return Line{
		Path:  e.Path,
		Level: level,
		Spans: []Span{
			{Text: string(arrow) + " " + string(icon), Style: cfg.IconStyle},
			{Text: " " + name, Style: style},
		},
	}, true
}

// Text returns the unstyled text of the line, without indentation.
func (l Line) Text() string {
	var out string
	for _, s := range l.Spans {
		out += s.Text
	}
	return out
}

// signature hashes the flattened projection so callers can cheaply detect
// whether a resync changed anything visible.
func signature(lines []Line) uint64 {
	h := xxhash.New()
	var lv [8]byte
	for _, l := range lines {
		_, _ = h.WriteString(l.Path)
		binary.LittleEndian.PutUint64(lv[:], uint64(l.Level))
		_, _ = h.Write(lv[:])
		for _, s := range l.Spans {
			_, _ = h.WriteString(s.Text)
		}
		_, _ = h.WriteString("\x00")
	}
	return h.Sum64()
}
