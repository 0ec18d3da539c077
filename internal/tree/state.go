package tree

import (
	"path/filepath"
	"strings"

	"github.com/marcus/treeline/internal/config"
)

// FileTreeState aggregates the mirrored tree, the expanded-path set, the
// current flattened projection and the selection into it.
type FileTreeState struct {
	root     *Entry
	expanded ExpandedPaths
	lines    []Line
	cursor   int
}

// New creates a state rooted at path. The root starts expanded and
// selected; call Update to perform the first scan.
func New(path string) *FileTreeState {
	s := &FileTreeState{
		root:     newEntry(path),
		expanded: NewExpandedPaths(),
		cursor:   0,
	}
	s.expanded.Add(s.root.Path)
	return s
}

// Root returns the root entry.
func (s *FileTreeState) Root() *Entry { return s.root }

// Expanded returns the expanded-path set.
func (s *FileTreeState) Expanded() ExpandedPaths { return s.expanded }

// Lines returns the current flattened projection.
func (s *FileTreeState) Lines() []Line { return s.lines }

// SelectedIndex returns the selection index, or -1 when no line is
// selected.
func (s *FileTreeState) SelectedIndex() int {
	if s.cursor < 0 || s.cursor >= len(s.lines) {
		return -1
	}
	return s.cursor
}

// Signature identifies the current projection; it changes whenever a
// sync produced different visible lines.
func (s *FileTreeState) Signature() uint64 { return signature(s.lines) }

// ChangeRoot re-roots the tree at path and rescans.
func (s *FileTreeState) ChangeRoot(cfg *config.Config, path string) {
	s.root = newEntry(path)
	s.expanded.Add(s.root.Path)
	s.Update(cfg)
}

// Expand marks path expanded. The next Update performs the read.
func (s *FileTreeState) Expand(path string) { s.expanded.Add(path) }

// Collapse marks path collapsed.
func (s *FileTreeState) Collapse(path string) { s.expanded.Remove(path) }

// ToggleExpanded flips path between expanded and collapsed.
func (s *FileTreeState) ToggleExpanded(path string) { s.expanded.Toggle(path) }

// ExtendExpanded merges previously persisted expanded paths.
func (s *FileTreeState) ExtendExpanded(paths []string) { s.expanded.Extend(paths) }

// Update rescans the filesystem and rebuilds the projection. The path of
// the currently selected line is preserved when it is still visible;
// otherwise the selection stays at its old index, clamped into range.
func (s *FileTreeState) Update(cfg *config.Config) {
	var selected string
	if i := s.SelectedIndex(); i >= 0 {
		selected = s.lines[i].Path
	}
	s.root.sync(s.expanded)
	s.lines = s.root.appendLines(cfg, 0, nil)
	if s.cursor >= len(s.lines) {
		s.cursor = len(s.lines) - 1
	}
	if s.cursor < 0 && len(s.lines) > 0 {
		s.cursor = 0
	}
	if selected != "" {
		s.SelectPath(selected)
	}
}

// SelectNext moves the selection down one line, clamped at the end.
func (s *FileTreeState) SelectNext() { s.SelectNth(s.cursor + 1) }

// SelectPrev moves the selection up one line, clamped at the start.
func (s *FileTreeState) SelectPrev() { s.SelectNth(s.cursor - 1) }

// SelectNth selects line n, clamped into the valid range.
func (s *FileTreeState) SelectNth(n int) {
	if len(s.lines) == 0 {
		s.cursor = 0
		return
	}
	if n < 0 {
		n = 0
	}
	if n >= len(s.lines) {
		n = len(s.lines) - 1
	}
	s.cursor = n
}

// SelectUp moves the selection to the nearest preceding line whose level
// is strictly less than the current line's, or to the first line.
func (s *FileTreeState) SelectUp() {
	i := s.SelectedIndex()
	if i < 0 {
		return
	}
	level := s.lines[i].Level
	for i > 0 {
		i--
		if s.lines[i].Level < level {
			break
		}
	}
	s.cursor = i
}

// SelectPath selects the line whose path equals path, if one exists.
// Otherwise the selection is unchanged.
func (s *FileTreeState) SelectPath(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	for i, line := range s.lines {
		if line.Path == path {
			s.cursor = i
			return
		}
	}
}

// ExpandToPath marks every ancestor of path inside the root subtree
// expanded, so that after the next Update the path is revealed.
func (s *FileTreeState) ExpandToPath(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	for anc := filepath.Dir(path); within(s.root.Path, anc); anc = filepath.Dir(anc) {
		s.expanded.Add(anc)
		if anc == filepath.Dir(anc) {
			break
		}
	}
}

// Entry resolves the selected line back to its entry. With no valid
// selection the root is returned.
func (s *FileTreeState) Entry() *Entry {
	i := s.SelectedIndex()
	if i < 0 {
		return s.root
	}
	if e := s.root.find(s.lines[i].Path); e != nil {
		return e
	}
	return s.root
}

// CurrentDir is the directory context for new entries: the selected
// entry itself when it is a directory, else its parent.
func (s *FileTreeState) CurrentDir() string {
	e := s.Entry()
	if e.IsDir {
		return e.Path
	}
	return filepath.Dir(e.Path)
}

// within reports whether path is root itself or inside the root subtree.
func within(root, path string) bool {
	return path == root || strings.HasPrefix(path, strings.TrimSuffix(root, "/")+"/")
}
