// Package tree owns the in-memory mirror of the filesystem subtree and
// its flattened, selectable projection. Directories are read lazily, one
// level per expanded entry per synchronization pass, and existing child
// subtrees are reused across rescans so expansion state deep in the tree
// survives.
package tree

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/marcus/treeline/internal/config"
)

// Entry is one node of the mirrored subtree. Children are populated only
// while the entry is a directory and expanded.
type Entry struct {
	Path     string
	IsDir    bool
	IsLink   bool
	Children []*Entry

	// expanded caches membership in the expanded-path set as of the last
	// sync. The set itself stays authoritative.
	expanded bool
}

func newEntry(path string) *Entry {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	e := &Entry{Path: path}
	if info, err := os.Stat(path); err == nil {
		e.IsDir = info.IsDir()
	}
	if _, err := os.Readlink(path); err == nil {
		e.IsLink = true
	}
	return e
}

// IsExpanded returns the cached expanded flag.
func (e *Entry) IsExpanded() bool { return e.expanded }

// sync re-reads this entry's directory listing if it is expanded, then
// descends into whatever children that produced. Each pass reads at most
// one level per entry; deeper levels are handled by their own expanded
// checks during the same walk.
func (e *Entry) sync(expanded ExpandedPaths) {
	e.expanded = expanded.Contains(e.Path)
	if e.expanded {
		e.readDir()
	}
	for _, child := range e.Children {
		child.sync(expanded)
	}
}

// readDir lists the entry's immediate children, reusing the existing
// in-memory subtree for any path that is still present. A read error
// degrades to an empty listing; siblings are unaffected.
func (e *Entry) readDir() {
	listing, err := os.ReadDir(e.Path)
	if err != nil {
		e.Children = nil
		return
	}
	prev := e.Children
	children := make([]*Entry, 0, len(listing))
	for _, ent := range listing {
		path := filepath.Join(e.Path, ent.Name())
		if old := takeByPath(&prev, path); old != nil {
			children = append(children, old)
		} else {
			children = append(children, newEntry(path))
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].IsDir != children[j].IsDir {
			return children[i].IsDir
		}
		return children[i].Path < children[j].Path
	})
	e.Children = children
}

// takeByPath removes and returns the entry with the given path from the
// slice, or nil.
func takeByPath(entries *[]*Entry, path string) *Entry {
	for i, e := range *entries {
		if e.Path == path {
			*entries = append((*entries)[:i], (*entries)[i+1:]...)
			return e
		}
	}
	return nil
}

// find resolves a path back to its entry by depth-first search.
func (e *Entry) find(path string) *Entry {
	if e.Path == path {
		return e
	}
	for _, child := range e.Children {
		if found := child.find(path); found != nil {
			return found
		}
	}
	return nil
}

// visible reports whether the entry produces a line. The root is always
// shown; below it, dotfiles are hidden unless show_hidden is set. A
// hidden entry hides its whole subtree from the projection but stays in
// the in-memory tree.
func (e *Entry) visible(cfg *config.Config, level int) bool {
	if level == 0 {
		return true
	}
	if cfg.ShowHidden {
		return true
	}
	name := filepath.Base(e.Path)
	return len(name) == 0 || name[0] != '.'
}

// appendLines flattens the subtree depth-first into render-ready lines.
func (e *Entry) appendLines(cfg *config.Config, level int, lines []Line) []Line {
	if !e.visible(cfg, level) {
		return lines
	}
	line, ok := e.buildLine(cfg, level)
	if !ok {
		return lines
	}
	lines = append(lines, line)
	if e.expanded {
		for _, child := range e.Children {
			lines = child.appendLines(cfg, level+1, lines)
		}
	}
	return lines
}
