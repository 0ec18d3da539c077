package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/treeline/internal/config"
)

// writeFixture builds a small directory layout:
//
//	root/
//	  .hidden
//	  alpha/
//	    deep/
//	      leaf.txt
//	  beta/
//	  a.txt
//	  z.txt
func writeFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "alpha", "deep"))
	mustMkdir(t, filepath.Join(root, "beta"))
	mustWrite(t, filepath.Join(root, ".hidden"))
	mustWrite(t, filepath.Join(root, "a.txt"))
	mustWrite(t, filepath.Join(root, "z.txt"))
	mustWrite(t, filepath.Join(root, "alpha", "deep", "leaf.txt"))
	return root
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func names(s *FileTreeState) []string {
	var out []string
	for _, l := range s.Lines() {
		out = append(out, filepath.Base(l.Path))
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestUpdateOrdering(t *testing.T) {
	root := writeFixture(t)
	s := New(root)
	s.Update(config.Default())

	want := []string{filepath.Base(root), "alpha", "beta", "a.txt", "z.txt"}
	if got := names(s); !equalStrings(got, want) {
		t.Errorf("lines = %v, want %v (dirs first, bytewise within groups)", got, want)
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	s.Update(cfg)
	before := s.Signature()
	s.Update(cfg)
	if s.Signature() != before {
		t.Error("second update with unchanged filesystem changed the projection")
	}
}

func TestLinesHaveUniquePathsAndLevels(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	s.Expand(filepath.Join(root, "alpha"))
	s.Expand(filepath.Join(root, "alpha", "deep"))
	s.Update(cfg)

	seen := make(map[string]bool)
	prevLevel := -1
	for i, l := range s.Lines() {
		if seen[l.Path] {
			t.Errorf("duplicate path %q in projection", l.Path)
		}
		seen[l.Path] = true
		if l.Level > prevLevel+1 {
			t.Errorf("line %d jumps from level %d to %d", i, prevLevel, l.Level)
		}
		prevLevel = l.Level
	}
	if !seen[filepath.Join(root, "alpha", "deep", "leaf.txt")] {
		t.Error("expanded deep leaf not in projection")
	}
}

func TestHiddenFilter(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	s.Update(cfg)

	for _, n := range names(s) {
		if n == ".hidden" {
			t.Fatal("dotfile visible with show_hidden off")
		}
	}

	cfg.ShowHidden = true
	s.Update(cfg)
	found := false
	for _, n := range names(s) {
		if n == ".hidden" {
			found = true
		}
	}
	if !found {
		t.Error("dotfile missing with show_hidden on")
	}
}

func TestRescanPreservesDeepExpansion(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	s.Expand(filepath.Join(root, "alpha"))
	s.Expand(filepath.Join(root, "alpha", "deep"))
	s.Update(cfg)

	// A sibling appearing at the top level must not collapse the
	// expanded subtree under alpha.
	mustWrite(t, filepath.Join(root, "new.txt"))
	s.Update(cfg)

	leaf := filepath.Join(root, "alpha", "deep", "leaf.txt")
	found := false
	for _, l := range s.Lines() {
		if l.Path == leaf {
			found = true
		}
	}
	if !found {
		t.Error("rescan lost expansion state below an expanded directory")
	}
}

func TestSelectionClampsAndSurvivesRescan(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	s.Update(cfg)

	s.SelectNth(1000)
	if got, want := s.SelectedIndex(), len(s.Lines())-1; got != want {
		t.Errorf("SelectNth clamped to %d, want %d", got, want)
	}
	s.SelectNth(-5)
	if got := s.SelectedIndex(); got != 0 {
		t.Errorf("SelectNth clamped to %d, want 0", got)
	}

	target := filepath.Join(root, "a.txt")
	s.SelectPath(target)
	mustWrite(t, filepath.Join(root, "0-first.txt"))
	s.Update(cfg)
	if got := s.Lines()[s.SelectedIndex()].Path; got != target {
		t.Errorf("selection moved to %q after rescan, want %q", got, target)
	}
}

func TestSelectPathUnknownLeavesSelection(t *testing.T) {
	root := writeFixture(t)
	s := New(root)
	s.Update(config.Default())
	s.SelectNth(2)
	s.SelectPath(filepath.Join(root, "no-such-entry"))
	if got := s.SelectedIndex(); got != 2 {
		t.Errorf("selection = %d after selecting unknown path, want 2", got)
	}
}

func TestSelectUp(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	s.Expand(filepath.Join(root, "alpha"))
	s.Expand(filepath.Join(root, "alpha", "deep"))
	s.Update(cfg)

	s.SelectPath(filepath.Join(root, "alpha", "deep", "leaf.txt"))
	s.SelectUp()
	if got := s.Lines()[s.SelectedIndex()].Path; got != filepath.Join(root, "alpha", "deep") {
		t.Errorf("SelectUp landed on %q, want the parent directory", got)
	}

	s.SelectNth(0)
	s.SelectUp()
	if got := s.SelectedIndex(); got != 0 {
		t.Errorf("SelectUp at the first line moved to %d", got)
	}
}

func TestExpandToPath(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	leaf := filepath.Join(root, "alpha", "deep", "leaf.txt")
	s.ExpandToPath(leaf)
	s.Update(cfg)
	s.SelectPath(leaf)
	if got := s.Lines()[s.SelectedIndex()].Path; got != leaf {
		t.Errorf("selected %q after ExpandToPath, want %q", got, leaf)
	}
}

func TestCollapseRemovesSubtreeFromProjection(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	alpha := filepath.Join(root, "alpha")
	s.Expand(alpha)
	s.Update(cfg)

	countBefore := len(s.Lines())
	s.Collapse(alpha)
	s.Update(cfg)
	if len(s.Lines()) >= countBefore {
		t.Errorf("collapse did not shrink the projection: %d -> %d", countBefore, len(s.Lines()))
	}
	for _, l := range s.Lines() {
		if filepath.Dir(l.Path) == alpha {
			t.Errorf("collapsed child %q still projected", l.Path)
		}
	}
}

func TestCurrentDir(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	s.Update(cfg)

	s.SelectPath(filepath.Join(root, "a.txt"))
	if got := s.CurrentDir(); got != root {
		t.Errorf("CurrentDir for a file = %q, want parent %q", got, root)
	}
	s.SelectPath(filepath.Join(root, "beta"))
	if got := s.CurrentDir(); got != filepath.Join(root, "beta") {
		t.Errorf("CurrentDir for a directory = %q, want itself", got)
	}
}

func TestUnreadableDirDegradesToEmpty(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	gone := filepath.Join(root, "beta")
	s.Expand(gone)
	s.Update(cfg)
	if err := os.RemoveAll(gone); err != nil {
		t.Fatal(err)
	}
	s.Update(cfg)
	for _, l := range s.Lines() {
		if l.Path == gone {
			t.Error("removed directory still projected after rescan")
		}
	}
}

func TestChangeRoot(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	s.Update(cfg)

	alpha := filepath.Join(root, "alpha")
	s.ChangeRoot(cfg, alpha)
	if s.Root().Path != alpha {
		t.Fatalf("root = %q, want %q", s.Root().Path, alpha)
	}
	if len(s.Lines()) == 0 || s.Lines()[0].Path != alpha {
		t.Error("first projected line is not the new root")
	}
}

func TestSignatureChangesWithContent(t *testing.T) {
	root := writeFixture(t)
	cfg := config.Default()
	s := New(root)
	s.Update(cfg)
	before := s.Signature()
	mustWrite(t, filepath.Join(root, "extra.txt"))
	s.Update(cfg)
	if s.Signature() == before {
		t.Error("signature unchanged after a new entry appeared")
	}
}
