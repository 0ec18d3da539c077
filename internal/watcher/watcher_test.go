package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSignalOnChange(t *testing.T) {
	dir := t.TempDir()
	w, err := New(20 * time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	w.SetDirs([]string{dir})

	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal after a write")
	}
}

func TestBurstCoalesces(t *testing.T) {
	dir := t.TempDir()
	w, err := New(50 * time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	w.SetDirs([]string{dir})

	for i := 0; i < 10; i++ {
		name := filepath.Join(dir, "f"+string(rune('a'+i)))
		if err := os.WriteFile(name, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal after a burst")
	}

	// The burst ended before the debounce window closed, so at most one
	// further signal can be pending.
	drained := 0
	deadline := time.After(200 * time.Millisecond)
	for {
		select {
		case <-w.Changes():
			drained++
			if drained > 1 {
				t.Fatalf("burst produced %d extra signals", drained)
			}
		case <-deadline:
			return
		}
	}
}

func TestSetDirsReplacesSet(t *testing.T) {
	oldDir := t.TempDir()
	newDir := t.TempDir()
	w, err := New(20 * time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	w.SetDirs([]string{oldDir})
	w.SetDirs([]string{newDir})

	if err := os.WriteFile(filepath.Join(newDir, "n.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no signal for a directory added by SetDirs")
	}
}

func TestSetDirsSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	w, err := New(20 * time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	// A vanished directory must not poison the rest of the set.
	w.SetDirs([]string{filepath.Join(dir, "gone"), dir})

	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no signal after SetDirs with a missing member")
	}
}
