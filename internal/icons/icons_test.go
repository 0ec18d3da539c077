package icons

import "testing"

func TestArrow(t *testing.T) {
	if got := Arrow(true, true); got != '▾' {
		t.Errorf("expanded dir arrow = %q", got)
	}
	if got := Arrow(true, false); got != '▸' {
		t.Errorf("collapsed dir arrow = %q", got)
	}
	if got := Arrow(false, false); got != ' ' {
		t.Errorf("file arrow = %q, want blank", got)
	}
}

func TestForKnownExtensions(t *testing.T) {
	plain := For("/p/readme.txt", false, false, false, true)
	goIcon := For("/p/main.go", false, false, false, true)
	if goIcon == plain {
		t.Error("go files should have a distinct icon when file_icons is on")
	}

	// With icons off every file shares the generic glyph.
	if For("/p/main.go", false, false, false, false) != For("/p/readme.txt", false, false, false, false) {
		t.Error("file_icons off should not differentiate by extension")
	}
}
