package tree

import "testing"

func TestSignature(t *testing.T) {
	line := func(path string, level int, text string) Line {
		return Line{Path: path, Level: level, Spans: []Span{{Text: text}}}
	}

	a := []Line{line("/p/a", 1, "a")}
	if signature(a) != signature([]Line{line("/p/a", 1, "a")}) {
		t.Error("identical projections hash differently")
	}
	if signature(a) == signature([]Line{line("/p/a", 1, "b")}) {
		t.Error("changed span text not reflected in signature")
	}
	if signature(a) == signature([]Line{line("/p/b", 1, "a")}) {
		t.Error("changed path not reflected in signature")
	}
	if signature(a) == signature([]Line{line("/p/a", 2, "a")}) {
		t.Error("changed level not reflected in signature")
	}
	// Levels that agree modulo 256 must still differ.
	if signature(a) == signature([]Line{line("/p/a", 257, "a")}) {
		t.Error("level 1 and level 257 collide")
	}
}
