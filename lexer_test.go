package jsondom

import "testing"

func TestCursorPosition(t *testing.T) {
	src := newCursor("ab\ncd\re")
	steps := []struct {
		char     rune
		row, col int
	}{
		{'b', 1, 2},
		{'\n', 1, 3},
		{'c', 2, 1},
		{'d', 2, 2},
		{'\r', 2, 3},
		{'e', 2, 1},
		{eof, 2, 2},
		{eof, 2, 2},
	}
	if c := src.cur(); c != 'a' || src.row != 1 || src.col != 1 {
		t.Fatalf("fresh cursor: got %q %d.%d, want 'a' 1.1", c, src.row, src.col)
	}
	for i, step := range steps {
		c := src.next()
		if c != step.char || src.row != step.row || src.col != step.col {
			t.Errorf("step %d: got %q %d.%d, want %q %d.%d",
				i, c, src.row, src.col, step.char, step.row, step.col)
		}
	}
}

func TestCursorSkipSpace(t *testing.T) {
	src := newCursor(" \t\r\n x \n y")
	if c := src.curSkipSpace(); c != 'x' {
		t.Errorf("got %q, want 'x'", c)
	}
	if src.row != 2 || src.col != 2 {
		t.Errorf("got %d.%d, want 2.2", src.row, src.col)
	}
	if c := src.nextSkipSpace(); c != 'y' {
		t.Errorf("got %q, want 'y'", c)
	}
	if c := src.nextSkipSpace(); c != eof {
		t.Errorf("got %q, want eof", c)
	}
}

func TestClassifiers(t *testing.T) {
	for _, c := range " \t\n\r" {
		if !isSpace(c) {
			t.Errorf("isSpace(%q) = false", c)
		}
	}
	for _, c := range "Az_" {
		if !isLetter(c) {
			t.Errorf("isLetter(%q) = false", c)
		}
	}
	for _, c := range "09" {
		if !isDigit(c) || !isHexDigit(c) {
			t.Errorf("%q not recognized as digit", c)
		}
	}
	for _, c := range "-. \"{}" {
		if isLetter(c) || isDigit(c) {
			t.Errorf("%q wrongly classified", c)
		}
	}
	hexes := []struct {
		have rune
		want int
	}{
		{'0', 0}, {'9', 9}, {'a', 10}, {'f', 15}, {'A', 10}, {'F', 15}, {'g', -1}, {'!', -1},
	}
	for _, h := range hexes {
		if got := hexValue(h.have); got != h.want {
			t.Errorf("hexValue(%q) = %d, want %d", h.have, got, h.want)
		}
	}
}
