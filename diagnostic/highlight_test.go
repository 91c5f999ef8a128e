// Copyright © 2026 The diagview authors

package diagnostic

import (
	"strings"
	"testing"
)

func TestExpandLine(t *testing.T) {
	got, m := expandLine("\tif (x)\ty;", 8)
	want := "        if (x)  y;"
	if got != want {
		t.Errorf("expanded line %q, want %q", got, want)
	}
	// Byte 1 ('i') sits at display column 8; the final entry is the
	// total width.
	if m[1] != 8 {
		t.Errorf("m[1] = %d, want 8", m[1])
	}
	if m[len(m)-1] != len(want) {
		t.Errorf("total width %d, want %d", m[len(m)-1], len(want))
	}
}

func TestExpandLineTabStop(t *testing.T) {
	got, _ := expandLine("a\tb", 4)
	if got != "a   b" {
		t.Errorf("expanded line %q, want %q", got, "a   b")
	}
}

func TestExpandLineWideRunes(t *testing.T) {
	// CJK runes occupy two display columns each.
	line := "x世界y"
	got, m := expandLine(line, 8)
	if got != line {
		t.Errorf("expanded line %q, want unchanged", got)
	}
	if m[len(line)] != 6 {
		t.Errorf("total width %d, want 6", m[len(line)])
	}
	// 'y' starts at byte 7, display column 5.
	if m[7] != 5 {
		t.Errorf("m[7] = %d, want 5", m[7])
	}
}

func TestBuildCaretLine(t *testing.T) {
	line := "foo(bar);"
	_, m := expandLine(line, 8)
	got := buildCaretLine(line, m, []colRange{{5, 8}}, 1)
	if got != "^   ~~~" {
		t.Errorf("caret line %q, want %q", got, "^   ~~~")
	}
}

func TestBuildCaretLineCaretWins(t *testing.T) {
	line := "abcd"
	_, m := expandLine(line, 8)
	got := buildCaretLine(line, m, []colRange{{1, 5}}, 3)
	if got != "~~^~" {
		t.Errorf("caret line %q, want %q", got, "~~^~")
	}
}

func TestBuildCaretLineZeroWidthRange(t *testing.T) {
	line := "ab"
	_, m := expandLine(line, 8)
	got := buildCaretLine(line, m, []colRange{{2, 2}}, 0)
	if got != " ^" {
		t.Errorf("caret line %q, want %q", got, " ^")
	}
}

func TestBuildCaretLineEOLCaret(t *testing.T) {
	line := "ab"
	_, m := expandLine(line, 8)
	got := buildCaretLine(line, m, nil, 3)
	if got != "  ^" {
		t.Errorf("caret line %q, want %q", got, "  ^")
	}
}

func TestBuildCaretLineWideRunes(t *testing.T) {
	line := "x世y"
	_, m := expandLine(line, 8)
	// The CJK rune spans bytes 2-4 and display columns 1-3; its tilde
	// repeats across both cells.
	got := buildCaretLine(line, m, []colRange{{2, 5}}, 0)
	if got != " ~~" {
		t.Errorf("caret line %q, want %q", got, " ~~")
	}
}

func TestBuildCaretLineTab(t *testing.T) {
	line := "\tx"
	_, m := expandLine(line, 8)
	got := buildCaretLine(line, m, nil, 2)
	if got != "        ^" {
		t.Errorf("caret line %q, want %q", got, "        ^")
	}
}

func TestClipRange(t *testing.T) {
	tests := []struct {
		in         colRange
		lineLen    int
		begin, end int
		ok         bool
	}{
		{colRange{2, 5}, 10, 2, 5, true},
		{colRange{-3, 4}, 10, 1, 4, true},
		{colRange{8, 99}, 10, 8, 11, true},
		{colRange{5, 2}, 10, 0, 0, false},
		{colRange{20, 25}, 10, 0, 0, false},
		{colRange{3, 3}, 10, 3, 3, true},
	}
	for _, tt := range tests {
		begin, end, ok := clipRange(tt.in, tt.lineLen)
		if begin != tt.begin || end != tt.end || ok != tt.ok {
			t.Errorf("clipRange(%v, %d) = (%d, %d, %v), want (%d, %d, %v)",
				tt.in, tt.lineLen, begin, end, ok, tt.begin, tt.end, tt.ok)
		}
	}
}

func TestBuildFixItLine(t *testing.T) {
	line := "foo(a b);"
	_, m := expandLine(line, 8)
	got := buildFixItLine([]insertion{{col: 7, text: ","}}, m)
	if got != "      ," {
		t.Errorf("fix-it line %q, want %q", got, "      ,")
	}
}

func TestBuildFixItLineSameColumn(t *testing.T) {
	line := "ab"
	_, m := expandLine(line, 8)
	got := buildFixItLine([]insertion{{col: 2, text: "x"}, {col: 2, text: "y"}}, m)
	if got != " xy" {
		t.Errorf("fix-it line %q, want %q", got, " xy")
	}
}

func TestBuildFixItLineAfterTab(t *testing.T) {
	line := "\tfoo()"
	_, m := expandLine(line, 8)
	// Insertion before ')' lands under the expanded column.
	got := buildFixItLine([]insertion{{col: 6, text: "x"}}, m)
	want := strings.Repeat(" ", 12) + "x"
	if got != want {
		t.Errorf("fix-it line %q, want %q", got, want)
	}
}
