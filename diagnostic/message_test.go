// Copyright © 2026 The diagview authors

package diagnostic

import (
	"bytes"
	"strings"
	"testing"
)

func TestFprintSeverity(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintSeverity(&buf, SeverityWarning, false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "warning: " {
		t.Errorf("label %q, want %q", got, "warning: ")
	}
}

func TestFprintSeverityColored(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintSeverity(&buf, SeverityError, true); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "\033[31m") {
		t.Errorf("error label should start red: %q", got)
	}
	if !strings.Contains(got, "\033[0m") {
		t.Errorf("label must reset colors: %q", got)
	}
}

func TestFprintMessageNoWrap(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintMessage(&buf, SeverityError, "short message", 7, 0, false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "short message\n" {
		t.Errorf("message %q, want %q", got, "short message\n")
	}
}

func TestFprintMessageWrapped(t *testing.T) {
	var buf bytes.Buffer
	msg := "one two three four five six seven eight nine ten"
	if err := FprintMessage(&buf, SeverityError, msg, 7, 25, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("message should wrap: %q", buf.String())
	}
	for i, line := range lines {
		width := len(line)
		if i == 0 {
			width += 7 // the severity label precedes the first line
		}
		if width > 25 {
			t.Errorf("line %d exceeds wrap column: %q", i, line)
		}
		if i > 0 && !strings.HasPrefix(line, strings.Repeat(" ", 7)) {
			t.Errorf("continuation line %d not aligned: %q", i, line)
		}
	}
}

func TestFprintMessageNarrowColumnDisablesWrap(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintMessage(&buf, SeverityError, "a b c", 30, 25, false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a b c\n" {
		t.Errorf("message %q, want %q", got, "a b c\n")
	}
}

func TestWrapMessageLongWord(t *testing.T) {
	word := strings.Repeat("x", 40)
	lines := wrapMessage("see "+word, 0, 20)
	found := false
	for _, line := range lines {
		if strings.Contains(line, word) {
			found = true
		}
	}
	if !found {
		t.Errorf("long word must not be broken: %q", lines)
	}
}
