// Copyright © 2026 The diagview authors

// Package fixit models the machine-readable fix-it line format emitted
// for tool consumers:
//
//	fix-it:"<file>":{<startLine>:<startCol>-<endLine>:<endCol>}:"<text>"
//
// Insertions are zero-width ranges carrying the inserted text; removals
// are their range with an empty replacement. The format is byte-stable:
// identical input always serializes to identical output.
package fixit

import (
	"fmt"
	"strings"
)

// Line is one parsed or to-be-emitted fix-it line. Lines and columns are
// 1-based; the range is [start, end) in characters.
type Line struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
	Text      string
}

// Insertion reports whether the line denotes a pure insertion.
func (l Line) Insertion() bool {
	return l.StartLine == l.EndLine && l.StartCol == l.EndCol && l.Text != ""
}

// Removal reports whether the line denotes a pure removal.
func (l Line) Removal() bool {
	return l.Text == "" && !(l.StartLine == l.EndLine && l.StartCol == l.EndCol)
}

// String renders the canonical single-line form, without a trailing
// newline.
func (l Line) String() string {
	return fmt.Sprintf("fix-it:%s:{%d:%d-%d:%d}:%s",
		Quote(l.File), l.StartLine, l.StartCol, l.EndLine, l.EndCol, Quote(l.Text))
}

// Quote wraps s in double quotes, escaping embedded quotes and
// backslashes. No other characters are escaped; the format is line
// oriented and replacement text is expected not to contain newlines.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote reverses Quote. It fails on unterminated strings or trailing
// backslashes.
func Unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("fixit: not a quoted string: %q", s)
	}
	body := s[1 : len(s)-1]
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' {
			i++
			if i == len(body) {
				return "", fmt.Errorf("fixit: trailing backslash in %q", s)
			}
			c = body[i]
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}
