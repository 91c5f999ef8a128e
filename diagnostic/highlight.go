// Copyright © 2026 The diagview authors

package diagnostic

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// colRange is a character range projected onto one source line,
// expressed in 1-based byte columns [begin, end). A zero-width range
// marks a single caret.
type colRange struct {
	begin, end int
}

// insertion is a fix-it insertion projected onto one source line.
type insertion struct {
	col  int // 1-based byte column
	text string
}

// expandLine replaces tabs in line with spaces up to the next tab stop
// and returns the expanded text together with a map from byte index to
// 0-based display column. The map has len(line)+1 entries; the final
// entry is the total display width. Annotation rows are built against
// the same map, so a mark lands under the glyph its byte column names
// regardless of tabs or multi-column glyphs.
func expandLine(line string, tabStop int) (string, []int) {
	m := make([]int, len(line)+1)
	var b strings.Builder
	col := 0
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		for k := 0; k < size; k++ {
			m[i+k] = col
		}
		if r == '\t' {
			pad := tabStop - col%tabStop
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
		} else {
			b.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
		i += size
	}
	m[len(line)] = col
	return b.String(), m
}

// buildCaretLine builds the underline row for one source line: '~' under
// every character covered by a range, '^' at the primary caret column
// and at zero-width ranges. The caret always wins over a tilde at the
// same column. Ranges are applied in order, so overlapping ranges
// resolve last-write-wins. caretCol may be 0 for no caret (outer
// backtrace levels use their own caret). The result is aligned to the
// expanded source line described by m.
func buildCaretLine(line string, m []int, ranges []colRange, caretCol int) string {
	// Marks in the byte domain first; index len(line) is the
	// end-of-line column so a caret may point one past the last char.
	marks := make([]byte, len(line)+1)
	for i := range marks {
		marks[i] = ' '
	}
	for _, r := range ranges {
		begin, end, ok := clipRange(r, len(line))
		if !ok {
			continue
		}
		if begin == end {
			marks[begin-1] = '^'
			continue
		}
		for c := begin; c < end; c++ {
			marks[c-1] = '~'
		}
	}
	if caretCol >= 1 && caretCol <= len(line)+1 {
		marks[caretCol-1] = '^'
	}

	// Project into the display domain: each glyph's mark repeats across
	// the glyph's full display width.
	width := m[len(line)]
	out := make([]byte, width+1)
	for i := range out {
		out[i] = ' '
	}
	for i := 0; i < len(line); {
		_, size := utf8.DecodeRuneInString(line[i:])
		if marks[i] != ' ' {
			// Zero-width glyphs get no cells of their own.
			for c := m[i]; c < m[i+size]; c++ {
				out[c] = marks[i]
			}
		}
		i += size
	}
	if marks[len(line)] != ' ' {
		out[width] = marks[len(line)]
	}
	return strings.TrimRight(string(out), " ")
}

// clipRange clamps a range to the line, dropping inverted or fully
// out-of-line ranges. Returned columns satisfy 1 <= begin <= end <=
// len+1.
func clipRange(r colRange, lineLen int) (begin, end int, ok bool) {
	begin, end = r.begin, r.end
	zero := begin == end
	if end < begin || end < 1 || begin > lineLen+1 {
		return 0, 0, false
	}
	if begin < 1 {
		begin = 1
	}
	if end > lineLen+1 {
		end = lineLen + 1
	}
	if !zero && begin >= end {
		return 0, 0, false
	}
	return begin, end, true
}

// buildFixItLine lays insertion fix-its under their target columns on a
// row aligned to the expanded source line. Insertions at the same
// column concatenate in input order. Returns "" when no insertion
// applies.
func buildFixItLine(fixes []insertion, m []int) string {
	var b strings.Builder
	cursor := 0
	for _, f := range fixes {
		if f.text == "" {
			continue
		}
		i := f.col - 1
		if i < 0 {
			i = 0
		}
		if i >= len(m) {
			i = len(m) - 1
		}
		start := m[i]
		if start < cursor {
			start = cursor
		}
		b.WriteString(strings.Repeat(" ", start-cursor))
		b.WriteString(f.text)
		cursor = start + runewidth.StringWidth(f.text)
	}
	return b.String()
}
